// Package errors provides the structured errors used across rpg-worlds.
//
// Every error carries a Code, a player-facing Message, an optional Cause and
// free-form metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Rejections
//
// A character build that breaks a creation rule is rejected, not failed.
// Rejections are ordinary *Error values whose metadata holds a *Rejection
// naming the reason, the active world, the dotted property path of the
// offending field and the offending values:
//
//	return errors.Reject(errors.ReasonSelectionMismatch, worldID,
//	    "BaseAttributes.Best", "best attribute is not a mandatory slot", string(best))
//
// Callers tell rejections from faults with IsRejection and read them back
// with GetRejection. RejectionValidationError converts one into the
// field-keyed ValidationError used for request validation.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
