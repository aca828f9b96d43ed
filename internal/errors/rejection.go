package errors

import (
	"sort"
)

// Reason classifies why a character build selection was rejected
type Reason string

// Rejection reasons
const (
	// ReasonNotFound means a referenced content ID does not resolve
	ReasonNotFound Reason = "NOT_FOUND"
	// ReasonSelectionMismatch means a value is not present in the pool it is drawn from
	ReasonSelectionMismatch Reason = "SELECTION_MISMATCH"
	// ReasonConflictingSelection means a value breaks a mutual-exclusion rule
	ReasonConflictingSelection Reason = "CONFLICTING_SELECTION"
	// ReasonImbalancedSelection means gifts and disabilities do not pair up
	ReasonImbalancedSelection Reason = "IMBALANCED_SELECTION"
	// ReasonInvalidContentShape means authored content cannot serve the selection
	ReasonInvalidContentShape Reason = "INVALID_CONTENT_SHAPE"
	// ReasonInvalidLineageChoice means a species with nations was chosen directly
	ReasonInvalidLineageChoice Reason = "INVALID_LINEAGE_CHOICE"
	// ReasonForeignContent means the content belongs to another world
	ReasonForeignContent Reason = "FOREIGN_CONTENT"
)

// MetaKeyRejection is the metadata key holding the *Rejection of a rejected selection
const MetaKeyRejection = "rejection"

// Code returns the error code a rejection with this reason carries
func (r Reason) Code() Code {
	switch r {
	case ReasonNotFound:
		return CodeNotFound
	case ReasonInvalidContentShape:
		return CodeFailedPrecondition
	case ReasonForeignContent:
		return CodePermissionDenied
	default:
		return CodeInvalidArgument
	}
}

// Rejection describes a rejected selection well enough for a boundary
// to point the player at the offending field.
type Rejection struct {
	Reason   Reason   `json:"reason"`
	WorldID  string   `json:"world_id"`
	Property string   `json:"property"`
	Values   []string `json:"values,omitempty"`
}

// Reject creates an error for a rejected selection.
// Values are sorted so the same input always yields the same rejection.
func Reject(reason Reason, worldID, property, message string, values ...string) *Error {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)

	return New(reason.Code(), message).WithMeta(MetaKeyRejection, &Rejection{
		Reason:   reason,
		WorldID:  worldID,
		Property: property,
		Values:   sorted,
	})
}

// GetRejection extracts the rejection carried by err, if any
func GetRejection(err error) (*Rejection, bool) {
	meta := GetMeta(err)
	if meta == nil {
		return nil, false
	}
	rejection, ok := meta[MetaKeyRejection].(*Rejection)
	return rejection, ok
}

// IsRejection reports whether err is a rejected selection rather than a fault
func IsRejection(err error) bool {
	_, ok := GetRejection(err)
	return ok
}

// RejectionValidationError turns a rejection into a field-scoped validation error
func RejectionValidationError(err error) (*ValidationError, bool) {
	rejection, ok := GetRejection(err)
	if !ok {
		return nil, false
	}

	ve := NewValidationError()
	ve.AddFieldError(rejection.Property, GetMessage(err))
	return ve, true
}
