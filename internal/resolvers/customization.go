package resolvers

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// ResolveCustomizationsInput holds the chosen gifts and disabilities and
// the content whose gifts they may not repeat
type ResolveCustomizationsInput struct {
	WorldID     string
	IDs         []string
	Personality *world.Personality
	Nature      *world.Nature
}

// ResolveCustomizationsOutput holds the loaded customizations in request order
type ResolveCustomizationsOutput struct {
	Customizations []*world.Customization
}

// ResolveCustomizations loads the chosen customizations. Gifts and
// disabilities must pair up one to one, and the gift already granted by the
// personality or nature cannot be picked again.
func (r *Resolver) ResolveCustomizations(
	ctx context.Context,
	input *ResolveCustomizationsInput,
) (*ResolveCustomizationsOutput, error) {
	if len(input.IDs) == 0 {
		return &ResolveCustomizationsOutput{Customizations: []*world.Customization{}}, nil
	}

	out, err := r.contentRepo.ListCustomizations(ctx, content.ListInput{IDs: input.IDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customizations")
	}
	loaded := inWorld(input.WorldID, out.Customizations)

	var gifts, disabilities int
	for _, c := range loaded {
		if input.Personality != nil && input.Personality.GiftID != "" && c.ID == input.Personality.GiftID {
			return nil, errors.Reject(errors.ReasonConflictingSelection, input.WorldID, PropertyCustomizationIDs,
				"cannot include the personality's gift", c.ID)
		}
		if input.Nature != nil && input.Nature.GiftID != "" && c.ID == input.Nature.GiftID {
			return nil, errors.Reject(errors.ReasonConflictingSelection, input.WorldID, PropertyCustomizationIDs,
				"cannot include the nature's gift", c.ID)
		}

		switch c.Type {
		case world.CustomizationGift:
			gifts++
		case world.CustomizationDisability:
			disabilities++
		}
	}

	if gifts != disabilities {
		return nil, errors.Reject(errors.ReasonImbalancedSelection, input.WorldID, PropertyCustomizationIDs,
			fmt.Sprintf("gifts and disabilities must be equal in number, got %d gifts and %d disabilities",
				gifts, disabilities))
	}

	if missing := missingIDs(input.IDs, loaded); len(missing) > 0 {
		return nil, errors.Reject(errors.ReasonNotFound, input.WorldID, PropertyCustomizationIDs,
			"customizations not found", missing...)
	}

	return &ResolveCustomizationsOutput{Customizations: loaded}, nil
}
