package resolvers

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// ResolveItem loads the starting wealth item, which must be money worth
// exactly one unit
func (r *Resolver) ResolveItem(ctx context.Context, input *ResolveByIDInput) (*world.Item, error) {
	item, err := getOne(ctx, input.WorldID, PropertyStartingWealth, input.ID, world.TypeItem,
		func(ctx context.Context, in content.GetInput) (*world.Item, error) {
			out, err := r.contentRepo.GetItem(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.Item, nil
		})
	if err != nil {
		return nil, err
	}

	if item.Category != world.ItemCategoryMoney || item.Value != world.StartingWealthUnitValue {
		return nil, errors.Reject(errors.ReasonInvalidContentShape, input.WorldID, PropertyStartingWealth,
			"starting wealth must be a money item with a unit value of "+
				strconv.FormatFloat(world.StartingWealthUnitValue, 'f', 1, 64),
			item.ID)
	}

	return item, nil
}
