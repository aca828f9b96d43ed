package resolvers

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// ResolveLineageInput holds the requested lineage
type ResolveLineageInput struct {
	WorldID string
	ID      string
}

// ResolveLineageOutput holds the lineage and, for a nation, its species
type ResolveLineageOutput struct {
	Lineage       *world.Lineage
	ParentLineage *world.Lineage
}

// ResolveLineage loads a lineage a character may be built from: a species
// without nations, or a nation. A species that has nations cannot be chosen.
func (r *Resolver) ResolveLineage(ctx context.Context, input *ResolveLineageInput) (*ResolveLineageOutput, error) {
	var children []string
	lineage, err := getOne(ctx, input.WorldID, PropertyLineageID, input.ID, world.TypeLineage,
		func(ctx context.Context, in content.GetInput) (*world.Lineage, error) {
			out, err := r.contentRepo.GetLineage(ctx, in)
			if err != nil {
				return nil, err
			}
			children = out.ChildIDs
			return out.Lineage, nil
		})
	if err != nil {
		return nil, err
	}

	if lineage.IsSpecies() {
		if len(children) > 0 {
			return nil, errors.Reject(errors.ReasonInvalidLineageChoice, input.WorldID, PropertyLineageID,
				"a species with nations cannot be chosen, choose one of its nations", lineage.ID)
		}
		return &ResolveLineageOutput{Lineage: lineage}, nil
	}

	parent, err := getOne(ctx, input.WorldID, PropertyLineageID, lineage.ParentID, world.TypeLineage,
		func(ctx context.Context, in content.GetInput) (*world.Lineage, error) {
			out, err := r.contentRepo.GetLineage(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.Lineage, nil
		})
	if err != nil {
		return nil, err
	}

	return &ResolveLineageOutput{Lineage: lineage, ParentLineage: parent}, nil
}
