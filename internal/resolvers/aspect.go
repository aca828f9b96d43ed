package resolvers

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// ResolveAspectsInput holds the requested aspect IDs
type ResolveAspectsInput struct {
	WorldID string
	IDs     []string
}

// ResolveAspectsOutput holds the loaded aspects in request order
type ResolveAspectsOutput struct {
	Aspects []*world.Aspect
}

// ResolveAspects loads the selected aspects. A repeated ID selects the aspect once.
func (r *Resolver) ResolveAspects(ctx context.Context, input *ResolveAspectsInput) (*ResolveAspectsOutput, error) {
	if len(input.IDs) == 0 {
		return &ResolveAspectsOutput{Aspects: []*world.Aspect{}}, nil
	}

	out, err := r.contentRepo.ListAspects(ctx, content.ListInput{IDs: input.IDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aspects")
	}

	aspects := inWorld(input.WorldID, out.Aspects)
	if missing := missingIDs(input.IDs, aspects); len(missing) > 0 {
		return nil, errors.Reject(errors.ReasonNotFound, input.WorldID, PropertyAspectIDs,
			"aspects not found", missing...)
	}

	return &ResolveAspectsOutput{Aspects: aspects}, nil
}
