package resolvers

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// ResolveByIDInput holds the world and the ID of one content entity
type ResolveByIDInput struct {
	WorldID string
	ID      string
}

// ResolveCaste loads the selected caste
func (r *Resolver) ResolveCaste(ctx context.Context, input *ResolveByIDInput) (*world.Caste, error) {
	return getOne(ctx, input.WorldID, PropertyCasteID, input.ID, world.TypeCaste,
		func(ctx context.Context, in content.GetInput) (*world.Caste, error) {
			out, err := r.contentRepo.GetCaste(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.Caste, nil
		})
}

// ResolveEducation loads the selected education
func (r *Resolver) ResolveEducation(ctx context.Context, input *ResolveByIDInput) (*world.Education, error) {
	return getOne(ctx, input.WorldID, PropertyEducationID, input.ID, world.TypeEducation,
		func(ctx context.Context, in content.GetInput) (*world.Education, error) {
			out, err := r.contentRepo.GetEducation(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.Education, nil
		})
}

// ResolvePersonality loads the selected personality
func (r *Resolver) ResolvePersonality(ctx context.Context, input *ResolveByIDInput) (*world.Personality, error) {
	return getOne(ctx, input.WorldID, PropertyPersonalityID, input.ID, world.TypePersonality,
		func(ctx context.Context, in content.GetInput) (*world.Personality, error) {
			out, err := r.contentRepo.GetPersonality(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.Personality, nil
		})
}

// ResolveNature loads the selected nature. Nature is optional: an empty ID
// resolves to nil.
func (r *Resolver) ResolveNature(ctx context.Context, input *ResolveByIDInput) (*world.Nature, error) {
	if input.ID == "" {
		return nil, nil
	}

	return getOne(ctx, input.WorldID, PropertyNatureID, input.ID, world.TypeNature,
		func(ctx context.Context, in content.GetInput) (*world.Nature, error) {
			out, err := r.contentRepo.GetNature(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.Nature, nil
		})
}
