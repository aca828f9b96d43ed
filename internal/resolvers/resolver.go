// Package resolvers validates the content selections a player makes when
// building a character.
//
// Each resolver turns raw IDs, plus whatever it depends on that was already
// resolved, into validated content. A selection that breaks a rule comes back
// as an errors.Reject error naming the payload property, the offending values
// and the active world. Any other error is a lookup fault.
package resolvers

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// Payload property paths named by rejections
const (
	PropertyLineageID        = "LineageId"
	PropertyAspectIDs        = "AspectIds"
	PropertyBest             = "BaseAttributes.Best"
	PropertyWorst            = "BaseAttributes.Worst"
	PropertyOptional         = "BaseAttributes.Optional"
	PropertyExtra            = "BaseAttributes.Extra"
	PropertyLanguageIDs      = "LanguageIds"
	PropertyPersonalityID    = "PersonalityId"
	PropertyNatureID         = "NatureId"
	PropertyCustomizationIDs = "CustomizationIds"
	PropertyCasteID          = "CasteId"
	PropertyEducationID      = "EducationId"
	PropertyTalentIDs        = "TalentIds"
	PropertyStartingWealth   = "StartingWealth.ItemId"
)

// Config holds the dependencies of a Resolver
type Config struct {
	ContentRepo content.Repository
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	return vb.Build()
}

// Resolver loads and validates character build selections
type Resolver struct {
	contentRepo content.Repository
}

// New creates a Resolver
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Resolver{contentRepo: cfg.ContentRepo}, nil
}

// distinctIDs drops repeats, keeping first-seen order
func distinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// inWorld keeps the entities authored in worldID; content from other
// worlds is invisible to a build, as if it did not exist
func inWorld[T world.Content](worldID string, loaded []T) []T {
	out := make([]T, 0, len(loaded))
	for _, entity := range loaded {
		if entity.GetWorldID() == worldID {
			out = append(out, entity)
		}
	}
	return out
}

// missingIDs returns the requested IDs with no loaded entity
func missingIDs[T world.Content](requested []string, loaded []T) []string {
	found := make(map[string]struct{}, len(loaded))
	for _, entity := range loaded {
		found[entity.GetID()] = struct{}{}
	}

	var missing []string
	for _, id := range distinctIDs(requested) {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// getOne loads a single entity, turning absence into a not-found rejection on property
func getOne[T world.Content](
	ctx context.Context,
	worldID, property, id, kind string,
	load func(context.Context, content.GetInput) (T, error),
) (T, error) {
	var zero T
	if id == "" {
		return zero, errors.Reject(errors.ReasonNotFound, worldID, property, kind+" is required", id)
	}

	entity, err := load(ctx, content.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return zero, errors.Reject(errors.ReasonNotFound, worldID, property, kind+" not found", id)
		}
		return zero, errors.Wrapf(err, "failed to load %s %s", kind, id)
	}

	if entity.GetWorldID() != worldID {
		return zero, errors.Reject(errors.ReasonNotFound, worldID, property, kind+" not found", id)
	}

	return entity, nil
}
