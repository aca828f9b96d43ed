// Package content provides read access to authored world content
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/KirkDiggler/rpg-worlds/internal/repositories/content Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// Repository loads content entities by ID.
// Get methods return errors.NotFound when the ID does not resolve.
// List methods skip IDs that do not resolve; callers compare the result
// against the requested IDs to find the missing ones.
type Repository interface {
	// Put stores a content entity, replacing any previous version
	// Returns errors.InvalidArgument for entities without ID or world
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// GetLineage retrieves a lineage and the IDs of its nations
	GetLineage(ctx context.Context, input GetInput) (*GetLineageOutput, error)
	GetCaste(ctx context.Context, input GetInput) (*GetCasteOutput, error)
	GetEducation(ctx context.Context, input GetInput) (*GetEducationOutput, error)
	GetNature(ctx context.Context, input GetInput) (*GetNatureOutput, error)
	GetPersonality(ctx context.Context, input GetInput) (*GetPersonalityOutput, error)
	GetItem(ctx context.Context, input GetInput) (*GetItemOutput, error)

	ListAspects(ctx context.Context, input ListInput) (*ListAspectsOutput, error)
	ListCustomizations(ctx context.Context, input ListInput) (*ListCustomizationsOutput, error)
	ListLanguages(ctx context.Context, input ListInput) (*ListLanguagesOutput, error)
	ListTalents(ctx context.Context, input ListInput) (*ListTalentsOutput, error)
}

// PutInput defines the input for storing content
type PutInput struct {
	Entity world.Content
}

// PutOutput defines the output for storing content
type PutOutput struct{}

// GetInput defines the input for loading one entity
type GetInput struct {
	ID string
}

// ListInput defines the input for loading several entities.
// Duplicate IDs are loaded once.
type ListInput struct {
	IDs []string
}

// GetLineageOutput defines the output for loading a lineage
type GetLineageOutput struct {
	Lineage  *world.Lineage
	ChildIDs []string
}

// GetCasteOutput defines the output for loading a caste
type GetCasteOutput struct {
	Caste *world.Caste
}

// GetEducationOutput defines the output for loading an education
type GetEducationOutput struct {
	Education *world.Education
}

// GetNatureOutput defines the output for loading a nature
type GetNatureOutput struct {
	Nature *world.Nature
}

// GetPersonalityOutput defines the output for loading a personality
type GetPersonalityOutput struct {
	Personality *world.Personality
}

// GetItemOutput defines the output for loading an item
type GetItemOutput struct {
	Item *world.Item
}

// ListAspectsOutput defines the output for loading aspects
type ListAspectsOutput struct {
	Aspects []*world.Aspect
}

// ListCustomizationsOutput defines the output for loading customizations
type ListCustomizationsOutput struct {
	Customizations []*world.Customization
}

// ListLanguagesOutput defines the output for loading languages
type ListLanguagesOutput struct {
	Languages []*world.Language
}

// ListTalentsOutput defines the output for loading talents
type ListTalentsOutput struct {
	Talents []*world.Talent
}
