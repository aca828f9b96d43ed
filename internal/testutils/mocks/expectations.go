// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-worlds/internal/repositories/character/mock"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
	contentmock "github.com/KirkDiggler/rpg-worlds/internal/repositories/content/mock"
	"github.com/KirkDiggler/rpg-worlds/internal/testutils"
)

// ExpectWorldContent makes every content lookup answer from w, any number of
// times. Lookups behave like the Redis repository: Get of an unknown ID is
// errors.NotFound, List skips unknown IDs.
func ExpectWorldContent(mockRepo *contentmock.MockRepository, w *testutils.World) {
	mockRepo.EXPECT().
		GetLineage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.GetInput) (*content.GetLineageOutput, error) {
			lineage, err := find[*world.Lineage](w, world.TypeLineage, input.ID)
			if err != nil {
				return nil, err
			}
			return &content.GetLineageOutput{Lineage: lineage, ChildIDs: w.ChildIDs(input.ID)}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		GetCaste(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.GetInput) (*content.GetCasteOutput, error) {
			caste, err := find[*world.Caste](w, world.TypeCaste, input.ID)
			if err != nil {
				return nil, err
			}
			return &content.GetCasteOutput{Caste: caste}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		GetEducation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.GetInput) (*content.GetEducationOutput, error) {
			education, err := find[*world.Education](w, world.TypeEducation, input.ID)
			if err != nil {
				return nil, err
			}
			return &content.GetEducationOutput{Education: education}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		GetNature(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.GetInput) (*content.GetNatureOutput, error) {
			nature, err := find[*world.Nature](w, world.TypeNature, input.ID)
			if err != nil {
				return nil, err
			}
			return &content.GetNatureOutput{Nature: nature}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		GetPersonality(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.GetInput) (*content.GetPersonalityOutput, error) {
			personality, err := find[*world.Personality](w, world.TypePersonality, input.ID)
			if err != nil {
				return nil, err
			}
			return &content.GetPersonalityOutput{Personality: personality}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		GetItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.GetInput) (*content.GetItemOutput, error) {
			item, err := find[*world.Item](w, world.TypeItem, input.ID)
			if err != nil {
				return nil, err
			}
			return &content.GetItemOutput{Item: item}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		ListAspects(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.ListInput) (*content.ListAspectsOutput, error) {
			return &content.ListAspectsOutput{Aspects: list[*world.Aspect](w, world.TypeAspect, input.IDs)}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		ListCustomizations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.ListInput) (*content.ListCustomizationsOutput, error) {
			return &content.ListCustomizationsOutput{
				Customizations: list[*world.Customization](w, world.TypeCustomization, input.IDs),
			}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		ListLanguages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.ListInput) (*content.ListLanguagesOutput, error) {
			return &content.ListLanguagesOutput{
				Languages: list[*world.Language](w, world.TypeLanguage, input.IDs),
			}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		ListTalents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input content.ListInput) (*content.ListTalentsOutput, error) {
			return &content.ListTalentsOutput{Talents: list[*world.Talent](w, world.TypeTalent, input.IDs)}, nil
		}).
		AnyTimes()
}

func find[T world.Content](w *testutils.World, kind, id string) (T, error) {
	var zero T
	entity, ok := w.Find(kind, id)
	if !ok {
		return zero, errors.NotFoundf("%s with ID %s not found", kind, id)
	}
	return entity.(T), nil
}

func list[T world.Content](w *testutils.World, kind string, ids []string) []T {
	seen := make(map[string]bool, len(ids))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if entity, err := find[T](w, kind, id); err == nil {
			out = append(out, entity)
		}
	}
	return out
}

// ExpectCharacterGet sets up a mock expectation for loading a character
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	id string, c *world.Character, err error,
) *gomock.Call {
	var out *character.GetOutput
	if err == nil {
		out = &character.GetOutput{Character: c}
	}
	return mockRepo.EXPECT().
		Get(ctx, character.GetInput{ID: id}).
		Return(out, err)
}

// ExpectCharacterCreate sets up a mock expectation for storing a new
// character, echoing it back the way the repository does
func ExpectCharacterCreate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.CreateInput) (*character.CreateOutput, error) {
			return &character.CreateOutput{Character: input.Character}, nil
		})
}

// ExpectCharacterUpdate sets up a mock expectation for replacing a character
func ExpectCharacterUpdate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
			return &character.UpdateOutput{Character: input.Character}, nil
		})
}
