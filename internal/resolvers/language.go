package resolvers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// ResolveLanguagesInput holds the extra languages chosen on top of the lineage's own
type ResolveLanguagesInput struct {
	WorldID       string
	IDs           []string
	Lineage       *world.Lineage
	ParentLineage *world.Lineage
}

// ResolveLanguagesOutput holds the loaded languages in request order
type ResolveLanguagesOutput struct {
	Languages []*world.Language
}

// ResolveLanguages loads the extra languages a character picks. Their count
// must match the lineage's extra allotment and none may be a language the
// lineage already grants.
//
// An empty selection resolves to nothing without checking the allotment.
func (r *Resolver) ResolveLanguages(
	ctx context.Context,
	input *ResolveLanguagesInput,
) (*ResolveLanguagesOutput, error) {
	if len(input.IDs) == 0 {
		return &ResolveLanguagesOutput{Languages: []*world.Language{}}, nil
	}
	if input.Lineage == nil {
		return nil, errors.InvalidArgument("lineage is required to resolve languages")
	}

	ids := distinctIDs(input.IDs)
	out, err := r.contentRepo.ListLanguages(ctx, content.ListInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load languages")
	}
	loaded := out.Languages

	var foreign []string
	for _, language := range loaded {
		if language.WorldID != input.WorldID {
			foreign = append(foreign, language.ID)
		}
	}
	if len(foreign) > 0 {
		return nil, errors.Reject(errors.ReasonForeignContent, input.WorldID, PropertyLanguageIDs,
			"languages belong to another world", foreign...)
	}

	if missing := missingIDs(ids, loaded); len(missing) > 0 {
		return nil, errors.Reject(errors.ReasonNotFound, input.WorldID, PropertyLanguageIDs,
			"languages not found", missing...)
	}

	expected := input.Lineage.Languages.Extra
	granted := make(map[string]struct{})
	for _, id := range input.Lineage.Languages.IDs {
		granted[id] = struct{}{}
	}
	if input.ParentLineage != nil {
		expected += input.ParentLineage.Languages.Extra
		for _, id := range input.ParentLineage.Languages.IDs {
			granted[id] = struct{}{}
		}
	}

	if int32(len(loaded)) != expected {
		return nil, errors.Reject(errors.ReasonSelectionMismatch, input.WorldID, PropertyLanguageIDs,
			fmt.Sprintf("expected %d extra languages, got %d", expected, len(loaded)),
			strconv.Itoa(len(loaded)))
	}

	var conflicting []string
	for _, language := range loaded {
		if _, ok := granted[language.ID]; ok {
			conflicting = append(conflicting, language.ID)
		}
	}
	if len(conflicting) > 0 {
		return nil, errors.Reject(errors.ReasonConflictingSelection, input.WorldID, PropertyLanguageIDs,
			"languages are already granted by the lineage", conflicting...)
	}

	return &ResolveLanguagesOutput{Languages: loaded}, nil
}
