package resolvers

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

// ResolveTalentsInput holds the chosen talents and the caste and education
// whose skills they must not repeat
type ResolveTalentsInput struct {
	WorldID   string
	IDs       []string
	Caste     *world.Caste
	Education *world.Education
}

// ResolveTalentsOutput holds the loaded talents in request order
type ResolveTalentsOutput struct {
	Talents []*world.Talent
}

// ResolveTalents loads the chosen talents. The caste and education must each
// teach a skill and not the same one; every talent must teach a skill that
// neither of them already covers.
func (r *Resolver) ResolveTalents(ctx context.Context, input *ResolveTalentsInput) (*ResolveTalentsOutput, error) {
	if input.Caste == nil || input.Education == nil {
		return nil, errors.InvalidArgument("caste and education are required to resolve talents")
	}
	if input.Caste.Skill == nil {
		return nil, errors.Reject(errors.ReasonInvalidContentShape, input.WorldID, PropertyCasteID,
			"caste has no skill", input.Caste.ID)
	}
	if input.Education.Skill == nil {
		return nil, errors.Reject(errors.ReasonInvalidContentShape, input.WorldID, PropertyEducationID,
			"education has no skill", input.Education.ID)
	}

	casteSkill := *input.Caste.Skill
	educationSkill := *input.Education.Skill
	if casteSkill == educationSkill {
		return nil, errors.Reject(errors.ReasonConflictingSelection, input.WorldID, PropertyEducationID,
			"education teaches the same skill as the caste", input.Education.ID, string(educationSkill))
	}

	if len(input.IDs) == 0 {
		return &ResolveTalentsOutput{Talents: []*world.Talent{}}, nil
	}

	out, err := r.contentRepo.ListTalents(ctx, content.ListInput{IDs: input.IDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load talents")
	}
	loaded := inWorld(input.WorldID, out.Talents)

	for _, talent := range loaded {
		switch {
		case talent.Skill == nil:
			return nil, errors.Reject(errors.ReasonInvalidContentShape, input.WorldID, PropertyTalentIDs,
				"talent has no skill", talent.ID)
		case *talent.Skill == casteSkill:
			return nil, errors.Reject(errors.ReasonConflictingSelection, input.WorldID, PropertyTalentIDs,
				"talent teaches the caste's skill", talent.ID)
		case *talent.Skill == educationSkill:
			return nil, errors.Reject(errors.ReasonConflictingSelection, input.WorldID, PropertyTalentIDs,
				"talent teaches the education's skill", talent.ID)
		}
	}

	if missing := missingIDs(input.IDs, loaded); len(missing) > 0 {
		return nil, errors.Reject(errors.ReasonNotFound, input.WorldID, PropertyTalentIDs,
			"talents not found", missing...)
	}

	return &ResolveTalentsOutput{Talents: loaded}, nil
}
