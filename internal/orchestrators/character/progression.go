package character

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/engine"
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/character"
	progressionrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/progression"
)

// MetaKeySuggestion holds the closest valid bonus target on a rejected target
const MetaKeySuggestion = "suggestion"

// AddBonus grants a bonus to a character. The target must name an attribute,
// skill, speed or statistic of the bonus category and is stored under its
// canonical name.
func (o *Orchestrator) AddBonus(ctx context.Context, input *AddBonusInput) (*AddBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("target", input.Target, vb)
	category, ok := world.ParseBonusCategory(input.Category)
	if !ok {
		vb.InvalidField("category", "must be one of Attribute, Skill, Speed or Statistic")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	bonus := &world.Bonus{
		Category:    category,
		Target:      input.Target,
		Value:       input.Value,
		IsTemporary: input.IsTemporary,
		Source:      input.Source,
	}

	target, ok := bonus.ResolveTarget()
	if !ok {
		suggestion := world.SuggestTarget(category, input.Target)
		return nil, errors.InvalidArgumentf("unknown %s target %q, did you mean %q?",
			category, input.Target, suggestion).
			WithMeta(MetaKeySuggestion, suggestion)
	}
	bonus.Target = target

	if err := o.ensureCharacter(ctx, input.CharacterID); err != nil {
		return nil, err
	}

	bonus.ID = o.idGenerator.Generate()
	out, err := o.progressionRepo.AppendBonus(ctx, progressionrepo.AppendBonusInput{
		CharacterID: input.CharacterID,
		Bonus:       bonus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add bonus")
	}

	o.logger.Info("bonus added",
		zap.String("character_id", input.CharacterID),
		zap.String("category", string(bonus.Category)),
		zap.String("target", bonus.Target),
		zap.Int32("value", bonus.Value),
		zap.Bool("temporary", bonus.IsTemporary))

	return &AddBonusOutput{Bonus: bonus, Count: out.Count}, nil
}

// LevelUp records a new level: one point to the chosen attribute plus the
// given statistic deltas, stored as entered
func (o *Orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	attribute, ok := world.ParseAttribute(input.Attribute)
	if !ok {
		vb.InvalidField("attribute", "unknown attribute")
	}
	deltas := make(map[world.Statistic]float64, len(input.Statistics))
	for _, name := range sortedKeys(input.Statistics) {
		statistic, ok := world.ParseStatistic(name)
		if !ok {
			vb.Fieldf("statistics", "unknown statistic %q", name)
			continue
		}
		deltas[statistic] += input.Statistics[name]
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := got.Character

	now := o.clock.Now().Unix()
	levelUp := &world.LevelUp{
		Level:      char.Level + 1,
		Attribute:  attribute,
		Statistics: deltas,
		CreatedAt:  now,
	}

	if _, err := o.progressionRepo.AppendLevelUp(ctx, progressionrepo.AppendLevelUpInput{
		CharacterID: char.ID,
		LevelUp:     levelUp,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to record level up")
	}

	char.Level = levelUp.Level
	char.UpdatedAt = now
	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	o.logger.Info("character levelled up",
		zap.String("character_id", char.ID),
		zap.Int32("level", levelUp.Level),
		zap.String("attribute", string(attribute)))

	return &LevelUpOutput{Character: updated.Character, LevelUp: levelUp}, nil
}

// TrainSkill spends skill points on a skill
func (o *Orchestrator) TrainSkill(ctx context.Context, input *TrainSkillInput) (*TrainSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	skill, ok := world.ParseSkill(input.Skill)
	if !ok {
		vb.InvalidField("skill", "unknown skill")
	}
	if input.Rank <= 0 {
		vb.InvalidField("rank", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.ensureCharacter(ctx, input.CharacterID); err != nil {
		return nil, err
	}

	rank := &world.SkillRank{
		Skill:     skill,
		Rank:      input.Rank,
		CreatedAt: o.clock.Now().Unix(),
	}
	out, err := o.progressionRepo.AppendSkillRank(ctx, progressionrepo.AppendSkillRankInput{
		CharacterID: input.CharacterID,
		SkillRank:   rank,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to train skill")
	}

	o.logger.Info("skill trained",
		zap.String("character_id", input.CharacterID),
		zap.String("skill", string(skill)),
		zap.Int32("rank", rank.Rank))

	return &TrainSkillOutput{SkillRank: rank, Count: out.Count}, nil
}

// RollAttributeScores rolls a raw score for every attribute
func (o *Orchestrator) RollAttributeScores(
	ctx context.Context,
	input *RollAttributeScoresInput,
) (*RollAttributeScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.engine.RollAttributeScores(ctx, &engine.RollAttributeScoresInput{Method: input.Method})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attribute scores")
	}

	return &RollAttributeScoresOutput{Scores: out.Scores, Dice: out.Dice}, nil
}

func (o *Orchestrator) ensureCharacter(ctx context.Context, id string) error {
	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id}); err != nil {
		return errors.Wrap(err, "failed to get character")
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
