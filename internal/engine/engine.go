package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
)

type engine struct {
	roller dice.Roller
}

// Config holds the dependencies of the engine
type Config struct {
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// New creates an Engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &engine{roller: roller}, nil
}

// Modifier converts a score into its modifier, rounding down for odd and negative scores
func Modifier(score int32) int32 {
	return floorDiv(score, 2) - 5
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CalculateSheet never fails on the character's data: bonuses whose target
// does not parse add nothing. Later steps read earlier results, so the
// order below is fixed.
func (e *engine) CalculateSheet(_ context.Context, input *CalculateSheetInput) (*CalculateSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if input.Character == nil {
		vb.RequiredField("Character")
	}
	if input.Lineage == nil {
		vb.RequiredField("Lineage")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	totals := sumBonuses(input.Bonuses)

	sheet := &world.Sheet{}
	sheet.Attributes = calculateAttributes(input, totals)
	sheet.Skills = calculateSkills(input, sheet.Attributes, totals)
	sheet.Statistics = calculateStatistics(input.LevelUps, sheet.Attributes, totals)
	sheet.Speeds = calculateSpeeds(input.Lineage, input.ParentLineage, totals)
	sheet.SkillPoints = skillPoints(sheet.Statistics, input.SkillRanks)
	sheet.TalentPoints = talentPoints(input.Character.Level, input.Talents)

	return &CalculateSheetOutput{Sheet: sheet}, nil
}
