package engine

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// CalculateSheetInput is a persisted character with the content and
// progression history its stat block reads
type CalculateSheetInput struct {
	Character *world.Character
	Lineage   *world.Lineage
	// ParentLineage is set only when Lineage is a nation
	ParentLineage *world.Lineage
	Nature        *world.Nature
	// Talents are the talents the character owns
	Talents []*world.Talent

	Bonuses    []*world.Bonus
	LevelUps   []*world.LevelUp
	SkillRanks []*world.SkillRank
}

// CalculateSheetOutput holds the derived stat block
type CalculateSheetOutput struct {
	Sheet *world.Sheet
}

// RollMethod selects how a raw attribute score is rolled
type RollMethod string

// Roll methods
const (
	// RollMethodFourDropLowest rolls 4d6 and keeps the highest three
	RollMethodFourDropLowest RollMethod = "4d6-drop-lowest"
	// RollMethodStraight rolls 3d6
	RollMethodStraight RollMethod = "3d6"
)

// RollAttributeScoresInput defines the input for rolling scores
type RollAttributeScoresInput struct {
	// Method defaults to RollMethodFourDropLowest
	Method RollMethod
}

// RollAttributeScoresOutput holds the rolled scores and the dice behind them
type RollAttributeScoresOutput struct {
	Scores map[world.Attribute]int32
	Dice   map[world.Attribute][]int
}
