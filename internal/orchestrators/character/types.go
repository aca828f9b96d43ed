package character

import (
	"github.com/KirkDiggler/rpg-worlds/internal/engine"
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/resolvers"
)

// BuildRequest is the creation payload a player submits
type BuildRequest struct {
	WorldID  string
	PlayerID string
	Name     string

	LineageID        string
	Physical         world.PhysicalStats
	LanguageIDs      []string
	PersonalityID    string
	NatureID         string
	CustomizationIDs []string
	AspectIDs        []string
	BaseAttributes   resolvers.BaseAttributesSelection
	CasteID          string
	EducationID      string
	TalentIDs        []string

	StartingWealthItemID string
}

// AssembleInput defines the input for assembling a build
type AssembleInput struct {
	Request *BuildRequest
}

// AssembleOutput holds the validated build and the unsaved record built from it
type AssembleOutput struct {
	Build     *world.Build
	Character *world.Character
}

// ValidateCharacterInput defines the input for a dry-run validation
type ValidateCharacterInput struct {
	Request *BuildRequest
}

// ValidateCharacterOutput reports whether the build would be accepted.
// A rejected build is not an error; Rejection and Message describe it.
type ValidateCharacterOutput struct {
	IsValid   bool
	Rejection *errors.Rejection
	Message   string
	Build     *world.Build
}

// CreateCharacterInput defines the input for creating a character
type CreateCharacterInput struct {
	Request *BuildRequest
}

// CreateCharacterOutput holds the persisted character
type CreateCharacterOutput struct {
	Character *world.Character
}

// GetCharacterInput defines the input for loading a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput holds the base record and its derived stat block
type GetCharacterOutput struct {
	Character *world.Character
	Sheet     *world.Sheet
}

// ListCharactersInput filters by player, or by world when PlayerID is empty
type ListCharactersInput struct {
	PlayerID string
	WorldID  string
}

// ListCharactersOutput holds the matching characters
type ListCharactersOutput struct {
	Characters []*world.Character
}

// DeleteCharacterInput defines the input for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput is empty on success
type DeleteCharacterOutput struct{}

// AddBonusInput defines the input for granting a bonus.
// Category and Target are free text, matched case-insensitively.
type AddBonusInput struct {
	CharacterID string
	Category    string
	Target      string
	Value       int32
	IsTemporary bool
	Source      string
}

// AddBonusOutput holds the stored bonus
type AddBonusOutput struct {
	Bonus *world.Bonus
	Count int64
}

// LevelUpInput defines the input for levelling a character up.
// Statistics holds the raw per-statistic deltas recorded with the level.
type LevelUpInput struct {
	CharacterID string
	Attribute   string
	Statistics  map[string]float64
}

// LevelUpOutput holds the updated character and the stored record
type LevelUpOutput struct {
	Character *world.Character
	LevelUp   *world.LevelUp
}

// TrainSkillInput defines the input for spending skill points
type TrainSkillInput struct {
	CharacterID string
	Skill       string
	Rank        int32
}

// TrainSkillOutput holds the stored skill rank
type TrainSkillOutput struct {
	SkillRank *world.SkillRank
	Count     int64
}

// RollAttributeScoresInput defines the input for rolling raw scores
type RollAttributeScoresInput struct {
	Method engine.RollMethod
}

// RollAttributeScoresOutput holds the rolled scores
type RollAttributeScoresOutput struct {
	Scores map[world.Attribute]int32
	Dice   map[world.Attribute][]int
}
