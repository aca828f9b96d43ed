// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *world.Character
}

// NewCharacterBuilder creates a level 1 character with an empty build
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &world.Character{
			ID:        "char-test-123",
			WorldID:   "world_ashfall",
			PlayerID:  "player-test-123",
			Name:      "Test Character",
			Level:     1,
			CreatedAt: 1704110400,
			UpdatedAt: 1704110400,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int32) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithLineage sets the lineage ID
func (b *CharacterBuilder) WithLineage(lineageID string) *CharacterBuilder {
	b.character.LineageID = lineageID
	return b
}

// WithNature sets the nature ID
func (b *CharacterBuilder) WithNature(natureID string) *CharacterBuilder {
	b.character.NatureID = natureID
	return b
}

// WithBackground sets the personality, caste and education
func (b *CharacterBuilder) WithBackground(personalityID, casteID, educationID string) *CharacterBuilder {
	b.character.PersonalityID = personalityID
	b.character.CasteID = casteID
	b.character.EducationID = educationID
	return b
}

// WithBaseAttributes sets the validated attribute selection
func (b *CharacterBuilder) WithBaseAttributes(attrs world.BaseAttributes) *CharacterBuilder {
	b.character.BaseAttributes = attrs
	return b
}

// WithTalents sets the talent IDs
func (b *CharacterBuilder) WithTalents(ids ...string) *CharacterBuilder {
	b.character.TalentIDs = ids
	return b
}

// WithAspects sets the aspect IDs
func (b *CharacterBuilder) WithAspects(ids ...string) *CharacterBuilder {
	b.character.AspectIDs = ids
	return b
}

// WithLanguages sets the extra language IDs
func (b *CharacterBuilder) WithLanguages(ids ...string) *CharacterBuilder {
	b.character.LanguageIDs = ids
	return b
}

// WithCustomizations sets the customization IDs
func (b *CharacterBuilder) WithCustomizations(ids ...string) *CharacterBuilder {
	b.character.CustomizationIDs = ids
	return b
}

// WithStartingWealth sets the starting wealth item
func (b *CharacterBuilder) WithStartingWealth(itemID string) *CharacterBuilder {
	b.character.StartingWealth = world.StartingWealth{ItemID: itemID}
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *world.Character {
	return b.character
}
