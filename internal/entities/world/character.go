package world

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// BaseAttributes is the validated attribute selection made at creation
type BaseAttributes struct {
	// Scores are the raw scores submitted with the selection
	Scores map[Attribute]int32 `json:"scores,omitempty"`
	Best   Attribute           `json:"best"`
	Worst  Attribute           `json:"worst"`
	// Mandatory holds the mandatory slots left after Best and Worst were taken
	Mandatory []Attribute `json:"mandatory,omitempty"`
	Optional  []Attribute `json:"optional,omitempty"`
	// Extra is de-duplicated
	Extra []Attribute `json:"extra,omitempty"`
}

// PhysicalStats describes a character's body
type PhysicalStats struct {
	Age         int32  `json:"age"`
	Height      int32  `json:"height"`
	Weight      int32  `json:"weight"`
	Description string `json:"description,omitempty"`
}

// StartingWealth is the money item a character starts with
type StartingWealth struct {
	ItemID string `json:"item_id"`
}

// Character is the persisted base build of a character
type Character struct {
	ID               string         `json:"id"`
	WorldID          string         `json:"world_id"`
	PlayerID         string         `json:"player_id"`
	Name             string         `json:"name"`
	Level            int32          `json:"level"`
	LineageID        string         `json:"lineage_id"`
	NatureID         string         `json:"nature_id,omitempty"`
	PersonalityID    string         `json:"personality_id"`
	CasteID          string         `json:"caste_id"`
	EducationID      string         `json:"education_id"`
	Physical         PhysicalStats  `json:"physical"`
	BaseAttributes   BaseAttributes `json:"base_attributes"`
	LanguageIDs      []string       `json:"language_ids,omitempty"`
	CustomizationIDs []string       `json:"customization_ids,omitempty"`
	AspectIDs        []string       `json:"aspect_ids,omitempty"`
	TalentIDs        []string       `json:"talent_ids,omitempty"`
	StartingWealth   StartingWealth `json:"starting_wealth"`
	CreatedAt        int64          `json:"created_at"`
	UpdatedAt        int64          `json:"updated_at"`
}

// GetID returns the character ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the character entity type
func (c *Character) GetType() string {
	return TypeCharacter
}

var _ core.Entity = (*Character)(nil)

// LevelUp records one gained level
type LevelUp struct {
	Level     int32     `json:"level"`
	Attribute Attribute `json:"attribute"`
	// Statistics are applied as stored
	Statistics map[Statistic]float64 `json:"statistics,omitempty"`
	CreatedAt  int64                 `json:"created_at"`
}

// SkillRank is a number of points invested in a skill
type SkillRank struct {
	Skill     Skill `json:"skill"`
	Rank      int32 `json:"rank"`
	CreatedAt int64 `json:"created_at"`
}

// Build is the resolved content behind a character's creation selections
type Build struct {
	Lineage        *Lineage
	ParentLineage  *Lineage
	Nature         *Nature
	Personality    *Personality
	Caste          *Caste
	Education      *Education
	Aspects        []*Aspect
	Customizations []*Customization
	Languages      []*Language
	Talents        []*Talent
	StartingWealth *Item
	BaseAttributes *BaseAttributes
}
