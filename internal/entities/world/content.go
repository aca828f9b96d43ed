package world

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Content entity types, also used as storage key segments
const (
	TypeAspect        = "aspect"
	TypeCaste         = "caste"
	TypeCustomization = "customization"
	TypeEducation     = "education"
	TypeItem          = "item"
	TypeLanguage      = "language"
	TypeLineage       = "lineage"
	TypeNature        = "nature"
	TypePersonality   = "personality"
	TypeTalent        = "talent"
	TypeCharacter     = "character"
)

// Content is authored world content the resolvers read
type Content interface {
	core.Entity
	GetWorldID() string
}

// Lineage is a species or, when it has a parent, a nation of that species
type Lineage struct {
	ID              string              `json:"id"`
	WorldID         string              `json:"world_id"`
	Name            string              `json:"name"`
	ParentID        string              `json:"parent_id,omitempty"`
	Attributes      map[Attribute]int32 `json:"attributes,omitempty"`
	Speeds          map[Speed]int32     `json:"speeds,omitempty"`
	ExtraAttributes int32               `json:"extra_attributes"`
	Languages       LineageLanguages    `json:"languages"`
}

// LineageLanguages is the language allotment of a lineage
type LineageLanguages struct {
	IDs   []string `json:"ids,omitempty"`
	Extra int32    `json:"extra"`
	Note  string   `json:"note,omitempty"`
}

// IsSpecies reports whether the lineage has no parent
func (l *Lineage) IsSpecies() bool {
	return l.ParentID == ""
}

// AttributeBonus returns the lineage's bonus for a, zero when unset
func (l *Lineage) AttributeBonus(a Attribute) int32 {
	if l == nil {
		return 0
	}
	return l.Attributes[a]
}

// SpeedValue returns the lineage's speed s, zero when unset
func (l *Lineage) SpeedValue(s Speed) int32 {
	if l == nil {
		return 0
	}
	return l.Speeds[s]
}

// Aspect grants attribute slots consumed by the base attribute selection
type Aspect struct {
	ID         string     `json:"id"`
	WorldID    string     `json:"world_id"`
	Name       string     `json:"name"`
	Mandatory1 *Attribute `json:"mandatory1,omitempty"`
	Mandatory2 *Attribute `json:"mandatory2,omitempty"`
	Optional1  *Attribute `json:"optional1,omitempty"`
	Optional2  *Attribute `json:"optional2,omitempty"`
	Skill1     *Skill     `json:"skill1,omitempty"`
	Skill2     *Skill     `json:"skill2,omitempty"`
}

// Caste is a social standing, optionally tied to a skill
type Caste struct {
	ID      string `json:"id"`
	WorldID string `json:"world_id"`
	Name    string `json:"name"`
	Skill   *Skill `json:"skill,omitempty"`
}

// Education is a character's schooling, optionally tied to a skill
type Education struct {
	ID      string `json:"id"`
	WorldID string `json:"world_id"`
	Name    string `json:"name"`
	Skill   *Skill `json:"skill,omitempty"`
}

// Nature optionally grants +1 to an attribute and a gift
type Nature struct {
	ID        string     `json:"id"`
	WorldID   string     `json:"world_id"`
	Name      string     `json:"name"`
	Attribute *Attribute `json:"attribute,omitempty"`
	GiftID    string     `json:"gift_id,omitempty"`
}

// Personality optionally grants a gift
type Personality struct {
	ID      string `json:"id"`
	WorldID string `json:"world_id"`
	Name    string `json:"name"`
	GiftID  string `json:"gift_id,omitempty"`
}

// CustomizationType is either a gift or a disability
type CustomizationType string

// Customization types
const (
	CustomizationGift       CustomizationType = "Gift"
	CustomizationDisability CustomizationType = "Disability"
)

// Customization is a gift or a disability a character can take
type Customization struct {
	ID      string            `json:"id"`
	WorldID string            `json:"world_id"`
	Name    string            `json:"name"`
	Type    CustomizationType `json:"type"`
}

// Talent is a purchasable ability, optionally tied to a skill
type Talent struct {
	ID      string `json:"id"`
	WorldID string `json:"world_id"`
	Name    string `json:"name"`
	Skill   *Skill `json:"skill,omitempty"`
	Cost    int32  `json:"cost"`
}

// Language is spoken in exactly one world
type Language struct {
	ID      string `json:"id"`
	WorldID string `json:"world_id"`
	Name    string `json:"name"`
}

// ItemCategory groups items
type ItemCategory string

// Item categories
const (
	ItemCategoryMoney   ItemCategory = "Money"
	ItemCategoryWeapon  ItemCategory = "Weapon"
	ItemCategoryArmor   ItemCategory = "Armor"
	ItemCategoryTool    ItemCategory = "Tool"
	ItemCategoryGeneral ItemCategory = "General"
)

// StartingWealthUnitValue is the value an item must have to count as starting wealth
const StartingWealthUnitValue = 1.0

// Item is a piece of equipment or currency
type Item struct {
	ID       string       `json:"id"`
	WorldID  string       `json:"world_id"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	Value    float64      `json:"value"`
}

// GetID returns the lineage ID
func (l *Lineage) GetID() string {
	return l.ID
}

// GetType returns the lineage entity type
func (l *Lineage) GetType() string {
	return TypeLineage
}

// GetWorldID returns the world the lineage belongs to
func (l *Lineage) GetWorldID() string {
	return l.WorldID
}

// GetID returns the aspect ID
func (a *Aspect) GetID() string {
	return a.ID
}

// GetType returns the aspect entity type
func (a *Aspect) GetType() string {
	return TypeAspect
}

// GetWorldID returns the world the aspect belongs to
func (a *Aspect) GetWorldID() string {
	return a.WorldID
}

// GetID returns the caste ID
func (c *Caste) GetID() string {
	return c.ID
}

// GetType returns the caste entity type
func (c *Caste) GetType() string {
	return TypeCaste
}

// GetWorldID returns the world the caste belongs to
func (c *Caste) GetWorldID() string {
	return c.WorldID
}

// GetID returns the education ID
func (e *Education) GetID() string {
	return e.ID
}

// GetType returns the education entity type
func (e *Education) GetType() string {
	return TypeEducation
}

// GetWorldID returns the world the education belongs to
func (e *Education) GetWorldID() string {
	return e.WorldID
}

// GetID returns the nature ID
func (n *Nature) GetID() string {
	return n.ID
}

// GetType returns the nature entity type
func (n *Nature) GetType() string {
	return TypeNature
}

// GetWorldID returns the world the nature belongs to
func (n *Nature) GetWorldID() string {
	return n.WorldID
}

// GetID returns the personality ID
func (p *Personality) GetID() string {
	return p.ID
}

// GetType returns the personality entity type
func (p *Personality) GetType() string {
	return TypePersonality
}

// GetWorldID returns the world the personality belongs to
func (p *Personality) GetWorldID() string {
	return p.WorldID
}

// GetID returns the customization ID
func (c *Customization) GetID() string {
	return c.ID
}

// GetType returns the customization entity type
func (c *Customization) GetType() string {
	return TypeCustomization
}

// GetWorldID returns the world the customization belongs to
func (c *Customization) GetWorldID() string {
	return c.WorldID
}

// GetID returns the talent ID
func (t *Talent) GetID() string {
	return t.ID
}

// GetType returns the talent entity type
func (t *Talent) GetType() string {
	return TypeTalent
}

// GetWorldID returns the world the talent belongs to
func (t *Talent) GetWorldID() string {
	return t.WorldID
}

// GetID returns the language ID
func (l *Language) GetID() string {
	return l.ID
}

// GetType returns the language entity type
func (l *Language) GetType() string {
	return TypeLanguage
}

// GetWorldID returns the world the language belongs to
func (l *Language) GetWorldID() string {
	return l.WorldID
}

// GetID returns the item ID
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the item entity type
func (i *Item) GetType() string {
	return TypeItem
}

// GetWorldID returns the world the item belongs to
func (i *Item) GetWorldID() string {
	return i.WorldID
}

var (
	_ Content = (*Lineage)(nil)
	_ Content = (*Aspect)(nil)
	_ Content = (*Caste)(nil)
	_ Content = (*Education)(nil)
	_ Content = (*Nature)(nil)
	_ Content = (*Personality)(nil)
	_ Content = (*Customization)(nil)
	_ Content = (*Talent)(nil)
	_ Content = (*Language)(nil)
	_ Content = (*Item)(nil)
)
