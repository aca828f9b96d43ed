package world

// AttributeValue is a computed attribute
type AttributeValue struct {
	Score             int32 `json:"score"`
	Modifier          int32 `json:"modifier"`
	TemporaryScore    int32 `json:"temporary_score"`
	TemporaryModifier int32 `json:"temporary_modifier"`
}

// SkillValue is a computed skill
type SkillValue struct {
	Attribute Attribute `json:"attribute"`
	IsTrained bool      `json:"is_trained"`
	Total     int32     `json:"total"`
}

// StatisticValue is a computed statistic.
// Increment is the per-level growth rate shown to players; it does not feed Value.
type StatisticValue struct {
	Base      float64 `json:"base"`
	Increment float64 `json:"increment"`
	Value     int32   `json:"value"`
}

// PointBudget tracks points available against points spent
type PointBudget struct {
	Available int32 `json:"available"`
	Spent     int32 `json:"spent"`
	Remaining int32 `json:"remaining"`
}

// Sheet is the derived stat block of a character
type Sheet struct {
	Attributes   map[Attribute]AttributeValue `json:"attributes"`
	Skills       map[Skill]SkillValue         `json:"skills"`
	Statistics   map[Statistic]StatisticValue `json:"statistics"`
	Speeds       map[Speed]int32              `json:"speeds"`
	SkillPoints  PointBudget                  `json:"skill_points"`
	TalentPoints PointBudget                  `json:"talent_points"`
}
