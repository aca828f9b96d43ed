package world

// Skill is one of the twenty character skills
type Skill string

// Skills, grouped by governing attribute
const (
	SkillAcrobatics Skill = "Acrobatics"
	SkillMelee      Skill = "Melee"
	SkillStealth    Skill = "Stealth"

	SkillCraft       Skill = "Craft"
	SkillOrientation Skill = "Orientation"
	SkillThievery    Skill = "Thievery"

	SkillInvestigation Skill = "Investigation"
	SkillKnowledge     Skill = "Knowledge"
	SkillLinguistics   Skill = "Linguistics"

	SkillDeception   Skill = "Deception"
	SkillDiplomacy   Skill = "Diplomacy"
	SkillPerformance Skill = "Performance"

	SkillInsight    Skill = "Insight"
	SkillMedicine   Skill = "Medicine"
	SkillPerception Skill = "Perception"
	SkillSurvival   Skill = "Survival"

	SkillDiscipline Skill = "Discipline"
	SkillOccultism  Skill = "Occultism"

	SkillAthletics  Skill = "Athletics"
	SkillResistance Skill = "Resistance"
)

// skillAttributes is the single place a skill is tied to its governing attribute.
// Order here is the display order of AllSkills.
var skillAttributes = []struct {
	skill     Skill
	attribute Attribute
}{
	{SkillAcrobatics, AttributeAgility},
	{SkillMelee, AttributeAgility},
	{SkillStealth, AttributeAgility},
	{SkillCraft, AttributeCoordination},
	{SkillOrientation, AttributeCoordination},
	{SkillThievery, AttributeCoordination},
	{SkillInvestigation, AttributeIntellect},
	{SkillKnowledge, AttributeIntellect},
	{SkillLinguistics, AttributeIntellect},
	{SkillDeception, AttributePresence},
	{SkillDiplomacy, AttributePresence},
	{SkillPerformance, AttributePresence},
	{SkillInsight, AttributeSensitivity},
	{SkillMedicine, AttributeSensitivity},
	{SkillPerception, AttributeSensitivity},
	{SkillSurvival, AttributeSensitivity},
	{SkillDiscipline, AttributeSpirit},
	{SkillOccultism, AttributeSpirit},
	{SkillAthletics, AttributeVigor},
	{SkillResistance, AttributeVigor},
}

var (
	allSkills      = skillOrder()
	skillsByName   = indexNames(allSkills)
	governingAttrs = governingTable()
)

func skillOrder() []Skill {
	out := make([]Skill, len(skillAttributes))
	for i, sa := range skillAttributes {
		out[i] = sa.skill
	}
	return out
}

func governingTable() map[Skill]Attribute {
	out := make(map[Skill]Attribute, len(skillAttributes))
	for _, sa := range skillAttributes {
		out[sa.skill] = sa.attribute
	}
	return out
}

// AllSkills returns every skill in display order
func AllSkills() []Skill {
	return append([]Skill(nil), allSkills...)
}

// ParseSkill matches s against the skill names, ignoring case
func ParseSkill(s string) (Skill, bool) {
	sk, ok := skillsByName[normalizeName(s)]
	return sk, ok
}

// GoverningAttribute returns the attribute whose temporary modifier is the base of the skill
func (s Skill) GoverningAttribute() (Attribute, bool) {
	a, ok := governingAttrs[s]
	return a, ok
}

// String returns the skill name
func (s Skill) String() string {
	return string(s)
}
