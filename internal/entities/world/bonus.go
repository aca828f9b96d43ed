package world

import (
	"github.com/agnivade/levenshtein"
)

// BonusCategory names the kind of score a bonus targets
type BonusCategory string

// Bonus categories
const (
	BonusCategoryAttribute BonusCategory = "Attribute"
	BonusCategorySkill     BonusCategory = "Skill"
	BonusCategorySpeed     BonusCategory = "Speed"
	BonusCategoryStatistic BonusCategory = "Statistic"
)

var bonusCategoriesByName = indexNames([]BonusCategory{
	BonusCategoryAttribute,
	BonusCategorySkill,
	BonusCategorySpeed,
	BonusCategoryStatistic,
})

// ParseBonusCategory matches s against the category names, ignoring case
func ParseBonusCategory(s string) (BonusCategory, bool) {
	c, ok := bonusCategoriesByName[normalizeName(s)]
	return c, ok
}

// Bonus is a modifier applied to a character after creation.
// Target is stored as text and resolved against the category's names when read.
type Bonus struct {
	ID          string        `json:"id"`
	Category    BonusCategory `json:"category"`
	Target      string        `json:"target"`
	Value       int32         `json:"value"`
	IsTemporary bool          `json:"is_temporary"`
	Source      string        `json:"source,omitempty"`
}

// bonusTargets maps each category to the canonical names its target may take
var bonusTargets = map[BonusCategory]map[string]string{
	BonusCategoryAttribute: targetTable(allAttributes),
	BonusCategorySkill:     targetTable(allSkills),
	BonusCategorySpeed:     targetTable(allSpeeds),
	BonusCategoryStatistic: targetTable(allStatistics),
}

func targetTable[T ~string](values []T) map[string]string {
	table := make(map[string]string, len(values))
	for _, name := range namesOf(values) {
		table[normalizeName(name)] = name
	}
	return table
}

// ResolveTarget returns the canonical target name for the bonus,
// or false when the target does not name anything in its category.
func (b Bonus) ResolveTarget() (string, bool) {
	table, ok := bonusTargets[b.Category]
	if !ok {
		return "", false
	}
	name, ok := table[normalizeName(b.Target)]
	return name, ok
}

// SuggestTarget returns the valid target of the category closest to text.
// Returns "" when the category is unknown.
func SuggestTarget(category BonusCategory, text string) string {
	table, ok := bonusTargets[category]
	if !ok {
		return ""
	}

	needle := normalizeName(text)
	best := ""
	bestDistance := -1
	for key, name := range table {
		d := levenshtein.ComputeDistance(needle, key)
		if bestDistance < 0 || d < bestDistance || (d == bestDistance && name < best) {
			best = name
			bestDistance = d
		}
	}
	return best
}
