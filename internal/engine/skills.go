package engine

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

func calculateSkills(
	input *CalculateSheetInput,
	attributes map[world.Attribute]world.AttributeValue,
	totals *bonusTotals,
) map[world.Skill]world.SkillValue {
	trained := make(map[world.Skill]bool)
	for _, talent := range input.Talents {
		if talent != nil && talent.Skill != nil {
			trained[*talent.Skill] = true
		}
	}

	out := make(map[world.Skill]world.SkillValue, len(world.AllSkills()))
	for _, skill := range world.AllSkills() {
		attribute, _ := skill.GoverningAttribute()
		total := attributes[attribute].TemporaryModifier

		for _, rank := range input.SkillRanks {
			if rank == nil || rank.Skill != skill {
				continue
			}
			if trained[skill] {
				total += rank.Rank
			} else {
				// untrained ranks count half, truncated toward zero
				total += rank.Rank / 2
			}
		}

		total += totals.skills[skill]

		out[skill] = world.SkillValue{
			Attribute: attribute,
			IsTrained: trained[skill],
			Total:     total,
		}
	}

	return out
}
