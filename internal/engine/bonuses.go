package engine

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// bonusTotals sums bonus values per target.
// Statistic bonuses only count when permanent.
type bonusTotals struct {
	attributes          map[world.Attribute]int32
	temporaryAttributes map[world.Attribute]int32
	skills              map[world.Skill]int32
	speeds              map[world.Speed]int32
	statistics          map[world.Statistic]int32
}

func sumBonuses(bonuses []*world.Bonus) *bonusTotals {
	totals := &bonusTotals{
		attributes:          make(map[world.Attribute]int32),
		temporaryAttributes: make(map[world.Attribute]int32),
		skills:              make(map[world.Skill]int32),
		speeds:              make(map[world.Speed]int32),
		statistics:          make(map[world.Statistic]int32),
	}

	for _, bonus := range bonuses {
		if bonus == nil {
			continue
		}
		target, ok := bonus.ResolveTarget()
		if !ok {
			continue
		}

		switch bonus.Category {
		case world.BonusCategoryAttribute:
			if bonus.IsTemporary {
				totals.temporaryAttributes[world.Attribute(target)] += bonus.Value
			} else {
				totals.attributes[world.Attribute(target)] += bonus.Value
			}
		case world.BonusCategorySkill:
			totals.skills[world.Skill(target)] += bonus.Value
		case world.BonusCategorySpeed:
			totals.speeds[world.Speed(target)] += bonus.Value
		case world.BonusCategoryStatistic:
			if !bonus.IsTemporary {
				totals.statistics[world.Statistic(target)] += bonus.Value
			}
		}
	}

	return totals
}
