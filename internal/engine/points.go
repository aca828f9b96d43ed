package engine

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// Talent points granted at creation and per level
const (
	baseTalentPoints     = 8
	talentPointsPerLevel = 4
)

func skillPoints(statistics map[world.Statistic]world.StatisticValue, ranks []*world.SkillRank) world.PointBudget {
	var spent int32
	for _, rank := range ranks {
		if rank != nil {
			spent += rank.Rank
		}
	}
	return budget(statistics[world.StatisticLearning].Value, spent)
}

func talentPoints(level int32, talents []*world.Talent) world.PointBudget {
	var spent int32
	for _, talent := range talents {
		if talent != nil {
			spent += talent.Cost
		}
	}
	return budget(baseTalentPoints+talentPointsPerLevel*level, spent)
}

func budget(available, spent int32) world.PointBudget {
	return world.PointBudget{
		Available: available,
		Spent:     spent,
		Remaining: available - spent,
	}
}
