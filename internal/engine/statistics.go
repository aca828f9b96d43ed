package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

type attributeValues map[world.Attribute]world.AttributeValue

func (v attributeValues) modifier(a world.Attribute) float64 {
	return float64(v[a].Modifier)
}

func (v attributeValues) score(a world.Attribute) float64 {
	return float64(v[a].Score)
}

// statisticFormula derives a statistic from attributes. Increment is the
// growth per level shown to players and does not feed the value.
type statisticFormula struct {
	base      func(attributeValues) float64
	increment func(attributeValues) float64
}

var statisticFormulas = map[world.Statistic]statisticFormula{
	world.StatisticConstitution: {
		base: func(v attributeValues) float64 {
			return 5 * (v.modifier(world.AttributeVigor) + 5)
		},
		increment: func(v attributeValues) float64 {
			return v.modifier(world.AttributeVigor) + 5
		},
	},
	world.StatisticInitiative: {
		base: func(v attributeValues) float64 {
			return v.modifier(world.AttributeSensitivity)
		},
		increment: func(v attributeValues) float64 {
			return v.score(world.AttributeSensitivity) / 40
		},
	},
	world.StatisticLearning: {
		base: func(v attributeValues) float64 {
			return math.Max(2*v.modifier(world.AttributeIntellect)+5, 5)
		},
		increment: func(v attributeValues) float64 {
			return math.Max(v.modifier(world.AttributeIntellect)+2, 1)
		},
	},
	world.StatisticPower: {
		base: func(v attributeValues) float64 {
			return v.modifier(world.AttributeSpirit)
		},
		increment: func(v attributeValues) float64 {
			return v.score(world.AttributeSpirit) / 40
		},
	},
	world.StatisticPrecision: {
		base: func(v attributeValues) float64 {
			return v.modifier(world.AttributeCoordination)
		},
		increment: func(v attributeValues) float64 {
			return v.score(world.AttributeCoordination) / 40
		},
	},
	world.StatisticReputation: {
		base: func(v attributeValues) float64 {
			return v.modifier(world.AttributePresence)
		},
		increment: func(v attributeValues) float64 {
			return v.score(world.AttributePresence) / 20
		},
	},
	world.StatisticStrength: {
		base: func(v attributeValues) float64 {
			return v.modifier(world.AttributeAgility)
		},
		increment: func(v attributeValues) float64 {
			return v.score(world.AttributeAgility) / 40
		},
	},
}

func calculateStatistics(
	levelUps []*world.LevelUp,
	attributes map[world.Attribute]world.AttributeValue,
	totals *bonusTotals,
) map[world.Statistic]world.StatisticValue {
	values := attributeValues(attributes)

	out := make(map[world.Statistic]world.StatisticValue, len(statisticFormulas))
	for _, statistic := range world.AllStatistics() {
		formula := statisticFormulas[statistic]
		base := formula.base(values)

		value := base
		for _, levelUp := range levelUps {
			if levelUp != nil {
				value += levelUp.Statistics[statistic]
			}
		}
		value += float64(totals.statistics[statistic])

		out[statistic] = world.StatisticValue{
			Base:      base,
			Increment: formula.increment(values),
			Value:     int32(math.Floor(value)),
		}
	}

	return out
}
