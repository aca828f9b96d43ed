package engine

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// Points each base attribute selection is worth
const (
	bestPoints      = 3
	worstPoints     = 1
	mandatoryPoints = 2
	optionalPoints  = 1
	extraPoints     = 1
	naturePoints    = 1
	levelUpPoints   = 1
)

func calculateAttributes(input *CalculateSheetInput, totals *bonusTotals) map[world.Attribute]world.AttributeValue {
	base := input.Character.BaseAttributes

	extra := make(map[world.Attribute]bool, len(base.Extra))
	for _, a := range base.Extra {
		extra[a] = true
	}

	levelUps := make(map[world.Attribute]int32)
	for _, levelUp := range input.LevelUps {
		if levelUp != nil {
			levelUps[levelUp.Attribute]++
		}
	}

	out := make(map[world.Attribute]world.AttributeValue, len(world.AllAttributes()))
	for _, a := range world.AllAttributes() {
		score := max(input.Lineage.AttributeBonus(a), input.ParentLineage.AttributeBonus(a))

		if extra[a] {
			score += extraPoints
		}
		if input.Nature != nil && input.Nature.Attribute != nil && *input.Nature.Attribute == a {
			score += naturePoints
		}
		if base.Best == a {
			score += bestPoints
		}
		if base.Worst == a {
			score += worstPoints
		}
		score += mandatoryPoints * count(base.Mandatory, a)
		score += optionalPoints * count(base.Optional, a)
		score += totals.attributes[a]
		score += levelUpPoints * levelUps[a]

		temporary := score + totals.temporaryAttributes[a]

		out[a] = world.AttributeValue{
			Score:             score,
			Modifier:          Modifier(score),
			TemporaryScore:    temporary,
			TemporaryModifier: Modifier(temporary),
		}
	}

	return out
}

func count(attrs []world.Attribute, a world.Attribute) int32 {
	var n int32
	for _, entry := range attrs {
		if entry == a {
			n++
		}
	}
	return n
}
