package engine

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
)

const dieSize = 6

// RollAttributeScores rolls every attribute in a fixed order so a seeded
// roller always yields the same scores
func (e *engine) RollAttributeScores(
	ctx context.Context,
	input *RollAttributeScoresInput,
) (*RollAttributeScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	method := input.Method
	if method == "" {
		method = RollMethodFourDropLowest
	}

	var count int
	switch method {
	case RollMethodFourDropLowest:
		count = 4
	case RollMethodStraight:
		count = 3
	default:
		return nil, errors.InvalidArgumentf("unknown roll method %q", method)
	}

	out := &RollAttributeScoresOutput{
		Scores: make(map[world.Attribute]int32, len(world.AllAttributes())),
		Dice:   make(map[world.Attribute][]int, len(world.AllAttributes())),
	}

	for _, a := range world.AllAttributes() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Canceled(err.Error())
		}

		rolls, err := e.roller.RollN(count, dieSize)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", a)
		}
		if len(rolls) != count {
			return nil, errors.Internalf("roller returned %d dice for %s, want %d", len(rolls), a, count)
		}

		kept := slices.Clone(rolls)
		if method == RollMethodFourDropLowest {
			slices.Sort(kept)
			kept = kept[1:]
		}

		var score int32
		for _, r := range kept {
			score += int32(r)
		}

		out.Scores[a] = score
		out.Dice[a] = rolls
	}

	return out, nil
}
