package engine

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

func calculateSpeeds(lineage, parent *world.Lineage, totals *bonusTotals) map[world.Speed]int32 {
	out := make(map[world.Speed]int32, len(world.AllSpeeds()))
	for _, speed := range world.AllSpeeds() {
		out[speed] = max(lineage.SpeedValue(speed), parent.SpeedValue(speed)) + totals.speeds[speed]
	}
	return out
}
