// Package engine derives a character's stat block from its base build and
// progression, and rolls raw attribute scores
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-worlds/internal/engine Engine

import (
	"context"
)

// Engine provides game mechanics and rules calculations
type Engine interface {
	// CalculateSheet computes the derived stat block. The result depends only
	// on the input, so it is recomputed on every read rather than stored.
	CalculateSheet(ctx context.Context, input *CalculateSheetInput) (*CalculateSheetOutput, error)

	// RollAttributeScores rolls one raw score per attribute
	RollAttributeScores(ctx context.Context, input *RollAttributeScoresInput) (*RollAttributeScoresOutput, error)
}
