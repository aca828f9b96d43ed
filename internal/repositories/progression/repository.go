// Package progression stores what happens to a character after creation:
// bonuses, level ups and invested skill ranks.
package progression

//go:generate mockgen -destination=mock/mock_repository.go -package=progressionmock github.com/KirkDiggler/rpg-worlds/internal/repositories/progression Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// Repository keeps append-only progression records per character.
// Records come back in the order they were appended.
type Repository interface {
	AppendBonus(ctx context.Context, input AppendBonusInput) (*AppendBonusOutput, error)
	AppendLevelUp(ctx context.Context, input AppendLevelUpInput) (*AppendLevelUpOutput, error)
	AppendSkillRank(ctx context.Context, input AppendSkillRankInput) (*AppendSkillRankOutput, error)

	// Get returns every record for a character; a character without
	// records yields empty slices, not errors.NotFound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes every record for a character
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// AppendBonusInput defines the input for recording a bonus
type AppendBonusInput struct {
	CharacterID string
	Bonus       *world.Bonus
}

// AppendBonusOutput defines the output for recording a bonus
type AppendBonusOutput struct {
	Count int64
}

// AppendLevelUpInput defines the input for recording a level up
type AppendLevelUpInput struct {
	CharacterID string
	LevelUp     *world.LevelUp
}

// AppendLevelUpOutput defines the output for recording a level up
type AppendLevelUpOutput struct {
	Count int64
}

// AppendSkillRankInput defines the input for recording a skill rank
type AppendSkillRankInput struct {
	CharacterID string
	SkillRank   *world.SkillRank
}

// AppendSkillRankOutput defines the output for recording a skill rank
type AppendSkillRankOutput struct {
	Count int64
}

// GetInput defines the input for loading progression
type GetInput struct {
	CharacterID string
}

// GetOutput holds a character's progression
type GetOutput struct {
	Bonuses    []*world.Bonus
	LevelUps   []*world.LevelUp
	SkillRanks []*world.SkillRank
}

// DeleteInput defines the input for removing progression
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for removing progression
type DeleteOutput struct{}
