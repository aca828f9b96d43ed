// Package character stores base character builds. A stored character holds
// only the player's selections; everything derived is recomputed on read.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-worlds/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// Repository persists characters and keeps player and world indexes in step
// with them. ID and WorldID are required on every write.
type Repository interface {
	// Create fails with AlreadyExists when the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get fails with NotFound for an unknown ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites a stored character, moving it between player
	// indexes when PlayerID changed. Fails with NotFound for an unknown ID.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the character and its index entries
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListOutput, error)
	ListByWorldID(ctx context.Context, input ListByWorldIDInput) (*ListOutput, error)
}

type CreateInput struct {
	Character *world.Character
}

type CreateOutput struct {
	Character *world.Character
}

type GetInput struct {
	ID string
}

type GetOutput struct {
	Character *world.Character
}

type UpdateInput struct {
	Character *world.Character
}

type UpdateOutput struct {
	Character *world.Character
}

type DeleteInput struct {
	ID string
}

type DeleteOutput struct{}

type ListByPlayerIDInput struct {
	PlayerID string
}

type ListByWorldIDInput struct {
	WorldID string
}

// ListOutput holds characters read through an index, sorted by ID
type ListOutput struct {
	Characters []*world.Character
}
