// Package character turns build requests into stored characters and serves
// their derived stat blocks.
package character

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/engine"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-worlds/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/character"
	contentrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
	progressionrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/progression"
	"github.com/KirkDiggler/rpg-worlds/internal/resolvers"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	ContentRepo     contentrepo.Repository
	CharacterRepo   characterrepo.Repository
	ProgressionRepo progressionrepo.Repository
	Engine          engine.Engine
	IDGenerator     idgen.Generator

	// Clock defaults to the system clock
	Clock clock.Clock
	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.ProgressionRepo == nil {
		vb.RequiredField("ProgressionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator coordinates resolvers, repositories and the engine
type Orchestrator struct {
	contentRepo     contentrepo.Repository
	characterRepo   characterrepo.Repository
	progressionRepo progressionrepo.Repository
	resolver        *resolvers.Resolver
	engine          engine.Engine
	idGenerator     idgen.Generator
	clock           clock.Clock
	logger          *zap.Logger
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	resolver, err := resolvers.New(&resolvers.Config{ContentRepo: cfg.ContentRepo})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		contentRepo:     cfg.ContentRepo,
		characterRepo:   cfg.CharacterRepo,
		progressionRepo: cfg.ProgressionRepo,
		resolver:        resolver,
		engine:          cfg.Engine,
		idGenerator:     cfg.IDGenerator,
		clock:           clk,
		logger:          logger.Named("character"),
	}, nil
}
