package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/config"
	"github.com/KirkDiggler/rpg-worlds/internal/engine"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-worlds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-worlds/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-worlds/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/character"
	contentrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
	progressionrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/progression"
)

const pingTimeout = 5 * time.Second

// app is everything a command needs, wired from config
type app struct {
	cfg          *config.Config
	logger       *zap.Logger
	client       redis.Client
	contentRepo  contentrepo.Repository
	orchestrator *character.Orchestrator
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.LogJSON {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = level

	return zcfg.Build()
}

// newApp loads config and connects to Redis
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}
	if worldID != "" {
		cfg.WorldID = worldID
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	client, err := redis.NewClient(redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisUseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	if err := redis.Ping(ctx, client, pingTimeout); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable at "+cfg.RedisAddr)
	}

	return wire(cfg, logger, client)
}

// wire builds the repositories and the orchestrator over an open client
func wire(cfg *config.Config, logger *zap.Logger, client redis.Client) (*app, error) {
	contentRepo, err := contentrepo.NewRedis(&contentrepo.RedisConfig{Client: client, Logger: logger})
	if err != nil {
		return nil, err
	}
	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Logger: logger})
	if err != nil {
		return nil, err
	}
	progressionRepo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{Client: client, Logger: logger})
	if err != nil {
		return nil, err
	}
	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, err
	}

	orchestrator, err := character.New(&character.Config{
		ContentRepo:     contentRepo,
		CharacterRepo:   characterRepo,
		ProgressionRepo: progressionRepo,
		Engine:          eng,
		IDGenerator:     idgen.NewUUID("char"),
		Clock:           clock.New(),
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:          cfg,
		logger:       logger,
		client:       client,
		contentRepo:  contentRepo,
		orchestrator: orchestrator,
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
	_ = a.client.Close()
}

// requireWorld returns the active world or an error naming the flag
func (a *app) requireWorld() (string, error) {
	if a.cfg.WorldID == "" {
		return "", errors.InvalidArgument("no world selected: pass --world or set WORLD_ID")
	}
	return a.cfg.WorldID, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
