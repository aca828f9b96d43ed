package character

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-worlds/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"
	worldIndexPrefix   = "character:world:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errWorldIDEmpty     = "world ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Logger *zap.Logger
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepository{
		client: cfg.Client,
		logger: logger.Named("character_repository"),
	}, nil
}

func validateCharacter(c *world.Character) error {
	if c == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if c.WorldID == "" {
		return errors.InvalidArgument(errWorldIDEmpty).WithMeta("character_id", c.ID)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, worldIndexPrefix+input.Character.WorldID, input.Character.ID)
	if input.Character.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Character.PlayerID, input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID).
				WithMeta("character_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var c world.Character
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &GetOutput{Character: &c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Character.ID})
	if err != nil {
		return nil, err
	}
	old := existing.Character

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+input.Character.ID, data, 0)

	if old.PlayerID != input.Character.PlayerID {
		if old.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+old.PlayerID, input.Character.ID)
		}
		if input.Character.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.Character.PlayerID, input.Character.ID)
		}
	}
	if old.WorldID != input.Character.WorldID {
		pipe.SRem(ctx, worldIndexPrefix+old.WorldID, input.Character.ID)
		pipe.SAdd(ctx, worldIndexPrefix+input.Character.WorldID, input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	c := getOutput.Character

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	pipe.SRem(ctx, worldIndexPrefix+c.WorldID, input.ID)
	if c.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+c.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	characters, err := r.listByIndex(ctx, playerIndexPrefix+input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *redisRepository) ListByWorldID(ctx context.Context, input ListByWorldIDInput) (*ListOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	characters, err := r.listByIndex(ctx, worldIndexPrefix+input.WorldID)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Characters: characters}, nil
}

// listByIndex loads every character in an index set, dropping IDs whose character is gone
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*world.Character, error) {
	log := r.logger.With(zap.String("index_key", indexKey))

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}
	sort.Strings(ids)

	log.Debug("found character IDs in index", zap.Int("count", len(ids)))

	characters := make([]*world.Character, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				log.Warn("character not found, cleaning up index", zap.String("character_id", id))
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, getOutput.Character)
	}

	return characters, nil
}
