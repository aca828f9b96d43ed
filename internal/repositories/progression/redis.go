package progression

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-worlds/internal/redis"
)

const (
	progressionKeyPrefix = "progression:"

	bonusesSuffix    = ":bonuses"
	levelUpsSuffix   = ":level_ups"
	skillRanksSuffix = ":skill_ranks"

	errCharacterIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis progression repository.
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

// NewRedis creates a new Redis-backed progression repository
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
		logger: logger.Named("progression_repository"),
	}, nil
}

func listKey(characterID, suffix string) string {
	return progressionKeyPrefix + characterID + suffix
}

func (r *redisRepository) AppendBonus(ctx context.Context, input AppendBonusInput) (*AppendBonusOutput, error) {
	if input.Bonus == nil {
		return nil, errors.InvalidArgument("bonus cannot be nil")
	}
	count, err := r.push(ctx, input.CharacterID, bonusesSuffix, input.Bonus)
	if err != nil {
		return nil, err
	}
	return &AppendBonusOutput{Count: count}, nil
}

func (r *redisRepository) AppendLevelUp(ctx context.Context, input AppendLevelUpInput) (*AppendLevelUpOutput, error) {
	if input.LevelUp == nil {
		return nil, errors.InvalidArgument("level up cannot be nil")
	}
	count, err := r.push(ctx, input.CharacterID, levelUpsSuffix, input.LevelUp)
	if err != nil {
		return nil, err
	}
	return &AppendLevelUpOutput{Count: count}, nil
}

func (r *redisRepository) AppendSkillRank(
	ctx context.Context,
	input AppendSkillRankInput,
) (*AppendSkillRankOutput, error) {
	if input.SkillRank == nil {
		return nil, errors.InvalidArgument("skill rank cannot be nil")
	}
	count, err := r.push(ctx, input.CharacterID, skillRanksSuffix, input.SkillRank)
	if err != nil {
		return nil, err
	}
	return &AppendSkillRankOutput{Count: count}, nil
}

func (r *redisRepository) push(ctx context.Context, characterID, suffix string, record any) (int64, error) {
	if characterID == "" {
		return 0, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to marshal progression record")
	}

	key := listKey(characterID, suffix)
	count, err := r.client.RPush(ctx, key, data).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to append to %s", key)
	}

	r.logger.Debug("appended progression record",
		zap.String("character_id", characterID),
		zap.String("key", key),
		zap.Int64("count", count))

	return count, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	pipe := r.client.Pipeline()
	bonusesCmd := pipe.LRange(ctx, listKey(input.CharacterID, bonusesSuffix), 0, -1)
	levelUpsCmd := pipe.LRange(ctx, listKey(input.CharacterID, levelUpsSuffix), 0, -1)
	skillRanksCmd := pipe.LRange(ctx, listKey(input.CharacterID, skillRanksSuffix), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to load progression for character %s", input.CharacterID)
	}

	out := &GetOutput{}
	var err error
	if out.Bonuses, err = decodeAll[world.Bonus](bonusesCmd.Val()); err != nil {
		return nil, err
	}
	if out.LevelUps, err = decodeAll[world.LevelUp](levelUpsCmd.Val()); err != nil {
		return nil, err
	}
	if out.SkillRanks, err = decodeAll[world.SkillRank](skillRanksCmd.Val()); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	err := r.client.Del(ctx,
		listKey(input.CharacterID, bonusesSuffix),
		listKey(input.CharacterID, levelUpsSuffix),
		listKey(input.CharacterID, skillRanksSuffix),
	).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete progression for character %s", input.CharacterID)
	}

	return &DeleteOutput{}, nil
}

func decodeAll[T any](raw []string) ([]*T, error) {
	out := make([]*T, 0, len(raw))
	for _, item := range raw {
		var v T
		if err := json.Unmarshal([]byte(item), &v); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal progression record")
		}
		out = append(out, &v)
	}
	return out, nil
}
