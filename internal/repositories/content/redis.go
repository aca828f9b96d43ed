package content

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-worlds/internal/redis"
)

const (
	contentKeyPrefix = "content:"
	childrenSuffix   = ":children"

	errEntityNil     = "content entity cannot be nil"
	errEntityIDEmpty = "content ID cannot be empty"
	errWorldIDEmpty  = "content world ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis content repository.
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

// NewRedis creates a new Redis-backed content repository
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
		logger: logger.Named("content"),
	}, nil
}

func contentKey(kind, id string) string {
	return contentKeyPrefix + kind + ":" + id
}

func childrenKey(lineageID string) string {
	return contentKey(world.TypeLineage, lineageID) + childrenSuffix
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	entity := input.Entity
	if entity == nil {
		return nil, errors.InvalidArgument(errEntityNil)
	}
	if entity.GetID() == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if entity.GetWorldID() == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty).
			WithMeta("content_id", entity.GetID())
	}

	key := contentKey(entity.GetType(), entity.GetID())

	data, err := json.Marshal(entity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s", entity.GetType())
	}

	// A lineage that moved under a different parent leaves the old index
	var oldParentID string
	lineage, isLineage := entity.(*world.Lineage)
	if isLineage {
		existing, err := getOne[world.Lineage](ctx, r.client, world.TypeLineage, lineage.ID)
		if err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		if existing != nil {
			oldParentID = existing.ParentID
		}
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)

	if isLineage && oldParentID != lineage.ParentID {
		if oldParentID != "" {
			pipe.SRem(ctx, childrenKey(oldParentID), lineage.ID)
		}
		if lineage.ParentID != "" {
			pipe.SAdd(ctx, childrenKey(lineage.ParentID), lineage.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", entity.GetType())
	}

	r.logger.Debug("stored content",
		zap.String("type", entity.GetType()),
		zap.String("id", entity.GetID()),
		zap.String("world_id", entity.GetWorldID()))

	return &PutOutput{}, nil
}

func (r *redisRepository) GetLineage(ctx context.Context, input GetInput) (*GetLineageOutput, error) {
	lineage, err := getOne[world.Lineage](ctx, r.client, world.TypeLineage, input.ID)
	if err != nil {
		return nil, err
	}

	childIDs, err := r.client.SMembers(ctx, childrenKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get children of lineage %s", input.ID)
	}

	return &GetLineageOutput{Lineage: lineage, ChildIDs: childIDs}, nil
}

func (r *redisRepository) GetCaste(ctx context.Context, input GetInput) (*GetCasteOutput, error) {
	caste, err := getOne[world.Caste](ctx, r.client, world.TypeCaste, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetCasteOutput{Caste: caste}, nil
}

func (r *redisRepository) GetEducation(ctx context.Context, input GetInput) (*GetEducationOutput, error) {
	education, err := getOne[world.Education](ctx, r.client, world.TypeEducation, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetEducationOutput{Education: education}, nil
}

func (r *redisRepository) GetNature(ctx context.Context, input GetInput) (*GetNatureOutput, error) {
	nature, err := getOne[world.Nature](ctx, r.client, world.TypeNature, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetNatureOutput{Nature: nature}, nil
}

func (r *redisRepository) GetPersonality(ctx context.Context, input GetInput) (*GetPersonalityOutput, error) {
	personality, err := getOne[world.Personality](ctx, r.client, world.TypePersonality, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetPersonalityOutput{Personality: personality}, nil
}

func (r *redisRepository) GetItem(ctx context.Context, input GetInput) (*GetItemOutput, error) {
	item, err := getOne[world.Item](ctx, r.client, world.TypeItem, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetItemOutput{Item: item}, nil
}

func (r *redisRepository) ListAspects(ctx context.Context, input ListInput) (*ListAspectsOutput, error) {
	aspects, err := getMany[world.Aspect](ctx, r.client, world.TypeAspect, input.IDs)
	if err != nil {
		return nil, err
	}
	return &ListAspectsOutput{Aspects: aspects}, nil
}

func (r *redisRepository) ListCustomizations(
	ctx context.Context,
	input ListInput,
) (*ListCustomizationsOutput, error) {
	customizations, err := getMany[world.Customization](ctx, r.client, world.TypeCustomization, input.IDs)
	if err != nil {
		return nil, err
	}
	return &ListCustomizationsOutput{Customizations: customizations}, nil
}

func (r *redisRepository) ListLanguages(ctx context.Context, input ListInput) (*ListLanguagesOutput, error) {
	languages, err := getMany[world.Language](ctx, r.client, world.TypeLanguage, input.IDs)
	if err != nil {
		return nil, err
	}
	return &ListLanguagesOutput{Languages: languages}, nil
}

func (r *redisRepository) ListTalents(ctx context.Context, input ListInput) (*ListTalentsOutput, error) {
	talents, err := getMany[world.Talent](ctx, r.client, world.TypeTalent, input.IDs)
	if err != nil {
		return nil, err
	}
	return &ListTalentsOutput{Talents: talents}, nil
}

func getOne[T any](ctx context.Context, client redisclient.Client, kind, id string) (*T, error) {
	if id == "" {
		return nil, errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}

	result, err := client.Get(ctx, contentKey(kind, id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s with ID %s not found", kind, id).
				WithMeta("content_type", kind).
				WithMeta("content_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get %s", kind)
	}

	var v T
	if err := json.Unmarshal([]byte(result), &v); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s %s", kind, id)
	}

	return &v, nil
}

// getMany loads the distinct non-empty IDs in request order, skipping missing ones
func getMany[T any](ctx context.Context, client redisclient.Client, kind string, ids []string) ([]*T, error) {
	seen := make(map[string]struct{}, len(ids))
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, contentKey(kind, id))
	}

	if len(keys) == 0 {
		return []*T{}, nil
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s list", kind)
	}

	out := make([]*T, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s at %s", kind, keys[i])
		}
		out = append(out, &v)
	}

	return out, nil
}
