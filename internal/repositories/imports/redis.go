package imports

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	"github.com/KirkDiggler/rpg-importer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-importer/internal/redis"
)

const (
	importKeyPrefix      = "import:"
	characterIndexPrefix = "import:character:"

	errImportNil     = "import cannot be nil"
	errImportIDEmpty = "import ID cannot be empty"
	errCharacterID   = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis import repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL expires imports after the duration; zero keeps them forever
	TTL    time.Duration
	Logger *zap.Logger
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.InvalidField("TTL", "cannot be negative")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed import repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    cfg.TTL,
		logger: logger,
	}, nil
}

func importKey(id string) string {
	return importKeyPrefix + id
}

func characterKey(characterID int64) string {
	return characterIndexPrefix + strconv.FormatInt(characterID, 10)
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateImport(input.Import); err != nil {
		return nil, err
	}

	record := *input.Import
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now()
	}
	if r.ttl > 0 {
		record.ExpiresAt = record.CreatedAt.Add(r.ttl)
	}

	key := importKey(record.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("import with ID %s already exists", record.ID)
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal import")
	}

	indexKey := characterKey(record.CharacterID)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.ttl)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(record.CreatedAt.UnixMilli()),
		Member: record.ID,
	})
	if r.ttl > 0 {
		// the index lives as long as its newest import
		pipe.Expire(ctx, indexKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create import")
	}

	r.logger.Debug("stored import",
		zap.String("import_id", record.ID),
		zap.Int64("character_id", record.CharacterID),
		zap.Int("features", len(record.Features)))

	return &CreateOutput{Import: &record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errImportIDEmpty)
	}

	result, err := r.client.Get(ctx, importKey(input.ID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("import with ID %s not found", input.ID).WithMeta("import_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get import")
	}

	var record entities.Import
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal import")
	}

	return &GetOutput{Import: &record}, nil
}

func (r *redisRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	indexKey := characterKey(input.CharacterID)
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list import ids")
	}
	if len(ids) == 0 {
		return &ListByCharacterOutput{Imports: []*entities.Import{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = importKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get imports")
	}

	records := make([]*entities.Import, 0, len(values))
	var expired []interface{}
	for i, value := range values {
		data, ok := value.(string)
		if !ok {
			expired = append(expired, ids[i])
			continue
		}

		var record entities.Import
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			r.logger.Warn("skipping unreadable import", zap.String("import_id", ids[i]), zap.Error(err))
			continue
		}
		records = append(records, &record)
	}

	if len(expired) > 0 {
		if err := r.client.ZRem(ctx, indexKey, expired...).Err(); err != nil {
			r.logger.Warn("failed to prune expired imports", zap.Int64("character_id", input.CharacterID), zap.Error(err))
		}
	}

	return &ListByCharacterOutput{Imports: records}, nil
}

func validateImport(record *entities.Import) error {
	if record == nil {
		return errors.InvalidArgument(errImportNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", record.ID, vb)
	if record.CharacterID == 0 {
		vb.RequiredField("CharacterID")
	}
	return vb.Build()
}
