package imports

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-importer/internal/redis"
)

// Maintenance finds and removes import blobs that can no longer be read
type Maintenance struct {
	client redisclient.Client
	logger *zap.Logger
}

// NewMaintenance creates maintenance tooling over the Redis import keys
func NewMaintenance(client redisclient.Client, logger *zap.Logger) (*Maintenance, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Maintenance{client: client, logger: logger}, nil
}

// CorruptedImport is an import key whose blob fails to decode
type CorruptedImport struct {
	Key    string
	Reason string
}

// FindCorruptedOutput reports the result of a scan
type FindCorruptedOutput struct {
	Checked   int
	Corrupted []CorruptedImport
}

// FindCorrupted scans every import blob. Character indexes are skipped.
func (m *Maintenance) FindCorrupted(ctx context.Context) (*FindCorruptedOutput, error) {
	out := &FindCorruptedOutput{}

	iter := m.client.Scan(ctx, 0, importKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, characterIndexPrefix) {
			continue
		}
		out.Checked++

		data, err := m.client.Get(ctx, key).Result()
		if err != nil {
			if err == redisclient.Nil {
				// expired during the scan
				continue
			}
			m.logger.Warn("failed to read import", zap.String("key", key), zap.Error(err))
			continue
		}

		if reason := checkImport(key, data); reason != "" {
			out.Corrupted = append(out.Corrupted, CorruptedImport{Key: key, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan imports")
	}

	return out, nil
}

// Delete removes the given keys and returns how many existed
func (m *Maintenance) Delete(ctx context.Context, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := m.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete imports")
	}
	return n, nil
}

func checkImport(key, data string) string {
	var record entities.Import
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return "unreadable json"
	}
	if importKey(record.ID) != key {
		return "id does not match key"
	}
	if record.CharacterID == 0 {
		return "missing character id"
	}
	return ""
}
