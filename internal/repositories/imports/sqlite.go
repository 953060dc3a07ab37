package imports

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	"github.com/KirkDiggler/rpg-importer/internal/pkg/clock"
)

//go:embed schema.sql
var schema string

// SQLiteConfig contains configuration for the SQLite import repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" opens a private in-memory database
	Path   string
	Clock  clock.Clock
	TTL    time.Duration
	Logger *zap.Logger
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	if cfg.TTL < 0 {
		vb.InvalidField("TTL", "cannot be negative")
	}
	return vb.Build()
}

// SQLiteRepository stores imports in a local SQLite file. It is used by the
// CLI when no Redis is configured.
type SQLiteRepository struct {
	db     *sql.DB
	clock  clock.Clock
	ttl    time.Duration
	logger *zap.Logger
}

var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens the database and applies the schema
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := ":memory:"
	if cfg.Path != dsn {
		dsn = filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	// a second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to sqlite database")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SQLiteRepository{db: db, clock: c, ttl: cfg.TTL, logger: logger}, nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create stores a new import
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateImport(input.Import); err != nil {
		return nil, err
	}

	record := *input.Import
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now()
	}
	var expiresAt int64
	if r.ttl > 0 {
		record.ExpiresAt = record.CreatedAt.Add(r.ttl)
		expiresAt = record.ExpiresAt.UnixMilli()
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal import")
	}

	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM imports WHERE id = ?`, record.ID).Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("import with ID %s already exists", record.ID)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO imports (id, character_id, character_name, payload, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.CharacterID,
		strings.TrimSpace(record.CharacterName),
		string(data),
		record.CreatedAt.UnixMilli(),
		expiresAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create import")
	}

	r.logger.Debug("stored import",
		zap.String("import_id", record.ID),
		zap.Int64("character_id", record.CharacterID))

	return &CreateOutput{Import: &record}, nil
}

// Get retrieves an import that has not expired
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errImportIDEmpty)
	}

	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM imports WHERE id = ? AND (expires_at = 0 OR expires_at > ?)`,
		input.ID, r.clock.Now().UnixMilli(),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("import with ID %s not found", input.ID).WithMeta("import_id", input.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get import")
	}

	var record entities.Import
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal import")
	}

	return &GetOutput{Import: &record}, nil
}

// ListByCharacter retrieves the unexpired imports of a character, newest first
func (r *SQLiteRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	limit := -1
	if input.Limit > 0 {
		limit = input.Limit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, payload FROM imports
		 WHERE character_id = ? AND (expires_at = 0 OR expires_at > ?)
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		input.CharacterID, r.clock.Now().UnixMilli(), limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list imports")
	}
	defer func() { _ = rows.Close() }()

	records := []*entities.Import{}
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to scan import")
		}

		var record entities.Import
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			r.logger.Warn("skipping unreadable import", zap.String("import_id", id), zap.Error(err))
			continue
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list imports")
	}

	return &ListByCharacterOutput{Imports: records}, nil
}
