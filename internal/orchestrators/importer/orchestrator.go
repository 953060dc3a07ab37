// Package importer implements the feature import orchestrator
package importer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/engine"
	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	"github.com/KirkDiggler/rpg-importer/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-importer/internal/repositories/imports"
	importersvc "github.com/KirkDiggler/rpg-importer/internal/services/importer"
)

const tracerName = "github.com/KirkDiggler/rpg-importer/internal/orchestrators/importer"

// Config holds the dependencies for the import orchestrator
type Config struct {
	Engine      engine.Engine
	IDGenerator idgen.Generator
	// Repository is optional; without it imports are returned but not kept
	Repository imports.Repository
	Clock      clock.Clock
	Logger     *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	idGen      idgen.Generator
	repository imports.Repository
	clock      clock.Clock
	logger     *zap.Logger
	tracer     trace.Tracer
}

// New creates a new import orchestrator with the provided dependencies
func New(cfg *Config) (importersvc.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		engine:     cfg.Engine,
		idGen:      cfg.IDGenerator,
		repository: cfg.Repository,
		clock:      c,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

func (o *orchestrator) ImportFeatures(
	ctx context.Context,
	input *importersvc.ImportFeaturesInput,
) (_ *importersvc.ImportFeaturesOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "ImportFeatures")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, errors.GetMessage(err))
		}
		span.End()
	}()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateDocument(input.Document); err != nil {
		return nil, err
	}

	doc := input.Document
	span.SetAttributes(attribute.Int64("character.id", doc.Character.ID))
	logger := o.logger.With(
		zap.Int64("character_id", doc.Character.ID),
		zap.String("character_name", doc.Character.Name))

	parsed, err := o.engine.ParseFeatures(ctx, &engine.ParseFeaturesInput{Document: doc})
	if err != nil {
		logger.Warn("feature parsing failed", zap.Error(err))
		return nil, errors.Wrapf(err, "failed to parse features of character %d", doc.Character.ID)
	}

	record := &entities.Import{
		ID:            o.idGen.Generate(),
		CharacterID:   doc.Character.ID,
		CharacterName: doc.Character.Name,
		Features:      parsed.Features,
		CreatedAt:     o.clock.Now(),
	}

	span.SetAttributes(
		attribute.String("import.id", record.ID),
		attribute.Int("import.features", len(record.Features)))

	counts := record.FeatureCounts()
	logger.Info("parsed features",
		zap.String("import_id", record.ID),
		zap.Int("total", len(record.Features)),
		zap.Int("race", counts[foundry.CategoryRace]),
		zap.Int("class", counts[foundry.CategoryClass]),
		zap.Int("feat", counts[foundry.CategoryFeat]),
		zap.Int("background", counts[foundry.CategoryBackground]))

	if logger.Core().Enabled(zap.DebugLevel) {
		for _, entity := range foundry.AsEntities(record.Features) {
			logger.Debug("imported feature",
				zap.String("entity_id", entity.GetID()),
				zap.String("entity_type", entity.GetType()))
		}
	}

	if o.repository == nil {
		return &importersvc.ImportFeaturesOutput{Import: record}, nil
	}

	created, err := o.repository.Create(ctx, imports.CreateInput{Import: record})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store import %s", record.ID)
	}

	return &importersvc.ImportFeaturesOutput{Import: created.Import, Stored: true}, nil
}

func (o *orchestrator) GetImport(ctx context.Context, input *importersvc.GetImportInput) (*importersvc.GetImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ImportID == "" {
		return nil, errors.InvalidArgument("import ID is required")
	}
	if o.repository == nil {
		return nil, errors.FailedPrecondition("no import store is configured")
	}

	out, err := o.repository.Get(ctx, imports.GetInput{ID: input.ImportID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get import %s", input.ImportID)
	}

	return &importersvc.GetImportOutput{Import: out.Import}, nil
}

func (o *orchestrator) ListImports(ctx context.Context, input *importersvc.ListImportsInput) (*importersvc.ListImportsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.CharacterID == 0 {
		vb.RequiredField("CharacterID")
	}
	if input.Limit < 0 {
		vb.InvalidField("Limit", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if o.repository == nil {
		return nil, errors.FailedPrecondition("no import store is configured")
	}

	out, err := o.repository.ListByCharacter(ctx, imports.ListByCharacterInput{
		CharacterID: input.CharacterID,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list imports of character %d", input.CharacterID)
	}

	return &importersvc.ListImportsOutput{Imports: out.Imports}, nil
}

func validateDocument(doc *ddb.Document) error {
	if doc == nil {
		return errors.InvalidArgument("document is required")
	}

	vb := errors.NewValidationBuilder()
	if doc.Character.ID == 0 {
		vb.RequiredField("character.id")
	}
	if len(doc.Character.Classes) == 0 {
		vb.Field("character.classes", "character has no classes")
	}
	return vb.Build()
}
