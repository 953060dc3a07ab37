// Package features implements the feature aggregation and merge engine. It
// expands every racial trait, class and subclass feature, optional class
// feature, feat and background of a character into feature records and
// reconciles duplicates between them.
package features

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/engine"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
)

// BackgroundEffectsPolicy selects how effects from several background choices combine
type BackgroundEffectsPolicy string

const (
	// BackgroundEffectsAccumulate threads the record through every choice, keeping each choice's effects
	BackgroundEffectsAccumulate BackgroundEffectsPolicy = "all"
	// BackgroundEffectsLastChoice applies each choice to a copy of the base record and keeps only the last
	BackgroundEffectsLastChoice BackgroundEffectsPolicy = "last"
)

// Config holds the dependencies for the engine
type Config struct {
	Renderer Renderer
	Fixups   Fixups
	Lookup   Lookup
	Logger   *zap.Logger

	// PreferSnippet uses the snippet alone as the description value when it is
	// not empty. Off by default: the full description is always used.
	PreferSnippet bool

	// BackgroundEffects defaults to BackgroundEffectsAccumulate
	BackgroundEffects BackgroundEffectsPolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Fixups == nil {
		vb.RequiredField("Fixups")
	}
	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}
	switch c.BackgroundEffects {
	case "", BackgroundEffectsAccumulate, BackgroundEffectsLastChoice:
	default:
		vb.InvalidField("BackgroundEffects", string(c.BackgroundEffects))
	}

	return vb.Build()
}

// Engine implements engine.Engine. It holds no per-call state and may be shared.
type Engine struct {
	renderer          Renderer
	fixups            Fixups
	lookup            Lookup
	logger            *zap.Logger
	preferSnippet     bool
	backgroundEffects BackgroundEffectsPolicy
}

// New creates a new feature engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	policy := cfg.BackgroundEffects
	if policy == "" {
		policy = BackgroundEffectsAccumulate
	}

	return &Engine{
		renderer:          cfg.Renderer,
		fixups:            cfg.Fixups,
		lookup:            cfg.Lookup,
		logger:            logger,
		preferSnippet:     cfg.PreferSnippet,
		backgroundEffects: policy,
	}, nil
}

// Ensure Engine implements the engine interface
var _ engine.Engine = (*Engine)(nil)

// run is the state of a single ParseFeatures call
type run struct {
	doc *ddb.Document

	// processed holds copies of every class and subclass record expanded so
	// far, across all classes, so later batches skip records already folded
	processed []*foundry.Feature

	excludedClassFeatures map[int64]struct{}
	excludedRacialTraits  map[int64]struct{}
}

func newRun(doc *ddb.Document) *run {
	r := &run{
		doc:                   doc,
		excludedClassFeatures: make(map[int64]struct{}),
		excludedRacialTraits:  make(map[int64]struct{}),
	}
	for _, f := range doc.Character.OptionalClassFeatures {
		if f.AffectedClassFeatureID != 0 {
			r.excludedClassFeatures[f.AffectedClassFeatureID] = struct{}{}
		}
	}
	for _, f := range doc.Character.OptionalOrigins {
		if f.AffectedRacialTraitID != 0 {
			r.excludedRacialTraits[f.AffectedRacialTraitID] = struct{}{}
		}
	}
	return r
}

// markProcessed records the pre-merge snapshot and the current state of a batch
func (r *run) markProcessed(snapshot, merged []*foundry.Feature) {
	r.processed = append(r.processed, snapshot...)
	for _, item := range merged {
		r.processed = append(r.processed, item.Clone())
	}
}

// ParseFeatures collects racial traits, class and subclass features, optional
// class features, feats and the background, in that order
func (e *Engine) ParseFeatures(_ context.Context, input *engine.ParseFeaturesInput) (*engine.ParseFeaturesOutput, error) {
	if input == nil || input.Document == nil {
		return nil, errors.InvalidArgument("document is required")
	}
	doc := input.Document

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	background, err := e.lookup.Background(doc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to resolve background")
	}
	if background == nil {
		return nil, errors.FailedPrecondition("character has no background")
	}

	r := newRun(doc)
	var items []*foundry.Feature

	e.logger.Debug("parsing racial traits", zap.Int("count", len(doc.Character.Race.RacialTraits)))
	for i := range doc.Character.Race.RacialTraits {
		raw := &doc.Character.Race.RacialTraits[i]
		trait := NormalizeTrait(raw)
		if !Included(trait.Name) || trait.Hidden {
			continue
		}
		if _, excluded := r.excludedRacialTraits[trait.ID]; excluded {
			continue
		}
		source := e.lookup.Source(raw.SourceDefinition())
		for _, item := range e.parseFeature(r, trait, foundry.CategoryRace, source) {
			items = mergeFeature(items, item, stageRace)
		}
	}

	e.logger.Debug("parsing class and subclass features", zap.Int("classes", len(doc.Character.Classes)))
	for _, item := range e.parseClassFeatures(r) {
		items = mergeFeature(items, item, stageClassIntoResult)
	}

	e.logger.Debug("parsing optional class features", zap.Int("count", len(doc.ClassOptions)))
	for i := range doc.ClassOptions {
		raw := &doc.ClassOptions[i]
		source := e.lookup.Source(raw.SourceDefinition())
		items = append(items, e.parseFeature(r, NormalizeTrait(raw), foundry.CategoryClass, source)...)
	}

	e.logger.Debug("parsing feats", zap.Int("count", len(doc.Character.Feats)))
	for i := range doc.Character.Feats {
		raw := &doc.Character.Feats[i]
		source := e.lookup.Source(raw.SourceDefinition())
		items = append(items, e.parseFeature(r, NormalizeTrait(raw), foundry.CategoryFeat, source)...)
	}

	e.logger.Debug("parsing background")
	source := e.lookup.Source(background.SourceDefinition())
	items = append(items, e.parseFeature(r, NormalizeTrait(background), foundry.CategoryBackground, source)...)

	e.fixups.FixFeatures(items)

	return &engine.ParseFeaturesOutput{Features: items}, nil
}

func validateDocument(doc *ddb.Document) error {
	vb := errors.NewValidationBuilder()
	for i, class := range doc.Character.Classes {
		if class.Definition == nil {
			vb.Fieldf("classes", "class at index %d has no definition", i)
		}
	}
	return vb.Build()
}
