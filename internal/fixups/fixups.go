// Package fixups attaches mechanical effects to feature records and normalizes
// well-known features after the engine has finished collecting them.
package fixups

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/engine/features"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// Config holds the configuration for fixups
type Config struct {
	Logger *zap.Logger
}

// Fixups implements features.Fixups
type Fixups struct {
	policy *bluemonday.Policy
	logger *zap.Logger
}

// New creates fixups. A nil config is allowed.
func New(cfg *Config) *Fixups {
	logger := zap.NewNop()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &Fixups{
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

var _ features.Fixups = (*Fixups)(nil)

// StripHTML removes every tag and decodes entities, leaving the trimmed text
func (f *Fixups) StripHTML(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(f.policy.Sanitize(text)))
}

// AddEffects returns a copy of the feature with the effects of the trait and
// choice appended. A feature with nothing to add is returned as is.
func (f *Fixups) AddEffects(
	doc *ddb.Document,
	trait features.Trait,
	feature *foundry.Feature,
	choice *features.Choice,
	category foundry.Category,
) *foundry.Feature {
	if feature == nil {
		return nil
	}

	var changes []foundry.EffectChange
	if build, ok := traitEffects[trait.Name]; ok {
		changes = append(changes, build(doc, feature)...)
	}
	if choice != nil && category == foundry.CategoryBackground {
		if skill, ok := skillKeys[choice.Label]; ok {
			changes = append(changes, proficiency(skill))
		}
	}

	if len(changes) == 0 {
		return feature
	}

	f.logger.Debug("adding effects",
		zap.String("name", feature.Name),
		zap.Int("changes", len(changes)))

	out := feature.Clone()
	label := out.Name
	if choice != nil && choice.Label != "" && !strings.HasSuffix(label, ": "+choice.Label) {
		label += ": " + choice.Label
	}
	out.Effects = append(out.Effects, foundry.Effect{
		Label:   label,
		Origin:  originFor(out),
		Changes: changes,
	})
	return out
}

// FixFeatures sets activation and damage data on well-known features
func (f *Fixups) FixFeatures(items []*foundry.Feature) {
	for _, item := range items {
		fix, ok := featureFixes[item.Name]
		if !ok {
			continue
		}
		f.logger.Debug("fixing feature", zap.String("name", item.Name))
		fix(item)
	}
}

func originFor(feature *foundry.Feature) string {
	if feature.Flags.ID == 0 {
		return ""
	}
	return "ddb." + feature.Category().String() + "." + formatID(feature.Flags.ID)
}
