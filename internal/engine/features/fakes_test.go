package features

import (
	"regexp"

	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

type echoRenderer struct{}

func (echoRenderer) Render(_ *ddb.Document, text string, _ Trait) string {
	return text
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// recordingFixups tags each choice's effects with the choice label
type recordingFixups struct {
	fixed []*foundry.Feature
}

func (f *recordingFixups) StripHTML(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}

func (f *recordingFixups) AddEffects(_ *ddb.Document, _ Trait, feature *foundry.Feature, choice *Choice, _ foundry.Category) *foundry.Feature {
	if choice == nil {
		return feature
	}
	out := feature.Clone()
	out.Effects = append(out.Effects, foundry.Effect{Label: choice.Label})
	return out
}

func (f *recordingFixups) FixFeatures(items []*foundry.Feature) {
	f.fixed = items
}

type stubLookup struct {
	background    *ddb.Trait
	backgroundErr error
	choices       map[int64][]Choice
	components    map[int64]*ddb.Component
}

func (l *stubLookup) Background(*ddb.Document) (*ddb.Trait, error) {
	return l.background, l.backgroundErr
}

func (l *stubLookup) Template(foundry.Category) foundry.FeatureData {
	return foundry.FeatureData{}
}

func (l *stubLookup) Source(def *ddb.TraitDefinition) string {
	if def == nil || def.SourceID == 0 {
		return ""
	}
	return "PHB"
}

func (l *stubLookup) Choices(_ *ddb.Document, _ foundry.Category, trait Trait) []Choice {
	return l.choices[trait.ComponentID]
}

func (l *stubLookup) Component(_ *ddb.Document, componentID int64) *ddb.Component {
	return l.components[componentID]
}

type engineOption func(*Config)

func withPolicy(policy BackgroundEffectsPolicy) engineOption {
	return func(cfg *Config) { cfg.BackgroundEffects = policy }
}

func withPreferSnippet() engineOption {
	return func(cfg *Config) { cfg.PreferSnippet = true }
}

func newTestEngine(lookup *stubLookup, opts ...engineOption) (*Engine, *recordingFixups) {
	fixups := &recordingFixups{}
	cfg := &Config{
		Renderer: echoRenderer{},
		Fixups:   fixups,
		Lookup:   lookup,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	e, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return e, fixups
}
