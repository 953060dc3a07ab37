// Package lookup resolves the parts of a character document the feature engine
// reads but does not interpret: the background, choices, class feature
// components, rulebook sources and blank feature templates.
package lookup

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/engine/features"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
)

// Config holds the configuration for the lookup
type Config struct {
	// Sources overrides or extends the built-in rulebook names, keyed by source id
	Sources map[int64]string
	Logger  *zap.Logger
}

// DDB implements features.Lookup over a D&D Beyond document
type DDB struct {
	sources map[int64]string
	logger  *zap.Logger
}

// New creates a lookup. A nil config uses the built-in source table.
func New(cfg *Config) *DDB {
	if cfg == nil {
		cfg = &Config{}
	}

	sources := make(map[int64]string, len(defaultSources)+len(cfg.Sources))
	for id, name := range defaultSources {
		sources[id] = name
	}
	for id, name := range cfg.Sources {
		sources[id] = name
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DDB{sources: sources, logger: logger}
}

var _ features.Lookup = (*DDB)(nil)

// Background builds a trait from the character's background. A custom background
// that borrows the feature of a published one uses the published feature.
func (l *DDB) Background(doc *ddb.Document) (*ddb.Trait, error) {
	if doc == nil {
		return nil, errors.InvalidArgument("document is required")
	}
	bg := doc.Character.Background

	if bg.HasCustomBackground && bg.CustomBackground != nil {
		custom := bg.CustomBackground
		if custom.FeaturesBackground != nil {
			trait := backgroundTrait(custom.FeaturesBackground)
			trait.ID = custom.ID
			trait.Name = firstNonEmpty(custom.Name, trait.Name)
			return trait, nil
		}
		return &ddb.Trait{
			ID:           custom.ID,
			Name:         firstNonEmpty(custom.Name, "Custom Background"),
			Description:  custom.Description,
			EntityTypeID: custom.EntityTypeID,
		}, nil
	}

	if bg.Definition != nil {
		return backgroundTrait(bg.Definition), nil
	}

	return nil, errors.FailedPreconditionf("character %d has no background", doc.Character.ID)
}

func backgroundTrait(def *ddb.BackgroundDefinition) *ddb.Trait {
	description := firstNonEmpty(def.ShortDescription, def.Description)
	if def.FeatureName != "" {
		description += "<h3>" + def.FeatureName + "</h3>" + def.FeatureDescription
	}

	return &ddb.Trait{
		ID:           def.ID,
		Name:         def.Name,
		Snippet:      def.Snippet,
		Description:  description,
		EntityTypeID: def.EntityTypeID,
		Sources:      def.Sources,
	}
}

// Template returns a blank feature data skeleton. Every category starts from the same shape.
func (l *DDB) Template(_ foundry.Category) foundry.FeatureData {
	return foundry.FeatureData{
		Description: foundry.Description{},
		Activation:  foundry.Activation{Type: "", Cost: 0, Condition: ""},
		Damage:      foundry.Damage{Parts: [][2]string{}},
	}
}

// Choices returns the options the player picked for the trait followed by the
// resolved choice selections. Unresolved selections are skipped.
func (l *DDB) Choices(doc *ddb.Document, category foundry.Category, trait features.Trait) []features.Choice {
	if doc == nil {
		return nil
	}

	var choices []features.Choice
	for _, option := range doc.Character.Options.ForCategory(category.String()) {
		if option.ComponentID != trait.ComponentID {
			continue
		}
		choices = append(choices, features.Choice{
			Label:       option.Definition.Name,
			Description: option.Definition.Description,
		})
	}

	for _, choice := range doc.Character.Choices.ForCategory(category.String()) {
		if choice.ComponentID != trait.ComponentID || choice.OptionValue == nil {
			continue
		}

		option := l.resolveChoice(&doc.Character.Choices, choice)
		if option == nil {
			l.logger.Debug("choice option not found",
				zap.String("trait", trait.Name),
				zap.String("choice", choice.ID),
				zap.Int64("option", *choice.OptionValue))
			continue
		}
		choices = append(choices, features.Choice{
			Label:       option.Label,
			Description: option.Description,
		})
	}

	return choices
}

// resolveChoice finds the selected option on the choice itself, falling back to
// the shared definition for its component type and choice type
func (l *DDB) resolveChoice(all *ddb.Choices, choice ddb.CharacterChoice) *ddb.ChoiceOption {
	if option := findOption(choice.Options, *choice.OptionValue); option != nil {
		return option
	}

	definitionID := fmt.Sprintf("%d-%d", choice.ComponentTypeID, choice.Type)
	if def := all.Definition(definitionID); def != nil {
		return findOption(def.Options, *choice.OptionValue)
	}
	return nil
}

func findOption(options []ddb.ChoiceOption, id int64) *ddb.ChoiceOption {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}

// Component returns the class feature component whose definition has the id
func (l *DDB) Component(doc *ddb.Document, componentID int64) *ddb.Component {
	if doc == nil || componentID == 0 {
		return nil
	}

	for i := range doc.Character.Classes {
		components := doc.Character.Classes[i].ClassFeatures
		for j := range components {
			if components[j].Definition != nil && components[j].Definition.ID == componentID {
				return &components[j]
			}
		}
	}
	return nil
}

// Source returns the rulebook label of a definition, e.g. "Player's Handbook pg. 91"
func (l *DDB) Source(def *ddb.TraitDefinition) string {
	if def == nil {
		return ""
	}

	id, page := def.SourceID, def.SourcePageNumber
	if len(def.Sources) > 0 {
		id, page = def.Sources[0].SourceID, def.Sources[0].PageNumber
	}
	if id == 0 {
		return HomebrewSource
	}

	book, ok := l.sources[id]
	if !ok {
		book = "Source " + strconv.FormatInt(id, 10)
	}
	if page > 0 {
		return book + " pg. " + strconv.Itoa(page)
	}
	return book
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
