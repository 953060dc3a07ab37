// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
)

// DocumentBuilder provides a fluent interface for building test documents
type DocumentBuilder struct {
	doc *ddb.Document
}

// NewDocumentBuilder creates a builder for a character with no race traits,
// classes, feats or background
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{
		doc: &ddb.Document{
			Character: ddb.Character{
				ID:   1001,
				Name: "Test Character",
				Race: ddb.Race{FullName: "Human", BaseName: "Human"},
			},
		},
	}
}

// WithCharacterID sets the character id
func (b *DocumentBuilder) WithCharacterID(id int64) *DocumentBuilder {
	b.doc.Character.ID = id
	return b
}

// WithName sets the character name
func (b *DocumentBuilder) WithName(name string) *DocumentBuilder {
	b.doc.Character.Name = name
	return b
}

// WithRace sets the race name
func (b *DocumentBuilder) WithRace(name string) *DocumentBuilder {
	b.doc.Character.Race.FullName = name
	b.doc.Character.Race.BaseName = name
	return b
}

// WithRacialTrait adds a racial trait
func (b *DocumentBuilder) WithRacialTrait(trait ddb.Trait) *DocumentBuilder {
	b.doc.Character.Race.RacialTraits = append(b.doc.Character.Race.RacialTraits, trait)
	return b
}

// WithClass adds a class at a level
func (b *DocumentBuilder) WithClass(id int64, name string, level int) *DocumentBuilder {
	b.doc.Character.Classes = append(b.doc.Character.Classes, ddb.Class{
		ID:              id,
		Level:           level,
		IsStartingClass: len(b.doc.Character.Classes) == 0,
		Definition:      &ddb.ClassDefinition{ID: id, Name: name},
	})
	return b
}

// WithClassFeature adds a feature to the class with the definition id
func (b *DocumentBuilder) WithClassFeature(classID int64, trait ddb.Trait) *DocumentBuilder {
	if class := b.doc.Character.ClassByDefinitionID(classID); class != nil {
		class.Definition.ClassFeatures = append(class.Definition.ClassFeatures, trait)
	}
	return b
}

// WithSubclass sets the subclass of the class with the definition id
func (b *DocumentBuilder) WithSubclass(classID, subclassID int64, name string, traits ...ddb.Trait) *DocumentBuilder {
	if class := b.doc.Character.ClassByDefinitionID(classID); class != nil {
		class.SubclassDefinition = &ddb.ClassDefinition{ID: subclassID, Name: name, ClassFeatures: traits}
	}
	return b
}

// WithComponent adds a per-character class feature component to the class
func (b *DocumentBuilder) WithComponent(classID int64, component ddb.Component) *DocumentBuilder {
	if class := b.doc.Character.ClassByDefinitionID(classID); class != nil {
		class.ClassFeatures = append(class.ClassFeatures, component)
	}
	return b
}

// WithFeat adds a feat
func (b *DocumentBuilder) WithFeat(trait ddb.Trait) *DocumentBuilder {
	b.doc.Character.Feats = append(b.doc.Character.Feats, trait)
	return b
}

// WithClassOption adds an optional class feature and records which feature it replaces
func (b *DocumentBuilder) WithClassOption(trait ddb.Trait, replacesFeatureID int64) *DocumentBuilder {
	b.doc.ClassOptions = append(b.doc.ClassOptions, trait)
	b.doc.Character.OptionalClassFeatures = append(b.doc.Character.OptionalClassFeatures, ddb.OptionalFeature{
		ClassFeatureID:         trait.ID,
		AffectedClassFeatureID: replacesFeatureID,
	})
	return b
}

// WithOptionalOrigin records that a racial trait is replaced
func (b *DocumentBuilder) WithOptionalOrigin(racialTraitID, replacesTraitID int64) *DocumentBuilder {
	b.doc.Character.OptionalOrigins = append(b.doc.Character.OptionalOrigins, ddb.OptionalFeature{
		RacialTraitID:         racialTraitID,
		AffectedRacialTraitID: replacesTraitID,
	})
	return b
}

// WithBackground sets a published background
func (b *DocumentBuilder) WithBackground(def *ddb.BackgroundDefinition) *DocumentBuilder {
	b.doc.Character.Background = ddb.BackgroundInfo{Definition: def}
	return b
}

// WithCustomBackground sets a custom background
func (b *DocumentBuilder) WithCustomBackground(custom *ddb.CustomBackground) *DocumentBuilder {
	b.doc.Character.Background = ddb.BackgroundInfo{HasCustomBackground: true, CustomBackground: custom}
	return b
}

// WithOption records a picked option for a category
func (b *DocumentBuilder) WithOption(category string, option ddb.Option) *DocumentBuilder {
	opts := &b.doc.Character.Options
	switch category {
	case ddb.CategoryRace:
		opts.Race = append(opts.Race, option)
	case ddb.CategoryClass:
		opts.Class = append(opts.Class, option)
	case ddb.CategoryFeat:
		opts.Feat = append(opts.Feat, option)
	case ddb.CategoryBackground:
		opts.Background = append(opts.Background, option)
	}
	return b
}

// WithChoice records a choice selection for a category
func (b *DocumentBuilder) WithChoice(category string, choice ddb.CharacterChoice) *DocumentBuilder {
	choices := &b.doc.Character.Choices
	switch category {
	case ddb.CategoryRace:
		choices.Race = append(choices.Race, choice)
	case ddb.CategoryClass:
		choices.Class = append(choices.Class, choice)
	case ddb.CategoryFeat:
		choices.Feat = append(choices.Feat, choice)
	case ddb.CategoryBackground:
		choices.Background = append(choices.Background, choice)
	}
	return b
}

// WithChoiceDefinition adds a shared choice definition
func (b *DocumentBuilder) WithChoiceDefinition(def ddb.ChoiceDefinition) *DocumentBuilder {
	b.doc.Character.Choices.ChoiceDefinitions = append(b.doc.Character.Choices.ChoiceDefinitions, def)
	return b
}

// Build returns the built document
func (b *DocumentBuilder) Build() *ddb.Document {
	return b.doc
}
