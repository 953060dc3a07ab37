// Package ddb holds the raw character-sheet document model as it is exported by D&D Beyond.
// Types mirror the JSON payload; nothing here interprets the data.
package ddb

// Document is the top-level payload handed to the importer
type Document struct {
	Character Character `json:"character"`

	// ClassOptions carries the definitions of optional class features the
	// character has taken. It lives next to the character, not inside it.
	ClassOptions []Trait `json:"classOptions,omitempty"`
}

// Character is the character-sheet section of a document
type Character struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Race       Race           `json:"race"`
	Classes    []Class        `json:"classes"`
	Feats      []Trait        `json:"feats"`
	Background BackgroundInfo `json:"background"`

	OptionalClassFeatures []OptionalFeature `json:"optionalClassFeatures"`
	OptionalOrigins       []OptionalFeature `json:"optionalOrigins"`

	Options Options `json:"options"`
	Choices Choices `json:"choices"`
}

// Race holds the character's race and its traits
type Race struct {
	FullName     string  `json:"fullName"`
	BaseName     string  `json:"baseName"`
	RacialTraits []Trait `json:"racialTraits"`
}

// Class is one class the character has levels in
type Class struct {
	ID                 int64            `json:"id"`
	Level              int              `json:"level"`
	IsStartingClass    bool             `json:"isStartingClass"`
	Definition         *ClassDefinition `json:"definition"`
	SubclassDefinition *ClassDefinition `json:"subclassDefinition,omitempty"`

	// ClassFeatures are the per-character feature components, carrying the
	// level scale and limited use data for the current level.
	ClassFeatures []Component `json:"classFeatures,omitempty"`
}

// ClassDefinition describes a class or subclass and its feature list
type ClassDefinition struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	ClassFeatures []Trait     `json:"classFeatures"`
	Sources       []SourceRef `json:"sources,omitempty"`
}

// OptionalFeature marks an optional class feature or origin the character has chosen.
// The affected ids name the standard feature it replaces.
type OptionalFeature struct {
	ClassFeatureID         int64  `json:"classFeatureId,omitempty"`
	AffectedClassFeatureID int64  `json:"affectedClassFeatureId,omitempty"`
	RacialTraitID          int64  `json:"racialTraitId,omitempty"`
	AffectedRacialTraitID  int64  `json:"affectedRacialTraitId,omitempty"`
	DefinitionKey          string `json:"definitionKey,omitempty"`
}

// TotalLevel is the sum of levels across every class
func (c *Character) TotalLevel() int {
	total := 0
	for _, class := range c.Classes {
		total += class.Level
	}
	return total
}

// ClassByDefinitionID returns the character's class with the given definition id, or nil
func (c *Character) ClassByDefinitionID(id int64) *Class {
	for i := range c.Classes {
		if c.Classes[i].Definition != nil && c.Classes[i].Definition.ID == id {
			return &c.Classes[i]
		}
	}
	return nil
}
