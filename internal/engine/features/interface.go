package features

//go:generate mockgen -destination=mock/mock_collaborators.go -package=featuresmock github.com/KirkDiggler/rpg-importer/internal/engine/features Renderer,Fixups,Lookup

import (
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// Renderer expands template markup embedded in snippet and description text.
// Implementations must be side-effect free.
type Renderer interface {
	Render(doc *ddb.Document, text string, trait Trait) string
}

// Fixups attaches mechanical effects and normalizes finished records
type Fixups interface {
	// StripHTML removes markup, leaving the text content
	StripHTML(html string) string

	// AddEffects attaches effects for the trait (and choice, when not nil) to the
	// feature. The returned feature replaces the one passed in.
	AddEffects(doc *ddb.Document, trait Trait, feature *foundry.Feature, choice *Choice, category foundry.Category) *foundry.Feature

	// FixFeatures mutates the completed feature list in place
	FixFeatures(features []*foundry.Feature)
}

// Lookup resolves data from the document that the engine does not interpret itself
type Lookup interface {
	// Background returns the character's background as a trait
	// Returns errors.FailedPrecondition when the document has no background
	Background(doc *ddb.Document) (*ddb.Trait, error)

	// Template returns a blank data skeleton for a new feature
	Template(category foundry.Category) foundry.FeatureData

	// Source returns the rulebook label for a definition
	Source(def *ddb.TraitDefinition) string

	// Choices returns the choices the player made for the trait
	Choices(doc *ddb.Document, category foundry.Category, trait Trait) []Choice

	// Component returns the per-character component for an id, or nil
	Component(doc *ddb.Document, componentID int64) *ddb.Component
}

// Choice is a player-selected sub-option of a trait
type Choice struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}
