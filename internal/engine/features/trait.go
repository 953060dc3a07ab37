package features

import (
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
)

// Trait is the canonical shape of a source trait. Every ddb.Trait is normalized
// into a Trait once, so nothing downstream has to check both the bare fields and
// the nested definition.
type Trait struct {
	// ID identifies the trait definition
	ID int64
	// ComponentID is the id other records in the document use to reference the trait
	ComponentID int64

	Name          string
	Snippet       string
	Description   string
	RequiredLevel int
	DisplayOrder  int
	EntityTypeID  int64
	ClassID       int64
	Hidden        bool
}

// NormalizeTrait converts a raw trait into its canonical shape. Definition
// values win over bare ones, except for the ids used to link the trait to other
// records, where the bare value wins.
func NormalizeTrait(raw *ddb.Trait) Trait {
	if raw == nil {
		return Trait{}
	}

	t := Trait{
		ID:            raw.ID,
		ComponentID:   raw.ID,
		Name:          raw.Name,
		Snippet:       raw.Snippet,
		Description:   raw.Description,
		RequiredLevel: raw.RequiredLevel,
		DisplayOrder:  raw.DisplayOrder,
		EntityTypeID:  raw.EntityTypeID,
		ClassID:       raw.ClassID,
	}

	def := raw.Definition
	if def == nil {
		return t
	}

	t.ID = firstInt64(def.ID, raw.ID)
	t.ComponentID = firstInt64(raw.ID, def.ID)
	t.Name = firstString(def.Name, raw.Name)
	t.Snippet = firstString(def.Snippet, raw.Snippet)
	t.Description = firstString(def.Description, raw.Description)
	t.RequiredLevel = firstInt(def.RequiredLevel, raw.RequiredLevel)
	t.DisplayOrder = firstInt(def.DisplayOrder, raw.DisplayOrder)
	t.EntityTypeID = firstInt64(def.EntityTypeID, raw.EntityTypeID)
	t.ClassID = firstInt64(raw.ClassID, def.ClassID)
	t.Hidden = def.HideInSheet

	return t
}

// withChoice returns a copy of the trait specialized for one choice. When the
// choice carries its own description it is appended, under a heading of the
// choice label, to whichever of description and snippet the trait has.
func (t Trait) withChoice(choice Choice) Trait {
	out := t
	if choice.Description == "" {
		return out
	}

	addition := "<h3>" + choice.Label + "</h3>" + choice.Description
	if out.Description != "" {
		out.Description += addition
	}
	if out.Snippet != "" {
		out.Snippet += addition
	}
	return out
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstInt64(values ...int64) int64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
