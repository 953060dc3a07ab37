package ddb

// Trait is a racial trait, class feature, optional feature, feat or background.
// The same concept arrives in two shapes: fields set directly on the trait, or
// nested under Definition. Consumers should normalize before reading.
type Trait struct {
	ID               int64            `json:"id,omitempty"`
	Name             string           `json:"name,omitempty"`
	Snippet          string           `json:"snippet,omitempty"`
	Description      string           `json:"description,omitempty"`
	RequiredLevel    int              `json:"requiredLevel,omitempty"`
	DisplayOrder     int              `json:"displayOrder,omitempty"`
	EntityTypeID     int64            `json:"entityTypeId,omitempty"`
	ClassID          int64            `json:"classId,omitempty"`
	ComponentID      int64            `json:"componentId,omitempty"`
	ComponentTypeID  int64            `json:"componentTypeId,omitempty"`
	Sources          []SourceRef      `json:"sources,omitempty"`
	SourceID         int64            `json:"sourceId,omitempty"`
	SourcePageNumber int              `json:"sourcePageNumber,omitempty"`
	Definition       *TraitDefinition `json:"definition,omitempty"`
}

// TraitDefinition is the nested definition of a trait
type TraitDefinition struct {
	ID               int64       `json:"id,omitempty"`
	Name             string      `json:"name,omitempty"`
	Snippet          string      `json:"snippet,omitempty"`
	Description      string      `json:"description,omitempty"`
	RequiredLevel    int         `json:"requiredLevel,omitempty"`
	DisplayOrder     int         `json:"displayOrder,omitempty"`
	EntityTypeID     int64       `json:"entityTypeId,omitempty"`
	ClassID          int64       `json:"classId,omitempty"`
	HideInSheet      bool        `json:"hideInSheet,omitempty"`
	Sources          []SourceRef `json:"sources,omitempty"`
	SourceID         int64       `json:"sourceId,omitempty"`
	SourcePageNumber int         `json:"sourcePageNumber,omitempty"`
}

// SourceRef points at a rulebook and page
type SourceRef struct {
	SourceID   int64 `json:"sourceId"`
	PageNumber int   `json:"pageNumber,omitempty"`
}

// SourceDefinition returns the definition used for source resolution: the nested
// definition when present, otherwise one assembled from the bare fields.
func (t *Trait) SourceDefinition() *TraitDefinition {
	if t.Definition != nil {
		return t.Definition
	}
	return &TraitDefinition{
		ID:               t.ID,
		Name:             t.Name,
		Sources:          t.Sources,
		SourceID:         t.SourceID,
		SourcePageNumber: t.SourcePageNumber,
	}
}
