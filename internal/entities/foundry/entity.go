package foundry

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// FeatureEntity wraps a Feature to implement core.Entity
type FeatureEntity struct {
	*Feature
}

// GetID returns the source id of the feature, qualified by its name so that
// choice records expanded from one trait stay distinct
func (e *FeatureEntity) GetID() string {
	return strconv.FormatInt(e.Flags.ID, 10) + ":" + e.Name
}

// GetType returns the entity type for rpg-toolkit
func (e *FeatureEntity) GetType() string {
	return "feature_" + e.Flags.Type.String()
}

// AsEntities wraps features for consumers that work with core.Entity
func AsEntities(features []*Feature) []core.Entity {
	out := make([]core.Entity, 0, len(features))
	for _, f := range features {
		out = append(out, &FeatureEntity{Feature: f})
	}
	return out
}

// Compile-time check that the wrapper implements core.Entity
var _ core.Entity = (*FeatureEntity)(nil)
