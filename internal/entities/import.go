// Package entities provides the stored records of the importer
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// Import is the stored result of one feature import
type Import struct {
	ID            string             `json:"id"`
	CharacterID   int64              `json:"character_id"`
	CharacterName string             `json:"character_name"`
	Features      []*foundry.Feature `json:"features"`
	CreatedAt     time.Time          `json:"created_at"`
	ExpiresAt     time.Time          `json:"expires_at,omitempty"`
}

// FeatureCounts returns the number of features per category
func (i *Import) FeatureCounts() map[foundry.Category]int {
	counts := make(map[foundry.Category]int)
	for _, f := range i.Features {
		counts[f.Category()]++
	}
	return counts
}
