package engine

import (
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// ParseFeaturesInput contains the document to import
type ParseFeaturesInput struct {
	Document *ddb.Document
}

// ParseFeaturesOutput contains the feature records in collection order
type ParseFeaturesOutput struct {
	Features []*foundry.Feature
}
