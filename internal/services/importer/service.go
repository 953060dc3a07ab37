// Package importer defines the interface for feature import operations
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/rpg-importer/internal/services/importer Service

import (
	"context"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
)

// Service defines the interface for feature import operations
type Service interface {
	// ImportFeatures turns a character document into feature records and,
	// when a store is configured, keeps the result
	ImportFeatures(ctx context.Context, input *ImportFeaturesInput) (*ImportFeaturesOutput, error)

	// GetImport returns a stored import
	GetImport(ctx context.Context, input *GetImportInput) (*GetImportOutput, error)

	// ListImports returns the stored imports of a character, newest first
	ListImports(ctx context.Context, input *ListImportsInput) (*ListImportsOutput, error)
}

// ImportFeaturesInput defines the request for importing features
type ImportFeaturesInput struct {
	Document *ddb.Document
}

// ImportFeaturesOutput defines the response for importing features
type ImportFeaturesOutput struct {
	Import *entities.Import
	// Stored is false when no store is configured
	Stored bool
}

// GetImportInput defines the request for getting an import
type GetImportInput struct {
	ImportID string
}

// GetImportOutput defines the response for getting an import
type GetImportOutput struct {
	Import *entities.Import
}

// ListImportsInput defines the request for listing a character's imports
type ListImportsInput struct {
	CharacterID int64
	Limit       int
}

// ListImportsOutput defines the response for listing a character's imports
type ListImportsOutput struct {
	Imports []*entities.Import
}
