// Package engine declares the feature import engine
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-importer/internal/engine Engine

import (
	"context"
)

// Engine turns a character-sheet document into feature records
type Engine interface {
	// ParseFeatures runs every collection pass over the document and returns the
	// merged, deduplicated feature list.
	// Returns errors.InvalidArgument for a nil document or a class without a definition
	// Returns errors.FailedPrecondition when no background can be resolved
	ParseFeatures(ctx context.Context, input *ParseFeaturesInput) (*ParseFeaturesOutput, error)
}
