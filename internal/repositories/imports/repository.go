// Package imports provides the interface for import result persistence
package imports

//go:generate mockgen -destination=mock/mock_repository.go -package=importsmock github.com/KirkDiggler/rpg-importer/internal/repositories/imports Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
)

// Repository defines the interface for import persistence
type Repository interface {
	// Create stores a new import
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an import with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an import by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the import doesn't exist or has expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByCharacter retrieves the imports of a character, newest first
	// Returns errors.InvalidArgument for an empty character ID
	// Returns errors.Internal for storage failures
	ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error)
}

// CreateInput defines the input for storing an import
type CreateInput struct {
	Import *entities.Import
}

// CreateOutput defines the output for storing an import
type CreateOutput struct {
	Import *entities.Import
}

// GetInput defines the input for getting an import
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an import
type GetOutput struct {
	Import *entities.Import
}

// ListByCharacterInput defines the input for listing a character's imports
type ListByCharacterInput struct {
	CharacterID int64
	// Limit caps the number of imports returned; zero returns all
	Limit int
}

// ListByCharacterOutput defines the output for listing a character's imports
type ListByCharacterOutput struct {
	Imports []*entities.Import
}
