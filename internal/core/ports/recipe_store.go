// Package ports defines the interfaces between the core and the adapters.
package ports

import "go.trai.ch/reduce/internal/core/domain"

// RecipeStore reads and writes recipe JSON files.
//
//go:generate go run go.uber.org/mock/mockgen -source=recipe_store.go -destination=mocks/mock_recipe_store.go -package=mocks
type RecipeStore interface {
	// Load reads and parses the recipe at path. The returned digest is a
	// content hash of the raw bytes read.
	Load(path string) (*domain.Recipe, string, error)

	// Save serializes the recipe and writes it to path, returning a content
	// hash of the bytes written. Nothing is written on serialization failure.
	Save(path string, rec *domain.Recipe) (string, error)
}
