package chef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/reduce/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecipeStore = (*Store)(nil)

// Store implements ports.RecipeStore on the local filesystem. It reports an
// XXHash digest of the bytes it reads and writes; the whole point of reducing
// a recipe is Docker layer caching, so making the cache key visible in the
// log is worth the one extra pass.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the recipe JSON at path.
func (s *Store) Load(path string) (*domain.Recipe, string, error) {
	//nolint:gosec // Path is provided by the user on the command line
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrIO, "failed to read input recipe"), "path", path),
			"cause", err.Error(),
		)
	}

	var rec domain.Recipe
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrMalformedRecipe, "recipe is not valid JSON"), "path", path),
			"cause", err.Error(),
		)
	}

	return &rec, digest(data), nil
}

// Save serializes the recipe and writes it to path. On any failure nothing
// is written; a partially reduced recipe is never safe to emit.
func (s *Store) Save(path string, rec *domain.Recipe) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize reduced recipe")
	}

	//nolint:gosec // Recipe files are meant to be readable by later build stages
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrIO, "failed to write reduced recipe"), "path", path),
			"cause", err.Error(),
		)
	}

	return digest(data), nil
}

func digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
