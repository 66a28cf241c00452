// Package config provides the optional reduce.yaml defaults file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/reduce/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "reduce.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
// The file only supplies defaults; command-line flags always win.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads reduce.yaml from the given working directory. A missing file is
// not an error and yields an empty request.
func (l *FileConfigLoader) Load(cwd string) (*domain.ReduceRequest, error) {
	path := filepath.Join(cwd, l.Filename)

	//nolint:gosec // Path is the working directory's config file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.ReduceRequest{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file reduceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return &domain.ReduceRequest{
		RecipeIn:  file.RecipePathIn,
		RecipeOut: file.RecipePathOut,
		Targets:   file.TargetMembers,
	}, nil
}
