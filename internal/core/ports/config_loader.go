package ports

import "go.trai.ch/reduce/internal/core/domain"

// ConfigLoader supplies reduction defaults from an optional config file.
// Command-line flags take precedence over anything it returns.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads defaults from the given working directory. A missing config
	// file is not an error; it yields an empty request.
	Load(cwd string) (*domain.ReduceRequest, error)
}
