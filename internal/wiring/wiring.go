// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reduce/internal/adapters/chef"
	_ "go.trai.ch/reduce/internal/adapters/config"
	_ "go.trai.ch/reduce/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/reduce/internal/app"
	_ "go.trai.ch/reduce/internal/engine/pruner"
)
