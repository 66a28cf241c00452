package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reduce/internal/adapters/chef"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reduce/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/reduce/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/reduce/internal/core/ports"
	"go.trai.ch/reduce/internal/engine/pruner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			chef.StoreNodeID,
			pruner.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			store, err := graft.Dep[ports.RecipeStore](ctx)
			if err != nil {
				return nil, err
			}

			reducer, err := graft.Dep[*pruner.Reducer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, reducer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
