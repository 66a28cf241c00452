package pruner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reduce/internal/adapters/chef"
	"go.trai.ch/reduce/internal/adapters/logger"
	"go.trai.ch/reduce/internal/core/ports"
)

// NodeID identifies the Reducer Graft node.
const NodeID graft.ID = "engine.reducer"

func init() {
	graft.Register(graft.Node[*Reducer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{chef.CodecNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Reducer, error) {
			codec, err := graft.Dep[ports.RecipeCodec](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReducer(codec, log), nil
		},
	})
}
