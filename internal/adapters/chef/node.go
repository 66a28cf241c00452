package chef

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reduce/internal/core/ports"
)

const (
	// StoreNodeID identifies the recipe file store Graft node.
	StoreNodeID graft.ID = "adapter.recipe_store"
	// CodecNodeID identifies the recipe codec Graft node.
	CodecNodeID graft.ID = "adapter.recipe_codec"
)

func init() {
	graft.Register(graft.Node[ports.RecipeStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RecipeStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.RecipeCodec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RecipeCodec, error) {
			return NewCodec(), nil
		},
	})
}
