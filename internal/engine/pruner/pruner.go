// Package pruner implements the recipe reduction pipeline.
package pruner

import (
	"fmt"

	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/reduce/internal/core/ports"
)

// Stats summarizes one reduction.
type Stats struct {
	KeptMembers        int
	DroppedMembers     int
	RemovedLockEntries int
}

// Reducer runs the reduction pipeline over a parsed recipe: build the
// workspace model, derive the member dependency graph, compute the closure
// from the targets, prune the lockfile, and write the pruned model back.
// The stages run strictly in sequence; the recipe is mutated in place and is
// only valid to serialize when Reduce returns nil.
type Reducer struct {
	codec ports.RecipeCodec
	log   ports.Logger
}

// NewReducer creates a new Reducer.
func NewReducer(codec ports.RecipeCodec, log ports.Logger) *Reducer {
	return &Reducer{codec: codec, log: log}
}

// Reduce prunes the recipe down to the members reachable from targets.
func (r *Reducer) Reduce(rec *domain.Recipe, targets []string) (Stats, error) {
	var stats Stats

	ws, err := r.codec.Workspace(rec)
	if err != nil {
		return stats, err
	}

	graph := domain.BuildGraph(ws)

	kept, err := graph.Reachable(targets)
	if err != nil {
		return stats, err
	}
	stats.KeptMembers = len(kept)
	stats.DroppedMembers = len(ws.Members) - len(kept)

	lockStats, err := ws.Lockfile.Prune(ws, kept)
	if err != nil {
		return stats, err
	}
	stats.RemovedLockEntries = lockStats.RemovedPackages
	if lockStats.TrimmedExternalRefs > 0 {
		// External crates never depend on workspace members in practice;
		// seeing this means the input lockfile was already odd.
		r.log.Warn(fmt.Sprintf(
			"trimmed %d dangling workspace references from external lockfile entries",
			lockStats.TrimmedExternalRefs,
		))
	}

	if err := r.codec.Apply(rec, ws, kept); err != nil {
		return stats, err
	}

	return stats, nil
}
