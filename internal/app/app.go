// Package app implements the application layer for reduce.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/reduce/internal/core/ports"
	"go.trai.ch/reduce/internal/engine/pruner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store   ports.RecipeStore
	reducer *pruner.Reducer
	logger  ports.Logger
}

// New creates a new App instance.
func New(store ports.RecipeStore, reducer *pruner.Reducer, logger ports.Logger) *App {
	return &App{
		store:   store,
		reducer: reducer,
		logger:  logger,
	}
}

// Run executes one reduction: read the recipe, prune it to the requested
// targets, and write the result. The output file is only written after the
// whole reduction succeeded; any failure leaves it untouched.
func (a *App) Run(ctx context.Context, req domain.ReduceRequest) error {
	if len(req.Targets) == 0 {
		return domain.ErrNoTargetMember
	}

	rec, inDigest, err := a.store.Load(req.RecipeIn)
	if err != nil {
		return err
	}

	stats, err := a.reducer.Reduce(rec, req.Targets)
	if err != nil {
		return zerr.With(err, "recipe", req.RecipeIn)
	}

	outDigest, err := a.store.Save(req.RecipeOut, rec)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf(
		"reduced %s (%s) to %s (%s): kept %d members, dropped %d, removed %d lockfile entries",
		req.RecipeIn, inDigest, req.RecipeOut, outDigest,
		stats.KeptMembers, stats.DroppedMembers, stats.RemovedLockEntries,
	))
	return nil
}
