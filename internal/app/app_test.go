package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reduce/internal/adapters/chef"
	"go.trai.ch/reduce/internal/app"
	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/reduce/internal/core/ports/mocks"
	"go.trai.ch/reduce/internal/engine/pruner"
	"go.trai.ch/reduce/internal/testutil"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) (*app.App, *mocks.MockRecipeStore, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecipeStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	return app.New(store, pruner.NewReducer(chef.NewCodec(), logger), logger), store, logger
}

func TestRun(t *testing.T) {
	a, store, logger := newApp(t)
	rec := testutil.Recipe(
		testutil.Crate{Name: "api", PathDeps: []string{"shared"}},
		testutil.Crate{Name: "shared"},
		testutil.Crate{Name: "worker"},
	)

	store.EXPECT().Load("recipe.json").Return(rec, "aaaa", nil)
	store.EXPECT().Save("recipe-reduced.json", rec).Return("bbbb", nil)
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "kept 2 members")
		assert.Contains(t, msg, "aaaa")
		assert.Contains(t, msg, "bbbb")
	})

	err := a.Run(context.Background(), domain.ReduceRequest{
		RecipeIn:  "recipe.json",
		RecipeOut: "recipe-reduced.json",
		Targets:   []string{"api"},
	})
	require.NoError(t, err)
}

func TestRun_NoTargets(t *testing.T) {
	a, _, _ := newApp(t)

	err := a.Run(context.Background(), domain.ReduceRequest{
		RecipeIn:  "recipe.json",
		RecipeOut: "out.json",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoTargetMember)
}

func TestRun_LoadFailure(t *testing.T) {
	a, store, _ := newApp(t)

	store.EXPECT().Load("recipe.json").Return(nil, "", zerr.Wrap(domain.ErrIO, "failed to read input recipe"))

	err := a.Run(context.Background(), domain.ReduceRequest{
		RecipeIn:  "recipe.json",
		RecipeOut: "out.json",
		Targets:   []string{"api"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestRun_UnknownTargetSkipsSave(t *testing.T) {
	a, store, _ := newApp(t)
	rec := testutil.Recipe(testutil.Crate{Name: "api"})

	store.EXPECT().Load("recipe.json").Return(rec, "aaaa", nil)

	err := a.Run(context.Background(), domain.ReduceRequest{
		RecipeIn:  "recipe.json",
		RecipeOut: "out.json",
		Targets:   []string{"nope"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTarget)
}

func TestRun_SaveFailure(t *testing.T) {
	a, store, _ := newApp(t)
	rec := testutil.Recipe(testutil.Crate{Name: "api"})

	store.EXPECT().Load("recipe.json").Return(rec, "aaaa", nil)
	store.EXPECT().Save("out.json", rec).Return("", zerr.Wrap(domain.ErrIO, "failed to write reduced recipe"))

	err := a.Run(context.Background(), domain.ReduceRequest{
		RecipeIn:  "recipe.json",
		RecipeOut: "out.json",
		Targets:   []string{"api"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}
