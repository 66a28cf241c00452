package chef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/reduce/internal/testutil"
)

func TestCodec_Workspace(t *testing.T) {
	rec := testutil.Recipe(
		testutil.Crate{Name: "api", PathDeps: []string{"shared"}, Registry: []string{"serde"}},
		testutil.Crate{Name: "shared"},
	)

	ws, err := NewCodec().Workspace(rec)
	require.NoError(t, err)

	require.Len(t, ws.Members, 2)
	api := ws.Members[0]
	assert.Equal(t, "api", api.Name.String())
	assert.Equal(t, "api", api.Path)
	assert.Equal(t, 1, api.ManifestIndex)
	require.Len(t, api.Dependencies, 2)

	// Virtual root manifest has no [package], so it is not a member.
	assert.Equal(t, 0, ws.RootManifest)
	assert.False(t, ws.HasMember(domain.NewInternedString("")))

	require.NotNil(t, ws.Lockfile)
	assert.Equal(t, 4, ws.Lockfile.Version)
	assert.Len(t, ws.Lockfile.Packages, 3)
}

func TestCodec_Workspace_RootIsMember(t *testing.T) {
	rec := testutil.Recipe(testutil.Crate{Name: "lib"})
	rec.Skeleton.Manifests[0].Contents = "[package]\nname = \"root\"\nversion = \"0.1.0\"\n\n[workspace]\nmembers = [\"lib\"]\n"
	lock := *rec.Skeleton.LockFile + "\n[[package]]\nname = \"root\"\nversion = \"0.1.0\"\n"
	rec.Skeleton.LockFile = &lock

	ws, err := NewCodec().Workspace(rec)
	require.NoError(t, err)
	assert.True(t, ws.HasMember(domain.NewInternedString("root")))
	i, ok := ws.Member(domain.NewInternedString("root"))
	require.True(t, ok)
	assert.Equal(t, ".", ws.Members[i].Path)
}

func TestCodec_Workspace_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		wreck func(rec *domain.Recipe)
	}{
		{
			name:  "no manifests",
			wreck: func(rec *domain.Recipe) { rec.Skeleton.Manifests = nil },
		},
		{
			name:  "no root manifest",
			wreck: func(rec *domain.Recipe) { rec.Skeleton.Manifests = rec.Skeleton.Manifests[1:] },
		},
		{
			name:  "no lockfile",
			wreck: func(rec *domain.Recipe) { rec.Skeleton.LockFile = nil },
		},
		{
			name:  "manifest is not TOML",
			wreck: func(rec *domain.Recipe) { rec.Skeleton.Manifests[1].Contents = "[package\n" },
		},
		{
			name: "lockfile is not TOML",
			wreck: func(rec *domain.Recipe) {
				bad := "version = [[["
				rec.Skeleton.LockFile = &bad
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.Recipe(testutil.Crate{Name: "api"})
			tt.wreck(rec)
			_, err := NewCodec().Workspace(rec)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedRecipe)
		})
	}
}

func TestCodec_Workspace_DuplicateMemberName(t *testing.T) {
	rec := testutil.Recipe(testutil.Crate{Name: "api"})
	rec.Skeleton.Manifests = append(rec.Skeleton.Manifests, domain.Manifest{
		RelativePath: "other/Cargo.toml",
		Contents:     "[package]\nname = \"api\"\nversion = \"0.2.0\"\n",
	})

	_, err := NewCodec().Workspace(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRecipe)
}

func TestCodec_Apply(t *testing.T) {
	rec := testutil.Recipe(
		testutil.Crate{Name: "api", PathDeps: []string{"shared"}, Registry: []string{"serde"}},
		testutil.Crate{Name: "shared"},
		testutil.Crate{Name: "worker", Registry: []string{"itoa"}},
	)
	apiManifest := rec.Skeleton.Manifests[1].Contents

	codec := NewCodec()
	ws, err := codec.Workspace(rec)
	require.NoError(t, err)

	kept := domain.MemberSet{
		domain.NewInternedString("api"):    {},
		domain.NewInternedString("shared"): {},
	}
	_, err = ws.Lockfile.Prune(ws, kept)
	require.NoError(t, err)
	require.NoError(t, codec.Apply(rec, ws, kept))

	paths := make([]string, 0, len(rec.Skeleton.Manifests))
	for _, m := range rec.Skeleton.Manifests {
		paths = append(paths, m.RelativePath)
	}
	assert.Equal(t, []string{"Cargo.toml", "api/Cargo.toml", "shared/Cargo.toml"}, paths)

	// Kept member manifests are untouched.
	assert.Equal(t, apiManifest, rec.Skeleton.Manifests[1].Contents)

	// Root member list is rewritten to the kept paths.
	root, err := parseManifest(rec.Skeleton.Manifests[0].Contents)
	require.NoError(t, err)
	require.NotNil(t, root.Workspace)
	assert.Equal(t, []string{"api", "shared"}, root.Workspace.Members)

	// Lockfile drops the pruned member but keeps externals.
	require.NotNil(t, rec.Skeleton.LockFile)
	lf, err := decodeLockfile(*rec.Skeleton.LockFile)
	require.NoError(t, err)
	names := make([]string, 0, len(lf.Packages))
	for _, p := range lf.Packages {
		names = append(names, p.Name.String())
	}
	assert.NotContains(t, names, "worker")
	assert.Contains(t, names, "itoa")
}
