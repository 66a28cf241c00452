package chef

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reduce/internal/core/domain"
)

const memberManifest = `[package]
name = "api"
version = "0.1.0"
edition = "2021"

[dependencies]
shared = { path = "../shared" }
serde = { version = "1.0", features = ["derive"] }
tokio = "1.38"
common = { workspace = true }

[dev-dependencies]
testkit = { path = "../testkit" }

[build-dependencies]
prost-build = "0.12"
`

func TestParseManifest_Member(t *testing.T) {
	doc, err := parseManifest(memberManifest)
	require.NoError(t, err)
	require.NotNil(t, doc.Package)
	assert.Equal(t, "api", doc.Package.Name)
}

func TestParseManifest_Invalid(t *testing.T) {
	_, err := parseManifest("[package\nname=")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRecipe)
}

func TestDeclaredDependencies_AllTablesSorted(t *testing.T) {
	doc, err := parseManifest(memberManifest)
	require.NoError(t, err)

	deps := declaredDependencies(doc)
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name.String())
	}
	assert.Equal(t, []string{"common", "prost-build", "serde", "shared", "testkit", "tokio"}, names)
}

func TestClassifyDependency(t *testing.T) {
	tests := []struct {
		name string
		spec any
		want domain.SourceHint
	}{
		{name: "bare version string", spec: "1.0", want: domain.HintExternal},
		{name: "path table", spec: map[string]any{"path": "../foo"}, want: domain.HintPath},
		{name: "path wins over version", spec: map[string]any{"path": "../foo", "version": "0.1"}, want: domain.HintPath},
		{name: "git table", spec: map[string]any{"git": "https://example.com/foo"}, want: domain.HintExternal},
		{name: "registry table", spec: map[string]any{"registry": "internal", "version": "2"}, want: domain.HintExternal},
		{name: "version table", spec: map[string]any{"version": "1.0", "features": []any{"derive"}}, want: domain.HintExternal},
		{name: "workspace inheritance", spec: map[string]any{"workspace": true}, want: domain.HintUnspecified},
		{name: "empty table", spec: map[string]any{}, want: domain.HintUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyDependency(tt.spec))
		})
	}
}

func TestRewriteRootMembers(t *testing.T) {
	root := `[workspace]
members = ["api", "shared", "worker"]
resolver = "2"

[workspace.dependencies]
serde = "1.0"
`
	out, err := rewriteRootMembers(root, []string{"api", "shared"})
	require.NoError(t, err)

	var doc struct {
		Workspace struct {
			Members  []string `toml:"members"`
			Resolver string   `toml:"resolver"`
		} `toml:"workspace"`
	}
	require.NoError(t, toml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"api", "shared"}, doc.Workspace.Members)
	assert.Equal(t, "2", doc.Workspace.Resolver)
	assert.Contains(t, out, "serde")
}

func TestRewriteRootMembers_NoMembersLeft(t *testing.T) {
	out, err := rewriteRootMembers("[workspace]\nmembers = [\"api\"]\n", nil)
	require.NoError(t, err)

	var doc struct {
		Workspace struct {
			Members []string `toml:"members"`
		} `toml:"workspace"`
	}
	require.NoError(t, toml.Unmarshal([]byte(out), &doc))
	assert.Empty(t, doc.Workspace.Members)
}

func TestRewriteRootMembers_NoWorkspaceTable(t *testing.T) {
	root := "[package]\nname = \"solo\"\nversion = \"0.1.0\"\n"
	out, err := rewriteRootMembers(root, []string{"solo"})
	require.NoError(t, err)
	assert.Equal(t, root, out)
}

func TestRewriteRootMembers_Stable(t *testing.T) {
	root := `[workspace]
members = ["api", "shared"]

[workspace.dependencies]
serde = "1.0"
anyhow = "1"
`
	first, err := rewriteRootMembers(root, []string{"api"})
	require.NoError(t, err)
	second, err := rewriteRootMembers(first, []string{"api"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
