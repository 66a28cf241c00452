package ports

import "go.trai.ch/reduce/internal/core/domain"

// RecipeCodec translates between the recipe wire form and the workspace
// model: TOML introspection of the embedded manifests and lockfile on the way
// in, and the consistent rewrite of both on the way out.
//
//go:generate go run go.uber.org/mock/mockgen -source=recipe_codec.go -destination=mocks/mock_recipe_codec.go -package=mocks
type RecipeCodec interface {
	// Workspace parses the recipe's manifests and lockfile into the
	// workspace model. Returns domain.ErrMalformedRecipe when the recipe is
	// missing its root manifest or lockfile, a manifest is not valid TOML,
	// or member names collide.
	Workspace(rec *domain.Recipe) (*domain.Workspace, error)

	// Apply writes the pruned model back into the recipe: drops manifests of
	// members outside kept, rewrites the root manifest's member list, and
	// re-serializes the pruned lockfile. Kept member manifests are left
	// byte-identical.
	Apply(rec *domain.Recipe, ws *domain.Workspace, kept domain.MemberSet) error
}
