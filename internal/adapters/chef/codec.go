package chef

import (
	"path"
	"slices"

	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/reduce/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecipeCodec = (*Codec)(nil)

// Codec implements ports.RecipeCodec for cargo-chef recipes.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Workspace parses the recipe's embedded manifests and lockfile into the
// workspace model. A manifest with a [package].name is a workspace member;
// the root Cargo.toml may or may not be one (virtual workspaces are not).
func (c *Codec) Workspace(rec *domain.Recipe) (*domain.Workspace, error) {
	if len(rec.Skeleton.Manifests) == 0 {
		return nil, zerr.Wrap(domain.ErrMalformedRecipe, "recipe has no manifests")
	}

	root := -1
	for i, m := range rec.Skeleton.Manifests {
		if m.RelativePath == domain.RootManifestPath {
			root = i
			break
		}
	}
	if root < 0 {
		return nil, zerr.Wrap(domain.ErrMalformedRecipe, "recipe has no root Cargo.toml")
	}

	if rec.Skeleton.LockFile == nil {
		return nil, zerr.Wrap(domain.ErrMalformedRecipe, "recipe has no lockfile")
	}

	var members []domain.WorkspaceMember
	for i, m := range rec.Skeleton.Manifests {
		doc, err := parseManifest(m.Contents)
		if err != nil {
			return nil, zerr.With(err, "manifest", m.RelativePath)
		}
		if doc.Package == nil || doc.Package.Name == "" {
			continue
		}
		members = append(members, domain.WorkspaceMember{
			Name:          domain.NewInternedString(doc.Package.Name),
			Path:          path.Dir(m.RelativePath),
			ManifestIndex: i,
			Dependencies:  declaredDependencies(doc),
		})
	}

	lockfile, err := decodeLockfile(*rec.Skeleton.LockFile)
	if err != nil {
		return nil, err
	}

	return domain.NewWorkspace(members, lockfile, root)
}

// Apply writes the pruned model back into the recipe. Manifests of dropped
// members are removed, the root manifest's member list is rewritten to the
// kept members' paths, and the pruned lockfile is re-serialized. Kept member
// manifests stay byte-identical; only workspace membership is pruned, never
// the dependency declarations inside a kept manifest.
func (c *Codec) Apply(rec *domain.Recipe, ws *domain.Workspace, kept domain.MemberSet) error {
	keep := make([]bool, len(rec.Skeleton.Manifests))
	keep[ws.RootManifest] = true

	var keptPaths []string
	for _, m := range ws.Members {
		if !kept.Has(m.Name) {
			continue
		}
		keep[m.ManifestIndex] = true
		if m.Path != "." {
			keptPaths = append(keptPaths, m.Path)
		}
	}
	slices.Sort(keptPaths)

	rewritten, err := rewriteRootMembers(rec.Skeleton.Manifests[ws.RootManifest].Contents, keptPaths)
	if err != nil {
		return err
	}
	rec.Skeleton.Manifests[ws.RootManifest].Contents = rewritten

	manifests := make([]domain.Manifest, 0, len(rec.Skeleton.Manifests))
	for i, m := range rec.Skeleton.Manifests {
		if keep[i] {
			manifests = append(manifests, m)
		}
	}
	rec.Skeleton.Manifests = manifests

	lock, err := encodeLockfile(ws.Lockfile)
	if err != nil {
		return err
	}
	rec.Skeleton.LockFile = &lock

	return nil
}
