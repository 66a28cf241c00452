// Package chef implements the cargo-chef recipe codec: JSON file I/O and the
// TOML introspection and rewrite of the embedded Cargo.toml and Cargo.lock
// documents.
package chef

import (
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/zerr"
)

// manifestDoc captures the parts of a Cargo.toml the reducer inspects.
// Everything else in a member manifest is irrelevant here and stays untouched
// because member manifests are carried as raw strings.
type manifestDoc struct {
	Package           *packageSection   `toml:"package"`
	Workspace         *workspaceSection `toml:"workspace"`
	Dependencies      map[string]any    `toml:"dependencies"`
	DevDependencies   map[string]any    `toml:"dev-dependencies"`
	BuildDependencies map[string]any    `toml:"build-dependencies"`
}

type packageSection struct {
	Name string `toml:"name"`
}

type workspaceSection struct {
	Members []string `toml:"members"`
}

func parseManifest(contents string) (*manifestDoc, error) {
	var doc manifestDoc
	if err := toml.Unmarshal([]byte(contents), &doc); err != nil {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrMalformedRecipe, "manifest is not valid TOML"),
			"cause", err.Error(),
		)
	}
	return &doc, nil
}

// declaredDependencies collects every name the manifest declares across the
// normal, dev, and build dependency tables, with a source hint per entry.
// Target-specific tables ([target.'cfg(...)'.dependencies]) are out of scope;
// conditional compilation is not modeled.
func declaredDependencies(doc *manifestDoc) []domain.Dependency {
	var deps []domain.Dependency
	for _, table := range []map[string]any{
		doc.Dependencies,
		doc.DevDependencies,
		doc.BuildDependencies,
	} {
		for name, spec := range table {
			deps = append(deps, domain.Dependency{
				Name: domain.NewInternedString(name),
				Hint: classifyDependency(spec),
			})
		}
	}
	slices.SortFunc(deps, func(a, b domain.Dependency) int {
		switch as, bs := a.Name.String(), b.Name.String(); {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	})
	return deps
}

// classifyDependency reads the source information out of a dependency spec.
// A bare string is a registry version requirement. A table with a path points
// into the workspace; git, registry, or version keys point outside it; a
// table with none of those (typically `workspace = true`) says nothing.
func classifyDependency(spec any) domain.SourceHint {
	switch spec := spec.(type) {
	case string:
		return domain.HintExternal
	case map[string]any:
		if _, ok := spec["path"]; ok {
			return domain.HintPath
		}
		for _, key := range []string{"git", "registry", "registry-index", "version"} {
			if _, ok := spec[key]; ok {
				return domain.HintExternal
			}
		}
		return domain.HintUnspecified
	default:
		return domain.HintUnspecified
	}
}

// rewriteRootMembers re-emits the root manifest with its [workspace].members
// array replaced by the kept member paths. A root manifest without a
// workspace table is returned unchanged. The document is re-serialized from
// its parsed form, so formatting is normalized; go-toml emits deterministic
// output, which keeps repeated reductions byte-stable.
func rewriteRootMembers(contents string, members []string) (string, error) {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(contents), &doc); err != nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrMalformedRecipe, "root manifest is not valid TOML"),
			"cause", err.Error(),
		)
	}

	workspace, ok := doc["workspace"].(map[string]any)
	if !ok {
		return contents, nil
	}
	if members == nil {
		members = []string{}
	}
	workspace["members"] = members

	out, err := toml.Marshal(doc)
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize root manifest")
	}
	return string(out), nil
}
