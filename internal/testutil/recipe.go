// Package testutil builds synthetic cargo-chef recipes for tests.
package testutil

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/reduce/internal/core/domain"
)

// CratesIOSource is the registry source used for synthetic external crates.
const CratesIOSource = "registry+https://github.com/rust-lang/crates.io-index"

// Crate describes one synthetic workspace member.
type Crate struct {
	Name string

	// PathDeps are sibling members depended on via `{ path = "../<name>" }`.
	PathDeps []string

	// DevPathDeps are sibling members in [dev-dependencies].
	DevPathDeps []string

	// Registry are external crates depended on via a bare version string.
	Registry []string
}

// Recipe assembles a recipe with a virtual root manifest, one manifest per
// crate, and a lockfile that pins every member plus every distinct external
// crate, the way cargo-chef captures a real workspace.
func Recipe(crates ...Crate) *domain.Recipe {
	manifests := []domain.Manifest{{
		RelativePath: domain.RootManifestPath,
		Contents:     rootManifest(crates),
	}}
	for _, c := range crates {
		manifests = append(manifests, domain.Manifest{
			RelativePath: c.Name + "/Cargo.toml",
			Contents:     crateManifest(c),
		})
	}

	lock := lockfile(crates)
	return &domain.Recipe{Skeleton: domain.Skeleton{
		Manifests: manifests,
		LockFile:  &lock,
	}}
}

func rootManifest(crates []Crate) string {
	names := make([]string, 0, len(crates))
	for _, c := range crates {
		names = append(names, fmt.Sprintf("%q", c.Name))
	}
	return fmt.Sprintf("[workspace]\nmembers = [%s]\nresolver = \"2\"\n", strings.Join(names, ", "))
}

func crateManifest(c Crate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n", c.Name)

	if len(c.PathDeps) > 0 || len(c.Registry) > 0 {
		b.WriteString("\n[dependencies]\n")
		for _, dep := range c.PathDeps {
			fmt.Fprintf(&b, "%s = { path = \"../%s\" }\n", dep, dep)
		}
		for _, dep := range c.Registry {
			fmt.Fprintf(&b, "%s = \"1.0\"\n", dep)
		}
	}

	if len(c.DevPathDeps) > 0 {
		b.WriteString("\n[dev-dependencies]\n")
		for _, dep := range c.DevPathDeps {
			fmt.Fprintf(&b, "%s = { path = \"../%s\" }\n", dep, dep)
		}
	}

	return b.String()
}

func lockfile(crates []Crate) string {
	var b strings.Builder
	b.WriteString("version = 4\n")

	var external []string
	for _, c := range crates {
		for _, dep := range c.Registry {
			if !slices.Contains(external, dep) {
				external = append(external, dep)
			}
		}
	}
	slices.Sort(external)

	sorted := make([]Crate, len(crates))
	copy(sorted, crates)
	slices.SortFunc(sorted, func(a, b Crate) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, c := range sorted {
		deps := make([]string, 0, len(c.PathDeps)+len(c.DevPathDeps)+len(c.Registry))
		deps = append(deps, c.PathDeps...)
		deps = append(deps, c.DevPathDeps...)
		deps = append(deps, c.Registry...)
		slices.Sort(deps)
		deps = slices.Compact(deps)

		fmt.Fprintf(&b, "\n[[package]]\nname = %q\nversion = \"0.1.0\"\n", c.Name)
		writeLockDeps(&b, deps)
	}

	for _, name := range external {
		fmt.Fprintf(&b, "\n[[package]]\nname = %q\nversion = \"1.0.0\"\nsource = %q\nchecksum = \"%064x\"\n",
			name, CratesIOSource, len(name))
	}

	return b.String()
}

func writeLockDeps(b *strings.Builder, deps []string) {
	if len(deps) == 0 {
		return
	}
	b.WriteString("dependencies = [\n")
	for _, dep := range deps {
		fmt.Fprintf(b, " %q,\n", dep)
	}
	b.WriteString("]\n")
}
