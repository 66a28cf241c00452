package domain

import "go.trai.ch/zerr"

// WorkspaceMember is one crate of the workspace.
type WorkspaceMember struct {
	// Name is the unique Cargo package name.
	Name InternedString

	// Path is the member's directory inside the skeleton, relative to the
	// workspace root ("." for a root package).
	Path string

	// ManifestIndex is the member's position in Skeleton.Manifests.
	ManifestIndex int

	// Dependencies are all names the member declares, across normal, dev,
	// and build dependency tables.
	Dependencies []Dependency

	// External holds the declared names that resolved outside the workspace.
	// Populated by BuildGraph, sorted and deduplicated.
	External []InternedString
}

// MemberSet is a set of workspace member names.
type MemberSet map[InternedString]struct{}

// Has reports whether name is in the set.
func (s MemberSet) Has(name InternedString) bool {
	_, ok := s[name]
	return ok
}

// Workspace is the parsed recipe model: the member arena, the shared
// lockfile, and the root manifest position. It is built once from the recipe
// and mutated in place by the pruning steps.
type Workspace struct {
	// Members is the arena the dependency graph indexes into.
	Members []WorkspaceMember

	// Lockfile is the parsed Cargo.lock.
	Lockfile *Lockfile

	// RootManifest is the index of the root Cargo.toml in Skeleton.Manifests.
	RootManifest int

	byName map[InternedString]int
}

// NewWorkspace assembles a workspace from its parts. It returns
// ErrMalformedRecipe if two members share a name.
func NewWorkspace(members []WorkspaceMember, lockfile *Lockfile, rootManifest int) (*Workspace, error) {
	byName := make(map[InternedString]int, len(members))
	for i, m := range members {
		if _, exists := byName[m.Name]; exists {
			return nil, zerr.With(
				zerr.Wrap(ErrMalformedRecipe, "duplicate workspace member name"),
				"member", m.Name.String(),
			)
		}
		byName[m.Name] = i
	}
	return &Workspace{
		Members:      members,
		Lockfile:     lockfile,
		RootManifest: rootManifest,
		byName:       byName,
	}, nil
}

// Member returns the arena index of the member with the given name.
func (w *Workspace) Member(name InternedString) (int, bool) {
	i, ok := w.byName[name]
	return i, ok
}

// HasMember reports whether a member with the given name exists.
func (w *Workspace) HasMember(name InternedString) bool {
	_, ok := w.byName[name]
	return ok
}
