package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Lockfile is the parsed Cargo.lock: the resolved, pinned dependency set of
// the whole workspace.
type Lockfile struct {
	// Version is the lockfile format version (3 and 4 are current).
	Version int

	// Packages are the [[package]] entries, in file order. Order is
	// preserved through pruning so untouched output stays stable.
	Packages []LockPackage

	// Metadata carries the legacy [metadata] checksum table verbatim when
	// the input still has one.
	Metadata map[string]string

	// Patch carries the [patch] section verbatim when present.
	Patch map[string]any
}

// LockPackage is one resolved [[package]] entry.
type LockPackage struct {
	Name    InternedString
	Version string

	// Source identifies the origin, e.g. "registry+https://...". Cargo omits
	// it for local workspace members, so empty means local.
	Source string

	// Checksum is the content checksum; absent for local packages.
	Checksum string

	// Dependencies are the entry's resolved dependency references.
	Dependencies []Ref
}

// Local reports whether the entry is a workspace member rather than an
// external crate.
func (p *LockPackage) Local() bool {
	return p.Source == ""
}

// Ref is one resolved dependency reference inside a lockfile entry. Cargo
// writes it as "name", "name version", or "name version (source)"; the raw
// form is kept so surviving references re-emit byte-identically.
type Ref struct {
	Raw     string
	Name    string
	Version string
}

// ParseRef splits a raw lockfile dependency string into its name and
// optional version. The source qualifier, when present, stays in Raw only.
func ParseRef(raw string) Ref {
	ref := Ref{Raw: raw}
	fields := strings.Fields(raw)
	if len(fields) > 0 {
		ref.Name = fields[0]
	}
	if len(fields) > 1 && !strings.HasPrefix(fields[1], "(") {
		ref.Version = fields[1]
	}
	return ref
}

// PruneStats summarizes what a lockfile prune removed.
type PruneStats struct {
	// RemovedPackages is the number of local entries dropped.
	RemovedPackages int

	// TrimmedExternalRefs counts dangling references removed from external
	// entries. External crates do not depend on workspace members in
	// practice, so a nonzero count is worth a warning.
	TrimmedExternalRefs int
}

// Prune rewrites the lockfile to stay consistent with the kept member set.
// Local entries of dropped members are removed; every surviving entry has
// its references filtered so that each one still names a surviving entry;
// external entries are otherwise untouched.
//
// It returns ErrInconsistentRecipe if a local entry names no workspace
// member, or a kept member has no local entry.
func (l *Lockfile) Prune(ws *Workspace, kept MemberSet) (PruneStats, error) {
	var stats PruneStats

	retained := l.Packages[:0]
	for _, p := range l.Packages {
		if p.Local() {
			if !ws.HasMember(p.Name) {
				return stats, zerr.With(
					zerr.Wrap(ErrInconsistentRecipe, "local lockfile entry names no workspace member"),
					"package", p.Name.String(),
				)
			}
			if !kept.Has(p.Name) {
				stats.RemovedPackages++
				continue
			}
		}
		retained = append(retained, p)
	}
	l.Packages = retained

	// Every kept member must still be pinned.
	locals := make(MemberSet, len(l.Packages))
	for _, p := range l.Packages {
		if p.Local() {
			locals[p.Name] = struct{}{}
		}
	}
	for name := range kept {
		if !locals.Has(name) {
			return stats, zerr.With(
				zerr.Wrap(ErrInconsistentRecipe, "kept member has no lockfile entry"),
				"member", name.String(),
			)
		}
	}

	// Filter references against the surviving entries so no entry points at
	// a package that no longer exists in the lockfile.
	survivors := make(map[string][]string, len(l.Packages))
	for _, p := range l.Packages {
		name := p.Name.String()
		survivors[name] = append(survivors[name], p.Version)
	}
	for i := range l.Packages {
		p := &l.Packages[i]
		refs := p.Dependencies[:0]
		for _, ref := range p.Dependencies {
			if refSurvives(ref, survivors) {
				refs = append(refs, ref)
				continue
			}
			if !p.Local() {
				stats.TrimmedExternalRefs++
			}
		}
		p.Dependencies = refs
	}

	return stats, nil
}

func refSurvives(ref Ref, survivors map[string][]string) bool {
	versions, ok := survivors[ref.Name]
	if !ok {
		return false
	}
	if ref.Version == "" {
		return true
	}
	for _, v := range versions {
		if v == ref.Version {
			return true
		}
	}
	return false
}
