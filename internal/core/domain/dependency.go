package domain

// SourceHint records what a manifest's dependency specification says about
// where the dependency comes from. Classification into internal/external is
// done by the graph builder, which also knows the member set; the hint alone
// is not enough because a bare `workspace = true` spec carries no source
// information at all.
type SourceHint uint8

const (
	// HintUnspecified means the spec carries no source information
	// (e.g. `foo = { workspace = true }`). Resolution falls back to name
	// matching against the member set.
	HintUnspecified SourceHint = iota

	// HintPath means the spec points at a path inside the workspace
	// (e.g. `foo = { path = "../foo" }`).
	HintPath

	// HintExternal means the spec names a registry or git source, or is a
	// bare version requirement. A member sharing the name never shadows it.
	HintExternal
)

// Dependency is one name a workspace member declares in its
// [dependencies], [dev-dependencies], or [build-dependencies] table.
type Dependency struct {
	Name InternedString
	Hint SourceHint
}

// TargetKind discriminates DependencyTarget variants.
type TargetKind uint8

const (
	// TargetExternal marks a dependency that resolves outside the workspace.
	TargetExternal TargetKind = iota

	// TargetInternal marks a dependency that resolves to another workspace
	// member.
	TargetInternal
)

// DependencyTarget is the resolved classification of a declared dependency:
// either another workspace member or an external crate. Modeling this as a
// tagged value rather than a bare string comparison prevents a same-named
// registry crate from being silently misclassified as a member.
type DependencyTarget struct {
	Kind TargetKind

	// Member is the arena index of the resolved member. Valid only when
	// Kind is TargetInternal.
	Member int
}
