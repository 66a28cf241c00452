// Package domain contains the core domain models and business logic for
// reducing cargo-chef recipes: the recipe skeleton, the workspace member
// dependency graph, and the lockfile pruning rules.
package domain

// Recipe mirrors the JSON document produced by `cargo chef prepare`.
// The schema is owned by cargo-chef; it is the contract with the downstream
// `cargo chef cook` step, so field names and structure must round-trip
// unchanged.
type Recipe struct {
	Skeleton Skeleton `json:"skeleton"`
}

// Skeleton holds the project skeleton captured by the planner: every
// Cargo.toml in the workspace plus the shared lockfile.
type Skeleton struct {
	Manifests []Manifest `json:"manifests"`

	// ConfigFile is the optional .cargo/config.toml contents, passed through
	// untouched.
	ConfigFile *string `json:"config_file"`

	// LockFile is the Cargo.lock contents. Reduction requires it; a recipe
	// without a lockfile is malformed.
	LockFile *string `json:"lock_file"`

	// RustToolchainFile is the optional rust-toolchain(.toml) contents,
	// passed through untouched.
	RustToolchainFile *string `json:"rust_toolchain_file"`
}

// Manifest is one Cargo.toml captured in the skeleton.
type Manifest struct {
	RelativePath string `json:"relative_path"`
	Contents     string `json:"contents"`
}

// RootManifestPath is the relative path identifying the workspace root
// manifest inside a skeleton.
const RootManifestPath = "Cargo.toml"
