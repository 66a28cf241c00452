package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedRecipe is returned when the input recipe does not match the
	// expected cargo-chef schema, a manifest is not valid TOML, or two
	// workspace members share a name.
	ErrMalformedRecipe = zerr.New("malformed recipe")

	// ErrUnknownTarget is returned when a requested target member does not
	// correspond to any workspace member in the recipe.
	ErrUnknownTarget = zerr.New("unknown target member")

	// ErrInconsistentRecipe is returned when the manifest set and the lockfile
	// disagree: a kept member has no lockfile entry, or a local lockfile entry
	// names no workspace member.
	ErrInconsistentRecipe = zerr.New("inconsistent recipe")

	// ErrNoTargetMember is returned when a reduction is requested without any
	// target member, either via flags or the config file.
	ErrNoTargetMember = zerr.New("no target member specified")

	// ErrIO is returned when the input recipe cannot be read or the reduced
	// recipe cannot be written.
	ErrIO = zerr.New("io failure")
)
