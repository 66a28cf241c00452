package domain

// ReduceRequest describes one reduction run: where to read the recipe, where
// to write the reduced recipe, and the root member set to keep. Targets
// usually holds exactly one name, but nothing in the pipeline assumes that.
type ReduceRequest struct {
	RecipeIn  string
	RecipeOut string
	Targets   []string
}
