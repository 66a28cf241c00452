package config

// reduceFile represents the structure of the reduce.yaml configuration file.
type reduceFile struct {
	RecipePathIn  string   `yaml:"recipe-path-in"`
	RecipePathOut string   `yaml:"recipe-path-out"`
	TargetMembers []string `yaml:"target-members"`
}
