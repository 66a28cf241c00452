// Package commands implements the CLI commands for the reduce tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/reduce/internal/app"
	"go.trai.ch/reduce/internal/core/domain"
)

const (
	defaultRecipeIn  = "recipe.json"
	defaultRecipeOut = "recipe-reduced.json"
)

// CLI represents the command line interface for reduce.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	cli := &CLI{components: c}

	rootCmd := &cobra.Command{
		Use:           "reduce",
		Short:         "Reduce a cargo-chef workspace recipe to one target member",
		Long: "Reduce takes a recipe.json produced by `cargo chef prepare --bin <member>`\n" +
			"and removes every workspace member the target member does not need,\n" +
			"directly or transitively, so unrelated workspace changes stop\n" +
			"invalidating the Docker layer cache.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.runReduce,
	}

	rootCmd.Flags().String("recipe-path-in", defaultRecipeIn, "Path to the cargo-chef recipe to reduce")
	rootCmd.Flags().String("recipe-path-out", defaultRecipeOut, "Path to write the reduced recipe")
	rootCmd.Flags().StringSlice("target-member", nil, "Workspace member to reduce to (repeatable)")

	cli.rootCmd = rootCmd
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

func (c *CLI) runReduce(cmd *cobra.Command, _ []string) error {
	defaults, err := c.components.ConfigLoader.Load(".")
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	req := domain.ReduceRequest{
		RecipeIn:  stringFlagOr(flags, "recipe-path-in", defaults.RecipeIn),
		RecipeOut: stringFlagOr(flags, "recipe-path-out", defaults.RecipeOut),
	}

	req.Targets, _ = flags.GetStringSlice("target-member")
	if len(req.Targets) == 0 {
		req.Targets = defaults.Targets
	}

	return c.components.App.Run(cmd.Context(), req)
}

// stringFlagOr resolves a flag value: an explicitly set flag wins, then the
// config file value, then the flag's built-in default.
func stringFlagOr(flags *pflag.FlagSet, name, configValue string) string {
	value, _ := flags.GetString(name)
	if flags.Changed(name) || configValue == "" {
		return value
	}
	return configValue
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
