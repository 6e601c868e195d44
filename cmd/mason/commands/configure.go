package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/app"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Resolve the configured package and run the build tool's configure step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			recipePath, _ := cmd.Flags().GetString("recipe")
			variantSpec, _ := cmd.Flags().GetString("variants")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			result, err := c.app.Configure(cmd.Context(), app.ConfigureOptions{
				ConfigPath:  configPath,
				RecipePath:  recipePath,
				VariantSpec: variantSpec,
				DryRun:      dryRun,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				for _, arg := range result.Argv {
					fmt.Fprintln(out, arg)
				}
				return nil
			}
			fmt.Fprintf(out, "configured %s@%s (%s)\n", result.Package, result.Version, result.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringP("recipe", "r", "", "Use a recipe file instead of the built-in registry")
	cmd.Flags().StringP("variants", "v", "", "Variant overrides, e.g. \"+shared ~doc\"")
	cmd.Flags().BoolP("dry-run", "n", false, "Print the build tool arguments without running it")
	return cmd
}
