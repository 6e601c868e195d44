package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/core/domain"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [package]",
		Short: "Show a package's versions, variants and dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipePath, _ := cmd.Flags().GetString("recipe")

			out := cmd.OutOrStdout()

			if len(args) == 0 && recipePath == "" {
				for _, desc := range c.app.List() {
					fmt.Fprintln(out, desc.Name())
				}
				return nil
			}

			pkg := ""
			if len(args) == 1 {
				pkg = args[0]
			}
			desc, err := c.app.Info(pkg, recipePath)
			if err != nil {
				return err
			}

			printDescriptor(cmd, desc)
			return nil
		},
	}
	cmd.Flags().StringP("recipe", "r", "", "Use a recipe file instead of the built-in registry")
	return cmd
}

func printDescriptor(cmd *cobra.Command, desc *domain.Descriptor) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s  %s\n", desc.Name(), desc.Homepage())

	fmt.Fprintln(out, "versions:")
	for _, v := range desc.Versions() {
		switch {
		case v.Branch != "":
			fmt.Fprintf(out, "  %s (branch %s)\n", v.ID, v.Branch)
		default:
			fmt.Fprintf(out, "  %s sha256=%s\n", v.ID, v.SHA256)
		}
	}

	fmt.Fprintln(out, "variants:")
	for _, v := range desc.Variants() {
		def := "off"
		if v.Default {
			def = "on"
		}
		fmt.Fprintf(out, "  %s [%s] %s\n", v.Name.String(), def, v.Description)
	}

	fmt.Fprintln(out, "dependencies:")
	for _, dep := range desc.Dependencies() {
		line := "  " + dep.Package.String()
		if !dep.Constraint.IsZero() {
			line += "@" + dep.Constraint.String()
		}
		if dep.Kind == domain.KindBuild {
			line += " (build)"
		}
		if dep.Condition != nil {
			line += " when " + dep.Condition.String()
		}
		fmt.Fprintln(out, line)
	}
}
