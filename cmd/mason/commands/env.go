package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/app"
)

func (c *CLI) newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env <package>",
		Short: "Print the runtime environment exported for a package's consumers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			prefix, _ := cmd.Flags().GetString("prefix")

			env, err := c.app.Env(app.EnvOptions{
				ConfigPath: configPath,
				Package:    args[0],
				Prefix:     prefix,
			})
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(env))
			for k := range env {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(out, "export %s=%s\n", k, env[k])
			}
			return nil
		},
	}
	cmd.Flags().StringP("prefix", "p", "", "Install prefix (defaults to the configured installPrefix)")
	return cmd
}
