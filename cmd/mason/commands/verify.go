package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <package> <version>=<archive>...",
		Short: "Check local source archives against the declared digests",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]

			files := make(map[string]string, len(args)-1)
			for _, pair := range args[1:] {
				versionID, path, found := strings.Cut(pair, "=")
				if !found || versionID == "" || path == "" {
					return zerr.With(zerr.New("expected <version>=<archive>"), "argument", pair)
				}
				files[versionID] = path
			}

			if err := c.app.Verify(cmd.Context(), pkg, files); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "verified %d archive(s)\n", len(files))
			return nil
		},
	}
}
