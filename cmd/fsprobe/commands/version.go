package commands

import (
	"fmt"

	"github.com/nymag/nymag-fs/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the application version",
		Annotations: map[string]string{skipConfigure: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "fsprobe version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
