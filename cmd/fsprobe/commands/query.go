package commands

import (
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists PATH",
		Short: "Report whether a path exists",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			newPrinter(cmd.OutOrStdout()).bool(c.app.Access().FileExists(args[0]))
		},
	}
}

func (c *CLI) newIsDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isdir PATH",
		Short: "Report whether a path is a directory",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			newPrinter(cmd.OutOrStdout()).bool(c.app.Access().IsDirectory(args[0]))
		},
	}
}

func (c *CLI) newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read PATH",
		Short: "Print the contents of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, ok := c.app.Access().ReadFile(args[0])
			if !ok {
				return zerr.With(domain.ErrReadFailed, "path", args[0])
			}
			newPrinter(cmd.OutOrStdout()).raw(content)
			return nil
		},
	}
}
