package commands

import (
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newReadAsyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-async PATH...",
		Short: "Read several files concurrently and print them in argument order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoPathsSpecified
			}

			contents, err := c.app.Access().ReadFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if len(args) == 1 {
				p.raw(contents[args[0]])
				return nil
			}
			for i, path := range args {
				if i > 0 {
					p.line("")
				}
				p.muted("==> " + path + " <==")
				p.raw(contents[path])
			}
			return nil
		},
	}
}
