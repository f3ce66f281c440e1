package commands

import (
	"fmt"

	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/ui/style"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH...",
		Short: "Resolve the first module found among the candidate paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoPathsSpecified
			}

			mod, err := c.app.Access().TryResolveEach(args)
			if err != nil {
				return err
			}
			if mod == nil {
				return zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "no candidate resolved"), "candidates", args)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.line(p.present.Render(style.Check+" "+mod.Name) + " " + style.Arrow + " " + mod.Location)
			p.muted(fmt.Sprintf("%v", mod.Value))
			return nil
		},
	}
}
