package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newYamlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yaml BASE",
		Short: "Load BASE.yaml, or BASE.yml, and print the parsed document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.app.Access().GetYaml(args[0])
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(doc)
			if err != nil {
				return zerr.Wrap(err, "failed to encode document")
			}
			newPrinter(cmd.OutOrStdout()).raw(string(out))
			return nil
		},
	}
}
