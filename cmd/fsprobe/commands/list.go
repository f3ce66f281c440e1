package commands

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newFilesCmd() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "files DIR",
		Short: "List the files of a directory, skipping test and documentation files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := filterNames(c.app.Access().GetFiles(args[0]), pattern)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).lines(names)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "match", "m", "", "Only print names matching a glob such as '*.{js,yaml}'")
	return cmd
}

func (c *CLI) newFoldersCmd() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "folders DIR",
		Short: "List the subdirectories of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := filterNames(c.app.Access().GetFolders(args[0]), pattern)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).lines(names)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "match", "m", "", "Only print names matching a glob")
	return cmd
}

// filterNames keeps the names matching pattern. An empty pattern keeps everything.
func filterNames(names []string, pattern string) ([]string, error) {
	if pattern == "" {
		return names, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if doublestar.MatchUnvalidated(pattern, name) {
			kept = append(kept, name)
		}
	}
	return kept, nil
}
