// Package commands implements the CLI commands for fsprobe.
package commands

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/nymag/nymag-fs/internal/app"
	"github.com/nymag/nymag-fs/internal/build"
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"github.com/spf13/cobra"
)

const skipConfigure = "skip-configure"

// CLI represents the command line interface for fsprobe.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options) error
	Access() ports.Access
	Stats() map[string]int
	Spans() []domain.SpanSummary
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "fsprobe",
		Short:         "Query files, YAML documents and modules through the memoized access layer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cmd.Annotations[skipConfigure]; ok {
				return nil
			}
			return c.app.Configure(c.opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if c.opts.Verbose {
				c.printStats(cmd.ErrOrStderr())
			}
			if c.opts.Trace {
				c.printSpans(cmd.ErrOrStderr())
			}
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "Path to the config file (default fsprobe.yaml)")
	flags.BoolVar(&c.opts.JSON, "json", false, "Write logs as JSON")
	flags.BoolVar(&c.opts.Verbose, "verbose", false, "Log filesystem access and print cache statistics")
	flags.BoolVar(&c.opts.Trace, "trace", false, "Print a timing summary of uncached filesystem access")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(
		c.newExistsCmd(),
		c.newIsDirCmd(),
		c.newReadCmd(),
		c.newFilesCmd(),
		c.newFoldersCmd(),
		c.newYamlCmd(),
		c.newReadAsyncCmd(),
		c.newResolveCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) printStats(w io.Writer) {
	stats := c.app.Stats()
	parts := make([]string, 0, len(stats))
	for _, op := range slices.Sorted(maps.Keys(stats)) {
		parts = append(parts, fmt.Sprintf("%s=%d", op, stats[op]))
	}
	p := newPrinter(w)
	p.muted("cache " + strings.Join(parts, " "))
}

func (c *CLI) printSpans(w io.Writer) {
	p := newPrinter(w)
	for _, s := range c.app.Spans() {
		p.muted(fmt.Sprintf("trace %s calls=%d errors=%d mean=%s", s.Name, s.Calls, s.Errors, s.Mean()))
	}
}
