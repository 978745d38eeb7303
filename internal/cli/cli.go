// Package cli implements the funnelplot command-line interface.
//
// The render command reads a CSV table, groups one numeric column by a key
// column and draws a parametric or bootstrap funnel plot of the group
// statistics. Outliers are summarized on stdout.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; every invocation carries a run id.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // results and summaries
}

// New creates a CLI logging to w at the given level. Results go to out.
func New(w, out io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "funnelplot",
		Short:        "Funnelplot draws funnel plots of grouped data",
		Long:         `Funnelplot compares the statistic of each group against the sampling variability expected for its size and flags the groups outside the funnel.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.versionCommand())
	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.Out, "version: %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
