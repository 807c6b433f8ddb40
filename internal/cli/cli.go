// Package cli implements the depviz command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depviz/pkg/buildinfo"
	"github.com/matzehuels/depviz/pkg/cache"
	"github.com/matzehuels/depviz/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "depviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose switches to debug logging and traces registry and cache
// traffic through the logger.
func (c *CLI) SetVerbose(verbose bool) {
	if !verbose {
		c.SetLogLevel(LogInfo)
		return
	}
	c.SetLogLevel(LogDebug)
	hooks := &debugHooks{logger: c.Logger}
	observability.SetHTTPHooks(hooks)
	observability.SetCacheHooks(hooks)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself builds the graph described by its config argument.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		opts    runOptions
		verbose bool
	)

	root := &cobra.Command{
		Use:   "depviz <config>",
		Short: "Depviz draws the dependency graph of a NuGet package",
		Long: `Depviz queries a NuGet registry for a package's declared dependencies,
follows them transitively and writes the result as a Graphviz DOT graph.

The config file is a JSON object (or a .toml file with the same keys):

  {
    "package_name": "Serilog",
    "output_path": "serilog.dot",
    "repository_url": "https://api.nuget.org/v3/registration5-gz-semver2",
    "graph_tool_path": "/usr/bin/dot"
  }`,
		Example: `  depviz config.json
  depviz config.json --render svg
  depviz config.json --direct -v`,
		Version:       buildinfo.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached registry responses")
	root.Flags().BoolVar(&opts.direct, "direct", false, "only include the package's direct dependencies")
	root.Flags().StringVar(&opts.render, "render", "", "also render an image next to the output file (svg, png)")

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// openCache opens the backend named in the config. The file backend lives
// in cacheDir.
func openCache(ctx context.Context, backend string) (cache.Cache, error) {
	if backend != cache.BackendFile {
		return cache.Open(ctx, backend, "")
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.Open(ctx, backend, dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/depviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
