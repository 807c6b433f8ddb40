package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/depviz/internal/config"
	"github.com/matzehuels/depviz/pkg/deps"
	pkgerrors "github.com/matzehuels/depviz/pkg/errors"
	"github.com/matzehuels/depviz/pkg/graph"
	"github.com/matzehuels/depviz/pkg/integrations"
	"github.com/matzehuels/depviz/pkg/integrations/nuget"
	"github.com/matzehuels/depviz/pkg/render/dot"
)

// runOptions holds the root command's flags.
type runOptions struct {
	refresh bool
	direct  bool
	render  string
}

// run loads the config at configPath, builds the graph, prints its DOT text
// to out and writes the same text to the configured output path.
func (c *CLI) run(ctx context.Context, out io.Writer, configPath string, opts runOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.render != "" && opts.render != dot.FormatSVG && opts.render != dot.FormatPNG {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "unsupported render format %q (want %s or %s)", opts.render, dot.FormatSVG, dot.FormatPNG)
	}

	backend, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "cache")
	}
	defer backend.Close()

	client := nuget.NewClient(backend, cfg.TTL(), cfg.RepositoryURL)
	c.Logger.Info("Resolving dependencies", "package", cfg.PackageName, "registry", client.BaseURL())

	g, err := c.buildGraph(ctx, client, cfg, opts)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", cfg.PackageName, err)
	}

	text := dot.ToDOT(g, dot.Options{})
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("print graph: %w", err)
	}
	if err := os.WriteFile(cfg.OutputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", cfg.OutputPath, err)
	}
	c.Logger.Info("Wrote graph", "path", cfg.OutputPath)

	if opts.render != "" {
		return c.renderImage(ctx, cfg, text, opts.render)
	}
	return nil
}

// buildGraph walks the registry from the configured package, or fetches
// only its direct dependencies when opts.direct is set.
func (c *CLI) buildGraph(ctx context.Context, client *nuget.Client, cfg *config.Config, opts runOptions) (*graph.Graph, error) {
	prog := newProgress(c.Logger)

	var g *graph.Graph
	if opts.direct {
		direct, err := client.FetchDependencies(ctx, cfg.PackageName, opts.refresh)
		if err != nil {
			if cfg.Strict || !errors.Is(err, integrations.ErrStatus) {
				return nil, err
			}
			c.Logger.Warnf("fetch failed, treating %s as leaf: %v", cfg.PackageName, err)
		}
		g = deps.Direct(cfg.PackageName, direct)
		if err != nil {
			g.MarkUnresolved(cfg.PackageName)
		}
	} else {
		var err error
		g, err = deps.NewRegistry("nuget", client).Resolve(ctx, cfg.PackageName, deps.Options{
			MaxDepth: cfg.MaxDepth,
			Refresh:  opts.refresh,
			Strict:   cfg.Strict,
			Logger:   c.Logger.Warnf,
		})
		if err != nil {
			return nil, err
		}
	}

	prog.done(fmt.Sprintf("Resolved %d packages, %d dependencies", g.NodeCount(), g.EdgeCount()))
	if unresolved := g.Unresolved(); len(unresolved) > 0 {
		c.Logger.Warnf("%d packages could not be fetched and are shown without dependencies: %s",
			len(unresolved), strings.Join(unresolved, ", "))
	}
	return g, nil
}

// renderImage writes <output_path>.<format> using the configured graph tool,
// or the embedded Graphviz when none is configured.
func (c *CLI) renderImage(ctx context.Context, cfg *config.Config, text, format string) error {
	outPath := cfg.OutputPath + "." + format
	prog := newProgress(c.Logger)

	if cfg.GraphToolPath != "" {
		if err := dot.RenderWithTool(ctx, cfg.GraphToolPath, format, cfg.OutputPath, outPath); err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
	} else {
		data, err := dot.Render(ctx, text, format)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write image %s: %w", outPath, err)
		}
	}

	prog.done("Rendered " + outPath)
	return nil
}
