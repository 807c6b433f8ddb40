package dot

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/goccy/go-graphviz"
)

// Image formats supported by the renderers.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// RenderSVG renders DOT text to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT text to PNG using the embedded Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

// Render dispatches to [RenderSVG] or [RenderPNG] by format name.
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatSVG, FormatPNG)
	}
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderWithTool runs an external Graphviz binary (toolPath) on the DOT file
// at dotPath and writes the image to outPath.
func RenderWithTool(ctx context.Context, toolPath, format, dotPath, outPath string) error {
	if format != FormatSVG && format != FormatPNG {
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatSVG, FormatPNG)
	}
	if _, err := exec.LookPath(toolPath); err != nil {
		return fmt.Errorf("graph tool %s: %w", toolPath, err)
	}

	cmd := exec.CommandContext(ctx, toolPath, "-T"+format, dotPath, "-o", outPath)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %v: %s", toolPath, err, errBuf.String())
	}
	return nil
}
