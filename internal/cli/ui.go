package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // success
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// status writes styled one-line messages for the housekeeping commands.
// The root command never uses it: its stdout is reserved for DOT text.
type status struct {
	w io.Writer
}

func (s status) success(format string, args ...any) {
	fmt.Fprintln(s.w, styleSuccess.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func (s status) info(format string, args ...any) {
	fmt.Fprintln(s.w, styleInfo.Render("›")+" "+fmt.Sprintf(format, args...))
}

func (s status) detail(format string, args ...any) {
	fmt.Fprintln(s.w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}
