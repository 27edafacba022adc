// Package output renders command results for terminals and scripts. Text
// and auto modes print styled lines; json mode emits machine-readable
// documents and keeps diagnostics on stderr.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects how command output is rendered.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer. An unknown mode falls back to auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// IsJSON reports whether the renderer is in machine-readable mode. Commands
// producing structured results collect them and call JSON once instead of
// printing lines.
func (r *Renderer) IsJSON() bool {
	return r.mode == ModeJSON
}

// Out returns the writer for primary output.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Successf prints a success line.
func (r *Renderer) Successf(format string, args ...any) {
	fmt.Fprintln(r.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warningf prints a warning line to stderr.
func (r *Renderer) Warningf(format string, args ...any) {
	fmt.Fprintln(r.errOut, warningStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Errorf prints an error line to stderr.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.errOut, errorStyle.Render("error: "+fmt.Sprintf(format, args...)))
}

// JSON writes v as indented JSON to primary output.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
