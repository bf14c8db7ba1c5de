// Package output renders command results for the terminal, or as JSON when
// --json is set.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")
)

type Printer struct {
	w    io.Writer
	json bool

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
	primaryStyle lipgloss.Style
}

// New returns a Printer writing to w. Colors are only emitted when w is a
// terminal.
func New(w io.Writer, jsonOutput bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:            w,
		json:         jsonOutput,
		successStyle: r.NewStyle().Foreground(colorSuccess).Bold(true),
		errorStyle:   r.NewStyle().Foreground(colorError).Bold(true),
		infoStyle:    r.NewStyle().Foreground(colorInfo),
		mutedStyle:   r.NewStyle().Foreground(colorMuted),
		primaryStyle: r.NewStyle().Foreground(colorPrimary).Bold(true),
	}
}

func (p *Printer) JSON() bool {
	return p.json
}

type message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.json {
		_ = p.Encode(message{Status: "ok", Message: fmt.Sprintf(format, args...)})
		return
	}
	fmt.Fprint(p.w, p.successStyle.Render("✓ "))
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Error prints a business failure. It is not a process error.
func (p *Printer) Error(format string, args ...interface{}) {
	if p.json {
		_ = p.Encode(message{Status: "error", Message: fmt.Sprintf(format, args...)})
		return
	}
	fmt.Fprint(p.w, p.errorStyle.Render("✗ "))
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Info(format string, args ...interface{}) {
	if p.json {
		_ = p.Encode(message{Status: "ok", Message: fmt.Sprintf(format, args...)})
		return
	}
	fmt.Fprint(p.w, p.infoStyle.Render("ℹ "))
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Line prints an unstyled row.
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Muted(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a header preceded by a blank line.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.primaryStyle.Render(title))
}

// Prompt writes a label without a trailing newline.
func (p *Printer) Prompt(label string) {
	fmt.Fprintf(p.w, "%s: ", label)
}

func (p *Printer) Encode(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
