// Package ui renders status output for the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled status messages.
type Printer struct {
	out io.Writer

	headerStyle  lipgloss.Style
	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out: out,

		headerStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		successStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		infoStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Headerf prints a bold section header.
func (p *Printer) Headerf(format string, args ...any) {
	fmt.Fprintln(p.out, p.headerStyle.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a success message with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, p.successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warnf prints a warning message.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.out, p.warnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf prints an error message.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.out, p.errorStyle.Render("✖ "+fmt.Sprintf(format, args...)))
}

// Infof prints a dimmed informational message.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.out, p.infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Plainf prints an unstyled message.
func (p *Printer) Plainf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Checklist prints a heading followed by indented bullet items. Used for
// likely-cause guidance after a failed external command.
func (p *Printer) Checklist(heading string, items []string) {
	p.Warnf("%s", heading)
	for _, item := range items {
		fmt.Fprintln(p.out, p.infoStyle.Render("  - "+item))
	}
}

// Out exposes the underlying writer for table rendering.
func (p *Printer) Out() io.Writer {
	return p.out
}
