// Package console prints run progress and results for humans.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tracker-tv/docs-governance-bots/models"
)

var (
	successColor = lipgloss.Color("#00D26A")
	warningColor = lipgloss.Color("#FFB800")
	errorColor   = lipgloss.Color("#FF3838")
	mutedColor   = lipgloss.Color("#6B7280")
)

type Printer struct {
	out    io.Writer
	errOut io.Writer

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style

	// styled for errOut, which may be redirected while out is a terminal
	errFailure lipgloss.Style
}

// New returns a Printer writing results to out and errors to errOut.
// noColor forces plain output regardless of the terminal.
func New(out, errOut io.Writer, noColor bool) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	if noColor {
		outR.SetColorProfile(termenv.Ascii)
		errR.SetColorProfile(termenv.Ascii)
	}
	return newPrinter(out, errOut, outR, errR)
}

func newPrinter(out, errOut io.Writer, outR, errR *lipgloss.Renderer) *Printer {
	return &Printer{
		out:        out,
		errOut:     errOut,
		success:    outR.NewStyle().Foreground(successColor).Bold(true),
		warning:    outR.NewStyle().Foreground(warningColor).Bold(true),
		failure:    outR.NewStyle().Foreground(errorColor).Bold(true),
		muted:      outR.NewStyle().Foreground(mutedColor),
		errFailure: errR.NewStyle().Foreground(errorColor).Bold(true),
	}
}

func (p *Printer) Progress(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.success.Render(msg))
}

func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.out, p.warning.Render(msg))
}

func (p *Printer) Failure(msg string) {
	fmt.Fprintln(p.out, p.failure.Render(msg))
}

func (p *Printer) Detail(msg string) {
	fmt.Fprintln(p.out, p.muted.Render(msg))
}

// Error reports a fatal problem on the error stream.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.errOut, p.errFailure.Render(msg))
}

func (p *Printer) Structure(r *models.StructureReport) {
	if r.Valid {
		p.Success("✅ Documentation structure is valid")
		return
	}

	p.Failure(fmt.Sprintf("❌ Found %d structure violation(s)", r.ViolationCount))
	for _, v := range r.Violations {
		p.Detail("  - " + v.Message)
	}
}

func (p *Printer) Accuracy(r *models.AccuracyReport) {
	if r.Clean {
		p.Success("✅ Documentation accuracy checks passed")
		return
	}

	p.Warning(fmt.Sprintf("⚠️  Found %d accuracy issue(s)", r.IssueCount))
	for _, i := range r.Issues {
		p.Detail(fmt.Sprintf("  %s:%d — %s", i.File, i.Line, i.Message))
	}
}
