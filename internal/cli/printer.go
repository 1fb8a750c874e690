package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/tagfix/internal/batch"
)

// Printer renders batch events on a console.
//
// Record lines (LevelOutput) are written verbatim; status lines get a
// coloured marker. Colours are dropped automatically when w is not a
// terminal.
type Printer struct {
	w       io.Writer
	verbose bool
	mu      sync.Mutex

	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	verboseStyle lipgloss.Style
	titleStyle   lipgloss.Style
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:            w,
		verbose:      verbose,
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		warnStyle:    r.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		verboseStyle: r.NewStyle().Faint(true),
		titleStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
	}
}

// Event prints one batch event. Verbose events are dropped unless the
// printer was created verbose.
func (p *Printer) Event(e batch.ProgressEvent) {
	if e.Level == batch.LevelVerbose && !p.verbose {
		return
	}

	var line string
	switch e.Level {
	case batch.LevelOutput:
		line = e.Message
	case batch.LevelError:
		line = p.errorStyle.Render("✗ " + e.Message)
	case batch.LevelWarning:
		line = p.warnStyle.Render("! " + e.Message)
	case batch.LevelSuccess:
		line = p.successStyle.Render("✓ " + e.Message)
	case batch.LevelVerbose:
		line = p.verboseStyle.Render("  " + e.Message)
	default:
		line = p.infoStyle.Render("• " + e.Message)
	}

	p.println(line)
}

// Title prints the run header.
func (p *Printer) Title(dir string) {
	p.println(p.titleStyle.Render("tagfix " + dir))
}

// Summary prints the closing counts.
func (p *Printer) Summary(s batch.Summary, dryRun bool) {
	msg := fmt.Sprintf("%d files, %d updated, %d without tag, %d failed", s.Processed, s.Updated, s.Missing, s.Failed)
	if dryRun {
		msg = fmt.Sprintf("%d files, %d would be updated, %d without tag, %d failed (dry run)", s.Processed, s.Pending, s.Missing, s.Failed)
	}

	style := p.successStyle
	if s.Failed > 0 {
		style = p.warnStyle
	}
	p.println(style.Render("Done: " + msg))
}

// Error prints a fatal error.
func (p *Printer) Error(err error) {
	p.println(p.errorStyle.Render("Error: " + err.Error()))
}

func (p *Printer) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}
