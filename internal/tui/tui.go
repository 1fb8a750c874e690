// Package tui provides a Bubble Tea terminal user interface for tagfix.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/tagfix/internal/batch"
	"github.com/handiism/tagfix/internal/config"
	"github.com/handiism/tagfix/internal/logging"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

const (
	maxLogs      = 10
	eventBuffer  = 256
	tickInterval = 200 * time.Millisecond
)

var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateProcessing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   batch.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	manager *batch.Manager
	events  chan batch.ProgressEvent
	summary batch.Summary

	// Progress
	processed int
	total     int
	updated   int
	failed    int

	// Options, toggled while the input is blurred
	optionsFocused bool
	dryRun         bool
	playlist       bool
	verbose        bool

	width  int
	height int
}

// NewModel creates a new TUI model. settings must be valid; dir pre-fills
// the directory input and may be empty.
func NewModel(settings *config.Settings, dir string) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/music/album"
	ti.SetValue(dir)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		dryRun:    settings.DryRun,
		playlist:  settings.CreatePlaylist,
		verbose:   settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one event from the running Manager.
	ProgressMsg struct {
		Event  batch.ProgressEvent
		Events <-chan batch.ProgressEvent
	}

	// EventsClosedMsg is sent once the Manager has stopped emitting events.
	EventsClosedMsg struct{}

	// ScanDoneMsg is sent when the directory scan completes.
	ScanDoneMsg struct {
		Manager *batch.Manager
		Files   int
		Err     error
		Events  chan batch.ProgressEvent
	}

	// RunDoneMsg is sent when all files have been processed.
	RunDoneMsg struct {
		Summary batch.Summary
		Err     error
		Events  chan batch.ProgressEvent
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateProcessing || m.state == StateScanning {
				m.cancel()
				m.state = StateError
				m.err = errCancelled
			}
			return m, nil

		case "tab":
			if m.state == StateInput {
				m.optionsFocused = !m.optionsFocused
				if m.optionsFocused {
					m.textInput.Blur()
				} else {
					cmds = append(cmds, m.textInput.Focus())
				}
				return m, tea.Batch(cmds...)
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateScanning
				m.events = make(chan batch.ProgressEvent, eventBuffer)
				return m, tea.Batch(m.scan(), m.spinner.Tick, waitForEvent(m.events))
			}
			return m, nil

		case "n", "p", "v":
			if m.state == StateInput && m.optionsFocused {
				switch msg.String() {
				case "n":
					m.dryRun = !m.dryRun
				case "p":
					m.playlist = !m.playlist
				case "v":
					m.verbose = !m.verbose
				}
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				return m.reset(), textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// keep draining a stream left over from before a reset
		if msg.Events == m.events {
			m.addLog(msg.Event)
		}
		cmds = append(cmds, waitForEvent(msg.Events))

	case EventsClosedMsg:
		// nothing left to read

	case ScanDoneMsg:
		if msg.Events != m.events || m.state != StateScanning {
			// cancelled while scanning; the manager never started
			close(msg.Events)
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			close(msg.Events)
			return m, nil
		}
		m.manager = msg.Manager
		m.total = msg.Files
		m.state = StateProcessing
		cmds = append(cmds, m.run(), m.tickProgress())

	case RunDoneMsg:
		if msg.Events != m.events {
			return m, nil
		}
		m.summary = msg.Summary
		m.processed = msg.Summary.Processed
		m.updated = msg.Summary.Updated
		m.failed = msg.Summary.Failed
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateProcessing {
			m.processed, m.total, m.updated, m.failed = m.manager.GetProgress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput && !m.optionsFocused {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// addLog keeps the last maxLogs events worth showing.
func (m *Model) addLog(e batch.ProgressEvent) {
	if e.Level == batch.LevelVerbose && !m.verbose {
		return
	}
	// separators and blank lines only structure console output
	if e.Level == batch.LevelOutput && (e.Message == "---" || e.Message == "") {
		return
	}

	m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m Model) reset() Model {
	m.state = StateInput
	m.logs = nil
	m.err = nil
	m.manager = nil
	m.events = nil
	m.summary = batch.Summary{}
	m.processed, m.total, m.updated, m.failed = 0, 0, 0, 0
	m.optionsFocused = false
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.Focus()
	return m
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(tickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent reads the next Manager event from ch.
func waitForEvent(ch <-chan batch.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return EventsClosedMsg{}
		}
		return ProgressMsg{Event: e, Events: ch}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("tagfix"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Repair ID3v1 tags in a folder of MP3 files"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateProcessing:
		b.WriteString(m.viewProcessing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	label := infoStyle.Render("Options:")
	if m.optionsFocused {
		label = subtitleStyle.Render("Options (n/p/v to toggle):")
	}
	b.WriteString(label)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s Dry run, do not write files (n)\n", checkbox(m.dryRun))
	fmt.Fprintf(&b, "  %s Create %s playlist (p)\n", checkbox(m.playlist), m.settings.PlaylistFormat)
	fmt.Fprintf(&b, "  %s Verbose output (v)\n", checkbox(m.verbose))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Default genre: %d | Write encoding: %s", m.settings.DefaultGenre, m.settings.Encoding)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning directory..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewProcessing() string {
	var b strings.Builder

	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Updated: %d | Failed: %d",
		m.processed,
		m.total,
		m.updated,
		m.failed,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	heading := "Done!"
	updated := fmt.Sprintf("Updated: %d", m.summary.Updated)
	if m.dryRun {
		heading = "Done (dry run)"
		updated = fmt.Sprintf("Would update: %d", m.summary.Pending)
	}

	text := fmt.Sprintf(
		"%s\n\n"+
			"Files: %d\n"+
			"%s\n"+
			"Without tag: %d\n"+
			"Failed: %d",
		heading,
		m.summary.Processed,
		updated,
		m.summary.Missing,
		m.summary.Failed,
	)
	if m.summary.Playlist != "" {
		text += "\nPlaylist: " + filepath.Base(m.summary.Playlist)
	}
	b.WriteString(boxStyle.Render(text))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		fmt.Fprintf(&b, "  %s", m.err.Error())
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case batch.LevelOutput:
			style = recordStyle
			prefix = "♪"
		case batch.LevelError:
			style = errorStyle
			prefix = "✗"
		case batch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case batch.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case batch.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: options • esc: quit"
	case StateScanning, StateProcessing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: another folder • q: quit"
	}
	return ""
}

// runSettings copies the base settings with the toggles applied.
func (m Model) runSettings() *config.Settings {
	s := *m.settings
	s.DryRun = m.dryRun
	s.CreatePlaylist = m.playlist
	s.Verbose = m.verbose
	return &s
}

// scan creates the manager and lists the directory.
func (m Model) scan() tea.Cmd {
	dir := strings.TrimSpace(m.textInput.Value())
	settings := m.runSettings()
	ctx := m.ctx
	events := m.events

	return func() tea.Msg {
		manager := batch.NewManager(settings, func(e batch.ProgressEvent) {
			select {
			case events <- e:
			case <-ctx.Done():
			}
		})

		if err := manager.Initialize(ctx, dir); err != nil {
			return ScanDoneMsg{Err: err, Events: events}
		}
		return ScanDoneMsg{Manager: manager, Files: len(manager.Files()), Events: events}
	}
}

// run processes the files in the background and closes the event stream.
func (m Model) run() tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	events := m.events

	return func() tea.Msg {
		defer close(events)
		summary, err := manager.Run(ctx)
		return RunDoneMsg{Summary: summary, Err: err, Events: events}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, dir string) error {
	logging.Discard()

	p := tea.NewProgram(NewModel(settings, dir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
