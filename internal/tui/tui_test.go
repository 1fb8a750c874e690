package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/tagfix/internal/batch"
	"github.com/handiism/tagfix/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_OptionToggles(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "")

	// typing goes to the directory input while it has focus
	m = update(t, m, key("n"))
	if m.dryRun {
		t.Error("n toggled dry run while typing")
	}
	if m.textInput.Value() != "n" {
		t.Errorf("input = %q, want %q", m.textInput.Value(), "n")
	}

	m = update(t, m, key("tab"))
	if !m.optionsFocused {
		t.Fatal("tab should focus the options")
	}
	m = update(t, m, key("n"))
	m = update(t, m, key("p"))
	m = update(t, m, key("v"))
	if !m.dryRun || !m.playlist || !m.verbose {
		t.Errorf("toggles = %v/%v/%v, want all on", m.dryRun, m.playlist, m.verbose)
	}
	if m.textInput.Value() != "n" {
		t.Errorf("option keys reached the input: %q", m.textInput.Value())
	}

	s := m.runSettings()
	if !s.DryRun || !s.CreatePlaylist || !s.Verbose {
		t.Errorf("runSettings() = %+v", s)
	}
	if m.settings.DryRun {
		t.Error("runSettings() modified the base settings")
	}

	if view := m.View(); !strings.Contains(view, "[x] Dry run") {
		t.Errorf("view does not show the toggle:\n%s", view)
	}
}

func TestModel_EnterRequiresDirectory(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "   ")

	m = update(t, m, key("enter"))
	if m.state != StateInput {
		t.Errorf("state = %v, want StateInput", m.state)
	}
}

func TestModel_LogFiltering(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "")

	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "---", Level: batch.LevelOutput}})
	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "", Level: batch.LevelOutput}})
	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "scan detail", Level: batch.LevelVerbose}})
	if len(m.logs) != 0 {
		t.Fatalf("logs = %v, want none", m.logs)
	}

	for i := 0; i < 15; i++ {
		m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: fmt.Sprintf("line %d", i), Level: batch.LevelOutput}})
	}
	if len(m.logs) != maxLogs {
		t.Fatalf("logs = %d, want %d", len(m.logs), maxLogs)
	}
	if m.logs[0].Message != "line 5" || m.logs[maxLogs-1].Message != "line 14" {
		t.Errorf("kept %q .. %q", m.logs[0].Message, m.logs[maxLogs-1].Message)
	}
}

func TestModel_ScanError(t *testing.T) {
	m := NewModel(config.DefaultSettings(), filepath.Join(t.TempDir(), "missing"))
	m.state = StateScanning
	m.events = make(chan batch.ProgressEvent, eventBuffer)

	m = update(t, m, m.scan()())
	if m.state != StateError || !errors.Is(m.err, os.ErrNotExist) {
		t.Errorf("state = %v, err = %v", m.state, m.err)
	}
	if _, open := <-m.events; open {
		t.Error("event stream should be closed after a failed scan")
	}
}

func TestModel_FullRun(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"01 a.mp3", "02 b.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, 300), 0644); err != nil {
			t.Fatal(err)
		}
	}

	m := NewModel(config.DefaultSettings(), dir)
	m.state = StateScanning
	m.events = make(chan batch.ProgressEvent, eventBuffer)

	m = update(t, m, m.scan()())
	if m.state != StateProcessing || m.total != 2 {
		t.Fatalf("after scan: state = %v, total = %d", m.state, m.total)
	}

	done := m.run()()
	for e := range m.events {
		m = update(t, m, ProgressMsg{Event: e, Events: m.events})
	}
	m = update(t, m, done)

	if m.state != StateComplete {
		t.Fatalf("state = %v, err = %v", m.state, m.err)
	}
	if m.summary.Missing != 2 || m.processed != 2 {
		t.Errorf("summary = %+v", m.summary)
	}

	view := m.View()
	if !strings.Contains(view, "Without tag: 2") {
		t.Errorf("completion box missing counts:\n%s", view)
	}
	if !strings.Contains(view, "File 02 b.mp3 has no ID3v1 tag") {
		t.Errorf("logs missing record line:\n%s", view)
	}

	m = update(t, m, key("r"))
	if m.state != StateInput || m.manager != nil || len(m.logs) != 0 {
		t.Errorf("reset left state %v, manager %v, %d logs", m.state, m.manager, len(m.logs))
	}
}

func TestModel_Cancel(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "/music")
	m.state = StateProcessing

	m = update(t, m, key("esc"))
	if m.state != StateError || !errors.Is(m.err, errCancelled) {
		t.Errorf("state = %v, err = %v", m.state, m.err)
	}
	if m.ctx.Err() == nil {
		t.Error("esc should cancel the run context")
	}
}

func TestModel_StaleScanAfterReset(t *testing.T) {
	m := NewModel(config.DefaultSettings(), t.TempDir())

	m = update(t, m, key("enter"))
	if m.state != StateScanning {
		t.Fatalf("state = %v, want scanning", m.state)
	}
	scan := m.scan()

	m = update(t, m, key("esc"))
	m = update(t, m, key("r"))
	if m.state != StateInput || m.events != nil {
		t.Fatalf("after reset: state = %v, events = %v", m.state, m.events)
	}

	// the cancelled scan finishes late
	late := scan().(ScanDoneMsg)
	m = update(t, m, late)
	if m.state != StateInput || m.manager != nil {
		t.Errorf("late scan changed state to %v, manager %v", m.state, m.manager)
	}
	if _, open := <-late.Events; open {
		t.Error("the late scan's event stream should be closed")
	}
}

func TestModel_StaleScanKeepsNewStream(t *testing.T) {
	m := NewModel(config.DefaultSettings(), t.TempDir())

	m = update(t, m, key("enter"))
	scan := m.scan()
	m = update(t, m, key("esc"))
	m = update(t, m, key("r"))
	m = update(t, m, key("enter"))
	current := m.events

	m = update(t, m, scan())
	if m.state != StateScanning || m.events != current {
		t.Fatalf("state = %v, events replaced = %v", m.state, m.events != current)
	}

	// the new stream must still accept events
	select {
	case current <- batch.ProgressEvent{Message: "ok"}:
	default:
		t.Error("new event stream is closed or full")
	}
}

func TestModel_StaleRunAfterReset(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "/music")
	m.state = StateProcessing
	old := make(chan batch.ProgressEvent)
	m.events = old

	m = update(t, m, key("esc"))
	m = update(t, m, key("r"))

	m = update(t, m, RunDoneMsg{Err: context.Canceled, Events: old})
	if m.state != StateInput || m.err != nil {
		t.Errorf("late run result: state = %v, err = %v", m.state, m.err)
	}

	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "old line", Level: batch.LevelOutput}, Events: old})
	if len(m.logs) != 0 {
		t.Errorf("logs = %+v, want events from the old run dropped", m.logs)
	}
}
