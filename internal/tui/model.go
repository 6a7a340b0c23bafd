// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"abreast/internal/jobs"
)

// ErrRender is returned when the live renderer could not drive the
// terminal. Callers should degrade to the plain renderer rather than
// failing the run.
var ErrRender = errors.New("failed to render live status")

// Styles contains the styling for the status markers.
type Styles struct {
	Pending lipgloss.Style
	Running lipgloss.Style
	Success lipgloss.Style
	Failed  lipgloss.Style
}

// NewStyles creates the default marker styling.
func NewStyles() *Styles {
	return &Styles{
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Running: lipgloss.NewStyle(),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Model is the bubbletea model for the live renderer. It polls the job
// table on every spinner tick and quits once all jobs are terminal.
type Model struct {
	table   *jobs.Table
	cancel  context.CancelFunc
	spinner spinner.Model
	lines   []jobs.Line
	styles  *Styles
}

// NewModel creates a renderer model for the given table. cancel stops
// the batch when the user quits early; it may be nil.
func NewModel(table *jobs.Table, cancel context.CancelFunc) *Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &Model{
		table:   table,
		cancel:  cancel,
		spinner: s,
		lines:   table.Snapshot(),
		styles:  NewStyles(),
	}
}

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Stop the batch. Workers kill their children, the jobs
			// drain to failed, and the tick loop quits as usual once
			// everything is terminal.
			if m.cancel != nil {
				m.cancel()
			}

			return m, nil
		}

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)
		m.lines = m.table.Snapshot()

		if m.table.AllDone() {
			// The final frame is rendered on quit, so the displayed
			// state always matches the true final state.
			return m, tea.Quit
		}

		return m, cmd
	}

	return m, nil
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	return RenderFrame(m.lines, m.styles.Running.Render(m.spinner.View()), m.styles)
}

// RenderFrame builds the full text frame for a snapshot: one line per
// job in input order. The line count never changes between frames.
func RenderFrame(lines []jobs.Line, spinnerFrame string, styles *Styles) string {
	sb := strings.Builder{}

	for _, line := range lines {
		sb.WriteString(renderLine(line, spinnerFrame, styles))
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderLine(line jobs.Line, spinnerFrame string, styles *Styles) string {
	var marker string

	switch line.Status {
	case jobs.StatusPending:
		marker = styles.Pending.Render("·")
	case jobs.StatusRunning:
		marker = spinnerFrame
	case jobs.StatusSucceeded:
		marker = styles.Success.Render("OK")
	case jobs.StatusFailed:
		marker = styles.Failed.Render("FAILED")
	default:
		marker = "?"
	}

	return fmt.Sprintf("%s: %s", line.Label, marker)
}

// Run drives the live renderer until every job reaches a terminal
// state, drawing to w. It returns ErrRender if the terminal could not
// be driven, in which case the caller should fall back to RunPlain.
func Run(w io.Writer, table *jobs.Table, cancel context.CancelFunc) error {
	program := tea.NewProgram(
		NewModel(table, cancel),
		tea.WithOutput(w),
		tea.WithoutSignalHandler(),
	)

	if _, err := program.Run(); err != nil {
		return errors.Join(ErrRender, err)
	}

	return nil
}
