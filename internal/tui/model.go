// Package tui is the interactive terminal surface of the chart. It maps
// terminal cells and mouse events onto the engine's pixel model and
// persists every committed change.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gantt/internal/engine"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/storage"
	"github.com/julianstephens/gantt/internal/validation"
)

type SessionState int

const (
	StateChart SessionState = iota
	StateEditing
	StateConfirmDelete
	StateConflicts
)

type Model struct {
	store   storage.Provider
	engine  *engine.Engine
	persist *persister

	state        SessionState
	keys         KeyMap
	help         help.Model
	form         *huh.Form
	taskForm     *TaskFormModel
	editingTask  *models.Task
	conflictView viewport.Model

	selected      int  // index into engine.Rows()
	pressed       zone // where the active mouse press started
	taskToDelete  int
	status        string
	quitting      bool
	width, height int

	validationWarning   string
	validationConflicts []validation.Conflict
}

// NewModel wires eng to store: every mutation the engine commits is
// written through before the next message is handled.
func NewModel(store storage.Provider, eng *engine.Engine) Model {
	p := &persister{store: store}
	eng.SetSink(p.apply)

	m := Model{
		store:        store,
		engine:       eng,
		persist:      p,
		state:        StateChart,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		conflictView: viewport.New(0, 0),
	}
	m.updateValidationStatus()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateConflicts:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Conflicts, m.keys.Quit}
	}
	return []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Today, m.keys.Help, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) grid() grid {
	return grid{width: m.width, height: m.height}
}

// updateValidationStatus validates the engine's collection against the
// chart range and refreshes the warning shown in the status line.
func (m *Model) updateValidationStatus() {
	end := models.AddDays(m.engine.End().AddMonths(1).FirstDay(), -1)
	result := validation.New().
		WithRange(m.engine.Start().FirstDay(), end).
		Validate(m.engine.Categories(), m.engine.Tasks())

	m.validationConflicts = result.Conflicts
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
	m.conflictView.SetContent(result.FormatReport())
}

func (m Model) selectedRow() (models.DisplayRow, bool) {
	rows := m.engine.Rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return models.DisplayRow{}, false
	}
	return rows[m.selected], true
}

func (m Model) selectedTask() (models.Task, bool) {
	row, ok := m.selectedRow()
	if !ok || row.Kind != models.RowTask {
		return models.Task{}, false
	}
	return *row.Task, true
}

// selectTask moves the selection to the row of task id, if displayed.
func (m *Model) selectTask(id int) {
	for i, r := range m.engine.Rows() {
		if r.Kind == models.RowTask && r.Task.ID == id {
			m.selected = i
			return
		}
	}
}
