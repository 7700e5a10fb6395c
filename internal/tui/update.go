package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/drag"
	"github.com/julianstephens/gantt/internal/engine"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/logger"
	"github.com/julianstephens/gantt/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.conflictView.Width = msg.Width - 4
		m.conflictView.Height = max(0, msg.Height-4)
		m.engine.Resize(m.grid().layout())
		if m.state != StateEditing {
			return m, nil
		}
	}

	switch m.state {
	case StateEditing:
		return m.updateForm(msg)
	case StateConfirmDelete:
		if msg, ok := msg.(tea.KeyMsg); ok {
			return m.updateConfirmDelete(msg)
		}
		return m, nil
	case StateConflicts:
		return m.updateConflicts(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		return m.updateChart(msg)
	}
	return m, nil
}

func (m Model) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.cancelGesture()
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Left):
		m.engine.ScrollBy(-constants.BlockSize)
	case key.Matches(msg, m.keys.Right):
		m.engine.ScrollBy(constants.BlockSize)
	case key.Matches(msg, m.keys.Today):
		m.engine.ScrollToToday()
	case key.Matches(msg, m.keys.MoveEarlier):
		m.nudge(geometry.PartBody, -1)
	case key.Matches(msg, m.keys.MoveLater):
		m.nudge(geometry.PartBody, 1)
	case key.Matches(msg, m.keys.StartEarly):
		m.nudge(geometry.PartLeftHandle, -1)
	case key.Matches(msg, m.keys.StartLate):
		m.nudge(geometry.PartLeftHandle, 1)
	case key.Matches(msg, m.keys.Add):
		return m.openForm(nil)
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selectedTask(); ok {
			return m.openForm(&t)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selectedTask(); ok {
			m.taskToDelete = t.ID
			m.state = StateConfirmDelete
		}
	case key.Matches(msg, m.keys.Conflicts):
		m.conflictView.GotoTop()
		m.state = StateConflicts
	}
	return m, nil
}

// moveSelection steps the selected row and wheels the viewport until the
// selection is visible.
func (m *Model) moveSelection(delta int) {
	rows := m.engine.Rows()
	if len(rows) == 0 {
		return
	}
	m.selected = max(0, min(m.selected+delta, len(rows)-1))

	for range rows {
		s := m.engine.Snapshot()
		switch {
		case m.selected < s.PositionID:
			m.engine.Wheel(-1)
		case m.selected >= s.PositionID+len(s.VisibleRows) && len(s.VisibleRows) > 0:
			if !m.engine.Wheel(1) {
				return
			}
		default:
			return
		}
	}
}

// nudge replays a one-day drag of part on the selected task, so keyboard
// edits commit and persist exactly like mouse edits.
func (m *Model) nudge(part geometry.Part, days int) {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	if err := m.engine.PointerDown(0, engine.Target{TaskID: t.ID, Part: part}); err != nil {
		m.status = err.Error()
		return
	}
	commit, ok, err := m.engine.PointerUp(days * constants.BlockSize)
	m.report(commit, ok, err)
}

func (m *Model) cancelGesture() {
	s := m.engine.Snapshot().Dragging
	if s.Mode == drag.Idle {
		return
	}
	// A right resize reverts on a one-block pull, the other gestures on the anchor.
	x := s.AnchorX
	if s.Mode == drag.ResizingRight {
		x -= constants.BlockSize
	}
	if _, _, err := m.engine.PointerUp(x); err != nil {
		m.status = err.Error()
	} else {
		m.status = "Drag cancelled"
	}
	m.pressed = zoneNone
}

// report turns the outcome of a committed gesture into the status line.
func (m *Model) report(c drag.Commit, ok bool, err error) {
	switch {
	case err != nil:
		m.status = err.Error()
	case !ok:
	case c.Reverted:
		m.status = "No change"
	default:
		if perr := m.persist.take(); perr != nil {
			m.status = perr.Error()
			return
		}
		m.status = fmt.Sprintf("%s: %s to %s", c.After.Name,
			models.FormatDate(c.After.StartDate), models.FormatDate(c.After.EndDate))
		m.updateValidationStatus()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			m.engine.ScrollBy(-constants.BlockSize)
		} else {
			m.engine.Wheel(-1)
		}
		return
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			m.engine.ScrollBy(constants.BlockSize)
		} else {
			m.engine.Wheel(1)
		}
		return
	case tea.MouseButtonWheelLeft:
		m.engine.ScrollBy(-constants.BlockSize)
		return
	case tea.MouseButtonWheelRight:
		m.engine.ScrollBy(constants.BlockSize)
		return
	}

	g := m.grid()
	snap := m.engine.Snapshot()
	x := contentX(msg.X, snap.ScrollX)
	z, line := g.locate(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch z {
		case zoneChart:
			hit, ok, err := m.engine.PointerDownAt(x, rowY(line), cellHandles)
			switch {
			case errors.Is(err, drag.ErrBusy):
				return
			case err != nil:
				m.status = err.Error()
			case ok:
				m.pressed = zoneChart
				m.selectTask(hit.Rect.ID)
			}
		case zonePanel:
			if line >= len(snap.VisibleRows) {
				return
			}
			m.selected = snap.PositionID + line
			if row := snap.VisibleRows[line]; row.Kind == models.RowTask {
				m.engine.DragStart(row)
				m.pressed = zonePanel
			}
		}

	case tea.MouseActionMotion:
		switch m.pressed {
		case zoneChart:
			m.engine.PointerMove(x)
		case zonePanel:
			if z != zonePanel || line >= len(snap.VisibleRows) {
				return
			}
			if m.engine.DragOver(snap.VisibleRows[line]) && snap.DraggedRow != nil {
				m.selectTask(snap.DraggedRow.Task.ID)
				if err := m.persist.take(); err != nil {
					m.status = err.Error()
				}
			}
		}

	case tea.MouseActionRelease:
		switch m.pressed {
		case zoneChart:
			commit, ok, err := m.engine.PointerUp(x)
			m.report(commit, ok, err)
		case zonePanel:
			m.engine.DragEnd()
			m.updateValidationStatus()
		}
		m.pressed = zoneNone
	}
}

func (m Model) openForm(t *models.Task) (tea.Model, tea.Cmd) {
	categories := m.engine.Categories()
	if len(categories) == 0 {
		m.status = "Add a category first: gantt category add <name>"
		return m, nil
	}

	var task models.Task
	if t != nil {
		task = *t
	} else {
		today := m.engine.Snapshot().Today
		task = models.Task{CategoryID: categories[0].ID, StartDate: today, EndDate: today}
		if row, ok := m.selectedRow(); ok {
			if row.Kind == models.RowCategory {
				task.CategoryID = row.Category.ID
			} else {
				task.CategoryID = row.Task.CategoryID
			}
		}
	}

	m.editingTask = &task
	m.taskForm = taskFormFrom(task)
	m.form = newTaskForm(m.taskForm, categories)
	m.state = StateEditing
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateChart
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveForm(); err != nil {
			logger.Error("Failed to save task", "error", err)
			m.status = err.Error()
		}
		m.state = StateChart
	case huh.StateAborted:
		m.state = StateChart
	}
	return m, cmd
}

func (m *Model) saveForm() error {
	task := *m.editingTask
	if err := m.taskForm.apply(&task); err != nil {
		return err
	}

	if task.ID == 0 {
		saved, err := m.store.AddTask(task)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}
		task = saved
		m.status = fmt.Sprintf("Added %s", task.Name)
	} else {
		if err := m.store.UpdateTask(task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		m.status = fmt.Sprintf("Updated %s", task.Name)
	}

	if err := m.engine.PutTask(task); err != nil {
		return err
	}
	m.selectTask(task.ID)
	m.updateValidationStatus()
	return nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.taskToDelete
		if err := m.store.DeleteTask(id); err != nil {
			m.status = fmt.Sprintf("failed to delete task: %v", err)
		} else if err := m.engine.RemoveTask(id); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("Deleted task %d (restore with: gantt task restore %d)", id, id)
			m.selected = max(0, min(m.selected, len(m.engine.Rows())-1))
			m.updateValidationStatus()
		}
		m.state = StateChart
		m.taskToDelete = 0
	case "n", "N", "esc", "q":
		m.state = StateChart
		m.taskToDelete = 0
	}
	return m, nil
}

func (m Model) updateConflicts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Conflicts), key.Matches(msg, m.keys.Cancel), msg.String() == "q":
			m.state = StateChart
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.conflictView, cmd = m.conflictView.Update(msg)
	return m, cmd
}
