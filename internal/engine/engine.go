// Package engine owns the state of one chart instance: the task collection,
// the day grid, the viewport and the active pointer gesture. A rendering
// surface forwards raw input through the transition methods and draws from
// Snapshot. All methods must be called from a single goroutine.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/drag"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/logger"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/tasklist"
	"github.com/julianstephens/gantt/internal/viewport"
)

// ErrUnknownTask is returned when a gesture targets a task that is not part
// of the displayed collection.
var ErrUnknownTask = errors.New("unknown task")

// Options configures a new Engine. Zero BlockSize selects the default.
type Options struct {
	Start     models.YearMonth
	End       models.YearMonth
	Today     time.Time
	BlockSize int
	Sink      Sink
}

type Engine struct {
	start     models.YearMonth
	end       models.YearMonth
	today     time.Time
	blockSize int
	blocks    []models.MonthBlock

	categories []models.Category
	tasks      []models.Task
	rows       []models.DisplayRow
	orphans    []models.Task
	reported   map[int]bool

	view     *viewport.Model
	drag     *drag.Controller
	dragged  *models.DisplayRow
	scrolled bool

	sink Sink
}

// New builds the calendar for the configured range and loads the collection.
func New(opts Options, categories []models.Category, tasks []models.Task) (*Engine, error) {
	blocks, err := calendar.Build(opts.Start, opts.End)
	if err != nil {
		return nil, err
	}
	if opts.BlockSize <= 0 {
		opts.BlockSize = constants.BlockSize
	}
	if opts.Today.IsZero() {
		opts.Today = time.Now()
	}

	e := &Engine{
		start:     opts.Start,
		end:       opts.End,
		today:     models.Day(opts.Today),
		blockSize: opts.BlockSize,
		blocks:    blocks,
		reported:  make(map[int]bool),
		view:      viewport.New(),
		drag:      drag.New(opts.BlockSize),
		sink:      opts.Sink,
	}
	e.view.SetContentWidth(calendar.Width(blocks, opts.BlockSize))
	e.SetData(categories, tasks)
	return e, nil
}

// SetSink replaces the mutation sink. A nil sink discards mutations.
func (e *Engine) SetSink(s Sink) {
	e.sink = s
}

// SetData replaces the whole collection, dropping any drag-and-drop in progress.
func (e *Engine) SetData(categories []models.Category, tasks []models.Task) {
	e.categories = append([]models.Category(nil), categories...)
	e.tasks = append([]models.Task(nil), tasks...)
	e.dragged = nil
	e.rebuild()
}

func (e *Engine) rebuild() {
	res := tasklist.Flatten(e.categories, e.tasks)
	e.rows = res.Rows
	e.orphans = res.Orphans
	for _, t := range res.Orphans {
		if e.reported[t.ID] {
			continue
		}
		e.reported[t.ID] = true
		logger.Warn("task references unknown category; hidden from chart",
			"task", t.ID, "category", t.CategoryID, "name", t.Name)
	}
	e.view.SetRowCount(len(e.rows))
}

// Resize applies new container measurements. The first layout with a usable
// canvas also centers today horizontally.
func (e *Engine) Resize(l viewport.Layout) {
	e.view.SetLayout(l)
	if !e.scrolled && e.view.CanvasWidth() > 0 {
		e.view.SetScrollX(e.ScrollOffset())
		e.scrolled = true
	}
}

// Wheel moves the visible window one row for a non-zero delta.
func (e *Engine) Wheel(deltaY float64) bool {
	return e.view.Wheel(deltaY)
}

// ScrollBy pans the canvas horizontally.
func (e *Engine) ScrollBy(dx int) {
	e.view.ScrollBy(dx)
}

// ScrollToToday re-centers today in the current canvas.
func (e *Engine) ScrollToToday() {
	e.view.SetScrollX(e.ScrollOffset())
}

// ScrollOffset is the horizontal offset that centers today in the current canvas.
func (e *Engine) ScrollOffset() int {
	return viewport.InitialScrollOffset(e.today, e.start, e.blockSize, e.view.CanvasWidth())
}

// Target identifies what a pointer-down landed on.
type Target struct {
	TaskID int
	Part   geometry.Part
}

// PointerDown starts a move or resize gesture on a task bar at pointer x.
func (e *Engine) PointerDown(x int, target Target) error {
	if e.drag.Active() {
		logger.Debug("pointer-down ignored while a gesture is active",
			"task", target.TaskID, "active", e.drag.State().TaskID)
		return drag.ErrBusy
	}
	mode := drag.ModeFor(target.Part)
	if mode == drag.Idle {
		return fmt.Errorf("pointer-down on task %d: no bar part", target.TaskID)
	}
	rect, ok := e.barOf(target.TaskID)
	if !ok {
		return fmt.Errorf("pointer-down on task %d: %w", target.TaskID, ErrUnknownTask)
	}
	if err := e.drag.Begin(mode, rect, x); err != nil {
		return err
	}
	logger.Debug("gesture started", "gesture", e.drag.State().GestureID, "mode", mode, "task", target.TaskID)
	return nil
}

// PointerDownAt hit-tests canvas coordinates against the visible bars and
// starts the matching gesture. x is in content coordinates (scroll applied);
// y is relative to the top of the first visible row. ok is false when the
// pointer missed every bar.
func (e *Engine) PointerDownAt(x, y int, h geometry.Handles) (hit geometry.Hit, ok bool, err error) {
	hit, ok = geometry.HitTest(e.visibleGeometry(), x, y, h)
	if !ok {
		return hit, false, nil
	}
	return hit, true, e.PointerDown(x, Target{TaskID: hit.Rect.ID, Part: hit.Part})
}

// PointerMove updates the preview of the active gesture.
func (e *Engine) PointerMove(x int) bool {
	return e.drag.Move(x)
}

// PointerUp commits the active gesture. ok is false when no gesture was active.
func (e *Engine) PointerUp(x int) (commit drag.Commit, ok bool, err error) {
	if !e.drag.Active() {
		return drag.Commit{}, false, nil
	}
	state := e.drag.State()
	idx := tasklist.IndexOf(e.tasks, state.TaskID)
	if idx < 0 {
		e.drag.Reset()
		return drag.Commit{}, false, fmt.Errorf("commit gesture %s: task %d: %w", state.GestureID, state.TaskID, ErrUnknownTask)
	}

	commit = e.drag.End(e.tasks[idx], x)
	logger.Debug("gesture committed",
		"gesture", commit.GestureID,
		"mode", commit.Mode,
		"task", commit.TaskID,
		"days", commit.DaysDelta,
		"reverted", commit.Reverted)
	if commit.Reverted {
		return commit, true, nil
	}

	e.tasks[idx] = commit.After
	e.rebuild()
	e.emit(Mutation{
		Kind:      kindOf(commit.Mode),
		TaskID:    commit.TaskID,
		Before:    commit.Before,
		After:     commit.After,
		GestureID: commit.GestureID.String(),
	})
	return commit, true, nil
}

// DragStart remembers the row picked up in the task panel.
func (e *Engine) DragStart(row models.DisplayRow) {
	r := row
	e.dragged = &r
}

// DragOver reorders the collection for the dragged row hovering target. It
// applies on every hover, not only on drop.
func (e *Engine) DragOver(target models.DisplayRow) bool {
	if e.dragged == nil {
		return false
	}
	next, changed := tasklist.DragOver(e.tasks, *e.dragged, target)
	if !changed {
		return false
	}

	id := e.dragged.Task.ID
	before := e.tasks[tasklist.IndexOf(e.tasks, id)]
	e.tasks = tasklist.Renumber(next)
	e.rebuild()
	after := e.tasks[tasklist.IndexOf(e.tasks, id)]

	kind := MutationReordered
	if before.CategoryID != after.CategoryID {
		kind = MutationRecategorized
	}
	e.emit(Mutation{
		Kind:   kind,
		TaskID: id,
		Before: before,
		After:  after,
		Order:  taskIDs(e.tasks),
	})
	return true
}

// DragEnd forgets the dragged row.
func (e *Engine) DragEnd() {
	e.dragged = nil
}

// PutTask inserts or replaces a task by id. New tasks are appended.
func (e *Engine) PutTask(t models.Task) error {
	if !t.Valid() {
		return fmt.Errorf("task %d: start %s is after end %s", t.ID,
			models.FormatDate(t.StartDate), models.FormatDate(t.EndDate))
	}
	if idx := tasklist.IndexOf(e.tasks, t.ID); idx >= 0 {
		e.tasks[idx] = t
	} else {
		t.Position = len(e.tasks)
		e.tasks = append(e.tasks, t)
	}
	e.rebuild()
	return nil
}

// RemoveTask drops a task from the collection.
func (e *Engine) RemoveTask(id int) error {
	idx := tasklist.IndexOf(e.tasks, id)
	if idx < 0 {
		return fmt.Errorf("remove task %d: %w", id, ErrUnknownTask)
	}
	if e.drag.Active() && e.drag.State().TaskID == id {
		e.drag.Reset()
	}
	e.tasks = append(e.tasks[:idx:idx], e.tasks[idx+1:]...)
	e.rebuild()
	return nil
}

// Task returns the committed task with id.
func (e *Engine) Task(id int) (models.Task, bool) {
	idx := tasklist.IndexOf(e.tasks, id)
	if idx < 0 {
		return models.Task{}, false
	}
	return e.tasks[idx], true
}

func (e *Engine) Tasks() []models.Task {
	return append([]models.Task(nil), e.tasks...)
}

func (e *Engine) Categories() []models.Category {
	return append([]models.Category(nil), e.categories...)
}

// Rows returns the full flattened display list.
func (e *Engine) Rows() []models.DisplayRow {
	return e.rows
}

func (e *Engine) Start() models.YearMonth {
	return e.start
}

func (e *Engine) End() models.YearMonth {
	return e.end
}

func (e *Engine) BlockSize() int {
	return e.blockSize
}

// barOf projects the committed bar for a displayed task.
func (e *Engine) barOf(id int) (geometry.Rect, bool) {
	for _, row := range e.rows {
		if row.Kind == models.RowTask && row.Task.ID == id {
			return geometry.Project([]models.DisplayRow{row}, e.start, e.blockSize)[0], true
		}
	}
	return geometry.Rect{}, false
}

// visibleGeometry projects the visible rows with the gesture preview applied.
func (e *Engine) visibleGeometry() []geometry.Rect {
	rects := geometry.Project(e.view.VisibleRows(e.rows), e.start, e.blockSize)
	if p, ok := e.drag.Preview(); ok {
		for i := range rects {
			if rects[i].HasBar && rects[i].ID == p.TaskID {
				rects[i].Left = p.Left
				rects[i].Width = p.Width
			}
		}
	}
	return rects
}

func (e *Engine) emit(m Mutation) {
	if e.sink != nil {
		e.sink(m)
	}
}

func taskIDs(tasks []models.Task) []int {
	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
