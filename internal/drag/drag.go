// Package drag implements the pointer state machine behind bar moves and
// edge resizes. The controller only tracks pixel anchors and preview
// geometry; committed dates are computed on pointer-up from the task passed in.
package drag

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/models"
)

// ErrBusy is returned by Begin while another gesture is still active.
var ErrBusy = errors.New("drag gesture already in progress")

type Mode int

const (
	Idle Mode = iota
	Moving
	ResizingLeft
	ResizingRight
)

func (m Mode) String() string {
	switch m {
	case Moving:
		return "moving"
	case ResizingLeft:
		return "resizing-left"
	case ResizingRight:
		return "resizing-right"
	default:
		return "idle"
	}
}

// ModeFor maps a hit-tested bar part to the gesture it starts.
func ModeFor(part geometry.Part) Mode {
	switch part {
	case geometry.PartBody:
		return Moving
	case geometry.PartLeftHandle:
		return ResizingLeft
	case geometry.PartRightHandle:
		return ResizingRight
	default:
		return Idle
	}
}

// State is the active gesture. The zero value is Idle.
type State struct {
	Mode        Mode
	GestureID   uuid.UUID
	TaskID      int
	AnchorX     int
	AnchorLeft  int
	AnchorWidth int
}

// Preview is the visual bar geometry while a gesture is in flight.
type Preview struct {
	TaskID int
	Left   int
	Width  int
}

// Commit describes the outcome of a finished gesture.
type Commit struct {
	GestureID uuid.UUID
	Mode      Mode
	TaskID    int
	DaysDelta int
	Before    models.Task
	After     models.Task
	// Reverted is set when the gesture fell inside a dead zone and the task is unchanged.
	Reverted bool
}

type Controller struct {
	blockSize int
	state     State
	preview   Preview
}

func New(blockSize int) *Controller {
	return &Controller{blockSize: blockSize}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Active() bool {
	return c.state.Mode != Idle
}

// Preview returns the in-flight bar geometry. ok is false when idle.
func (c *Controller) Preview() (Preview, bool) {
	if c.state.Mode == Idle {
		return Preview{}, false
	}
	return c.preview, true
}

// Begin starts a gesture on the bar described by rect at pointer x.
func (c *Controller) Begin(mode Mode, rect geometry.Rect, x int) error {
	if c.state.Mode != Idle {
		return ErrBusy
	}
	if mode == Idle {
		return fmt.Errorf("cannot begin an idle gesture on task %d", rect.ID)
	}
	if !rect.HasBar {
		return fmt.Errorf("row %d has no bar to drag", rect.RowIndex)
	}
	c.state = State{
		Mode:        mode,
		GestureID:   uuid.New(),
		TaskID:      rect.ID,
		AnchorX:     x,
		AnchorLeft:  rect.Left,
		AnchorWidth: rect.Width,
	}
	c.preview = Preview{TaskID: rect.ID, Left: rect.Left, Width: rect.Width}
	return nil
}

// Move updates the preview for pointer x and reports whether it changed.
// Resize previews that would leave the bar one block wide or less are
// rejected and the previous preview is kept.
func (c *Controller) Move(x int) bool {
	s := c.state
	dx := s.AnchorX - x
	next := c.preview

	switch s.Mode {
	case Moving:
		next.Left = s.AnchorLeft - dx
	case ResizingLeft:
		w := s.AnchorWidth + dx
		if w <= c.blockSize {
			return false
		}
		next.Width = w
		next.Left = s.AnchorLeft - dx
	case ResizingRight:
		w := s.AnchorWidth - dx
		if w <= c.blockSize {
			return false
		}
		next.Width = w
	default:
		return false
	}

	if next == c.preview {
		return false
	}
	c.preview = next
	return true
}

// End finishes the gesture at pointer x against the committed task and
// returns to Idle. task must be the task the gesture started on.
func (c *Controller) End(task models.Task, x int) Commit {
	s := c.state
	days := ceilDiv(s.AnchorX-x, c.blockSize)
	commit := Commit{
		GestureID: s.GestureID,
		Mode:      s.Mode,
		TaskID:    s.TaskID,
		DaysDelta: days,
		Before:    task,
		After:     task,
	}

	switch s.Mode {
	case Moving:
		if days == 0 {
			commit.Reverted = true
			break
		}
		commit.After.StartDate = models.AddDays(task.StartDate, -days)
		commit.After.EndDate = models.AddDays(task.EndDate, -days)
	case ResizingLeft:
		if days == 0 {
			commit.Reverted = true
			break
		}
		start := models.AddDays(task.StartDate, -days)
		if start.After(task.EndDate) {
			start = task.EndDate
		}
		commit.After.StartDate = start
	case ResizingRight:
		if days == 1 {
			commit.Reverted = true
			break
		}
		shift := days
		if days <= 2 {
			shift = days - 1
		}
		end := models.AddDays(task.EndDate, -shift)
		if end.Before(task.StartDate) {
			end = task.StartDate
		}
		commit.After.EndDate = end
	default:
		commit.Reverted = true
	}

	c.Reset()
	return commit
}

// Reset drops any active gesture and its preview.
func (c *Controller) Reset() {
	c.state = State{}
	c.preview = Preview{}
}

// ceilDiv returns ceil(a / b) for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
