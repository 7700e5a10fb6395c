package engine

import (
	"time"

	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/drag"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/models"
)

// Snapshot is everything a surface needs to draw one frame. RowGeometry is
// parallel to VisibleRows, with y relative to the first visible row and the
// in-flight preview applied to the dragged bar.
type Snapshot struct {
	Start        models.YearMonth
	Today        time.Time
	BlockSize    int
	Calendar     []models.MonthBlock
	ContentWidth int

	VisibleRows  []models.DisplayRow
	RowGeometry  []geometry.Rect
	TotalRows    int
	CanvasWidth  int
	CanvasHeight int
	ScrollOffset int
	ScrollX      int
	PositionID   int

	Dragging   drag.State
	DraggedRow *models.DisplayRow
	Orphans    []models.Task
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Start:        e.start,
		Today:        e.today,
		BlockSize:    e.blockSize,
		Calendar:     e.blocks,
		ContentWidth: calendar.Width(e.blocks, e.blockSize),
		VisibleRows:  e.view.VisibleRows(e.rows),
		RowGeometry:  e.visibleGeometry(),
		TotalRows:    len(e.rows),
		CanvasWidth:  e.view.CanvasWidth(),
		CanvasHeight: e.view.CanvasHeight(),
		ScrollOffset: e.ScrollOffset(),
		ScrollX:      e.view.ScrollX(),
		PositionID:   e.view.PositionID(),
		Dragging:     e.drag.State(),
		Orphans:      append([]models.Task(nil), e.orphans...),
	}
	if e.dragged != nil {
		r := *e.dragged
		s.DraggedRow = &r
	}
	return s
}
