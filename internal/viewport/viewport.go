// Package viewport tracks the visible window of the chart: canvas size
// derived from container measurements, the first visible row, and the
// horizontal scroll offset.
package viewport

import (
	"time"

	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/models"
)

// Layout holds the measurements reported by the rendering surface.
type Layout struct {
	ContainerWidth  int
	ContainerHeight int
	TaskPanelWidth  int
	TaskPanelHeight int
}

// State is a copy of the viewport for snapshots.
type State struct {
	Layout
	PositionID int
	ScrollX    int
}

type Model struct {
	layout       Layout
	rowCount     int
	positionID   int
	contentWidth int
	scrollX      int
}

func New() *Model {
	return &Model{}
}

// SetLayout applies new container measurements and re-clamps the cursor.
func (m *Model) SetLayout(l Layout) {
	m.layout = l
	m.clamp()
}

func (m *Model) Layout() Layout {
	return m.layout
}

// SetRowCount records the length of the display list and re-clamps the cursor.
func (m *Model) SetRowCount(n int) {
	m.rowCount = n
	m.clamp()
}

// SetContentWidth records the full calendar width used to bound ScrollX.
func (m *Model) SetContentWidth(w int) {
	m.contentWidth = w
	m.clamp()
}

func (m *Model) CanvasWidth() int {
	return m.layout.ContainerWidth - m.layout.TaskPanelWidth
}

func (m *Model) CanvasHeight() int {
	return m.layout.ContainerHeight - m.layout.TaskPanelHeight - constants.HeaderOffset - constants.ScrollbarAllowance
}

// VisibleRowCount is the number of whole rows that fit in the canvas.
func (m *Model) VisibleRowCount() int {
	h := m.CanvasHeight()
	if h <= 0 {
		return 0
	}
	return h / constants.RowHeight
}

func (m *Model) PositionID() int {
	return m.positionID
}

// MaxPositionID is the largest valid cursor for the current row count.
func (m *Model) MaxPositionID() int {
	return max(0, m.rowCount-m.VisibleRowCount())
}

// Wheel moves the cursor one row per event regardless of the delta's size.
// It returns true when the cursor moved.
func (m *Model) Wheel(deltaY float64) bool {
	switch {
	case deltaY > 0:
		if (m.rowCount-m.positionID)*constants.RowHeight > m.CanvasHeight() {
			m.positionID++
			m.clamp()
			return true
		}
	case deltaY < 0:
		if m.positionID != 0 {
			m.positionID--
			return true
		}
	}
	return false
}

// Window returns the index range [start, end) of the visible rows.
func (m *Model) Window() (start, end int) {
	start = min(m.positionID, m.rowCount)
	end = min(start+m.VisibleRowCount(), m.rowCount)
	return start, end
}

// VisibleRows slices rows to the visible window.
func (m *Model) VisibleRows(rows []models.DisplayRow) []models.DisplayRow {
	start, end := m.Window()
	if start >= len(rows) {
		return nil
	}
	return rows[start:min(end, len(rows))]
}

func (m *Model) ScrollX() int {
	return m.scrollX
}

// MaxScrollX is the furthest the canvas can scroll right.
func (m *Model) MaxScrollX() int {
	return max(0, m.contentWidth-m.CanvasWidth())
}

// SetScrollX moves the canvas to x, bounded to the content.
func (m *Model) SetScrollX(x int) {
	m.scrollX = x
	m.clamp()
}

func (m *Model) ScrollBy(dx int) {
	m.SetScrollX(m.scrollX + dx)
}

func (m *Model) State() State {
	return State{Layout: m.layout, PositionID: m.positionID, ScrollX: m.scrollX}
}

func (m *Model) clamp() {
	m.positionID = max(0, min(m.positionID, m.MaxPositionID()))
	m.scrollX = max(0, min(m.scrollX, m.MaxScrollX()))
}

// InitialScrollOffset is the horizontal offset that centers today in a
// canvas of the given width.
func InitialScrollOffset(today time.Time, start models.YearMonth, blockSize, canvasWidth int) int {
	between := models.DaysBetween(start.FirstDay(), today)
	return (between+1)*blockSize - canvasWidth/2
}
