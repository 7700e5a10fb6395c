// Package geometry projects display rows onto the chart canvas.
package geometry

import (
	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/models"
)

// Rect is the canvas slot of one display row. Category rows occupy a slot
// but carry no bar.
type Rect struct {
	RowIndex int
	Kind     models.RowKind
	ID       int
	HasBar   bool
	Left     int
	Width    int
	Top      int
	Height   int
}

// Right returns the x coordinate just past the bar.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Project returns one Rect per row, in row order. Row indices are relative to
// the first row passed in.
func Project(rows []models.DisplayRow, start models.YearMonth, blockSize int) []Rect {
	rects := make([]Rect, len(rows))
	for i, row := range rows {
		r := Rect{
			RowIndex: i,
			Kind:     row.Kind,
			ID:       row.ID(),
			Top:      i*constants.RowHeight + constants.BarTopInset,
		}
		if row.Kind == models.RowTask {
			r.HasBar = true
			r.Left = Left(calendar.BlockOf(start, row.Task.StartDate), blockSize)
			r.Width = row.Task.DurationDays() * blockSize
			r.Height = constants.BarHeight
		}
		rects[i] = r
	}
	return rects
}

// Left converts a block number into a pixel offset.
func Left(blockNumber, blockSize int) int {
	return blockNumber * blockSize
}

// Part identifies which piece of a bar a pointer landed on.
type Part int

const (
	PartNone Part = iota
	PartBody
	PartLeftHandle
	PartRightHandle
)

func (p Part) String() string {
	switch p {
	case PartBody:
		return "body"
	case PartLeftHandle:
		return "left-handle"
	case PartRightHandle:
		return "right-handle"
	default:
		return "none"
	}
}

// Handles describes the hit area of the resize handles around each bar edge.
type Handles struct {
	Inset  int
	Outset int
}

// DefaultHandles matches the pixel surface: an 8px handle hanging 6px past the edge.
var DefaultHandles = Handles{Inset: constants.HandleInset, Outset: constants.HandleOutset}

// Hit is the result of a successful hit test.
type Hit struct {
	Rect Rect
	Part Part
}

// HitTest resolves canvas coordinates to a bar part. Handles take precedence
// over the body so that narrow bars stay resizable.
func HitTest(rects []Rect, x, y int, h Handles) (Hit, bool) {
	for _, r := range rects {
		if !r.HasBar || y < r.Top || y >= r.Top+r.Height {
			continue
		}
		switch {
		case x >= r.Left-h.Outset && x < r.Left+h.Inset:
			return Hit{Rect: r, Part: PartLeftHandle}, true
		case x >= r.Right()-h.Inset && x < r.Right()+h.Outset:
			return Hit{Rect: r, Part: PartRightHandle}, true
		case x >= r.Left && x < r.Right():
			return Hit{Rect: r, Part: PartBody}, true
		}
	}
	return Hit{}, false
}
