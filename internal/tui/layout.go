package tui

import (
	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/viewport"
)

// The engine works in pixels. A terminal column is pxPerCol pixels wide and
// a terminal line holds exactly one display row.
const (
	dayCols     = 3
	pxPerCol    = constants.BlockSize / dayCols
	panelCols   = 44
	headerLines = 3 // title, months, day numbers
	footerLines = 2 // status, help
)

// cellHandles makes each bar end one column wide on either side of its edge.
var cellHandles = geometry.Handles{Inset: pxPerCol, Outset: pxPerCol}

type zone int

const (
	zoneNone zone = iota
	zonePanel
	zoneChart
)

// grid is the terminal size in cells.
type grid struct {
	width, height int
}

func (g grid) rowLines() int {
	return max(0, g.height-headerLines-footerLines)
}

func (g grid) chartCols() int {
	return max(0, g.width-panelCols)
}

// layout reports the terminal as container measurements such that the
// engine's canvas is exactly chartCols by rowLines.
func (g grid) layout() viewport.Layout {
	return viewport.Layout{
		ContainerWidth:  g.width * pxPerCol,
		ContainerHeight: g.rowLines()*constants.RowHeight + constants.HeaderOffset + constants.ScrollbarAllowance,
		TaskPanelWidth:  panelCols * pxPerCol,
	}
}

// locate returns the area under cell (x, y) and its line within the rows.
func (g grid) locate(x, y int) (zone, int) {
	line := y - headerLines
	if line < 0 || line >= g.rowLines() || x < 0 || x >= g.width {
		return zoneNone, 0
	}
	if x < panelCols {
		return zonePanel, line
	}
	return zoneChart, line
}

// contentX is the content pixel at the center of terminal column x.
func contentX(x, scrollX int) int {
	return scrollX + (x-panelCols)*pxPerCol + pxPerCol/2
}

// rowY is the pixel at the vertical center of a row line, relative to the
// first visible row.
func rowY(line int) int {
	return line*constants.RowHeight + constants.RowHeight/2
}
