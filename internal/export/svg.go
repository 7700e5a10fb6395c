// Package export renders a whole chart, every row and every day, as a
// standalone SVG document.
package export

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/tasklist"
)

const (
	panelWidth  = 400
	headerRows  = 2 // month label row and day number row
	headerRowPx = 24
	font        = "font-family=\"sans-serif\" font-size=\"12\""
)

// Palette colors; mirrored by the terminal styles.
const (
	colorGrid     = "#e5e7eb"
	colorSaturday = "#dbeafe"
	colorSunday   = "#fee2e2"
	colorToday    = "#fef3c7"
	colorBar      = "#93c5fd"
	colorProgress = "#2563eb"
	colorCategory = "#111827"
	colorText     = "#374151"
)

type Options struct {
	Start      models.YearMonth
	End        models.YearMonth
	Today      time.Time
	Categories []models.Category
	Tasks      []models.Task
}

// Stats summarizes what was drawn.
type Stats struct {
	Rows    int
	Days    int
	Orphans int
	Width   int
	Height  int
}

// SVG writes the chart to w. Orphan tasks are left out, as on screen.
func SVG(w io.Writer, opts Options) (Stats, error) {
	blocks, err := calendar.Build(opts.Start, opts.End)
	if err != nil {
		return Stats{}, err
	}
	list := tasklist.Flatten(opts.Categories, opts.Tasks)
	rects := geometry.Project(list.Rows, opts.Start, constants.BlockSize)

	header := headerRows * headerRowPx
	chartW := calendar.Width(blocks, constants.BlockSize)
	st := Stats{
		Rows:    len(list.Rows),
		Days:    calendar.TotalDays(blocks),
		Orphans: len(list.Orphans),
		Width:   panelWidth + chartW,
		Height:  header + len(list.Rows)*constants.RowHeight,
	}

	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) {
		fmt.Fprintf(bw, format, args...)
	}

	p(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		st.Width, st.Height, st.Width, st.Height)
	p(`<rect width="100%%" height="100%%" fill="white"/>` + "\n")

	// Day columns and header.
	p(`<g transform="translate(%d,0)">`+"\n", panelWidth)
	for _, b := range blocks {
		x := geometry.Left(b.StartBlockNumber, constants.BlockSize)
		p(`<text x="%d" y="%d" %s fill="%s">%s</text>`+"\n",
			x+4, headerRowPx-8, font, colorCategory, html.EscapeString(b.Label))
		p(`<line x1="%d" y1="0" x2="%d" y2="%d" stroke="%s"/>`+"\n", x, x, st.Height, colorText)
		for _, d := range b.Days {
			dx := geometry.Left(d.BlockNumber, constants.BlockSize)
			if fill := dayFill(calendar.KindOf(b, d, opts.Today)); fill != "" {
				p(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
					dx, headerRowPx, constants.BlockSize, st.Height-headerRowPx, fill)
			}
			p(`<text x="%d" y="%d" %s text-anchor="middle" fill="%s">%d</text>`+"\n",
				dx+constants.BlockSize/2, header-8, font, colorText, d.Day)
		}
	}

	for i, r := range rects {
		y := header + i*constants.RowHeight
		p(`<line x1="0" y1="%d" x2="%d" y2="%d" stroke="%s"/>`+"\n", y, chartW, y, colorGrid)
		if !r.HasBar {
			continue
		}
		t := list.Rows[i].Task
		top := header + r.Top
		p(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`+"\n",
			r.Left, top, r.Width, r.Height, colorBar)
		if done := r.Width * clampPct(t.Percentage) / 100; done > 0 {
			p(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`+"\n",
				r.Left, top, done, r.Height, colorProgress)
		}
	}
	p("</g>\n")

	// Task panel.
	p(`<text x="8" y="%d" %s fill="%s">Task</text>`+"\n", header-8, font, colorCategory)
	p(`<text x="200" y="%d" %s fill="%s">Start</text>`+"\n", header-8, font, colorCategory)
	p(`<text x="280" y="%d" %s fill="%s">End</text>`+"\n", header-8, font, colorCategory)
	p(`<text x="360" y="%d" %s fill="%s">%%</text>`+"\n", header-8, font, colorCategory)
	for i, row := range list.Rows {
		y := header + i*constants.RowHeight + constants.RowHeight/2 + 4
		if row.Kind == models.RowCategory {
			p(`<text x="8" y="%d" %s font-weight="bold" fill="%s">%s</text>`+"\n",
				y, font, colorCategory, html.EscapeString(row.Category.Name))
			continue
		}
		t := row.Task
		p(`<text x="20" y="%d" %s fill="%s">%s</text>`+"\n", y, font, colorText, html.EscapeString(t.Name))
		p(`<text x="200" y="%d" %s fill="%s">%s</text>`+"\n", y, font, colorText, t.StartDate.Format("01/02"))
		p(`<text x="280" y="%d" %s fill="%s">%s</text>`+"\n", y, font, colorText, t.EndDate.Format("01/02"))
		p(`<text x="360" y="%d" %s fill="%s">%d</text>`+"\n", y, font, colorText, t.Percentage)
	}
	p(`<line x1="%d" y1="0" x2="%d" y2="%d" stroke="%s"/>`+"\n", panelWidth, panelWidth, st.Height, colorText)
	p("</svg>\n")

	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("failed to write svg: %w", err)
	}
	return st, nil
}

func dayFill(k calendar.DayKind) string {
	switch k {
	case calendar.Today:
		return colorToday
	case calendar.Saturday:
		return colorSaturday
	case calendar.Sunday:
		return colorSunday
	}
	return ""
}

func clampPct(p int) int {
	return min(max(p, 0), 100)
}
