package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/drag"
	"github.com/julianstephens/gantt/internal/engine"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/models"
)

// Task panel column widths.
const (
	nameCols = 16
	userCols = 8
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateEditing:
		return docStyle.Render(m.form.View())
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	case StateConflicts:
		return docStyle.Render(m.conflictView.View())
	}

	if m.help.ShowAll {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View(m))
	}

	snap := m.engine.Snapshot()
	g := m.grid()
	days := dayIndex(snap)

	lines := make([]string, 0, m.height)
	lines = append(lines, m.viewTitle(snap))
	lines = append(lines, viewHeader(snap, days, g)...)
	lines = append(lines, m.viewRows(snap, days, g)...)
	lines = append(lines, m.viewStatus(snap), m.help.View(m))
	return strings.Join(lines, "\n")
}

func (m Model) viewTitle(snap engine.Snapshot) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("gantt"),
		rangeStyle.Render(fmt.Sprintf("%s to %s", m.engine.Start(), m.engine.End())),
		rangeStyle.Render("today "+models.FormatDate(snap.Today)),
	)
}

// dayInfo is what the header and background need to know about one day
// column, indexed by block number.
type dayInfo struct {
	day   int
	kind  calendar.DayKind
	month string
}

func dayIndex(snap engine.Snapshot) []dayInfo {
	var out []dayInfo
	for _, b := range snap.Calendar {
		for _, d := range b.Days {
			out = append(out, dayInfo{day: d.Day, kind: calendar.KindOf(b, d, snap.Today), month: b.Label})
		}
	}
	return out
}

func kindStyle(k calendar.DayKind) cellStyle {
	switch k {
	case calendar.Saturday:
		return cellSaturday
	case calendar.Sunday:
		return cellSunday
	case calendar.Today:
		return cellToday
	}
	return cellPlain
}

type cell struct {
	r     rune
	style cellStyle
}

func blank(n int) []cell {
	cells := make([]cell, n)
	for i := range cells {
		cells[i].r = ' '
	}
	return cells
}

func overlay(cells []cell, at int, text string, style cellStyle) {
	for _, r := range text {
		if at >= len(cells) {
			return
		}
		if at >= 0 {
			cells[at] = cell{r: r, style: style}
		}
		at++
	}
}

// render merges runs of equally styled cells into one styled string each.
func render(cells []cell) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run []rune
		for j < len(cells) && cells[j].style == cells[i].style {
			run = append(run, cells[j].r)
			j++
		}
		b.WriteString(cellStyles[cells[i].style].Render(string(run)))
		i = j
	}
	return b.String()
}

// columnDay returns the block under chart column c and whether c is the
// first column of that day.
func columnDay(snap engine.Snapshot, c int) (block int, first bool) {
	px := snap.ScrollX + c*pxPerCol
	return px / snap.BlockSize, px%snap.BlockSize < pxPerCol
}

func viewHeader(snap engine.Snapshot, days []dayInfo, g grid) []string {
	cols := g.chartCols()
	months, numbers := blank(cols), blank(cols)

	for c := 0; c < cols; c++ {
		b, _ := columnDay(snap, c)
		if b < len(days) {
			numbers[c].style = kindStyle(days[b].kind)
		}
	}
	for c := 0; c < cols; c++ {
		b, first := columnDay(snap, c)
		if b >= len(days) {
			break
		}
		d := days[b]
		if c == 0 || (first && d.day == 1) {
			overlay(months, c, d.month, cellMonth)
		}
		if first {
			overlay(numbers, c, fmt.Sprintf("%2d", d.day), numbers[c].style)
		}
	}

	columns := fmt.Sprintf("%s %s %-5s %-5s %4s ",
		runewidth.FillRight("  Task", nameCols),
		runewidth.FillRight("Owner", userCols),
		"Start", "End", "%")
	return []string{
		strings.Repeat(" ", panelCols) + render(months),
		headerStyle.Render(runewidth.FillRight(columns, panelCols)) + render(numbers),
	}
}

func (m Model) viewRows(snap engine.Snapshot, days []dayInfo, g grid) []string {
	lines := make([]string, g.rowLines())
	for i := range lines {
		if i >= len(snap.VisibleRows) {
			continue
		}
		row := snap.VisibleRows[i]
		style := taskStyle
		switch {
		case snap.PositionID+i == m.selected,
			snap.DraggedRow != nil && row.Kind == models.RowTask && snap.DraggedRow.Task.ID == row.Task.ID:
			style = selectedStyle
		case row.Kind == models.RowCategory:
			style = categoryStyle
		}
		lines[i] = style.Render(panelText(row)) + render(chartRow(snap, snap.RowGeometry[i], row, days, g.chartCols()))
	}
	return lines
}

func panelText(row models.DisplayRow) string {
	if row.Kind == models.RowCategory {
		return runewidth.FillRight(runewidth.Truncate("▾ "+row.Category.Name, panelCols-1, "…"), panelCols)
	}
	t := row.Task
	text := fmt.Sprintf("%s %s %s %s %3d%% ",
		runewidth.FillRight(runewidth.Truncate("  "+t.Name, nameCols, "…"), nameCols),
		runewidth.FillRight(runewidth.Truncate(t.InchargeUser, userCols, "…"), userCols),
		t.StartDate.Format("01/02"),
		t.EndDate.Format("01/02"),
		t.Percentage)
	return runewidth.FillRight(text, panelCols)
}

func chartRow(snap engine.Snapshot, rect geometry.Rect, row models.DisplayRow, days []dayInfo, cols int) []cell {
	cells := blank(cols)
	active := snap.Dragging.Mode != drag.Idle && rect.HasBar && snap.Dragging.TaskID == rect.ID

	done := rect.Left
	if rect.HasBar {
		done += rect.Width * min(max(row.Task.Percentage, 0), 100) / 100
	}

	for c := range cells {
		b, _ := columnDay(snap, c)
		if b < len(days) {
			cells[c].style = kindStyle(days[b].kind)
		}
		mid := snap.ScrollX + c*pxPerCol + pxPerCol/2
		if !rect.HasBar || mid < rect.Left || mid >= rect.Right() {
			continue
		}
		switch {
		case active:
			cells[c] = cell{r: '▓', style: cellActive}
		case mid < done:
			cells[c] = cell{r: '█', style: cellProgress}
		default:
			cells[c] = cell{r: '▓', style: cellBar}
		}
	}
	return cells
}

func (m Model) viewStatus(snap engine.Snapshot) string {
	left := statusStyle.Render(m.status)
	if m.status == "" && m.validationWarning != "" {
		left = warningStyle.Render(m.validationWarning + " (v to view)")
	}
	right := statusStyle.Render(fmt.Sprintf("rows %d-%d of %d",
		min(snap.PositionID+1, snap.TotalRows), snap.PositionID+len(snap.VisibleRows), snap.TotalRows))
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) viewConfirmDelete() string {
	name := fmt.Sprintf("task %d", m.taskToDelete)
	if t, ok := m.engine.Task(m.taskToDelete); ok {
		name = fmt.Sprintf("%q", t.Name)
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete "+name+"?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
