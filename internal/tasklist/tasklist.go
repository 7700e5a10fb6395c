// Package tasklist builds the render-ordered rows of the task panel and
// applies drag-and-drop reordering to the task collection.
package tasklist

import "github.com/julianstephens/gantt/internal/models"

// Result is the flattened display list. Orphans holds tasks whose category
// is unknown; they are left out of Rows.
type Result struct {
	Rows    []models.DisplayRow
	Orphans []models.Task
}

// Flatten emits each category followed by its tasks in collection order.
func Flatten(categories []models.Category, tasks []models.Task) Result {
	known := make(map[int]bool, len(categories))
	rows := make([]models.DisplayRow, 0, len(categories)+len(tasks))
	for _, c := range categories {
		known[c.ID] = true
		rows = append(rows, models.CategoryRow(c))
		for _, t := range tasks {
			if t.CategoryID == c.ID {
				rows = append(rows, models.TaskRow(t))
			}
		}
	}

	var orphans []models.Task
	for _, t := range tasks {
		if !known[t.CategoryID] {
			orphans = append(orphans, t)
		}
	}
	return Result{Rows: rows, Orphans: orphans}
}

// IndexOf returns the index of the task with id, or -1.
func IndexOf(tasks []models.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
