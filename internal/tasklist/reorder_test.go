package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/gantt/internal/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 1},
		{ID: 3, CategoryID: 1},
		{ID: 4, CategoryID: 2},
	}
}

func taskIDs(tasks []models.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestDragOver_TaskOntoCategoryMovesCategory(t *testing.T) {
	tasks := sampleTasks()

	out, changed := DragOver(tasks, models.TaskRow(tasks[0]), models.CategoryRow(models.Category{ID: 2}))

	assert.True(t, changed)
	assert.Equal(t, []int{1, 2, 3, 4}, taskIDs(out))
	assert.Equal(t, 2, out[0].CategoryID)
	assert.Equal(t, 1, tasks[0].CategoryID, "input must not be modified")

	rows := Flatten([]models.Category{{ID: 1}, {ID: 2}}, out).Rows
	assert.Equal(t, []string{"C1", "T2", "T3", "C2", "T1", "T4"}, ids(rows))
}

func TestDragOver_TaskOntoTaskTakesItsIndex(t *testing.T) {
	tests := []struct {
		name    string
		dragged int
		target  int
		want    []int
	}{
		{"downwards", 1, 3, []int{2, 3, 1, 4}},
		{"upwards", 3, 1, []int{3, 1, 2, 4}},
		{"to the end", 1, 4, []int{2, 3, 4, 1}},
		{"neighbour", 2, 3, []int{1, 3, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := sampleTasks()
			d := tasks[IndexOf(tasks, tt.dragged)]
			tg := tasks[IndexOf(tasks, tt.target)]

			out, changed := DragOver(tasks, models.TaskRow(d), models.TaskRow(tg))

			assert.True(t, changed)
			assert.Equal(t, tt.want, taskIDs(out))
			assert.Equal(t, tg.CategoryID, out[IndexOf(out, tt.dragged)].CategoryID)
		})
	}
}

func TestDragOver_AdoptsTargetCategory(t *testing.T) {
	tasks := sampleTasks()

	out, changed := DragOver(tasks, models.TaskRow(tasks[0]), models.TaskRow(tasks[3]))

	assert.True(t, changed)
	assert.Equal(t, 2, out[IndexOf(out, 1)].CategoryID)
}

func TestDragOver_NoOps(t *testing.T) {
	tasks := sampleTasks()
	cat := models.CategoryRow(models.Category{ID: 1})

	tests := []struct {
		name    string
		dragged models.DisplayRow
		target  models.DisplayRow
	}{
		{"category dragged", cat, models.TaskRow(tasks[1])},
		{"task over itself", models.TaskRow(tasks[1]), models.TaskRow(tasks[1])},
		{"task over own category", models.TaskRow(tasks[1]), cat},
		{"unknown dragged task", models.TaskRow(models.Task{ID: 99}), models.TaskRow(tasks[1])},
		{"unknown target task", models.TaskRow(tasks[1]), models.TaskRow(models.Task{ID: 99})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed := DragOver(tasks, tt.dragged, tt.target)
			assert.False(t, changed)
			assert.Equal(t, []int{1, 2, 3, 4}, taskIDs(out))
		})
	}
}

func TestDragOver_AppliesOnEveryHover(t *testing.T) {
	tasks := sampleTasks()
	dragged := models.TaskRow(tasks[0])
	target := models.TaskRow(tasks[2])

	once, _ := DragOver(tasks, dragged, target)
	twice, _ := DragOver(once, dragged, target)

	assert.Equal(t, []int{2, 3, 1, 4}, taskIDs(once))
	assert.Equal(t, []int{2, 1, 3, 4}, taskIDs(twice))
}

func TestRenumber(t *testing.T) {
	tasks := Renumber([]models.Task{{ID: 5, Position: 9}, {ID: 6, Position: 2}})
	assert.Equal(t, 0, tasks[0].Position)
	assert.Equal(t, 1, tasks[1].Position)
}
