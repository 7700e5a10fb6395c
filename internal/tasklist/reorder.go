package tasklist

import "github.com/julianstephens/gantt/internal/models"

// DragOver applies one drag-over of dragged onto target and returns the new
// task collection. The input slice is not modified. changed is false when
// the gesture does not apply: a dragged category, a task over itself, or a
// task no longer in the collection.
func DragOver(tasks []models.Task, dragged, target models.DisplayRow) (out []models.Task, changed bool) {
	if dragged.Kind != models.RowTask {
		return tasks, false
	}

	from := IndexOf(tasks, dragged.Task.ID)
	if from < 0 {
		return tasks, false
	}

	switch target.Kind {
	case models.RowCategory:
		if tasks[from].CategoryID == target.Category.ID {
			return tasks, false
		}
		out = append([]models.Task(nil), tasks...)
		out[from].CategoryID = target.Category.ID
		return out, true

	case models.RowTask:
		if target.Task.ID == dragged.Task.ID {
			return tasks, false
		}
		to := IndexOf(tasks, target.Task.ID)
		if to < 0 {
			return tasks, false
		}
		moved := tasks[from]
		moved.CategoryID = tasks[to].CategoryID

		out = make([]models.Task, 0, len(tasks))
		out = append(out, tasks[:from]...)
		out = append(out, tasks[from+1:]...)
		// to indexes the original collection; after removal it is still
		// the slot the target occupied at hover time.
		out = append(out[:to], append([]models.Task{moved}, out[to:]...)...)
		return out, true
	}
	return tasks, false
}

// Renumber sets Position to the collection index of every task.
func Renumber(tasks []models.Task) []models.Task {
	for i := range tasks {
		tasks[i].Position = i
	}
	return tasks
}
