package models

type RowKind int

const (
	RowCategory RowKind = iota
	RowTask
)

func (k RowKind) String() string {
	if k == RowCategory {
		return "category"
	}
	return "task"
}

// DisplayRow is a single line of the task panel: either a category header
// or a task. Exactly one of Category and Task is set, according to Kind.
type DisplayRow struct {
	Kind     RowKind
	Category *Category
	Task     *Task
}

func CategoryRow(c Category) DisplayRow {
	return DisplayRow{Kind: RowCategory, Category: &c}
}

func TaskRow(t Task) DisplayRow {
	return DisplayRow{Kind: RowTask, Task: &t}
}

// ID returns the id of the underlying category or task.
func (r DisplayRow) ID() int {
	if r.Kind == RowCategory {
		return r.Category.ID
	}
	return r.Task.ID
}

func (r DisplayRow) Name() string {
	if r.Kind == RowCategory {
		return r.Category.Name
	}
	return r.Task.Name
}
