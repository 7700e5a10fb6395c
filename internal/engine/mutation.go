package engine

import (
	"github.com/julianstephens/gantt/internal/drag"
	"github.com/julianstephens/gantt/internal/models"
)

type MutationKind int

const (
	MutationMoved MutationKind = iota
	MutationResizedStart
	MutationResizedEnd
	MutationReordered
	MutationRecategorized
)

func (k MutationKind) String() string {
	switch k {
	case MutationMoved:
		return "moved"
	case MutationResizedStart:
		return "resized-start"
	case MutationResizedEnd:
		return "resized-end"
	case MutationReordered:
		return "reordered"
	case MutationRecategorized:
		return "recategorized"
	default:
		return "unknown"
	}
}

// Mutation reports a committed change to the task collection so the
// application can persist it. Order is set for reorders and lists every
// task id in the new collection order.
type Mutation struct {
	Kind      MutationKind
	TaskID    int
	Before    models.Task
	After     models.Task
	Order     []int
	GestureID string
}

// Sink receives mutations synchronously, in commit order.
type Sink func(Mutation)

func kindOf(m drag.Mode) MutationKind {
	switch m {
	case drag.ResizingLeft:
		return MutationResizedStart
	case drag.ResizingRight:
		return MutationResizedEnd
	default:
		return MutationMoved
	}
}
