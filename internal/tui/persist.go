package tui

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/engine"
	"github.com/julianstephens/gantt/internal/logger"
	"github.com/julianstephens/gantt/internal/storage"
)

// persister writes engine mutations through to storage. The engine calls
// it synchronously, so the model reads the last error back right after the
// call that produced it.
type persister struct {
	store storage.Provider
	err   error
}

func (p *persister) apply(m engine.Mutation) {
	var err error
	switch m.Kind {
	case engine.MutationRecategorized:
		if err = p.store.UpdateTask(m.After); err == nil {
			err = p.store.SaveTaskOrder(m.Order)
		}
	case engine.MutationReordered:
		err = p.store.SaveTaskOrder(m.Order)
	default:
		err = p.store.UpdateTask(m.After)
	}

	if err != nil {
		logger.Error("Failed to save change", "kind", m.Kind, "task", m.TaskID, "error", err)
		p.err = fmt.Errorf("failed to save %s task %d: %w", m.Kind, m.TaskID, err)
		return
	}
	logger.Debug("Change saved", "kind", m.Kind, "task", m.TaskID, "gesture", m.GestureID)
}

func (p *persister) take() error {
	err := p.err
	p.err = nil
	return err
}
