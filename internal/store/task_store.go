package store

import (
	"context"
	"fmt"

	"github.com/vbonduro/gridtrack/internal/db"
	"github.com/vbonduro/gridtrack/internal/domain"
)

const TasksCollection = "tasks"

// TaskStore persists tasks. Task names are not unique.
type TaskStore struct {
	coll *db.Collection[domain.Task]
}

func NewTaskStore(d *db.DB) *TaskStore {
	return &TaskStore{coll: db.NewCollection[domain.Task](d, TasksCollection, nil)}
}

func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	rec := *task
	if rec.Assets == nil {
		rec.Assets = []string{}
	}
	if err := s.coll.Append(ctx, rec); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	records, err := s.coll.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(records))
	for i := range records {
		if records[i].Assets == nil {
			records[i].Assets = []string{}
		}
		tasks = append(tasks, &records[i])
	}
	return tasks, nil
}
