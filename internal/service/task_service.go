package service

import (
	"context"
	"log/slog"

	"github.com/vbonduro/gridtrack/internal/domain"
)

// taskRepository is the subset of store.TaskStore that TaskService requires.
type taskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	List(ctx context.Context) ([]*domain.Task, error)
}

type TaskService struct {
	tasks  taskRepository
	logger *slog.Logger
}

func NewTaskService(tasks taskRepository, logger *slog.Logger) *TaskService {
	return &TaskService{tasks: tasks, logger: logger}
}

// CreateTask stores a new task with no associated assets. Asset names added to
// a task later are not checked against the asset collection.
func (s *TaskService) CreateTask(ctx context.Context, in NewTask) (*domain.Task, error) {
	task, err := validateTask(in)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	s.logger.Info("task created", "name", task.Name)
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}
