package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
)

// TaskRepository is an in-memory ports.TaskRepository used by tests.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[domain.TaskID]*domain.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[domain.TaskID]*domain.Task)}
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *TaskRepository) ListByOwner(_ context.Context, ownerID domain.UserID) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Task
	for _, task := range r.tasks {
		if task.UserID == ownerID {
			clone := *task
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *TaskRepository) GetByIDAndOwner(_ context.Context, id domain.TaskID, ownerID domain.UserID) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, nil
	}
	clone := *task
	return &clone, nil
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return 0, nil
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return 1, nil
}

func (r *TaskRepository) Delete(_ context.Context, id domain.TaskID, ownerID domain.UserID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}

func (r *TaskRepository) deleteByOwner(ownerID domain.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, task := range r.tasks {
		if task.UserID == ownerID {
			delete(r.tasks, id)
		}
	}
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
