package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
)

// UserRepository is an in-memory ports.UserRepository used by tests.
type UserRepository struct {
	mu    sync.RWMutex
	users map[domain.UserID]*domain.User
	// Tasks, when set, receives cascade deletes the way the database
	// foreign key would.
	Tasks *TaskRepository
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[domain.UserID]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate key value violates unique constraint on email %s", user.Email)
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id domain.UserID) (int64, error) {
	r.mu.Lock()
	if _, ok := r.users[id]; !ok {
		r.mu.Unlock()
		return 0, nil
	}
	delete(r.users, id)
	r.mu.Unlock()
	if r.Tasks != nil {
		r.Tasks.deleteByOwner(id)
	}
	return 1, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
