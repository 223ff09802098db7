package ports

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/domain"
)

// UserRepository defines persistence for user accounts.
// Get* methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user. Owned tasks go with it via the
	// ON DELETE CASCADE constraint. Returns the number of rows removed.
	Delete(ctx context.Context, id domain.UserID) (int64, error)
}

// TaskRepository defines persistence for tasks. Every query is scoped by
// owner so a task is unreachable through another user's id.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Task, error)
	GetByIDAndOwner(ctx context.Context, id domain.TaskID, ownerID domain.UserID) (*domain.Task, error)
	// Update persists the supplied task row matched on id+owner and
	// returns the number of rows affected.
	Update(ctx context.Context, task *domain.Task) (int64, error)
	// Delete removes the id+owner match and returns rows affected.
	Delete(ctx context.Context, id domain.TaskID, ownerID domain.UserID) (int64, error)
}
