package tasks

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

// Remove deletes by id+owner match.
type Remove struct {
	tasks ports.TaskRepository
}

func NewRemove(tasks ports.TaskRepository) *Remove {
	return &Remove{tasks: tasks}
}

func (uc *Remove) Execute(ctx context.Context, id domain.TaskID, ownerID domain.UserID) error {
	rows, err := uc.tasks.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domerrors.ErrTaskNotFound
	}
	return nil
}
