package tasks

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

// Get fetches one task by id+owner and decrypts it. A task owned by
// someone else is indistinguishable from a missing one.
type Get struct {
	tasks  ports.TaskRepository
	cipher ports.FieldCipher
}

func NewGet(tasks ports.TaskRepository, cipher ports.FieldCipher) *Get {
	return &Get{tasks: tasks, cipher: cipher}
}

func (uc *Get) Execute(ctx context.Context, id domain.TaskID, ownerID domain.UserID) (*domain.Task, error) {
	task, err := uc.tasks.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domerrors.ErrTaskNotFound
	}
	if err := decryptTask(uc.cipher, task); err != nil {
		return nil, err
	}
	return task, nil
}
