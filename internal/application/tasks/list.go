package tasks

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

// List returns the owner's tasks with title and description decrypted.
type List struct {
	tasks  ports.TaskRepository
	cipher ports.FieldCipher
}

func NewList(tasks ports.TaskRepository, cipher ports.FieldCipher) *List {
	return &List{tasks: tasks, cipher: cipher}
}

func (uc *List) Execute(ctx context.Context, ownerID domain.UserID) ([]*domain.Task, error) {
	list, err := uc.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	// zero tasks is reported as not-found, not an empty success; clients
	// depend on this shape
	if len(list) == 0 {
		return nil, domerrors.ErrTasksNotFound
	}
	for _, task := range list {
		if err := decryptTask(uc.cipher, task); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func decryptTask(cipher ports.FieldCipher, task *domain.Task) error {
	title, err := cipher.Decrypt(task.Title)
	if err != nil {
		return err
	}
	description, err := cipher.Decrypt(task.Description)
	if err != nil {
		return err
	}
	task.Title = title
	task.Description = description
	return nil
}
