package tasks

import (
	"context"
	"time"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

// UpdateInput carries optional fields; nil means "leave unchanged".
type UpdateInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *domain.TaskStatus
}

// Update changes supplied fields only, re-encrypting title/description
// when they are part of the change.
type Update struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	cipher ports.FieldCipher
}

func NewUpdate(tasks ports.TaskRepository, users ports.UserRepository, cipher ports.FieldCipher) *Update {
	return &Update{tasks: tasks, users: users, cipher: cipher}
}

func (uc *Update) Execute(ctx context.Context, id domain.TaskID, ownerID domain.UserID, input UpdateInput) error {
	owner, err := uc.users.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return domerrors.ErrUserNotFound
	}
	task, err := uc.tasks.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if task == nil {
		return domerrors.ErrTaskNotFound
	}
	if input.Title != nil {
		title, err := uc.cipher.Encrypt(*input.Title)
		if err != nil {
			return err
		}
		task.Title = title
	}
	if input.Description != nil {
		description, err := uc.cipher.Encrypt(*input.Description)
		if err != nil {
			return err
		}
		task.Description = description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	task.UpdatedAt = time.Now()
	rows, err := uc.tasks.Update(ctx, task)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domerrors.ErrTaskNotFound
	}
	return nil
}
