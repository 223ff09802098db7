package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

type CreateInput struct {
	Title       string
	Description string     // empty when omitted
	DueDate     *time.Time // optional
	Status      domain.TaskStatus
}

// Create persists a task for its owner. Title and description are
// encrypted before they touch the store.
type Create struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	cipher ports.FieldCipher
}

func NewCreate(tasks ports.TaskRepository, users ports.UserRepository, cipher ports.FieldCipher) *Create {
	return &Create{tasks: tasks, users: users, cipher: cipher}
}

func (uc *Create) Execute(ctx context.Context, ownerID domain.UserID, input CreateInput) error {
	owner, err := uc.users.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return domerrors.ErrUserNotFound
	}
	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	title, err := uc.cipher.Encrypt(input.Title)
	if err != nil {
		return domerrors.ErrTaskCreate
	}
	description, err := uc.cipher.Encrypt(input.Description)
	if err != nil {
		return domerrors.ErrTaskCreate
	}
	now := time.Now()
	task := &domain.Task{
		ID:          domain.NewTaskID(uuid.New()),
		Title:       title,
		Description: description,
		DueDate:     input.DueDate,
		Status:      status,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		return domerrors.ErrTaskCreate
	}
	return nil
}
