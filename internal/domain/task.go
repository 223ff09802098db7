package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskID is a value object for task identity.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a new TaskID from uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// ParseTaskID parses the canonical string form.
func ParseTaskID(s string) (TaskID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, err
	}
	return TaskID{UUID: id}, nil
}

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// TaskStatus enumerates the task lifecycle states.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task belongs to exactly one user. Title and Description hold ciphertext
// records at rest; repositories never see plaintext.
type Task struct {
	ID          TaskID
	Title       string
	Description string
	DueDate     *time.Time
	Status      TaskStatus
	UserID      UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
