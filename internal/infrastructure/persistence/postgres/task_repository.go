package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
)

const (
	insertTaskSQL = `
		INSERT INTO tasks (id, title, description, due_date, status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	selectTasksByOwnerSQL = `
		SELECT id, title, description, due_date, status, user_id, created_at, updated_at
		FROM tasks WHERE user_id = $1
		ORDER BY created_at`
	selectTaskByIDAndOwnerSQL = `
		SELECT id, title, description, due_date, status, user_id, created_at, updated_at
		FROM tasks WHERE id = $1 AND user_id = $2`
	updateTaskSQL = `
		UPDATE tasks SET title = $3, description = $4, due_date = $5, status = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2`
	deleteTaskSQL = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
)

// TaskRepository implements ports.TaskRepository on postgres. Mutating
// statements match on id AND user_id so ownership is enforced by the
// query itself.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.pool.Exec(ctx, insertTaskSQL,
		task.ID.UUID,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		task.UserID.UUID,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx, selectTasksByOwnerSQL, ownerID.UUID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return list, nil
}

func (r *TaskRepository) GetByIDAndOwner(ctx context.Context, id domain.TaskID, ownerID domain.UserID) (*domain.Task, error) {
	task, err := scanTask(r.pool.QueryRow(ctx, selectTaskByIDAndOwnerSQL, id.UUID, ownerID.UUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (int64, error) {
	tag, err := r.pool.Exec(ctx, updateTaskSQL,
		task.ID.UUID,
		task.UserID.UUID,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		task.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update task: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id domain.TaskID, ownerID domain.UserID) (int64, error) {
	tag, err := r.pool.Exec(ctx, deleteTaskSQL, id.UUID, ownerID.UUID)
	if err != nil {
		return 0, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		task   domain.Task
		status string
	)
	err := row.Scan(
		&task.ID.UUID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&status,
		&task.UserID.UUID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	task.Status = domain.TaskStatus(status)
	return &task, nil
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
