package tasks

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/persistence/memory"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/security"
)

type deps struct {
	users  *memory.UserRepository
	tasks  *memory.TaskRepository
	cipher *security.AESGCMCipher
}

func newDeps(t *testing.T) deps {
	t.Helper()
	cipher, err := security.NewAESGCMCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	tasks := memory.NewTaskRepository()
	users := memory.NewUserRepository()
	users.Tasks = tasks
	return deps{users: users, tasks: tasks, cipher: cipher}
}

func (d deps) addOwner(t *testing.T, name, email string) domain.UserID {
	t.Helper()
	id := domain.NewUserID(uuid.New())
	require.NoError(t, d.users.Create(context.Background(), &domain.User{
		ID:    id,
		Name:  name,
		Email: email,
	}))
	return id
}

func TestCreate_EncryptsBeforePersist(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")

	err := NewCreate(d.tasks, d.users, d.cipher).Execute(ctx, owner, CreateInput{
		Title:       "Buy milk",
		Description: "2%",
	})
	require.NoError(t, err)

	stored, err := d.tasks.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.NotEqual(t, "Buy milk", stored[0].Title, "stored title must be ciphertext")
	assert.Len(t, strings.Split(stored[0].Title, ":"), 3)
	assert.Equal(t, domain.StatusPending, stored[0].Status, "status defaults to pending")

	title, err := d.cipher.Decrypt(stored[0].Title)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", title)
	description, err := d.cipher.Decrypt(stored[0].Description)
	require.NoError(t, err)
	assert.Equal(t, "2%", description)
}

func TestCreate_OwnerMustExist(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	err := NewCreate(d.tasks, d.users, d.cipher).Execute(context.Background(), domain.NewUserID(uuid.New()), CreateInput{Title: "x"})
	assert.ErrorIs(t, err, domerrors.ErrUserNotFound)
}

func TestCreate_OptionalFields(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	due := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	err := NewCreate(d.tasks, d.users, d.cipher).Execute(ctx, owner, CreateInput{
		Title:   "Call dentist",
		DueDate: &due,
		Status:  domain.StatusInProgress,
	})
	require.NoError(t, err)

	list, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "", list[0].Description, "omitted description defaults to empty string")
	assert.Equal(t, domain.StatusInProgress, list[0].Status)
	require.NotNil(t, list[0].DueDate)
	assert.True(t, list[0].DueDate.Equal(due))
}

func TestList_DecryptsFields(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	create := NewCreate(d.tasks, d.users, d.cipher)
	require.NoError(t, create.Execute(ctx, owner, CreateInput{Title: "Buy milk", Description: "2%"}))
	require.NoError(t, create.Execute(ctx, owner, CreateInput{Title: "Walk dog"}))

	list, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	titles := []string{list[0].Title, list[1].Title}
	assert.Contains(t, titles, "Buy milk")
	assert.Contains(t, titles, "Walk dog")
}

func TestList_ZeroTasksIsNotFound(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	owner := d.addOwner(t, "Jane", "jane@x.com")
	_, err := NewList(d.tasks, d.cipher).Execute(context.Background(), owner)
	assert.ErrorIs(t, err, domerrors.ErrTasksNotFound)
}

func TestList_CorruptedRecordIsBadRequest(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	require.NoError(t, d.tasks.Create(ctx, &domain.Task{
		ID:          domain.NewTaskID(uuid.New()),
		Title:       "invalid:data:format",
		Description: "invalid:data:format",
		Status:      domain.StatusPending,
		UserID:      owner,
	}))

	_, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	assert.ErrorIs(t, err, domerrors.ErrDecryptionFailed)
}

func TestGet_ScopedToOwner(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	alice := d.addOwner(t, "Alice", "alice@x.com")
	bob := d.addOwner(t, "Bob", "bob@x.com")
	require.NoError(t, NewCreate(d.tasks, d.users, d.cipher).Execute(ctx, alice, CreateInput{Title: "Alice's task"}))

	list, err := NewList(d.tasks, d.cipher).Execute(ctx, alice)
	require.NoError(t, err)
	taskID := list[0].ID

	got, err := NewGet(d.tasks, d.cipher).Execute(ctx, taskID, alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice's task", got.Title)

	// same id, different owner: indistinguishable from missing
	_, err = NewGet(d.tasks, d.cipher).Execute(ctx, taskID, bob)
	assert.ErrorIs(t, err, domerrors.ErrTaskNotFound)
}

func TestUpdate_SuppliedFieldsOnly(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	require.NoError(t, NewCreate(d.tasks, d.users, d.cipher).Execute(ctx, owner, CreateInput{Title: "Buy milk", Description: "2%"}))
	list, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	require.NoError(t, err)
	taskID := list[0].ID

	status := domain.StatusCompleted
	require.NoError(t, NewUpdate(d.tasks, d.users, d.cipher).Execute(ctx, taskID, owner, UpdateInput{Status: &status}))

	got, err := NewGet(d.tasks, d.cipher).Execute(ctx, taskID, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, "Buy milk", got.Title, "title unchanged")
	assert.Equal(t, "2%", got.Description, "description unchanged")
}

func TestUpdate_ReencryptsSuppliedText(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	require.NoError(t, NewCreate(d.tasks, d.users, d.cipher).Execute(ctx, owner, CreateInput{Title: "Buy milk"}))
	list, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	require.NoError(t, err)
	taskID := list[0].ID

	title := "Buy oat milk"
	require.NoError(t, NewUpdate(d.tasks, d.users, d.cipher).Execute(ctx, taskID, owner, UpdateInput{Title: &title}))

	stored, err := d.tasks.GetByIDAndOwner(ctx, taskID, owner)
	require.NoError(t, err)
	assert.NotEqual(t, "Buy oat milk", stored.Title, "stored title must be ciphertext")
	got, err := NewGet(d.tasks, d.cipher).Execute(ctx, taskID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Title)
}

func TestUpdate_NotFoundCases(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	other := d.addOwner(t, "Bob", "bob@x.com")
	require.NoError(t, NewCreate(d.tasks, d.users, d.cipher).Execute(ctx, owner, CreateInput{Title: "Buy milk"}))
	list, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	require.NoError(t, err)
	taskID := list[0].ID

	title := "x"
	uc := NewUpdate(d.tasks, d.users, d.cipher)
	assert.ErrorIs(t, uc.Execute(ctx, taskID, domain.NewUserID(uuid.New()), UpdateInput{Title: &title}), domerrors.ErrUserNotFound)
	assert.ErrorIs(t, uc.Execute(ctx, taskID, other, UpdateInput{Title: &title}), domerrors.ErrTaskNotFound)
	assert.ErrorIs(t, uc.Execute(ctx, domain.NewTaskID(uuid.New()), owner, UpdateInput{Title: &title}), domerrors.ErrTaskNotFound)
}

func TestRemove_ScopedToOwner(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	other := d.addOwner(t, "Bob", "bob@x.com")
	require.NoError(t, NewCreate(d.tasks, d.users, d.cipher).Execute(ctx, owner, CreateInput{Title: "Buy milk"}))
	list, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	require.NoError(t, err)
	taskID := list[0].ID

	uc := NewRemove(d.tasks)
	assert.ErrorIs(t, uc.Execute(ctx, taskID, other), domerrors.ErrTaskNotFound)
	require.NoError(t, uc.Execute(ctx, taskID, owner))
	assert.ErrorIs(t, uc.Execute(ctx, taskID, owner), domerrors.ErrTaskNotFound)
}

func TestRemoveUser_CascadesToTasks(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	owner := d.addOwner(t, "Jane", "jane@x.com")
	create := NewCreate(d.tasks, d.users, d.cipher)
	require.NoError(t, create.Execute(ctx, owner, CreateInput{Title: "one"}))
	require.NoError(t, create.Execute(ctx, owner, CreateInput{Title: "two"}))
	list, err := NewList(d.tasks, d.cipher).Execute(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)

	rows, err := d.users.Delete(ctx, owner)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	for _, task := range list {
		_, err := NewGet(d.tasks, d.cipher).Execute(ctx, task.ID, owner)
		assert.ErrorIs(t, err, domerrors.ErrTaskNotFound)
	}
}
