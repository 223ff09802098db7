package auth

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

// Remove deletes the account. Owned tasks follow through the store's
// referential cascade.
type Remove struct {
	users ports.UserRepository
}

func NewRemove(users ports.UserRepository) *Remove {
	return &Remove{users: users}
}

func (uc *Remove) Execute(ctx context.Context, id domain.UserID) error {
	rows, err := uc.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domerrors.ErrUserNotFound
	}
	return nil
}
