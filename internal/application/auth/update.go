package auth

import (
	"context"
	"time"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

// UpdateInput carries optional fields; nil means "leave unchanged".
type UpdateInput struct {
	Name     *string
	Email    *string
	Password *string
}

// Update changes profile fields. A supplied password is re-hashed; a
// supplied email re-checks uniqueness.
type Update struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUpdate(users ports.UserRepository, hasher ports.PasswordHasher) *Update {
	return &Update{users: users, hasher: hasher}
}

func (uc *Update) Execute(ctx context.Context, id domain.UserID, input UpdateInput) (*ProfileResult, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		existing, err := uc.users.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domerrors.ErrEmailTaken
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := uc.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return &ProfileResult{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
