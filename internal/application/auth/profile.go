package auth

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

// ProfileResult is the identity info safe to return to clients: no
// password hash, no timestamps.
type ProfileResult struct {
	ID    string
	Name  string
	Email string
}

// Profile returns the stripped-down account view.
type Profile struct {
	users ports.UserRepository
}

func NewProfile(users ports.UserRepository) *Profile {
	return &Profile{users: users}
}

func (uc *Profile) Execute(ctx context.Context, id domain.UserID) (*ProfileResult, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	return &ProfileResult{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
