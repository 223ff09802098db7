package auth

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *domain.User
}

// Login validates credentials and issues a token.
type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Login {
	return &Login{users: users, hasher: hasher, issuer: issuer}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	// unknown email and wrong password collapse into the same error so
	// a response never confirms whether an account exists
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.Issue(ports.TokenClaims{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}
