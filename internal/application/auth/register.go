package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	Token string
	User  *domain.User
}

// Register creates an account and signs the first token for it.
type Register struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewRegister(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Register {
	return &Register{users: users, hasher: hasher, issuer: issuer}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	// email match is case-sensitive and exact; the unique constraint
	// backs this check at the store
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrEmailTaken
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issuer.Issue(ports.TokenClaims{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		return nil, err
	}
	return &RegisterResult{Token: token, User: user}, nil
}
