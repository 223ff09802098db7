package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

const (
	// Issuer and Audience are fixed for every token this service signs.
	Issuer   = "signin"
	Audience = "users"

	// TokenValidity is the only invalidation path; there is no
	// revocation or refresh flow.
	TokenValidity = 7 * 24 * time.Hour
)

type identityClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenIssuer implements ports.TokenIssuer with HS256 and a process-wide
// signing secret loaded once at startup.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret, now: time.Now}
}

func (t *TokenIssuer) Issue(claims ports.TokenClaims) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		Name:  claims.Name,
		Email: claims.Email,
	})
	return token.SignedString(t.secret)
}

// Verify checks signature, issuer, audience and expiry. Every failure maps
// to the one opaque ErrInvalidToken so responses never reveal which check
// rejected the token.
func (t *TokenIssuer) Verify(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&identityClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, domerrors.ErrInvalidToken
			}
			return t.secret, nil
		},
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, domerrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, domerrors.ErrInvalidToken
	}
	return &ports.TokenClaims{
		UserID: claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)
