package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	infraauth "github.com/LucasMartinsVieira/toodoo/internal/infrastructure/auth"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/persistence/memory"
)

func guardFixture(t *testing.T) (*AuthGuard, *memory.UserRepository, ports.TokenIssuer) {
	t.Helper()
	users := memory.NewUserRepository()
	issuer := infraauth.NewTokenIssuer([]byte("guard-secret"))
	return NewAuthGuard(issuer, users), users, issuer
}

func addUser(t *testing.T, users *memory.UserRepository) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:    domain.NewUserID(uuid.New()),
		Name:  "Jane",
		Email: "jane@x.com",
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func serveGuarded(guard *AuthGuard, authorization string) (*httptest.ResponseRecorder, *Identity) {
	var captured *Identity
	handler := guard.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestAuthGuard_AttachesIdentity(t *testing.T) {
	t.Parallel()

	guard, users, issuer := guardFixture(t)
	user := addUser(t, users)
	token, err := issuer.Issue(ports.TokenClaims{UserID: user.ID.String(), Name: user.Name, Email: user.Email})
	require.NoError(t, err)

	rec, identity := serveGuarded(guard, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "Jane", identity.Name)
	assert.Equal(t, "jane@x.com", identity.Email)
}

func TestAuthGuard_MissingOrMalformedHeader(t *testing.T) {
	t.Parallel()

	guard, users, issuer := guardFixture(t)
	user := addUser(t, users)
	token, err := issuer.Issue(ports.TokenClaims{UserID: user.ID.String()})
	require.NoError(t, err)

	for name, header := range map[string]string{
		"no header":      "",
		"no scheme":      token,
		"wrong scheme":   "Basic " + token,
		"empty bearer":   "Bearer ",
		"garbage bearer": "Bearer not-a-token",
	} {
		rec, identity := serveGuarded(guard, header)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "case %q", name)
		assert.Nilf(t, identity, "case %q: handler must not run", name)
	}
}

func TestAuthGuard_ExpiredToken(t *testing.T) {
	t.Parallel()

	users := memory.NewUserRepository()
	user := addUser(t, users)

	// hand-sign an already expired token with otherwise valid claims
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   infraauth.Issuer,
		"aud":   infraauth.Audience,
		"sub":   user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
		"iat":   now.Add(-infraauth.TokenValidity - time.Hour).Unix(),
		"exp":   now.Add(-time.Hour).Unix(),
	}).SignedString([]byte("guard-secret"))
	require.NoError(t, err)

	guard := NewAuthGuard(infraauth.NewTokenIssuer([]byte("guard-secret")), users)
	rec, identity := serveGuarded(guard, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, identity)
}

func TestAuthGuard_UnknownSubject(t *testing.T) {
	t.Parallel()

	guard, _, issuer := guardFixture(t)
	// valid token for an id that no longer resolves to a user
	token, err := issuer.Issue(ports.TokenClaims{UserID: uuid.NewString(), Name: "Ghost", Email: "ghost@x.com"})
	require.NoError(t, err)

	rec, identity := serveGuarded(guard, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, identity)
}
