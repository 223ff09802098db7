package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/LucasMartinsVieira/toodoo/internal/application/ports"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
)

// AuthGuard gates guarded routes. Public routes (register, login) are
// never mounted behind it. Any failure in bearer extraction, token
// verification or identity lookup ends the request with 401 before a
// handler runs.
type AuthGuard struct {
	issuer ports.TokenIssuer
	users  ports.UserRepository
}

func NewAuthGuard(issuer ports.TokenIssuer, users ports.UserRepository) *AuthGuard {
	return &AuthGuard{issuer: issuer, users: users}
}

func (g *AuthGuard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			reject(w, "missing or invalid authorization")
			return
		}
		claims, err := g.issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			reject(w, "invalid token")
			return
		}
		userID, err := domain.ParseUserID(claims.UserID)
		if err != nil {
			reject(w, "invalid token")
			return
		}
		user, err := g.users.GetByID(r.Context(), userID)
		if err != nil || user == nil {
			reject(w, "invalid token")
			return
		}
		ctx := WithIdentity(r.Context(), &Identity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": "unauthorized"})
}
