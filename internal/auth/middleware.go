package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/naveenrjn/prep-hub-be/internal/models"
	"github.com/rs/zerolog/log"
)

// UserLookup resolves a verified token subject to a stored user. It is
// satisfied by the user service.
type UserLookup interface {
	GetByEmail(email string) (models.User, error)
}

type contextKey string

const userContextKey = contextKey("authUser")

// UserFromContext returns the authenticated user stored by RequireAuth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

// RequireAuth protects routes with bearer-token authentication. Every
// rejection path produces the same response body and status so a caller
// cannot probe which check failed (account enumeration, token oracle).
func RequireAuth(tokens *TokenService, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				unauthorized(w)
				return
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.GetByEmail(subject)
			if err != nil {
				log.Debug().Str("subject", subject).Msg("Token subject has no matching user")
				unauthorized(w)
				return
			}
			if !user.IsActive {
				log.Debug().Str("user_id", user.ID).Msg("Rejected inactive user")
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
