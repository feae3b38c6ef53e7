package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/models"
)

// TokenParser extracts and validates bearer tokens.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetEmail(ctx context.Context, tokenString string) (string, error)
}

// UserReader looks up the user a token's subject refers to.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// AuthMiddleware resolves the acting user from the bearer token on every
// request: validate the token, read the subject email, load the user row.
// A token whose user has since been deleted is rejected the same way as an
// invalid one; there is no server-side session to fall back on.
func AuthMiddleware(tokens TokenParser, users UserReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			email, err := tokens.GetEmail(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			user, err := users.GetByEmail(ctx, email)
			if err != nil {
				logger.Log.Errorw("failed to load user for token", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				logger.Log.Infow("token subject no longer exists", "email", email)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
}

// WithUser stores the resolved user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the resolved user from the context. Returns nil
// if the request did not pass AuthMiddleware.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
