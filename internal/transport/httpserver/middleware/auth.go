package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dijana-z/organize-me/internal/auth"
	userdomain "github.com/dijana-z/organize-me/internal/domain/user"
	"github.com/dijana-z/organize-me/pkg/logger"
)

type contextKey int

const userKey contextKey = iota

// UserSource resolves a token subject to an account. Implemented by the
// user service.
type UserSource interface {
	GetByID(ctx context.Context, id uint) (*userdomain.User, error)
}

// TokenAuth validates the bearer token on every request and loads the
// account it was issued for. Inactive or deleted accounts are rejected the
// same way as bad tokens.
type TokenAuth struct {
	tokens *auth.JWTManager
	users  UserSource
	log    logger.Logger
}

func NewTokenAuth(tokens *auth.JWTManager, users UserSource, log logger.Logger) *TokenAuth {
	return &TokenAuth{
		tokens: tokens,
		users:  users,
		log:    log,
	}
}

func (a *TokenAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		userID, err := a.tokens.Validate(token)
		if err != nil {
			a.log.BusinessError("auth: token rejected", err)
			unauthorized(w)
			return
		}

		found, err := a.users.GetByID(r.Context(), userID)
		if err != nil {
			a.log.BusinessError("auth: token user lookup failed", err, "user_id", userID)
			unauthorized(w)
			return
		}
		if !found.IsActive {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), found)))
	})
}

func WithUser(ctx context.Context, user *userdomain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (*userdomain.User, bool) {
	user, ok := ctx.Value(userKey).(*userdomain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    "invalid_token",
			"message": "invalid token",
		},
	})
}
