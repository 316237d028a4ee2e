package auth

import (
	"context"
	"strings"

	"luxestate/internal/models"
)

type contextKey struct{}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the authenticated caller, or nil.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(contextKey{}).(*models.User)
	return user
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. ok is false when the header is absent or has another scheme.
func BearerToken(header string) (token string, ok bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
