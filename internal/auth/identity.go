package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

// Identity is the authenticated user supplied by the auth provider.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// WithIdentity attaches id to ctx for downstream handlers and services.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = ctxutil.WithUserID(ctx, id.ID)
	if id.Email != "" {
		ctx = ctxutil.WithUserEmail(ctx, id.Email)
	}
	return ctx
}

// IdentityFromCtx returns the identity attached by WithIdentity.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Identity{}, false
	}
	email := ctxutil.UserEmailFromCtx(ctx)
	return Identity{ID: userID, Email: email}, true
}
