// Package identity resolves the caller behind a session token and owns
// sign in, sign up, sign out and the caller's profile.
package identity

import (
	"context"

	"github.com/ariebrainware/healthghar/model"
)

// Identity is the authenticated caller as seen by the core.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == model.RoleAdmin }

type ctxKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the caller identity, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// ClientInfo identifies the device behind a request for the security log.
type ClientInfo struct {
	IP    string
	Agent string
}
