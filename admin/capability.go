// Package admin holds the operations that need elevated access: doctor and
// slot management for any doctor, report issuance and booking listings.
package admin

import (
	"context"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
)

var (
	ErrNotAdmin     = apperror.Forbidden("Admin access required")
	ErrNoCapability = apperror.Forbidden("Admin capability required")
	ErrUnauthorized = apperror.Unauthenticated("Unauthorized")
)

// Capability is proof that the caller is an admin. It is the only value that
// carries the service backend; the zero Capability grants nothing.
type Capability struct {
	backend store.Backend
	admin   identity.Identity
}

// Backend returns the elevated backend.
func (c Capability) Backend() store.Backend { return c.backend }

// Admin is the identity the capability was granted to.
func (c Capability) Admin() identity.Identity { return c.admin }

// Valid reports whether c was issued by an Authority.
func (c Capability) Valid() bool { return c.backend != nil && c.admin.IsAdmin() }

func (c Capability) check() error {
	if !c.Valid() {
		return ErrNoCapability
	}
	return nil
}

// audit records an admin action in the security log.
func (c Capability) audit(action string, details map[string]interface{}) {
	util.LogAdminAction(c.admin.UserID, c.admin.Email, action, details)
}

// Authority hands out capabilities to admins.
type Authority struct {
	service store.Backend
}

func NewAuthority(service store.Backend) *Authority {
	if service == nil {
		panic("admin: nil service backend")
	}
	return &Authority{service: service}
}

// Grant returns a capability for the caller in ctx if they hold the Admin role.
func (a *Authority) Grant(ctx context.Context) (Capability, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return Capability{}, ErrUnauthorized
	}
	if !id.IsAdmin() {
		return Capability{}, ErrNotAdmin
	}
	return Capability{backend: a.service, admin: id}, nil
}
