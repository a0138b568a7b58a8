package identity

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
)

// DefaultSessionTTL is how long a signed-in session stays valid.
const DefaultSessionTTL = 24 * time.Hour

var (
	ErrNoSession      = apperror.Unauthenticated("Session token not provided")
	ErrInvalidSession = apperror.Unauthenticated("Invalid or expired session token")
)

// Provider resolves session tokens against the sessions table, using Redis
// as a read-through cache when it is configured.
type Provider struct {
	backend    store.Backend
	sessionTTL time.Duration
	now        func() time.Time
}

func NewProvider(backend store.Backend, sessionTTL time.Duration) *Provider {
	if backend == nil {
		panic("identity: nil backend")
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Provider{backend: backend, sessionTTL: sessionTTL, now: time.Now}
}

// Resolve returns the identity behind token.
func (p *Provider) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoSession
	}

	userID, err := p.sessionUser(ctx, token)
	if err != nil {
		return Identity{}, err
	}

	var user model.User
	err = p.backend.First(ctx, store.Where(store.Eq("id", userID)), &user)
	if errors.Is(err, store.ErrNotFound) {
		return Identity{}, ErrInvalidSession
	}
	if err != nil {
		return Identity{}, apperror.Persistence("Failed to load user", err)
	}

	return Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   model.RoleName(user.RoleID),
	}, nil
}

func (p *Provider) sessionUser(ctx context.Context, token string) (string, error) {
	log := util.Component("identity")
	if userID, ok, err := util.CachedSessionUser(ctx, token); err != nil {
		log.Warn().Err(err).Msg("session cache lookup failed")
	} else if ok {
		return userID, nil
	}

	var session model.Session
	err := p.backend.First(ctx, store.Where(store.Eq("session_token", token)), &session)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidSession
	}
	if err != nil {
		return "", apperror.Persistence("Failed to load session", err)
	}
	if !session.ExpiresAt.After(p.now()) {
		return "", ErrInvalidSession
	}

	if err := util.CacheSession(ctx, token, session.UserID, session.ExpiresAt.Sub(p.now())); err != nil {
		log.Warn().Err(err).Msg("failed to cache session")
	}
	return session.UserID, nil
}

// SignOut removes the session behind token from the store and the cache.
func (p *Provider) SignOut(ctx context.Context, token string, client ClientInfo) error {
	if token == "" {
		return ErrNoSession
	}

	var session model.Session
	err := p.backend.First(ctx, store.Where(store.Eq("session_token", token)), &session)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("Session not found")
	}
	if err != nil {
		return apperror.Persistence("Failed to load session", err)
	}

	if _, err := p.backend.Delete(ctx, &model.Session{}, store.Where(store.Eq("id", session.ID))); err != nil {
		return apperror.Persistence("Failed to delete session", err)
	}
	if err := util.RemoveSession(ctx, session.UserID, token); err != nil {
		l := util.Component("identity")
		l.Warn().Err(err).Msg("failed to drop cached session")
	}

	util.LogLogout(session.UserID, "", client.IP, client.Agent)
	return nil
}
