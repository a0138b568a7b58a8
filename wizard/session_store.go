package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/util"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an idle wizard session lives.
const DefaultTTL = 30 * time.Minute

// SubmitLockTTL bounds how long a crashed submit can hold a session.
const SubmitLockTTL = 30 * time.Second

var ErrSessionNotFound = apperror.NotFound("Wizard session not found")

// Session is a stored wizard owned by one user.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

func sessionKey(id string) string {
	return fmt.Sprintf("wizard:%s", id)
}

func submitKey(id string) string {
	return fmt.Sprintf("wizard:%s:submit", id)
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

// SessionStore keeps wizard sessions in Redis when it is configured and in
// process memory otherwise.
type SessionStore struct {
	ttl   time.Duration
	local *cache.Cache
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionStore{ttl: ttl, local: cache.New(ttl, 2*ttl)}
}

// Create stores a fresh wizard for userID.
func (s *SessionStore) Create(ctx context.Context, userID string) (Session, error) {
	sess := Session{ID: uuid.NewString(), UserID: userID, State: Start(), UpdatedAt: time.Now().UTC()}
	return sess, s.Save(ctx, sess)
}

// Save writes sess and restarts its TTL.
func (s *SessionStore) Save(ctx context.Context, sess Session) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		s.local.Set(sess.ID, sess, s.ttl)
		return nil
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode wizard session: %w", err)
	}
	if err := rdb.Set(ctx, sessionKey(sess.ID), raw, s.ttl).Err(); err != nil {
		return apperror.Persistence("Failed to save wizard", err)
	}
	return nil
}

// Load returns the session id if it exists and belongs to userID. A session
// of another user is reported as missing.
func (s *SessionStore) Load(ctx context.Context, id, userID string) (Session, error) {
	var sess Session
	rdb := config.GetRedisClient()
	if rdb == nil {
		v, ok := s.local.Get(id)
		if !ok {
			return Session{}, ErrSessionNotFound
		}
		sess = v.(Session)
	} else {
		raw, err := rdb.Get(ctx, sessionKey(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrSessionNotFound
		}
		if err != nil {
			return Session{}, apperror.Persistence("Failed to load wizard", err)
		}
		if err := json.Unmarshal(raw, &sess); err != nil {
			return Session{}, apperror.Persistence("Failed to load wizard", err)
		}
	}
	if sess.UserID != userID {
		return Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// ClaimSubmit takes the submit lock of session id. A second claim while the
// first is held fails with ErrSubmitting. release drops the lock only if it
// is still ours.
func (s *SessionStore) ClaimSubmit(ctx context.Context, id string) (release func(), err error) {
	key, token := submitKey(id), uuid.NewString()
	rdb := config.GetRedisClient()
	if rdb == nil {
		if err := s.local.Add(key, token, SubmitLockTTL); err != nil {
			return nil, ErrSubmitting
		}
		return func() {
			if v, ok := s.local.Get(key); ok && v == token {
				s.local.Delete(key)
			}
		}, nil
	}

	ok, err := rdb.SetNX(ctx, key, token, SubmitLockTTL).Result()
	if err != nil {
		return nil, apperror.Persistence("Failed to lock wizard", err)
	}
	if !ok {
		return nil, ErrSubmitting
	}
	return func() {
		_, err := unlockScript.Run(context.WithoutCancel(ctx), rdb, []string{key}, token).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			l := util.Component("wizard")
			l.Warn().Err(err).Str("wizard", id).Msg("release submit lock")
		}
	}, nil
}
