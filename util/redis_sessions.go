package util

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/healthghar/config"
	"github.com/redis/go-redis/v9"
)

func sessionKey(token string) string { return fmt.Sprintf("session:%s", token) }

func userSessionsKey(userID string) string { return fmt.Sprintf("user_sessions:%s", userID) }

// removeTokenScript drops a token from the per-user set and deletes the set once empty.
const removeTokenScript = `
local removed = redis.call('SREM', KEYS[1], ARGV[1])
if removed > 0 and redis.call('SCARD', KEYS[1]) == 0 then
	redis.call('DEL', KEYS[1])
end
return removed
`

// CacheSession stores token -> userID for ttl and tracks the token in the
// per-user set. The set has no TTL and relies on explicit cleanup.
func CacheSession(ctx context.Context, token, userID string, ttl time.Duration) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	if err := rdb.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return err
	}
	return rdb.SAdd(ctx, userSessionsKey(userID), token).Err()
}

// CachedSessionUser returns the user id cached for token. ok is false on a
// miss or when Redis is not configured.
func CachedSessionUser(ctx context.Context, token string) (userID string, ok bool, err error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return "", false, nil
	}
	userID, err = rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return userID, true, nil
}

// RemoveSession forgets a single token.
func RemoveSession(ctx context.Context, userID, token string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	if err := rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return err
	}
	return rdb.Eval(ctx, removeTokenScript, []string{userSessionsKey(userID)}, token).Err()
}

// InvalidateUserSessions deletes every cached token of userID and the per-user set.
func InvalidateUserSessions(ctx context.Context, userID string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	members, err := rdb.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	for _, tok := range members {
		_ = rdb.Del(ctx, sessionKey(tok)).Err()
	}
	return rdb.Del(ctx, userSessionsKey(userID)).Err()
}
