package util

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/healthghar/config"
	cache "github.com/patrickmn/go-cache"
)

// RevalidateChannel carries invalidated view keys between instances.
const RevalidateChannel = "healthghar:revalidate"

// ViewDoctorDirectory is the key of the public doctor listing.
const ViewDoctorDirectory = "doctor-directory"

func ViewDoctorSlots(doctorID string) string { return fmt.Sprintf("doctor-slots:%s", doctorID) }

func ViewUserBookings(userID string) string { return fmt.Sprintf("user-bookings:%s", userID) }

func ViewReports(userID string) string { return fmt.Sprintf("reports:%s", userID) }

// ViewAdminReports is the key of the admin report listing.
const ViewAdminReports = "admin-reports"

var viewCache = cache.New(time.Minute, 5*time.Minute)

// CachedView returns a previously cached read model for key.
func CachedView(key string) (interface{}, bool) {
	return viewCache.Get(key)
}

// CacheView stores a read model until it is revalidated or expires.
func CacheView(key string, v interface{}) {
	viewCache.Set(key, v, cache.DefaultExpiration)
}

// Revalidate drops the given views locally and announces them to other
// instances. Publishing is best-effort.
func Revalidate(ctx context.Context, keys ...string) {
	for _, k := range keys {
		viewCache.Delete(k)
	}

	rdb := config.GetRedisClient()
	if rdb == nil {
		return
	}
	for _, k := range keys {
		if err := rdb.Publish(ctx, RevalidateChannel, k).Err(); err != nil {
			l := Component("revalidate")
			l.Warn().Err(err).Str("view", k).Msg("failed to publish revalidation")
		}
	}
}

// SubscribeRevalidations drops views announced by other instances until ctx
// is done. It returns immediately when Redis is not configured.
func SubscribeRevalidations(ctx context.Context) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return
	}
	sub := rdb.Subscribe(ctx, RevalidateChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			viewCache.Delete(msg.Payload)
		}
	}
}

// FlushViews drops every cached view of this instance.
func FlushViews() {
	viewCache.Flush()
}
