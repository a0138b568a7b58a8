package util

import (
	"context"
	"errors"
	"testing"

	"github.com/ariebrainware/healthghar/config"
	"github.com/stretchr/testify/assert"
)

func TestViewKeys(t *testing.T) {
	assert.Equal(t, "doctor-slots:d1", ViewDoctorSlots("d1"))
	assert.Equal(t, "user-bookings:u1", ViewUserBookings("u1"))
	assert.Equal(t, "reports:u1", ViewReports("u1"))
}

func TestRevalidateDropsLocalViews(t *testing.T) {
	config.ResetRedisClientForTest()
	CacheView(ViewDoctorDirectory, []string{"dr a"})
	CacheView(ViewDoctorSlots("d1"), []string{"09:00"})

	Revalidate(context.Background(), ViewDoctorSlots("d1"))

	_, ok := CachedView(ViewDoctorSlots("d1"))
	assert.False(t, ok)
	_, ok = CachedView(ViewDoctorDirectory)
	assert.True(t, ok)
}

func TestRevalidatePublishes(t *testing.T) {
	mock := withMockRedis(t)
	mock.ExpectPublish(RevalidateChannel, "reports:u1").SetVal(1)
	mock.ExpectPublish(RevalidateChannel, "user-bookings:u1").SetErr(errors.New("no route"))

	Revalidate(context.Background(), ViewReports("u1"), ViewUserBookings("u1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeRevalidationsWithoutRedis(t *testing.T) {
	config.ResetRedisClientForTest()
	SubscribeRevalidations(context.Background())
}
