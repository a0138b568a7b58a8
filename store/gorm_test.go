package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ariebrainware/healthghar/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGormBackend(t *testing.T) *GormBackend {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Slot{}, &model.CampReport{}))
	return NewGorm(db)
}

func insertSlots(t *testing.T, b Backend, slots ...model.Slot) {
	t.Helper()
	for i := range slots {
		require.NoError(t, b.Insert(context.Background(), &slots[i]))
	}
}

func TestGormBackend_FindFiltersAndOrders(t *testing.T) {
	b := setupGormBackend(t)
	insertSlots(t, b,
		model.Slot{ID: "s2", DoctorID: "d1", StartTime: "10:00", EndTime: "10:30", IsActive: true},
		model.Slot{ID: "s1", DoctorID: "d1", StartTime: "09:00", EndTime: "09:30", IsActive: true},
		model.Slot{ID: "s3", DoctorID: "d2", StartTime: "08:00", EndTime: "08:30", IsActive: true},
	)

	var got []model.Slot
	err := b.Find(context.Background(), &model.Slot{}, Where(Eq("doctor_id", "d1")).OrderBy("start_time"), &got)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "s2", got[1].ID)

	var desc []model.Slot
	require.NoError(t, b.Find(context.Background(), &model.Slot{}, Where().OrderByDesc("start_time").Take(1), &desc))
	require.Len(t, desc, 1)
	assert.Equal(t, "s2", desc[0].ID)
}

func TestGormBackend_FirstNotFound(t *testing.T) {
	b := setupGormBackend(t)

	var slot model.Slot
	err := b.First(context.Background(), Where(Eq("id", "missing")), &slot)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormBackend_FirstMatchesAllFilters(t *testing.T) {
	b := setupGormBackend(t)
	insertSlots(t, b, model.Slot{ID: "s1", DoctorID: "d1", StartTime: "09:00", EndTime: "09:30"})

	var slot model.Slot
	require.NoError(t, b.First(context.Background(), Where(Eq("id", "s1"), Eq("doctor_id", "d1")), &slot))
	assert.Equal(t, "09:00", slot.StartTime)

	err := b.First(context.Background(), Where(Eq("id", "s1"), Eq("doctor_id", "d2")), &slot)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormBackend_UpdateAndDelete(t *testing.T) {
	b := setupGormBackend(t)
	insertSlots(t, b, model.Slot{ID: "s1", DoctorID: "d1", StartTime: "09:00", EndTime: "09:30"})
	ctx := context.Background()

	n, err := b.Update(ctx, &model.Slot{}, Where(Eq("id", "s1"), Eq("doctor_id", "d1")), map[string]interface{}{"end_time": "09:45"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = b.Update(ctx, &model.Slot{}, Where(Eq("id", "s1"), Eq("doctor_id", "other")), map[string]interface{}{"end_time": "11:00"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	var slot model.Slot
	require.NoError(t, b.First(ctx, Where(Eq("id", "s1")), &slot))
	assert.Equal(t, "09:45", slot.EndTime)

	n, err = b.Delete(ctx, &model.Slot{}, Where(Eq("id", "s1"), Eq("doctor_id", "other")))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = b.Delete(ctx, &model.Slot{}, Where(Eq("id", "s1")))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGormBackend_RefusesUnscopedWrites(t *testing.T) {
	b := setupGormBackend(t)

	_, err := b.Update(context.Background(), &model.Slot{}, Where(), map[string]interface{}{"is_active": false})
	assert.ErrorIs(t, err, ErrUnscoped)

	_, err = b.Delete(context.Background(), &model.Slot{}, Where())
	assert.ErrorIs(t, err, ErrUnscoped)
}

func TestGormBackend_Ping(t *testing.T) {
	assert.NoError(t, setupGormBackend(t).Ping(context.Background()))
}

func TestQueryBuildersDoNotShareOrders(t *testing.T) {
	base := Where(Eq("doctor_id", "d1")).OrderBy("start_time")
	a := base.OrderBy("id")
	b := base.OrderByDesc("created_at")

	assert.Len(t, base.Orders, 1)
	assert.Equal(t, "id", a.Orders[1].Column)
	assert.Equal(t, "created_at", b.Orders[1].Column)
	assert.True(t, b.Orders[1].Desc)
}

func TestBackendsWrap(t *testing.T) {
	g := setupGormBackend(t)
	wrapped := Backends{User: g, Service: g}.Wrap(Instrument)

	assert.NotSame(t, g, wrapped.User)
	assert.NoError(t, wrapped.Service.Ping(context.Background()))
}
