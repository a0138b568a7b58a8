package telehealth

import (
	"context"
	"testing"
	"time"

	"github.com/ariebrainware/healthghar/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryFiltersDoctors(t *testing.T) {
	b := setupBackend(t)
	seedDoctor(t, b, "a@example.com", "Primary Care", "Physicians")
	seedDoctor(t, b, "b@example.com", "Primary Care", "Pediatricians")
	seedDoctor(t, b, "c@example.com", "Surgical Specialists", "Neurosurgeons")
	dir := NewDirectory(b)
	ctx := context.Background()

	all, err := dir.Doctors(ctx, DoctorFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	primary, err := dir.Doctors(ctx, DoctorFilter{Category: "Primary Care"})
	require.NoError(t, err)
	assert.Len(t, primary, 2)

	peds, err := dir.Doctors(ctx, DoctorFilter{Category: "Primary Care", Specialization: "Pediatricians"})
	require.NoError(t, err)
	require.Len(t, peds, 1)
	assert.Equal(t, "b@example.com", peds[0].Email)

	none, err := dir.Doctors(ctx, DoctorFilter{Category: "Primary Care", Specialization: "Neurosurgeons"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDirectoryDoctor(t *testing.T) {
	b := setupBackend(t)
	doc := seedDoctor(t, b, "a@example.com", "Primary Care", "Physicians")
	dir := NewDirectory(b)

	got, err := dir.Doctor(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Email, got.Email)

	_, err = dir.Doctor(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDirectoryListsOnlyActiveSlots(t *testing.T) {
	b := setupBackend(t)
	doc := seedDoctor(t, b, "a@example.com", "Primary Care", "Physicians")
	svc := NewSlotService(b, nil)
	ctx := asUser("a@example.com")

	active, err := svc.AddSlot(ctx, SlotInput{StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)
	hidden, err := svc.AddSlot(ctx, SlotInput{StartTime: "09:00", EndTime: "09:30"})
	require.NoError(t, err)
	off := false
	_, err = svc.UpdateSlot(ctx, hidden.ID, SlotInput{StartTime: "09:00", EndTime: "09:30", IsActive: &off})
	require.NoError(t, err)

	slots, err := NewDirectory(b).DoctorSlots(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, active.ID, slots[0].ID)
}

func TestDirectorySlotViewIsRevalidatedOnMutation(t *testing.T) {
	b := setupBackend(t)
	doc := seedDoctor(t, b, "a@example.com", "Primary Care", "Physicians")
	svc := NewSlotService(b, nil)
	dir := NewDirectory(b)
	ctx := asUser("a@example.com")

	slots, err := dir.DoctorSlots(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = svc.AddSlot(ctx, SlotInput{StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)

	slots, err = dir.DoctorSlots(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestCatalogOrdering(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	now := time.Now().UTC()
	for i, c := range []model.Camp{
		{ID: "c2", Title: "Dental", CampDate: "2025-03-01"},
		{ID: "c1", Title: "Eye", CampDate: "2025-02-01"},
	} {
		c.CreatedAt = now.Add(time.Duration(i) * time.Second)
		require.NoError(t, b.Insert(ctx, &c))
	}
	for _, p := range []model.HomeCheckupPackage{
		{ID: "p1", Title: "Full body", Price: 4999},
		{ID: "p2", Title: "Basic", Price: 999},
	} {
		p := p
		require.NoError(t, b.Insert(ctx, &p))
	}

	dir := NewDirectory(b)
	camps, err := dir.Camps(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c1", camps[0].ID)

	pkgs, err := dir.Packages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p2", pkgs[0].ID)

	tax := dir.Taxonomy()
	assert.Len(t, tax.Categories, 4)
	assert.Contains(t, tax.Departments, "Dental")
}
