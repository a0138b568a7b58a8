package telehealth

import (
	"context"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
	"github.com/google/uuid"
)

func logStoreError(err error, op, table string) {
	l := util.Component("telehealth")
	l.Error().Err(err).Str("op", op).Str("table", table).Msg("store call failed")
}

// SlotPatch is a partial update of a slot. Empty strings and a nil IsActive
// leave the column unchanged.
type SlotPatch struct {
	StartTime string
	EndTime   string
	IsActive  *bool
}

func (p SlotPatch) values() map[string]interface{} {
	v := map[string]interface{}{}
	if p.StartTime != "" {
		v["start_time"] = p.StartTime
	}
	if p.EndTime != "" {
		v["end_time"] = p.EndTime
	}
	if p.IsActive != nil {
		v["is_active"] = *p.IsActive
	}
	return v
}

// SlotStore is the data access for telehealth_slots. Every mutation
// revalidates the doctor's schedule and the directory.
type SlotStore struct {
	backend store.Backend
	now     func() time.Time
}

func NewSlotStore(backend store.Backend) *SlotStore {
	if backend == nil {
		panic("telehealth: nil backend")
	}
	return &SlotStore{backend: backend, now: time.Now}
}

func (s *SlotStore) revalidate(ctx context.Context, doctorID string) {
	keys := []string{util.ViewDoctorDirectory}
	if doctorID != "" {
		keys = append(keys, util.ViewDoctorSlots(doctorID))
	}
	util.Revalidate(ctx, keys...)
}

// Create inserts an active slot for doctorID.
func (s *SlotStore) Create(ctx context.Context, doctorID, start, end string) (model.Slot, error) {
	slot := model.Slot{
		ID:        uuid.NewString(),
		DoctorID:  doctorID,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
		CreatedAt: s.now().UTC(),
	}
	if err := s.backend.Insert(ctx, &slot); err != nil {
		logStoreError(err, "create", slot.TableName())
		return model.Slot{}, apperror.Persistence("Failed to add slot", err)
	}
	s.revalidate(ctx, doctorID)
	return slot, nil
}

// List returns every slot of doctorID, earliest start first.
func (s *SlotStore) List(ctx context.Context, doctorID string) ([]model.Slot, error) {
	return s.find(ctx, store.Where(store.Eq("doctor_id", doctorID)).OrderBy("start_time"))
}

// ListActive returns the bookable slots of doctorID, earliest start first.
func (s *SlotStore) ListActive(ctx context.Context, doctorID string) ([]model.Slot, error) {
	return s.find(ctx, store.Where(store.Eq("doctor_id", doctorID), store.Eq("is_active", true)).OrderBy("start_time"))
}

func (s *SlotStore) find(ctx context.Context, q store.Query) ([]model.Slot, error) {
	slots := []model.Slot{}
	if err := s.backend.Find(ctx, &model.Slot{}, q, &slots); err != nil {
		logStoreError(err, "list", model.Slot{}.TableName())
		return nil, apperror.Persistence("Failed to load slots", err)
	}
	return slots, nil
}

// Get loads slotID. An empty doctorID looks the slot up without an owner filter.
func (s *SlotStore) Get(ctx context.Context, slotID, doctorID string) (model.Slot, error) {
	var slot model.Slot
	err := s.backend.First(ctx, slotScope(slotID, doctorID), &slot)
	if err != nil {
		return model.Slot{}, err
	}
	return slot, nil
}

// Update applies patch to slotID. An empty doctorID updates without an owner filter.
func (s *SlotStore) Update(ctx context.Context, slotID, doctorID string, patch SlotPatch) (int64, error) {
	values := patch.values()
	if len(values) == 0 {
		return 0, nil
	}
	n, err := s.backend.Update(ctx, &model.Slot{}, slotScope(slotID, doctorID), values)
	if err != nil {
		logStoreError(err, "update", model.Slot{}.TableName())
		return 0, apperror.Persistence("Failed to update slot", err)
	}
	s.revalidate(ctx, doctorID)
	return n, nil
}

// Delete removes slotID. An empty doctorID deletes without an owner filter.
func (s *SlotStore) Delete(ctx context.Context, slotID, doctorID string) (int64, error) {
	n, err := s.backend.Delete(ctx, &model.Slot{}, slotScope(slotID, doctorID))
	if err != nil {
		logStoreError(err, "delete", model.Slot{}.TableName())
		return 0, apperror.Persistence("Failed to delete slot", err)
	}
	s.revalidate(ctx, doctorID)
	return n, nil
}

// DeleteByDoctor removes every slot of doctorID.
func (s *SlotStore) DeleteByDoctor(ctx context.Context, doctorID string) (int64, error) {
	if doctorID == "" {
		return 0, apperror.Validation("Doctor id is required")
	}
	n, err := s.backend.Delete(ctx, &model.Slot{}, store.Where(store.Eq("doctor_id", doctorID)))
	if err != nil {
		logStoreError(err, "delete_by_doctor", model.Slot{}.TableName())
		return 0, apperror.Persistence("Failed to delete slots", err)
	}
	s.revalidate(ctx, doctorID)
	return n, nil
}

func slotScope(slotID, doctorID string) store.Query {
	q := store.Where(store.Eq("id", slotID))
	if doctorID != "" {
		q.Filters = append(q.Filters, store.Eq("doctor_id", doctorID))
	}
	return q
}
