package telehealth

import (
	"context"
	"strings"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
)

// SlotInput is a submitted slot window. IsActive only applies to updates;
// new slots are always active.
type SlotInput struct {
	StartTime string
	EndTime   string
	IsActive  *bool
}

func (in SlotInput) trimmed() SlotInput {
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	return in
}

// SlotService implements the doctor's own schedule operations. Checks run
// in the order identity, doctor profile, window, ownership, conflicts.
type SlotService struct {
	guard     *Guard
	slots     *SlotStore
	conflicts ConflictChecker
}

func NewSlotService(backend store.Backend, conflicts ConflictChecker) *SlotService {
	if conflicts == nil {
		conflicts = NoConflictCheck{}
	}
	return &SlotService{guard: NewGuard(backend), slots: NewSlotStore(backend), conflicts: conflicts}
}

// Store exposes the underlying slot store for elevated callers.
func (s *SlotService) Store() *SlotStore { return s.slots }

// ListMySlots returns the caller's slots, earliest first. Callers without an
// identity or a doctor profile get an empty list.
func (s *SlotService) ListMySlots(ctx context.Context) ([]model.Slot, error) {
	doc, err := s.guard.ResolveDoctor(ctx)
	if err != nil {
		if k := apperror.KindOf(err); k == apperror.KindUnauthenticated || k == apperror.KindNotFound {
			return []model.Slot{}, nil
		}
		return nil, err
	}
	return s.slots.List(ctx, doc.ID)
}

func (s *SlotService) AddSlot(ctx context.Context, in SlotInput) (model.Slot, error) {
	doc, err := s.guard.ResolveDoctor(ctx)
	if err != nil {
		return model.Slot{}, err
	}
	in = in.trimmed()
	if err := ValidateWindow(in.StartTime, in.EndTime); err != nil {
		return model.Slot{}, err
	}

	candidate := model.Slot{DoctorID: doc.ID, StartTime: in.StartTime, EndTime: in.EndTime, IsActive: true}
	if err := s.checkSlot(ctx, candidate); err != nil {
		return model.Slot{}, err
	}
	return s.slots.Create(ctx, doc.ID, in.StartTime, in.EndTime)
}

func (s *SlotService) UpdateSlot(ctx context.Context, slotID string, in SlotInput) (model.Slot, error) {
	doc, err := s.guard.ResolveDoctor(ctx)
	if err != nil {
		return model.Slot{}, err
	}
	in = in.trimmed()
	if err := ValidateWindow(in.StartTime, in.EndTime); err != nil {
		return model.Slot{}, err
	}
	slot, err := s.guard.OwnedSlot(ctx, doc.ID, slotID)
	if err != nil {
		return model.Slot{}, err
	}

	slot.StartTime, slot.EndTime = in.StartTime, in.EndTime
	if in.IsActive != nil {
		slot.IsActive = *in.IsActive
	}
	if err := s.checkSlot(ctx, slot); err != nil {
		return model.Slot{}, err
	}
	if _, err := s.slots.Update(ctx, slot.ID, doc.ID, SlotPatch{StartTime: in.StartTime, EndTime: in.EndTime, IsActive: in.IsActive}); err != nil {
		return model.Slot{}, err
	}
	return slot, nil
}

// DeleteSlot removes the caller's slot. A missing slot or one owned by
// another doctor is a silent no-op.
func (s *SlotService) DeleteSlot(ctx context.Context, slotID string) error {
	doc, err := s.guard.ResolveDoctor(ctx)
	if err != nil {
		return err
	}
	_, err = s.slots.Delete(ctx, slotID, doc.ID)
	return err
}

func (s *SlotService) checkSlot(ctx context.Context, candidate model.Slot) error {
	if _, none := s.conflicts.(NoConflictCheck); none {
		return nil
	}
	existing, err := s.slots.List(ctx, candidate.DoctorID)
	if err != nil {
		return err
	}
	return s.conflicts.CheckSlot(ctx, candidate, existing)
}
