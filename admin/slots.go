package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/telehealth"
)

var ErrSlotNotFound = apperror.NotFound("Slot not found")

// ListSlots returns every slot of a doctor, active or not.
func (s *Service) ListSlots(ctx context.Context, c Capability, doctorID string) ([]model.Slot, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if _, err := s.doctor(ctx, c, doctorID); err != nil {
		return nil, err
	}
	return telehealth.NewSlotStore(c.backend).List(ctx, doctorID)
}

func (s *Service) AddSlot(ctx context.Context, c Capability, doctorID string, in telehealth.SlotInput) (model.Slot, error) {
	if err := c.check(); err != nil {
		return model.Slot{}, err
	}
	if _, err := s.doctor(ctx, c, doctorID); err != nil {
		return model.Slot{}, err
	}
	in.StartTime, in.EndTime = strings.TrimSpace(in.StartTime), strings.TrimSpace(in.EndTime)
	if err := telehealth.ValidateWindow(in.StartTime, in.EndTime); err != nil {
		return model.Slot{}, err
	}

	slots := telehealth.NewSlotStore(c.backend)
	candidate := model.Slot{DoctorID: doctorID, StartTime: in.StartTime, EndTime: in.EndTime, IsActive: true}
	if err := s.checkSlot(ctx, slots, candidate); err != nil {
		return model.Slot{}, err
	}
	slot, err := slots.Create(ctx, doctorID, in.StartTime, in.EndTime)
	if err != nil {
		return model.Slot{}, err
	}
	c.audit("create_slot", map[string]interface{}{"doctor_id": doctorID, "slot_id": slot.ID})
	return slot, nil
}

func (s *Service) UpdateSlot(ctx context.Context, c Capability, slotID string, in telehealth.SlotInput) (model.Slot, error) {
	if err := c.check(); err != nil {
		return model.Slot{}, err
	}
	in.StartTime, in.EndTime = strings.TrimSpace(in.StartTime), strings.TrimSpace(in.EndTime)
	if err := telehealth.ValidateWindow(in.StartTime, in.EndTime); err != nil {
		return model.Slot{}, err
	}
	slots := telehealth.NewSlotStore(c.backend)
	slot, err := slots.Get(ctx, slotID, "")
	if errors.Is(err, store.ErrNotFound) {
		return model.Slot{}, ErrSlotNotFound
	}
	if err != nil {
		logStoreError(err, "get", slot.TableName())
		return model.Slot{}, apperror.Persistence("Failed to load slot", err)
	}

	slot.StartTime, slot.EndTime = in.StartTime, in.EndTime
	if in.IsActive != nil {
		slot.IsActive = *in.IsActive
	}
	if err := s.checkSlot(ctx, slots, slot); err != nil {
		return model.Slot{}, err
	}
	patch := telehealth.SlotPatch{StartTime: in.StartTime, EndTime: in.EndTime, IsActive: in.IsActive}
	if _, err := slots.Update(ctx, slot.ID, slot.DoctorID, patch); err != nil {
		return model.Slot{}, err
	}
	c.audit("update_slot", map[string]interface{}{"slot_id": slot.ID})
	return slot, nil
}

// DeleteSlot removes any slot. A missing slot is reported as NotFound.
func (s *Service) DeleteSlot(ctx context.Context, c Capability, slotID string) error {
	if err := c.check(); err != nil {
		return err
	}
	slots := telehealth.NewSlotStore(c.backend)
	slot, err := slots.Get(ctx, slotID, "")
	if errors.Is(err, store.ErrNotFound) {
		return ErrSlotNotFound
	}
	if err != nil {
		logStoreError(err, "get", slot.TableName())
		return apperror.Persistence("Failed to load slot", err)
	}
	if _, err := slots.Delete(ctx, slot.ID, slot.DoctorID); err != nil {
		return err
	}
	c.audit("delete_slot", map[string]interface{}{"slot_id": slot.ID, "doctor_id": slot.DoctorID})
	return nil
}

func (s *Service) checkSlot(ctx context.Context, slots *telehealth.SlotStore, candidate model.Slot) error {
	if _, none := s.conflicts.(telehealth.NoConflictCheck); none {
		return nil
	}
	existing, err := slots.List(ctx, candidate.DoctorID)
	if err != nil {
		return err
	}
	return s.conflicts.CheckSlot(ctx, candidate, existing)
}
