package telehealth

import (
	"context"
	"errors"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
)

var (
	ErrUnauthorized    = apperror.Unauthenticated("Unauthorized")
	ErrNoDoctorProfile = apperror.NotFound("Doctor profile not found")
	// ErrSlotNotOwned covers both a missing slot and one owned by another doctor.
	ErrSlotNotOwned = apperror.NotFound("Slot not found or permission denied")
)

// Guard maps the caller to a doctor profile and checks slot ownership.
type Guard struct {
	backend store.Backend
}

func NewGuard(backend store.Backend) *Guard {
	if backend == nil {
		panic("telehealth: nil backend")
	}
	return &Guard{backend: backend}
}

// ResolveDoctor returns the doctor whose email equals the caller's email.
func (g *Guard) ResolveDoctor(ctx context.Context) (model.Doctor, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return model.Doctor{}, ErrUnauthorized
	}

	var doc model.Doctor
	err := g.backend.First(ctx, store.Where(store.Eq("email", id.Email)), &doc)
	if errors.Is(err, store.ErrNotFound) {
		return model.Doctor{}, ErrNoDoctorProfile
	}
	if err != nil {
		logStoreError(err, "resolve_doctor", model.Doctor{}.TableName())
		return model.Doctor{}, apperror.Persistence("Failed to load doctor profile", err)
	}
	return doc, nil
}

// OwnedSlot fetches slotID only if it belongs to doctorID.
func (g *Guard) OwnedSlot(ctx context.Context, doctorID, slotID string) (model.Slot, error) {
	if slotID == "" {
		return model.Slot{}, ErrSlotNotOwned
	}
	var slot model.Slot
	err := g.backend.First(ctx, store.Where(store.Eq("id", slotID), store.Eq("doctor_id", doctorID)), &slot)
	if errors.Is(err, store.ErrNotFound) {
		return model.Slot{}, ErrSlotNotOwned
	}
	if err != nil {
		logStoreError(err, "owned_slot", model.Slot{}.TableName())
		return model.Slot{}, apperror.Persistence("Failed to load slot", err)
	}
	return slot, nil
}
