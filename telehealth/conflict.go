package telehealth

import (
	"context"
	"fmt"
	"strings"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
)

const (
	ConflictPolicyNone   = "none"
	ConflictPolicyStrict = "strict"
)

// ConflictChecker decides whether a new or changed slot or booking may coexist
// with what is already stored. existing never contains the candidate itself.
type ConflictChecker interface {
	CheckSlot(ctx context.Context, candidate model.Slot, existing []model.Slot) error
	CheckBooking(ctx context.Context, candidate model.TelehealthBooking, existing []model.TelehealthBooking) error
}

// NoConflictCheck accepts everything: overlapping slots of one doctor and
// several bookings of the same doctor, date and time are all stored.
type NoConflictCheck struct{}

func (NoConflictCheck) CheckSlot(context.Context, model.Slot, []model.Slot) error { return nil }

func (NoConflictCheck) CheckBooking(context.Context, model.TelehealthBooking, []model.TelehealthBooking) error {
	return nil
}

// OverlapCheck rejects a slot overlapping another slot of the same doctor and
// a second booking of the same doctor, date and start time.
type OverlapCheck struct{}

func (OverlapCheck) CheckSlot(_ context.Context, candidate model.Slot, existing []model.Slot) error {
	for _, s := range existing {
		if s.ID == candidate.ID {
			continue
		}
		// Half-open windows: touching ends do not overlap.
		if candidate.StartTime < s.EndTime && s.StartTime < candidate.EndTime {
			return apperror.Conflict(fmt.Sprintf("Slot overlaps an existing slot (%s - %s)", s.StartTime, s.EndTime))
		}
	}
	return nil
}

func (OverlapCheck) CheckBooking(_ context.Context, candidate model.TelehealthBooking, existing []model.TelehealthBooking) error {
	for _, b := range existing {
		if b.ID != candidate.ID && b.BookingDate == candidate.BookingDate && b.SlotTimeStart == candidate.SlotTimeStart {
			return apperror.Conflict("This slot is already booked")
		}
	}
	return nil
}

// ConflictCheckerFor maps a CONFLICT_POLICY value to a checker. Unknown
// values fall back to no enforcement.
func ConflictCheckerFor(policy string) ConflictChecker {
	if strings.EqualFold(strings.TrimSpace(policy), ConflictPolicyStrict) {
		return OverlapCheck{}
	}
	return NoConflictCheck{}
}
