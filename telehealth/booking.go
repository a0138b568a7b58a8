package telehealth

import (
	"context"
	"strings"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/metrics"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
	"github.com/google/uuid"
)

// ErrNotAuthenticated is returned by booking operations without a caller.
var ErrNotAuthenticated = identity.ErrNotAuthenticated

// BookingRequest is the payload assembled by the booking wizard.
type BookingRequest struct {
	DoctorID    string `json:"doctor_id"`
	BookingDate string `json:"booking_date"`
	SlotTime    string `json:"slot_time"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Notes       string `json:"notes"`
}

// Recorder writes telehealth bookings. It does not re-check the slot, the
// doctor, or earlier bookings unless the conflict checker does.
type Recorder struct {
	backend   store.Backend
	conflicts ConflictChecker
	now       func() time.Time
}

func NewRecorder(backend store.Backend, conflicts ConflictChecker) *Recorder {
	if backend == nil {
		panic("telehealth: nil backend")
	}
	if conflicts == nil {
		conflicts = NoConflictCheck{}
	}
	return &Recorder{backend: backend, conflicts: conflicts, now: time.Now}
}

// Book records one telehealth booking for the caller.
func (r *Recorder) Book(ctx context.Context, req BookingRequest) (model.TelehealthBooking, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return model.TelehealthBooking{}, ErrNotAuthenticated
	}

	booking, err := req.toBooking()
	if err != nil {
		return model.TelehealthBooking{}, err
	}
	booking.ID = uuid.NewString()
	booking.UserID = id.UserID
	booking.CreatedAt = r.now().UTC()

	if err := r.checkBooking(ctx, booking); err != nil {
		return model.TelehealthBooking{}, err
	}

	if err := r.backend.Insert(ctx, &booking); err != nil {
		logStoreError(err, "book", booking.TableName())
		return model.TelehealthBooking{}, apperror.New(apperror.KindPersistence, err.Error())
	}

	metrics.BookingsRecorded.WithLabelValues("telehealth").Inc()
	util.Revalidate(ctx, util.ViewUserBookings(id.UserID))
	return booking, nil
}

func (req BookingRequest) toBooking() (model.TelehealthBooking, error) {
	doctorID := strings.TrimSpace(req.DoctorID)
	if doctorID == "" {
		return model.TelehealthBooking{}, apperror.Validation("Doctor is required")
	}
	date := strings.TrimSpace(req.BookingDate)
	if !ValidDate(date) {
		return model.TelehealthBooking{}, ErrInvalidBookingDate
	}
	slotTime, err := ClockTime(req.SlotTime)
	if err != nil {
		return model.TelehealthBooking{}, err
	}
	name := util.NormalizeName(req.Name)
	if name == "" {
		return model.TelehealthBooking{}, apperror.Validation("Patient name is required")
	}
	if req.Age <= 0 {
		return model.TelehealthBooking{}, apperror.Validation("Patient age must be a positive number")
	}

	return model.TelehealthBooking{
		DoctorID:      doctorID,
		BookingDate:   date,
		SlotTimeStart: slotTime,
		PatientName:   name,
		PatientAge:    req.Age,
		PatientGender: strings.TrimSpace(req.Gender),
		PatientNotes:  strings.TrimSpace(req.Notes),
	}, nil
}

func (r *Recorder) checkBooking(ctx context.Context, candidate model.TelehealthBooking) error {
	if _, none := r.conflicts.(NoConflictCheck); none {
		return nil
	}
	existing := []model.TelehealthBooking{}
	q := store.Where(store.Eq("doctor_id", candidate.DoctorID), store.Eq("booking_date", candidate.BookingDate))
	if err := r.backend.Find(ctx, &model.TelehealthBooking{}, q, &existing); err != nil {
		logStoreError(err, "check_booking", candidate.TableName())
		return apperror.Persistence("Failed to check existing bookings", err)
	}
	return r.conflicts.CheckBooking(ctx, candidate, existing)
}

// MyTelehealthBookings lists the caller's telehealth bookings by booking date.
func (r *Recorder) MyTelehealthBookings(ctx context.Context) ([]model.TelehealthBooking, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	out := []model.TelehealthBooking{}
	q := store.Where(store.Eq("user_id", id.UserID)).OrderBy("booking_date").OrderBy("slot_time_start")
	if err := r.backend.Find(ctx, &model.TelehealthBooking{}, q, &out); err != nil {
		logStoreError(err, "list", model.TelehealthBooking{}.TableName())
		return nil, apperror.Persistence("Failed to load bookings", err)
	}
	return out, nil
}
