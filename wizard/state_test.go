package wizard

import (
	"testing"
	"time"

	"github.com/ariebrainware/healthghar/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 1, 10, 15, 4, 0, 0, time.UTC)

func pediatrician() *model.Doctor {
	return &model.Doctor{ID: "doc-1", Email: "d@example.com", Category: "Primary Care", Specialization: "Pediatricians"}
}

func activeSlot(doctorID string) *model.Slot {
	return &model.Slot{ID: "slot-1", DoctorID: doctorID, StartTime: "2025-01-10T09:00", EndTime: "2025-01-10T09:30", IsActive: true}
}

func apply(t *testing.T, s State, evs ...Event) State {
	t.Helper()
	for _, ev := range evs {
		var err error
		s, err = Transition(s, ev)
		require.NoError(t, err, "event %s", ev.Type)
	}
	return s
}

// atPatient walks a fresh wizard to the patient details step.
func atPatient(t *testing.T) State {
	return apply(t, Start(),
		Event{Type: PickCategory, Category: "Primary Care"},
		Event{Type: PickSpecialization, Specialization: "Pediatricians"},
		Event{Type: PickDoctor, Doctor: pediatrician()},
		Event{Type: PickDate, Date: "2025-01-12", Today: today},
		Event{Type: PickSlot, Slot: activeSlot("doc-1")},
	)
}

func TestHappyPath(t *testing.T) {
	s := atPatient(t)
	assert.Equal(t, StepPatient, s.Step)

	s = apply(t, s,
		Event{Type: UpdatePatient, Patient: Patient{Name: "Test Patient", Age: 30, Gender: "female"}},
		Event{Type: Submit},
	)
	assert.Equal(t, StepSubmitting, s.Step)

	req, err := s.Payload()
	require.NoError(t, err)
	assert.Equal(t, "doc-1", req.DoctorID)
	assert.Equal(t, "2025-01-12", req.BookingDate)
	assert.Equal(t, "09:00:00", req.SlotTime)
	assert.Equal(t, "Test Patient", req.Name)
	assert.Equal(t, 30, req.Age)

	s = apply(t, s, Event{Type: SubmitSucceeded})
	assert.Equal(t, StepConfirmed, s.Step)
}

func TestTransitionIsPure(t *testing.T) {
	s := atPatient(t)
	before := s
	_, err := Transition(s, Event{Type: UpdatePatient, Patient: Patient{Name: "X", Age: 1}})
	require.NoError(t, err)
	assert.Equal(t, before, s)

	failed, err := Transition(s, Event{Type: PickCategory, Category: "Primary Care"})
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, s, failed)
}

func TestCategoryAndSpecializationMustMatchTaxonomy(t *testing.T) {
	_, err := Transition(Start(), Event{Type: PickCategory, Category: "Astrology"})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	s := apply(t, Start(), Event{Type: PickCategory, Category: "Primary Care"})
	_, err = Transition(s, Event{Type: PickSpecialization, Specialization: "Neurosurgeons"})
	assert.ErrorIs(t, err, ErrUnknownSpecialization)
}

func TestChangingCategoryDropsSpecializationAndMismatchedDoctor(t *testing.T) {
	s := atPatient(t)
	s = apply(t, s,
		Event{Type: UpdatePatient, Patient: Patient{Name: "Test Patient", Age: 30}},
		Event{Type: Back, Target: StepCategory},
	)
	assert.Equal(t, "Pediatricians", s.Specialization, "going back keeps later data")
	require.NotNil(t, s.Doctor)

	same := apply(t, s, Event{Type: PickCategory, Category: "Primary Care"})
	assert.Equal(t, "Pediatricians", same.Specialization)
	assert.NotNil(t, same.Doctor)

	changed := apply(t, s, Event{Type: PickCategory, Category: "Surgical Specialists"})
	assert.Empty(t, changed.Specialization)
	assert.Nil(t, changed.Doctor)
	assert.Nil(t, changed.Slot)
	assert.Equal(t, "2025-01-12", changed.Date)
	assert.Equal(t, "Test Patient", changed.Patient.Name)
	assert.Equal(t, StepSpecialization, changed.Step)
}

func TestBackingOutOfSpecializationClearsOnlySpecialization(t *testing.T) {
	s := atPatient(t)
	s = apply(t, s, Event{Type: Back, Target: StepSpecialization})
	assert.Equal(t, "Pediatricians", s.Specialization)

	s = apply(t, s, Event{Type: Back})
	assert.Equal(t, StepCategory, s.Step)
	assert.Empty(t, s.Specialization)
	assert.Equal(t, "Primary Care", s.Category)
	assert.NotNil(t, s.Doctor)
	assert.NotNil(t, s.Slot)
}

func TestBackRejectsForwardTargets(t *testing.T) {
	_, err := Transition(Start(), Event{Type: Back})
	assert.ErrorIs(t, err, ErrNoEarlierStep)

	s := apply(t, Start(), Event{Type: PickCategory, Category: "Primary Care"})
	_, err = Transition(s, Event{Type: Back, Target: StepPatient})
	assert.ErrorIs(t, err, ErrNoEarlierStep)
}

func TestDoctorMustMatchFilter(t *testing.T) {
	s := apply(t, Start(),
		Event{Type: PickCategory, Category: "Primary Care"},
		Event{Type: PickSpecialization, Specialization: "Physicians"},
	)
	_, err := Transition(s, Event{Type: PickDoctor, Doctor: pediatrician()})
	assert.ErrorIs(t, err, ErrDoctorMismatch)
	_, err = Transition(s, Event{Type: PickDoctor})
	assert.ErrorIs(t, err, ErrDoctorMismatch)
}

func TestDateWindow(t *testing.T) {
	days := DateWindow(today, DateWindowDays)
	require.Len(t, days, 14)
	assert.Equal(t, "2025-01-10", days[0])
	assert.Equal(t, "2025-01-23", days[13])

	s := apply(t, Start(),
		Event{Type: PickCategory, Category: "Primary Care"},
		Event{Type: PickSpecialization, Specialization: "Pediatricians"},
		Event{Type: PickDoctor, Doctor: pediatrician()},
	)
	for _, date := range []string{"2025-01-09", "2025-01-24", "not-a-date"} {
		_, err := Transition(s, Event{Type: PickDate, Date: date, Today: today})
		assert.ErrorIs(t, err, ErrDateOutsideWindow, date)
	}
	_, err := Transition(s, Event{Type: PickDate, Date: "2025-01-10"})
	assert.ErrorIs(t, err, ErrDateOutsideWindow, "no clock means no window")
}

func TestPickingDateClearsSlot(t *testing.T) {
	s := atPatient(t)
	s = apply(t, s,
		Event{Type: Back, Target: StepDate},
		Event{Type: PickDate, Date: "2025-01-13", Today: today},
	)
	assert.Nil(t, s.Slot)
	assert.Equal(t, StepSlot, s.Step)
}

func TestSlotMustBelongToDoctorAndBeActive(t *testing.T) {
	s := apply(t, Start(),
		Event{Type: PickCategory, Category: "Primary Care"},
		Event{Type: PickSpecialization, Specialization: "Pediatricians"},
		Event{Type: PickDoctor, Doctor: pediatrician()},
		Event{Type: PickDate, Date: "2025-01-12", Today: today},
	)
	_, err := Transition(s, Event{Type: PickSlot, Slot: activeSlot("doc-2")})
	assert.ErrorIs(t, err, ErrSlotMismatch)

	inactive := activeSlot("doc-1")
	inactive.IsActive = false
	_, err = Transition(s, Event{Type: PickSlot, Slot: inactive})
	assert.ErrorIs(t, err, ErrSlotInactive)
}

func TestSubmitRequiresPatientDetails(t *testing.T) {
	s := atPatient(t)
	_, err := Transition(s, Event{Type: Submit})
	assert.ErrorIs(t, err, ErrPatientName)

	s = apply(t, s, Event{Type: UpdatePatient, Patient: Patient{Name: "Test Patient"}})
	_, err = Transition(s, Event{Type: Submit})
	assert.ErrorIs(t, err, ErrPatientAge)
}

func TestSubmittingRejectsSecondSubmit(t *testing.T) {
	s := apply(t, atPatient(t),
		Event{Type: UpdatePatient, Patient: Patient{Name: "Test Patient", Age: 30}},
		Event{Type: Submit},
	)
	_, err := Transition(s, Event{Type: Submit})
	assert.ErrorIs(t, err, ErrSubmitting)
	_, err = Transition(s, Event{Type: Back})
	assert.ErrorIs(t, err, ErrSubmitting)
}

func TestSubmitFailedReturnsToPatientDetails(t *testing.T) {
	s := apply(t, atPatient(t),
		Event{Type: UpdatePatient, Patient: Patient{Name: "Test Patient", Age: 30}},
		Event{Type: Submit},
		Event{Type: SubmitFailed, Message: "insert failed"},
	)
	assert.Equal(t, StepPatient, s.Step)
	assert.Equal(t, "insert failed", s.Error)
	assert.Equal(t, "doc-1", s.Doctor.ID)
	assert.Equal(t, "slot-1", s.Slot.ID)
	assert.Equal(t, "2025-01-12", s.Date)

	s = apply(t, s, Event{Type: Submit})
	assert.Empty(t, s.Error)
}

func TestConfirmedIsTerminal(t *testing.T) {
	s := apply(t, atPatient(t),
		Event{Type: UpdatePatient, Patient: Patient{Name: "Test Patient", Age: 30}},
		Event{Type: Submit},
		Event{Type: SubmitSucceeded},
	)
	for _, typ := range []EventType{PickCategory, Back, Submit, SubmitFailed, SubmitSucceeded, UpdatePatient} {
		_, err := Transition(s, Event{Type: typ, Category: "Primary Care"})
		assert.ErrorIs(t, err, ErrTerminal, typ)
	}
}

func TestSettleEventsOutsideSubmitting(t *testing.T) {
	_, err := Transition(atPatient(t), Event{Type: SubmitSucceeded})
	assert.ErrorIs(t, err, ErrWrongStep)
	_, err = Transition(Start(), Event{Type: "Teleport"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}
