// Package wizard models the patient-facing telehealth booking flow as a pure
// state machine. Transition performs no I/O; Runner drives it against the
// directory and the booking recorder.
package wizard

import (
	"strings"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/telehealth"
)

type Step string

const (
	StepCategory       Step = "CategorySelection"
	StepSpecialization Step = "SpecializationSelection"
	StepDoctor         Step = "DoctorSelection"
	StepDate           Step = "DateSelection"
	StepSlot           Step = "SlotSelection"
	StepPatient        Step = "PatientDetails"
	StepSubmitting     Step = "Submitting"
	StepConfirmed      Step = "Confirmed"
)

// order lists the steps a user can navigate between.
var order = []Step{StepCategory, StepSpecialization, StepDoctor, StepDate, StepSlot, StepPatient}

func (s Step) index() int {
	for i, st := range order {
		if st == s {
			return i
		}
	}
	return -1
}

type EventType string

const (
	PickCategory       EventType = "PickCategory"
	PickSpecialization EventType = "PickSpecialization"
	PickDoctor         EventType = "PickDoctor"
	PickDate           EventType = "PickDate"
	PickSlot           EventType = "PickSlot"
	UpdatePatient      EventType = "UpdatePatient"
	Submit             EventType = "Submit"
	SubmitSucceeded    EventType = "SubmitSucceeded"
	SubmitFailed       EventType = "SubmitFailed"
	Back               EventType = "Back"
)

// DateWindowDays is the number of bookable days starting today.
const DateWindowDays = 14

var (
	ErrSubmitting            = apperror.Conflict("Booking is already being submitted")
	ErrTerminal              = apperror.Conflict("Booking is already confirmed")
	ErrWrongStep             = apperror.Validation("Event is not allowed at this step")
	ErrUnknownEvent          = apperror.Validation("Unknown wizard event")
	ErrUnknownCategory       = apperror.Validation("Unknown category")
	ErrUnknownSpecialization = apperror.Validation("Specialization does not belong to the selected category")
	ErrDoctorMismatch        = apperror.Validation("Doctor does not match the selected category and specialization")
	ErrDateOutsideWindow     = apperror.Validation("Date must be within the next 14 days")
	ErrSlotMismatch          = apperror.Validation("Slot does not belong to the selected doctor")
	ErrSlotInactive          = apperror.Validation("Slot is not available")
	ErrPatientName           = apperror.Validation("Patient name is required")
	ErrPatientAge            = apperror.Validation("Patient age must be a positive number")
	ErrNoEarlierStep         = apperror.Validation("There is no earlier step")
)

// Patient holds the details typed on the last step.
type Patient struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Notes  string `json:"notes"`
}

// State is everything the wizard has collected so far. Later fields survive
// navigating back.
type State struct {
	Step           Step          `json:"step"`
	Category       string        `json:"category,omitempty"`
	Specialization string        `json:"specialization,omitempty"`
	Doctor         *model.Doctor `json:"doctor,omitempty"`
	Date           string        `json:"date,omitempty"`
	Slot           *model.Slot   `json:"slot,omitempty"`
	Patient        Patient       `json:"patient"`
	Error          string        `json:"error,omitempty"`
}

// Event is one user or system action. Only the fields relevant to Type are read.
type Event struct {
	Type           EventType     `json:"type"`
	Category       string        `json:"category,omitempty"`
	Specialization string        `json:"specialization,omitempty"`
	Doctor         *model.Doctor `json:"doctor,omitempty"`
	Date           string        `json:"date,omitempty"`
	Today          time.Time     `json:"today,omitempty"`
	Slot           *model.Slot   `json:"slot,omitempty"`
	Patient        Patient       `json:"patient"`
	Message        string        `json:"message,omitempty"`
	Target         Step          `json:"target,omitempty"`
}

// Start is the state of a fresh wizard.
func Start() State {
	return State{Step: StepCategory}
}

// DateWindow returns the days bookable from today, as YYYY-MM-DD.
func DateWindow(today time.Time, days int) []string {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return out
}

// Transition applies ev to s. On error the returned state equals s.
func Transition(s State, ev Event) (State, error) {
	switch s.Step {
	case StepConfirmed:
		return s, ErrTerminal
	case StepSubmitting:
		return submitting(s, ev)
	}

	next := s
	next.Error = ""
	switch ev.Type {
	case Back:
		return back(s, ev.Target)
	case PickCategory:
		if s.Step != StepCategory {
			return s, ErrWrongStep
		}
		if !model.IsCategory(ev.Category) {
			return s, ErrUnknownCategory
		}
		if ev.Category != s.Category {
			next.Category = ev.Category
			next.Specialization = ""
			if next.Doctor != nil && next.Doctor.Category != ev.Category {
				next.Doctor = nil
				next.Slot = nil
			}
		}
		next.Step = StepSpecialization
	case PickSpecialization:
		if s.Step != StepSpecialization {
			return s, ErrWrongStep
		}
		if !model.IsSpecialization(s.Category, ev.Specialization) {
			return s, ErrUnknownSpecialization
		}
		next.Specialization = ev.Specialization
		if next.Doctor != nil && next.Doctor.Specialization != ev.Specialization {
			next.Doctor = nil
			next.Slot = nil
		}
		next.Step = StepDoctor
	case PickDoctor:
		if s.Step != StepDoctor {
			return s, ErrWrongStep
		}
		if ev.Doctor == nil || ev.Doctor.Category != s.Category || ev.Doctor.Specialization != s.Specialization {
			return s, ErrDoctorMismatch
		}
		if next.Doctor == nil || next.Doctor.ID != ev.Doctor.ID {
			next.Slot = nil
		}
		doc := *ev.Doctor
		next.Doctor = &doc
		next.Step = StepDate
	case PickDate:
		if s.Step != StepDate {
			return s, ErrWrongStep
		}
		if !inWindow(ev.Date, ev.Today) {
			return s, ErrDateOutsideWindow
		}
		next.Date = ev.Date
		next.Slot = nil
		next.Step = StepSlot
	case PickSlot:
		if s.Step != StepSlot {
			return s, ErrWrongStep
		}
		if ev.Slot == nil || s.Doctor == nil || ev.Slot.DoctorID != s.Doctor.ID {
			return s, ErrSlotMismatch
		}
		if !ev.Slot.IsActive {
			return s, ErrSlotInactive
		}
		slot := *ev.Slot
		next.Slot = &slot
		next.Step = StepPatient
	case UpdatePatient:
		if s.Step != StepPatient {
			return s, ErrWrongStep
		}
		next.Patient = ev.Patient
	case Submit:
		if s.Step != StepPatient {
			return s, ErrWrongStep
		}
		if strings.TrimSpace(s.Patient.Name) == "" {
			return s, ErrPatientName
		}
		if s.Patient.Age <= 0 {
			return s, ErrPatientAge
		}
		next.Step = StepSubmitting
	case SubmitSucceeded, SubmitFailed:
		return s, ErrWrongStep
	default:
		return s, ErrUnknownEvent
	}
	return next, nil
}

func submitting(s State, ev Event) (State, error) {
	next := s
	switch ev.Type {
	case Submit:
		return s, ErrSubmitting
	case SubmitSucceeded:
		next.Step = StepConfirmed
		next.Error = ""
	case SubmitFailed:
		next.Step = StepPatient
		next.Error = ev.Message
	default:
		return s, ErrSubmitting
	}
	return next, nil
}

// back moves to target, or to the previous step when target is empty. Data
// collected on later steps is kept, except that leaving the specialization
// step backwards clears the specialization.
func back(s State, target Step) (State, error) {
	cur := s.Step.index()
	if target == "" {
		if cur <= 0 {
			return s, ErrNoEarlierStep
		}
		target = order[cur-1]
	}
	to := target.index()
	if to < 0 || to >= cur {
		return s, ErrNoEarlierStep
	}

	next := s
	next.Error = ""
	next.Step = target
	if s.Step == StepSpecialization {
		next.Specialization = ""
	}
	return next, nil
}

func inWindow(date string, today time.Time) bool {
	if today.IsZero() {
		return false
	}
	for _, d := range DateWindow(today, DateWindowDays) {
		if d == date {
			return true
		}
	}
	return false
}

// Payload is the booking request of a submitting or confirmed wizard.
func (s State) Payload() (telehealth.BookingRequest, error) {
	if s.Doctor == nil || s.Slot == nil || s.Date == "" {
		return telehealth.BookingRequest{}, ErrWrongStep
	}
	start, err := telehealth.ClockTime(s.Slot.StartTime)
	if err != nil {
		return telehealth.BookingRequest{}, err
	}
	return telehealth.BookingRequest{
		DoctorID:    s.Doctor.ID,
		BookingDate: s.Date,
		SlotTime:    start,
		Name:        strings.TrimSpace(s.Patient.Name),
		Age:         s.Patient.Age,
		Gender:      s.Patient.Gender,
		Notes:       s.Patient.Notes,
	}, nil
}
