package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/metrics"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/ariebrainware/healthghar/util"
)

// Input is an event as a client sends it: doctors and slots by id.
type Input struct {
	Type           EventType `json:"type" binding:"required"`
	Category       string    `json:"category"`
	Specialization string    `json:"specialization"`
	DoctorID       string    `json:"doctor_id"`
	Date           string    `json:"date"`
	SlotID         string    `json:"slot_id"`
	Patient        Patient   `json:"patient"`
	Target         Step      `json:"target"`
}

// View is a session plus what the current step offers to pick from.
type View struct {
	Session
	Categories      []model.Category         `json:"categories,omitempty"`
	Specializations []string                 `json:"specializations,omitempty"`
	Doctors         []model.Doctor           `json:"doctors,omitempty"`
	Dates           []string                 `json:"dates,omitempty"`
	Slots           []model.Slot             `json:"slots,omitempty"`
	Booking         *model.TelehealthBooking `json:"booking,omitempty"`
}

// Runner feeds client events through Transition, resolving ids against the
// directory and submitting through the recorder.
type Runner struct {
	sessions  *SessionStore
	directory *telehealth.Directory
	slots     *telehealth.SlotStore
	recorder  *telehealth.Recorder
	now       func() time.Time
}

func NewRunner(sessions *SessionStore, backend store.Backend, recorder *telehealth.Recorder) *Runner {
	return &Runner{
		sessions:  sessions,
		directory: telehealth.NewDirectory(backend),
		slots:     telehealth.NewSlotStore(backend),
		recorder:  recorder,
		now:       time.Now,
	}
}

func caller(ctx context.Context) (identity.Identity, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return identity.Identity{}, telehealth.ErrNotAuthenticated
	}
	return id, nil
}

// Begin starts a wizard for the caller.
func (r *Runner) Begin(ctx context.Context) (View, error) {
	id, err := caller(ctx)
	if err != nil {
		return View{}, err
	}
	sess, err := r.sessions.Create(ctx, id.UserID)
	if err != nil {
		return View{}, err
	}
	return r.view(ctx, sess)
}

// Get returns the caller's wizard.
func (r *Runner) Get(ctx context.Context, sessionID string) (View, error) {
	id, err := caller(ctx)
	if err != nil {
		return View{}, err
	}
	sess, err := r.sessions.Load(ctx, sessionID, id.UserID)
	if err != nil {
		return View{}, err
	}
	return r.view(ctx, sess)
}

// Apply runs one client event. A Submit also records the booking and settles
// the wizard as Confirmed or back on PatientDetails with the failure message.
func (r *Runner) Apply(ctx context.Context, sessionID string, in Input) (View, error) {
	id, err := caller(ctx)
	if err != nil {
		return View{}, err
	}
	sess, err := r.sessions.Load(ctx, sessionID, id.UserID)
	if err != nil {
		return View{}, err
	}
	if in.Type == Submit {
		release, err := r.sessions.ClaimSubmit(ctx, sess.ID)
		if err != nil {
			metrics.WizardTransitions.WithLabelValues(string(in.Type), "rejected").Inc()
			return View{}, err
		}
		defer release()
		// Reload under the lock so a submit that just settled is seen.
		if sess, err = r.sessions.Load(ctx, sessionID, id.UserID); err != nil {
			return View{}, err
		}
	}

	ev, err := r.resolve(ctx, sess.State, in)
	if err != nil {
		metrics.WizardTransitions.WithLabelValues(string(in.Type), "rejected").Inc()
		return View{}, err
	}
	next, err := Transition(sess.State, ev)
	if err != nil {
		metrics.WizardTransitions.WithLabelValues(string(in.Type), "rejected").Inc()
		return View{}, err
	}
	metrics.WizardTransitions.WithLabelValues(string(in.Type), "ok").Inc()
	sess.State = next
	sess.UpdatedAt = r.now().UTC()
	if err := r.sessions.Save(ctx, sess); err != nil {
		return View{}, err
	}

	if next.Step != StepSubmitting {
		return r.view(ctx, sess)
	}
	return r.submit(ctx, sess)
}

func (r *Runner) submit(ctx context.Context, sess Session) (View, error) {
	var booking *model.TelehealthBooking
	settle := Event{Type: SubmitSucceeded}

	req, err := sess.State.Payload()
	if err == nil {
		var b model.TelehealthBooking
		b, err = r.recorder.Book(ctx, req)
		booking = &b
	}
	if err != nil {
		booking = nil
		settle = Event{Type: SubmitFailed, Message: apperror.Message(err)}
		l := util.Component("wizard")
		l.Warn().Err(err).Str("wizard", sess.ID).Msg("booking submission failed")
	}

	next, terr := Transition(sess.State, settle)
	if terr != nil {
		return View{}, terr
	}
	metrics.WizardTransitions.WithLabelValues(string(settle.Type), "ok").Inc()
	sess.State = next
	sess.UpdatedAt = r.now().UTC()
	if err := r.sessions.Save(ctx, sess); err != nil {
		return View{}, err
	}
	v, err := r.view(ctx, sess)
	v.Booking = booking
	return v, err
}

// resolve turns ids into the records Transition checks. Lookups only happen
// for the event that needs them.
func (r *Runner) resolve(ctx context.Context, s State, in Input) (Event, error) {
	ev := Event{
		Type:           in.Type,
		Category:       in.Category,
		Specialization: in.Specialization,
		Date:           in.Date,
		Today:          r.now(),
		Patient:        in.Patient,
		Target:         in.Target,
	}
	switch in.Type {
	case SubmitSucceeded, SubmitFailed:
		return Event{}, ErrUnknownEvent
	case PickDoctor:
		if s.Step != StepDoctor {
			return ev, nil
		}
		doc, err := r.directory.Doctor(ctx, in.DoctorID)
		if err != nil {
			return Event{}, err
		}
		ev.Doctor = &doc
	case PickSlot:
		if s.Step != StepSlot || s.Doctor == nil {
			return ev, nil
		}
		slot, err := r.slots.Get(ctx, in.SlotID, s.Doctor.ID)
		if errors.Is(err, store.ErrNotFound) {
			return Event{}, ErrSlotMismatch
		}
		if err != nil {
			return Event{}, apperror.Persistence("Failed to load slot", err)
		}
		ev.Slot = &slot
	}
	return ev, nil
}

// view lists the choices for the current step.
func (r *Runner) view(ctx context.Context, sess Session) (View, error) {
	v := View{Session: sess}
	s := sess.State
	switch s.Step {
	case StepCategory:
		v.Categories = model.Categories
	case StepSpecialization:
		for _, c := range model.Categories {
			if c.Name == s.Category {
				v.Specializations = c.Specializations
			}
		}
	case StepDoctor:
		docs, err := r.directory.Doctors(ctx, telehealth.DoctorFilter{Category: s.Category, Specialization: s.Specialization})
		if err != nil {
			return View{}, err
		}
		v.Doctors = docs
	case StepDate:
		v.Dates = DateWindow(r.now(), DateWindowDays)
	case StepSlot:
		if s.Doctor != nil {
			slots, err := r.directory.DoctorSlots(ctx, s.Doctor.ID)
			if err != nil {
				return View{}, err
			}
			v.Slots = slots
		}
	}
	return v, nil
}
