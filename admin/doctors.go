package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/ariebrainware/healthghar/util"
	"github.com/google/uuid"
)

var (
	ErrDoctorNotFound = apperror.NotFound("Doctor not found")
	ErrDoctorEmail    = apperror.Conflict("Doctor email already exists")
)

// DoctorInput is the editable part of a doctor profile. Password is only
// read on create: it provisions the doctor's sign-in account when the email
// has none yet.
type DoctorInput struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Category       string `json:"category" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Password       string `json:"password,omitempty" binding:"omitempty,min=8"`
}

func (in DoctorInput) normalized() (DoctorInput, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = util.NormalizeName(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Specialization = strings.TrimSpace(in.Specialization)

	if in.Email == "" {
		return in, apperror.Validation("Email is required")
	}
	if in.Name == "" {
		return in, apperror.Validation("Name is required")
	}
	if !model.IsCategory(in.Category) {
		return in, apperror.Validation("Unknown category")
	}
	if !model.IsSpecialization(in.Category, in.Specialization) {
		return in, apperror.Validation("Specialization does not belong to the selected category")
	}
	return in, nil
}

// Service runs admin operations. Every method requires a capability.
type Service struct {
	policy    FailurePolicy
	conflicts telehealth.ConflictChecker
	now       func() time.Time
}

func NewService(policy FailurePolicy, conflicts telehealth.ConflictChecker) *Service {
	if conflicts == nil {
		conflicts = telehealth.NoConflictCheck{}
	}
	return &Service{policy: policy, conflicts: conflicts, now: time.Now}
}

func logStoreError(err error, op, table string) {
	l := util.Component("admin")
	l.Error().Err(err).Str("op", op).Str("table", table).Msg("store call failed")
}

func (s *Service) ListDoctors(ctx context.Context, c Capability) ([]model.Doctor, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return telehealth.NewDirectory(c.backend).Doctors(ctx, telehealth.DoctorFilter{})
}

func (s *Service) CreateDoctor(ctx context.Context, c Capability, in DoctorInput) (model.Doctor, error) {
	if err := c.check(); err != nil {
		return model.Doctor{}, err
	}
	in, err := in.normalized()
	if err != nil {
		return model.Doctor{}, err
	}
	if err := s.emailFree(ctx, c, in.Email, ""); err != nil {
		return model.Doctor{}, err
	}

	doc := model.Doctor{
		ID:             uuid.NewString(),
		Email:          in.Email,
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Specialization: in.Specialization,
		CreatedAt:      s.now().UTC(),
	}
	account, err := s.provisionAccount(ctx, c, in)
	if err != nil {
		return model.Doctor{}, err
	}
	if err := c.backend.Insert(ctx, &doc); err != nil {
		logStoreError(err, "create", doc.TableName())
		if account != "" {
			if _, derr := c.backend.Delete(ctx, &model.User{}, store.Where(store.Eq("id", account))); derr != nil {
				logStoreError(derr, "delete", model.User{}.TableName())
			}
		}
		return model.Doctor{}, apperror.Persistence("Failed to add doctor", err)
	}
	c.audit("create_doctor", map[string]interface{}{"doctor_id": doc.ID, "email": doc.Email, "account_id": account})
	util.Revalidate(ctx, util.ViewDoctorDirectory)
	return doc, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, c Capability, id string, in DoctorInput) (model.Doctor, error) {
	if err := c.check(); err != nil {
		return model.Doctor{}, err
	}
	in, err := in.normalized()
	if err != nil {
		return model.Doctor{}, err
	}
	doc, err := s.doctor(ctx, c, id)
	if err != nil {
		return model.Doctor{}, err
	}
	if err := s.emailFree(ctx, c, in.Email, doc.ID); err != nil {
		return model.Doctor{}, err
	}

	_, err = c.backend.Update(ctx, &model.Doctor{}, store.Where(store.Eq("id", doc.ID)), map[string]interface{}{
		"email":          in.Email,
		"name":           in.Name,
		"description":    in.Description,
		"category":       in.Category,
		"specialization": in.Specialization,
	})
	if err != nil {
		logStoreError(err, "update", doc.TableName())
		return model.Doctor{}, apperror.Persistence("Failed to update doctor", err)
	}
	doc.Email, doc.Name, doc.Description = in.Email, in.Name, in.Description
	doc.Category, doc.Specialization = in.Category, in.Specialization

	c.audit("update_doctor", map[string]interface{}{"doctor_id": doc.ID})
	util.Revalidate(ctx, util.ViewDoctorDirectory)
	return doc, nil
}

// DeleteDoctor removes a doctor's slots, then the doctor. Bookings are kept.
// An error is returned only when the doctor row itself survives; with
// ContinueOnFailure a failed slot cleanup shows up in the report alone.
func (s *Service) DeleteDoctor(ctx context.Context, c Capability, id string) (SagaReport, error) {
	if err := c.check(); err != nil {
		return SagaReport{}, err
	}
	doc, err := s.doctor(ctx, c, id)
	if err != nil {
		return SagaReport{}, err
	}

	slots := telehealth.NewSlotStore(c.backend)
	saga := Saga{
		Name:   "delete-doctor",
		Policy: s.policy,
		Steps: []SagaStep{
			{Name: "delete-slots", Run: func(ctx context.Context) error {
				_, err := slots.DeleteByDoctor(ctx, doc.ID)
				return err
			}},
			{Name: "delete-doctor", Run: func(ctx context.Context) error {
				n, err := c.backend.Delete(ctx, &model.Doctor{}, store.Where(store.Eq("id", doc.ID)))
				if err != nil {
					return err
				}
				if n == 0 {
					return fmt.Errorf("doctor %s was already removed", doc.ID)
				}
				return nil
			}},
		},
	}
	report := saga.Run(ctx)

	c.audit("delete_doctor", map[string]interface{}{
		"doctor_id": doc.ID,
		"completed": report.Completed,
		"failed":    len(report.Failed),
	})
	util.Revalidate(ctx, util.ViewDoctorDirectory, util.ViewDoctorSlots(doc.ID))

	for _, done := range report.Completed {
		if done == "delete-doctor" {
			return report, nil
		}
	}
	return report, apperror.Persistence("Failed to delete doctor", errors.New(report.Failed[0].Error))
}

func (s *Service) doctor(ctx context.Context, c Capability, id string) (model.Doctor, error) {
	var doc model.Doctor
	err := c.backend.First(ctx, store.Where(store.Eq("id", id)), &doc)
	if errors.Is(err, store.ErrNotFound) {
		return model.Doctor{}, ErrDoctorNotFound
	}
	if err != nil {
		logStoreError(err, "get", doc.TableName())
		return model.Doctor{}, apperror.Persistence("Failed to load doctor", err)
	}
	return doc, nil
}

// emailFree fails when another doctor than exceptID uses email.
// provisionAccount creates the sign-in account for a new doctor when a
// password is given and the email has no account. It returns the new user id,
// or "" when nothing was created.
func (s *Service) provisionAccount(ctx context.Context, c Capability, in DoctorInput) (string, error) {
	if in.Password == "" {
		return "", nil
	}
	var existing model.User
	err := c.backend.First(ctx, store.Where(store.Eq("email", in.Email)), &existing)
	if err == nil {
		return "", nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		logStoreError(err, "get", existing.TableName())
		return "", apperror.Persistence("Failed to check doctor account", err)
	}

	user, err := identity.NewAccount(identity.SignupInput{Name: in.Name, Email: in.Email, Password: in.Password}, s.now())
	if err != nil {
		return "", err
	}
	if err := c.backend.Insert(ctx, &user); err != nil {
		logStoreError(err, "create", user.TableName())
		return "", apperror.Persistence("Failed to create doctor account", err)
	}
	return user.ID, nil
}

func (s *Service) emailFree(ctx context.Context, c Capability, email, exceptID string) error {
	var other model.Doctor
	err := c.backend.First(ctx, store.Where(store.Eq("email", email)), &other)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		logStoreError(err, "get", other.TableName())
		return apperror.Persistence("Failed to check doctor email", err)
	}
	if other.ID != exceptID {
		return ErrDoctorEmail
	}
	return nil
}
