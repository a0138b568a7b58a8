package telehealth

import (
	"context"
	"strings"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/metrics"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
	"github.com/google/uuid"
)

type HomeCheckupRequest struct {
	PackageID     string `json:"package_id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Address       string `json:"address"`
	Contact       string `json:"contact"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
}

type CampBookingRequest struct {
	CampID  string `json:"camp_id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Contact string `json:"contact"`
	Gender  string `json:"gender"`
}

// UserBookings is the caller's dashboard.
type UserBookings struct {
	Telehealth  []model.TelehealthBooking  `json:"telehealth"`
	HomeCheckup []model.HomeCheckupBooking `json:"home_checkup"`
	Camp        []model.CampBooking        `json:"camp"`
}

func requirePatient(name string, age int) (string, error) {
	name = util.NormalizeName(name)
	if name == "" {
		return "", apperror.Validation("Patient name is required")
	}
	if age <= 0 {
		return "", apperror.Validation("Patient age must be a positive number")
	}
	return name, nil
}

// BookHomeCheckup records a home visit request for the caller.
func (r *Recorder) BookHomeCheckup(ctx context.Context, req HomeCheckupRequest) (model.HomeCheckupBooking, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return model.HomeCheckupBooking{}, ErrNotAuthenticated
	}
	if strings.TrimSpace(req.PackageID) == "" {
		return model.HomeCheckupBooking{}, apperror.Validation("Package is required")
	}
	name, err := requirePatient(req.Name, req.Age)
	if err != nil {
		return model.HomeCheckupBooking{}, err
	}
	if req.PreferredDate != "" && !ValidDate(req.PreferredDate) {
		return model.HomeCheckupBooking{}, apperror.Validation("Preferred date must be YYYY-MM-DD")
	}

	booking := model.HomeCheckupBooking{
		ID:             uuid.NewString(),
		PackageID:      strings.TrimSpace(req.PackageID),
		UserID:         id.UserID,
		PatientName:    name,
		PatientAge:     req.Age,
		PatientAddress: strings.TrimSpace(req.Address),
		PatientContact: strings.TrimSpace(req.Contact),
		PreferredDate:  req.PreferredDate,
		PreferredTime:  strings.TrimSpace(req.PreferredTime),
		CreatedAt:      r.now().UTC(),
	}
	if err := r.backend.Insert(ctx, &booking); err != nil {
		logStoreError(err, "book", booking.TableName())
		return model.HomeCheckupBooking{}, apperror.New(apperror.KindPersistence, err.Error())
	}

	metrics.BookingsRecorded.WithLabelValues("home_checkup").Inc()
	util.Revalidate(ctx, util.ViewUserBookings(id.UserID))
	return booking, nil
}

// BookCamp registers the caller for a camp.
func (r *Recorder) BookCamp(ctx context.Context, req CampBookingRequest) (model.CampBooking, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return model.CampBooking{}, ErrNotAuthenticated
	}
	if strings.TrimSpace(req.CampID) == "" {
		return model.CampBooking{}, apperror.Validation("Camp is required")
	}
	name, err := requirePatient(req.Name, req.Age)
	if err != nil {
		return model.CampBooking{}, err
	}

	booking := model.CampBooking{
		ID:             uuid.NewString(),
		CampID:         strings.TrimSpace(req.CampID),
		UserID:         id.UserID,
		PatientName:    name,
		PatientAge:     req.Age,
		PatientContact: strings.TrimSpace(req.Contact),
		PatientGender:  strings.TrimSpace(req.Gender),
		CreatedAt:      r.now().UTC(),
	}
	if err := r.backend.Insert(ctx, &booking); err != nil {
		logStoreError(err, "book", booking.TableName())
		return model.CampBooking{}, apperror.New(apperror.KindPersistence, err.Error())
	}

	metrics.BookingsRecorded.WithLabelValues("camp").Inc()
	util.Revalidate(ctx, util.ViewUserBookings(id.UserID))
	return booking, nil
}

// MyBookings returns every booking of the caller. Telehealth bookings are
// ordered by booking date, the others newest first.
func (r *Recorder) MyBookings(ctx context.Context) (UserBookings, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return UserBookings{}, ErrNotAuthenticated
	}

	tele, err := r.MyTelehealthBookings(ctx)
	if err != nil {
		return UserBookings{}, err
	}
	out := UserBookings{Telehealth: tele, HomeCheckup: []model.HomeCheckupBooking{}, Camp: []model.CampBooking{}}

	newest := store.Where(store.Eq("user_id", id.UserID)).OrderByDesc("created_at")
	if err := r.backend.Find(ctx, &model.HomeCheckupBooking{}, newest, &out.HomeCheckup); err != nil {
		logStoreError(err, "list", model.HomeCheckupBooking{}.TableName())
		return UserBookings{}, apperror.Persistence("Failed to load bookings", err)
	}
	if err := r.backend.Find(ctx, &model.CampBooking{}, newest, &out.Camp); err != nil {
		logStoreError(err, "list", model.CampBooking{}.TableName())
		return UserBookings{}, apperror.Persistence("Failed to load bookings", err)
	}
	return out, nil
}
