// Package report issues camp medical reports and serves them back to
// patients and admins.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/ariebrainware/healthghar/admin"
	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrBookingRequired  = apperror.Validation("Booking is required")
	ErrBookingNotFound  = apperror.NotFound("Camp booking not found")
	ErrReportNotFound   = apperror.NotFound("Report not found")
	ErrNotAuthenticated = identity.ErrNotAuthenticated
)

// Vital is a measured value sent either as text or as a number. No range is
// enforced.
type Vital string

func (v *Vital) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Vital(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = Vital(n.String())
	return nil
}

// Input is what an admin fills in for one camp booking.
type Input struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`

	PatientName    string `json:"patient_name"`
	PatientAge     int    `json:"patient_age"`
	PatientGender  string `json:"patient_gender"`
	PatientAddress string `json:"patient_address"`
	PatientPhone   string `json:"patient_phone"`
	PatientWard    string `json:"patient_ward"`

	Departments []string `json:"departments"`

	VitalBP         Vital `json:"vital_bp"`
	VitalBloodSugar Vital `json:"vital_blood_sugar"`
	VitalWeight     Vital `json:"vital_weight"`
	VitalTemp       Vital `json:"vital_temp"`
	VitalSpO2       Vital `json:"vital_spo2"`
	VitalPulse      Vital `json:"vital_pulse"`

	DoctorsAdvice   string `json:"doctors_advice"`
	DoctorName      string `json:"doctor_name"`
	DoctorSignature string `json:"doctor_signature"`
}

// Departments keeps the first occurrence of each known department and
// rejects anything outside model.Departments.
func Departments(in []string) ([]string, error) {
	out := []string{}
	seen := map[string]bool{}
	for _, d := range in {
		d = strings.TrimSpace(d)
		if d == "" || seen[d] {
			continue
		}
		if !model.IsDepartment(d) {
			return nil, apperror.Validation("Unknown department: " + d)
		}
		seen[d] = true
		out = append(out, d)
	}
	return out, nil
}

func (in Input) columns(departments datatypes.JSON) map[string]interface{} {
	return map[string]interface{}{
		"patient_name":      util.NormalizeName(in.PatientName),
		"patient_age":       in.PatientAge,
		"patient_gender":    strings.TrimSpace(in.PatientGender),
		"patient_address":   strings.TrimSpace(in.PatientAddress),
		"patient_phone":     strings.TrimSpace(in.PatientPhone),
		"patient_ward":      strings.TrimSpace(in.PatientWard),
		"departments":       departments,
		"vital_bp":          string(in.VitalBP),
		"vital_blood_sugar": string(in.VitalBloodSugar),
		"vital_weight":      string(in.VitalWeight),
		"vital_temp":        string(in.VitalTemp),
		"vital_spo2":        string(in.VitalSpO2),
		"vital_pulse":       string(in.VitalPulse),
		"doctors_advice":    strings.TrimSpace(in.DoctorsAdvice),
		"doctor_name":       strings.TrimSpace(in.DoctorName),
		"doctor_signature":  strings.TrimSpace(in.DoctorSignature),
	}
}

func (in Input) apply(r *model.CampReport, departments datatypes.JSON) {
	r.PatientName = util.NormalizeName(in.PatientName)
	r.PatientAge = in.PatientAge
	r.PatientGender = strings.TrimSpace(in.PatientGender)
	r.PatientAddress = strings.TrimSpace(in.PatientAddress)
	r.PatientPhone = strings.TrimSpace(in.PatientPhone)
	r.PatientWard = strings.TrimSpace(in.PatientWard)
	r.Departments = departments
	r.VitalBP = string(in.VitalBP)
	r.VitalBloodSugar = string(in.VitalBloodSugar)
	r.VitalWeight = string(in.VitalWeight)
	r.VitalTemp = string(in.VitalTemp)
	r.VitalSpO2 = string(in.VitalSpO2)
	r.VitalPulse = string(in.VitalPulse)
	r.DoctorsAdvice = strings.TrimSpace(in.DoctorsAdvice)
	r.DoctorName = strings.TrimSpace(in.DoctorName)
	r.DoctorSignature = strings.TrimSpace(in.DoctorSignature)
}

func logStoreError(err error, op string) {
	l := util.Component("report")
	l.Error().Err(err).Str("op", op).Str("table", model.CampReport{}.TableName()).Msg("store call failed")
}

// Issuer writes and reads camp reports.
type Issuer struct {
	backend store.Backend
	now     func() time.Time
}

// NewIssuer takes the user scoped backend; admin operations use the
// capability's backend instead.
func NewIssuer(backend store.Backend) *Issuer {
	if backend == nil {
		panic("report: nil backend")
	}
	return &Issuer{backend: backend, now: time.Now}
}

// Issue creates the report of a camp booking, or updates it when one exists.
// created tells which happened.
func (is *Issuer) Issue(ctx context.Context, c admin.Capability, in Input) (report model.CampReport, created bool, err error) {
	if !c.Valid() {
		return model.CampReport{}, false, admin.ErrNoCapability
	}
	in.BookingID = strings.TrimSpace(in.BookingID)
	if in.BookingID == "" {
		return model.CampReport{}, false, ErrBookingRequired
	}
	depts, err := Departments(in.Departments)
	if err != nil {
		return model.CampReport{}, false, err
	}
	raw, err := json.Marshal(depts)
	if err != nil {
		return model.CampReport{}, false, apperror.Validation("Invalid departments")
	}
	departments := datatypes.JSON(raw)

	b := c.Backend()
	var existing model.CampReport
	err = b.First(ctx, store.Where(store.Eq("booking_id", in.BookingID)), &existing)
	switch {
	case err == nil:
		report, err = is.update(ctx, b, existing, in, departments)
	case errors.Is(err, store.ErrNotFound):
		report, err = is.create(ctx, b, in, departments)
		created = true
	default:
		logStoreError(err, "get")
		return model.CampReport{}, false, apperror.Persistence("Failed to save report", err)
	}
	if err != nil {
		return model.CampReport{}, false, err
	}

	util.LogAdminAction(c.Admin().UserID, c.Admin().Email, "issue_report", map[string]interface{}{
		"booking_id": report.BookingID,
		"report_id":  report.ID,
		"created":    created,
	})
	util.Revalidate(ctx, util.ViewReports(report.UserID), util.ViewAdminReports)
	return report, created, nil
}

func (is *Issuer) update(ctx context.Context, b store.Backend, existing model.CampReport, in Input, departments datatypes.JSON) (model.CampReport, error) {
	values := in.columns(departments)
	now := is.now().UTC()
	values["updated_at"] = now
	if _, err := b.Update(ctx, &model.CampReport{}, store.Where(store.Eq("id", existing.ID)), values); err != nil {
		logStoreError(err, "update")
		return model.CampReport{}, apperror.Persistence("Failed to update report", err)
	}
	in.apply(&existing, departments)
	existing.UpdatedAt = now
	return existing, nil
}

func (is *Issuer) create(ctx context.Context, b store.Backend, in Input, departments datatypes.JSON) (model.CampReport, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		var booking model.CampBooking
		err := b.First(ctx, store.Where(store.Eq("id", in.BookingID)), &booking)
		if errors.Is(err, store.ErrNotFound) {
			return model.CampReport{}, ErrBookingNotFound
		}
		if err != nil {
			logStoreError(err, "get_booking")
			return model.CampReport{}, apperror.Persistence("Failed to save report", err)
		}
		userID = booking.UserID
	}

	now := is.now().UTC()
	report := model.CampReport{ID: uuid.NewString(), BookingID: in.BookingID, UserID: userID, CreatedAt: now, UpdatedAt: now}
	in.apply(&report, departments)
	if err := b.Insert(ctx, &report); err != nil {
		logStoreError(err, "create")
		return model.CampReport{}, apperror.Persistence("Failed to save report", err)
	}
	return report, nil
}

// ForUser lists the caller's reports, newest first.
func (is *Issuer) ForUser(ctx context.Context) ([]model.CampReport, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	key := util.ViewReports(id.UserID)
	if v, ok := util.CachedView(key); ok {
		if reports, ok := v.([]model.CampReport); ok {
			return reports, nil
		}
	}
	out, err := list(ctx, is.backend, store.Where(store.Eq("user_id", id.UserID)))
	if err != nil {
		return nil, err
	}
	util.CacheView(key, out)
	return out, nil
}

// ForBooking returns the report of one camp booking.
func (is *Issuer) ForBooking(ctx context.Context, c admin.Capability, bookingID string) (model.CampReport, error) {
	if !c.Valid() {
		return model.CampReport{}, admin.ErrNoCapability
	}
	var r model.CampReport
	err := c.Backend().First(ctx, store.Where(store.Eq("booking_id", strings.TrimSpace(bookingID))), &r)
	if errors.Is(err, store.ErrNotFound) {
		return model.CampReport{}, ErrReportNotFound
	}
	if err != nil {
		logStoreError(err, "get")
		return model.CampReport{}, apperror.Persistence("Failed to load report", err)
	}
	return r, nil
}

// All lists every report, newest first.
func (is *Issuer) All(ctx context.Context, c admin.Capability) ([]model.CampReport, error) {
	if !c.Valid() {
		return nil, admin.ErrNoCapability
	}
	if v, ok := util.CachedView(util.ViewAdminReports); ok {
		if reports, ok := v.([]model.CampReport); ok {
			return reports, nil
		}
	}
	out, err := list(ctx, c.Backend(), store.Where())
	if err != nil {
		return nil, err
	}
	util.CacheView(util.ViewAdminReports, out)
	return out, nil
}

func list(ctx context.Context, b store.Backend, q store.Query) ([]model.CampReport, error) {
	out := []model.CampReport{}
	if err := b.Find(ctx, &model.CampReport{}, q.OrderByDesc("created_at"), &out); err != nil {
		logStoreError(err, "list")
		return nil, apperror.Persistence("Failed to load reports", err)
	}
	return out, nil
}
