package endpoint

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ariebrainware/healthghar/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookTelehealthAnonymous(t *testing.T) {
	env := newTestEnv(t)
	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/bookings/telehealth", requestPath: "/bookings/telehealth", handler: BookTelehealth,
		body: `{"booking_date":"tomorrow"}`,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Not authenticated", body["msg"])
}

func TestBookTelehealth(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "booker@example.com", false)
	doc := env.addDoctor(t, "dr.book@example.com", "Primary Care", "Physicians")

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/bookings/telehealth", requestPath: "/bookings/telehealth", handler: BookTelehealth,
		headers: auth(token),
		body:    TelehealthBookingRequest{DoctorID: doc.ID, BookingDate: "2025-01-12", SlotTime: "09:00", Name: " Asha  Gurung ", Age: 34},
	})
	require.Equal(t, http.StatusCreated, code, body)
	booking := dataOf(body)
	assert.Equal(t, "09:00:00", booking["slot_time_start"])
	assert.Equal(t, "Asha Gurung", booking["patient_name"])

	code, body = env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/bookings", requestPath: "/bookings", handler: MyBookings, headers: auth(token),
	})
	require.Equal(t, http.StatusOK, code)
	tele, _ := dataOf(body)["telehealth"].([]interface{})
	assert.Len(t, tele, 1)
}

func TestBookTelehealthRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "baddate@example.com", false)

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/bookings/telehealth", requestPath: "/bookings/telehealth", handler: BookTelehealth,
		headers: auth(token),
		body:    TelehealthBookingRequest{DoctorID: "d1", BookingDate: "12/01/2025", SlotTime: "09:00", Name: "A", Age: 3},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid booking payload", body["msg"])
}

func TestBookTelehealthMissingAge(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "noage@example.com", false)

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/bookings/telehealth", requestPath: "/bookings/telehealth", handler: BookTelehealth,
		headers: auth(token),
		body:    TelehealthBookingRequest{DoctorID: "d1", BookingDate: "2025-01-12", SlotTime: "09:00:00", Name: "A"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Patient age must be a positive number", body["msg"])
}

func TestBookHomeCheckupAndCamp(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "other@example.com", false)

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/bookings/home-checkup", requestPath: "/bookings/home-checkup", handler: BookHomeCheckup,
		headers: auth(token),
		body:    HomeCheckupRequest{PackageID: "pkg-1", Name: "Hari", Age: 60, Address: "Bhaktapur", PreferredDate: "2025-02-01"},
	})
	require.Equal(t, http.StatusCreated, code, body)

	code, body = env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/bookings/camp", requestPath: "/bookings/camp", handler: BookCamp,
		headers: auth(token),
		body:    CampBookingRequest{CampID: "camp-1", Name: "Hari", Age: 60, Gender: "male"},
	})
	require.Equal(t, http.StatusCreated, code, body)

	_, body = env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/bookings", requestPath: "/bookings", handler: MyBookings, headers: auth(token),
	})
	home, _ := dataOf(body)["home_checkup"].([]interface{})
	camp, _ := dataOf(body)["camp"].([]interface{})
	assert.Len(t, home, 1)
	assert.Len(t, camp, 1)
}

func TestMyReports(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "reports@example.com", false)

	code, body := env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/reports", requestPath: "/reports", handler: MyReports, headers: auth(token),
	})
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, listOf(body))

	code, _ = env.do(t, requestSpec{method: http.MethodGet, registerPath: "/reports", requestPath: "/reports", handler: MyReports})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func addCampBooking(t *testing.T, env *testEnv, userID string) model.CampBooking {
	t.Helper()
	b := model.CampBooking{ID: uuid.NewString(), CampID: "camp-1", UserID: userID, PatientName: "Sita", PatientAge: 40, CreatedAt: time.Now().UTC()}
	require.NoError(t, env.backend.Insert(context.Background(), &b))
	return b
}
