package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSlotRequiresCaller(t *testing.T) {
	env := newTestEnv(t)
	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/doctor/slots", requestPath: "/doctor/slots", handler: AddSlot,
		body: `{"start_time":"garbage"}`,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized", body["msg"])
}

func TestAddSlotWithoutDoctorProfile(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "patient@example.com", false)
	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/doctor/slots", requestPath: "/doctor/slots", handler: AddSlot,
		headers: auth(token), body: SlotRequest{StartTime: "09:00", EndTime: "09:30"},
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Doctor profile not found", body["msg"])
}

func TestDoctorSlotLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "dr.rai@example.com", false)
	env.addDoctor(t, "dr.rai@example.com", "Primary Care", "Physicians")

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/doctor/slots", requestPath: "/doctor/slots", handler: AddSlot,
		headers: auth(token), body: SlotRequest{StartTime: "2025-01-10T09:00", EndTime: "2025-01-10T09:30"},
	})
	require.Equal(t, http.StatusCreated, code, body)
	slot := dataOf(body)
	assert.Equal(t, true, slot["is_active"])
	id := slot["id"].(string)

	inactive := false
	code, body = env.do(t, requestSpec{
		method: http.MethodPatch, registerPath: "/doctor/slots/:id", requestPath: "/doctor/slots/" + id, handler: UpdateSlot,
		headers: auth(token), body: SlotRequest{StartTime: "2025-01-10T10:00", EndTime: "2025-01-10T10:30", IsActive: &inactive},
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "2025-01-10T10:00", dataOf(body)["start_time"])
	assert.Equal(t, false, dataOf(body)["is_active"])

	code, body = env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/doctor/slots", requestPath: "/doctor/slots", handler: ListMySlots, headers: auth(token),
	})
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, listOf(body), 1)

	code, _ = env.do(t, requestSpec{
		method: http.MethodDelete, registerPath: "/doctor/slots/:id", requestPath: "/doctor/slots/" + id, handler: DeleteSlot, headers: auth(token),
	})
	require.Equal(t, http.StatusOK, code)

	_, body = env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/doctor/slots", requestPath: "/doctor/slots", handler: ListMySlots, headers: auth(token),
	})
	assert.Empty(t, listOf(body))
}

func TestAddSlotRejectsBadWindow(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "dr.window@example.com", false)
	env.addDoctor(t, "dr.window@example.com", "Primary Care", "Physicians")

	cases := []struct {
		name string
		req  SlotRequest
		msg  string
	}{
		{"missing end", SlotRequest{StartTime: "09:00"}, "Start time and end time are required"},
		{"unparseable", SlotRequest{StartTime: "nine", EndTime: "10:00"}, "Invalid time format"},
		{"reversed", SlotRequest{StartTime: "10:00", EndTime: "09:00"}, "Start time must be before end time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := env.do(t, requestSpec{
				method: http.MethodPost, registerPath: "/doctor/slots", requestPath: "/doctor/slots", handler: AddSlot,
				headers: auth(token), body: tc.req,
			})
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tc.msg, body["msg"])
		})
	}
}

func TestUpdateSlotOfAnotherDoctor(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "dr.a@example.com", false)
	env.addDoctor(t, "dr.a@example.com", "Primary Care", "Physicians")
	other := env.addDoctor(t, "dr.b@example.com", "Primary Care", "Physicians")
	slot := env.addSlot(t, other.ID, "09:00", "09:30", true)

	code, body := env.do(t, requestSpec{
		method: http.MethodPatch, registerPath: "/doctor/slots/:id", requestPath: "/doctor/slots/" + slot.ID, handler: UpdateSlot,
		headers: auth(token), body: SlotRequest{StartTime: "10:00", EndTime: "10:30"},
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Slot not found or permission denied", body["msg"])

	code, _ = env.do(t, requestSpec{
		method: http.MethodDelete, registerPath: "/doctor/slots/:id", requestPath: "/doctor/slots/" + slot.ID, handler: DeleteSlot, headers: auth(token),
	})
	assert.Equal(t, http.StatusOK, code)

	_, body = env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/doctors/:id/slots", requestPath: "/doctors/" + other.ID + "/slots", handler: ListDoctorSlots,
	})
	assert.Len(t, listOf(body), 1)
}

func TestListMySlotsAnonymousIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	code, body := env.do(t, requestSpec{method: http.MethodGet, registerPath: "/doctor/slots", requestPath: "/doctor/slots", handler: ListMySlots})
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, listOf(body))
}
