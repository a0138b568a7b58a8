package endpoint

import (
	"net/http"
	"testing"
	"time"

	"github.com/ariebrainware/healthghar/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardEvent(t *testing.T, env *testEnv, token, id string, in wizard.Input) (int, map[string]interface{}) {
	t.Helper()
	return env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/wizard/:id/events", requestPath: "/wizard/" + id + "/events",
		handler: WizardEvent, headers: auth(token), body: in,
	})
}

func stepOf(body map[string]interface{}) string {
	state, _ := dataOf(body)["state"].(map[string]interface{})
	s, _ := state["step"].(string)
	return s
}

func TestWizardBooksThroughEveryStep(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "wizard@example.com", false)
	doc := env.addDoctor(t, "dr.wizard@example.com", "Medical Specialists", "Cardiologists")
	slot := env.addSlot(t, doc.ID, "2025-01-10T09:00", "2025-01-10T09:30", true)

	code, body := env.do(t, requestSpec{method: http.MethodPost, registerPath: "/wizard", requestPath: "/wizard", handler: StartWizard, headers: auth(token)})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, string(wizard.StepCategory), stepOf(body))
	id := dataOf(body)["id"].(string)

	steps := []struct {
		in   wizard.Input
		want wizard.Step
	}{
		{wizard.Input{Type: wizard.PickCategory, Category: "Medical Specialists"}, wizard.StepSpecialization},
		{wizard.Input{Type: wizard.PickSpecialization, Specialization: "Cardiologists"}, wizard.StepDoctor},
		{wizard.Input{Type: wizard.PickDoctor, DoctorID: doc.ID}, wizard.StepDate},
		{wizard.Input{Type: wizard.PickDate, Date: time.Now().Format("2006-01-02")}, wizard.StepSlot},
		{wizard.Input{Type: wizard.PickSlot, SlotID: slot.ID}, wizard.StepPatient},
		{wizard.Input{Type: wizard.UpdatePatient, Patient: wizard.Patient{Name: "Asha", Age: 30}}, wizard.StepPatient},
		{wizard.Input{Type: wizard.Submit}, wizard.StepConfirmed},
	}
	for _, s := range steps {
		code, body = wizardEvent(t, env, token, id, s.in)
		require.Equal(t, http.StatusOK, code, "%s: %v", s.in.Type, body)
		require.Equal(t, string(s.want), stepOf(body), s.in.Type)
	}
	booking, _ := dataOf(body)["booking"].(map[string]interface{})
	assert.Equal(t, "09:00:00", booking["slot_time_start"])

	code, body = wizardEvent(t, env, token, id, wizard.Input{Type: wizard.Submit})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Booking is already confirmed", body["msg"])
}

func TestWizardRejectsOutOfStepEvent(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "order@example.com", false)
	_, body := env.do(t, requestSpec{method: http.MethodPost, registerPath: "/wizard", requestPath: "/wizard", handler: StartWizard, headers: auth(token)})
	id := dataOf(body)["id"].(string)

	code, body := wizardEvent(t, env, token, id, wizard.Input{Type: wizard.PickDate, Date: "2025-01-10"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Event is not allowed at this step", body["msg"])

	code, _ = wizardEvent(t, env, token, id, wizard.Input{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestWizardBelongsToItsOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signIn(t, "owner@example.com", false)
	stranger := env.signIn(t, "stranger@example.com", false)
	_, body := env.do(t, requestSpec{method: http.MethodPost, registerPath: "/wizard", requestPath: "/wizard", handler: StartWizard, headers: auth(owner)})
	id := dataOf(body)["id"].(string)

	code, body := env.do(t, requestSpec{method: http.MethodGet, registerPath: "/wizard/:id", requestPath: "/wizard/" + id, handler: GetWizard, headers: auth(stranger)})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Wizard session not found", body["msg"])

	code, _ = env.do(t, requestSpec{method: http.MethodGet, registerPath: "/wizard/:id", requestPath: "/wizard/" + id, handler: GetWizard, headers: auth(owner)})
	assert.Equal(t, http.StatusOK, code)
}

func TestWizardAnonymous(t *testing.T) {
	env := newTestEnv(t)
	code, _ := env.do(t, requestSpec{method: http.MethodPost, registerPath: "/wizard", requestPath: "/wizard", handler: StartWizard})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := wizardEvent(t, env, "", "whatever", wizard.Input{})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Not authenticated", body["msg"])
}
