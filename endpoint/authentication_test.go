package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/signup", requestPath: "/signup", handler: Signup,
		body: SignupRequest{Name: "  Ram   Thapa ", Email: "ram@example.com", Password: "password123"},
	})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "Signup successful", body["msg"])

	code, body = env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/login", requestPath: "/login", handler: Login,
		body: LoginRequest{Email: "ram@example.com", Password: "password123"},
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.NotEmpty(t, dataOf(body)["token"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "dup@example.com", false)

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/signup", requestPath: "/signup", handler: Signup,
		body: SignupRequest{Name: "Someone", Email: "dup@example.com", Password: "password123"},
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email already exists", body["msg"])
}

func TestSignupRefusesDoctorEmail(t *testing.T) {
	env := newTestEnv(t)
	env.addDoctor(t, "dr.claimed@example.com", "Primary Care", "Physicians")

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/signup", requestPath: "/signup", handler: Signup,
		body: SignupRequest{Name: "Mallory", Email: "dr.claimed@example.com", Password: "password123"},
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, body["msg"], "belongs to a doctor")
}

func TestSignupInvalidPayload(t *testing.T) {
	env := newTestEnv(t)
	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/signup", requestPath: "/signup", handler: Signup,
		body: `{"email":"not-an-email"}`,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "pw@example.com", false)

	code, body := env.do(t, requestSpec{
		method: http.MethodPost, registerPath: "/login", requestPath: "/login", handler: Login,
		body: LoginRequest{Email: "pw@example.com", Password: "wrong-password"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid email or password", body["msg"])
}

func TestLogoutEndsSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "bye@example.com", false)

	code, _ := env.do(t, requestSpec{
		method: http.MethodDelete, registerPath: "/logout", requestPath: "/logout", handler: Logout, headers: auth(token),
	})
	require.Equal(t, http.StatusOK, code)

	code, body := env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/profile", requestPath: "/profile", handler: GetProfile, headers: auth(token),
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Not authenticated", body["msg"])
}

func TestLogoutWithoutToken(t *testing.T) {
	env := newTestEnv(t)
	code, _ := env.do(t, requestSpec{method: http.MethodDelete, registerPath: "/logout", requestPath: "/logout", handler: Logout})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "profile@example.com", false)

	code, body := env.do(t, requestSpec{
		method: http.MethodPatch, registerPath: "/profile", requestPath: "/profile", handler: UpdateProfile, headers: auth(token),
		body: ProfileRequest{Age: 31, CountryCode: "+977", Phone: "9801234567", Address: "Lalitpur", Gender: "female"},
	})
	require.Equal(t, http.StatusOK, code, body)

	code, body = env.do(t, requestSpec{
		method: http.MethodGet, registerPath: "/profile", requestPath: "/profile", handler: GetProfile, headers: auth(token),
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Lalitpur", dataOf(body)["address"])
}

func TestUpdateProfileAnonymousIsUnauthorizedWhateverTheBody(t *testing.T) {
	env := newTestEnv(t)
	code, body := env.do(t, requestSpec{
		method: http.MethodPatch, registerPath: "/profile", requestPath: "/profile", handler: UpdateProfile,
		body: `{"age": -4}`,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Not authenticated", body["msg"])
}
