package endpoint

import (
	"net/http"
	"testing"

	"github.com/ariebrainware/healthghar/middleware"
	"github.com/ariebrainware/healthghar/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	env := newTestEnv(t)
	code, body := env.do(t, requestSpec{method: http.MethodGet, registerPath: "/", requestPath: "/", handler: Index})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body["message"], "Welcome to")
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	code, body := env.do(t, requestSpec{method: http.MethodGet, registerPath: "/healthz", requestPath: "/healthz", handler: Healthz})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "disabled", dataOf(body)["redis"])
	assert.Equal(t, "ok", dataOf(body)["user_store"])
	assert.Equal(t, "ok", dataOf(body)["service_store"])
}

func TestHealthzReportsFailingStore(t *testing.T) {
	faulty := &storetest.Faulty{Backend: storetest.NewSQLite(t), Fail: map[string]error{"ping": assert.AnError}}
	env := newTestEnvWith(t, faulty, middleware.Options{})
	code, body := env.do(t, requestSpec{method: http.MethodGet, registerPath: "/healthz", requestPath: "/healthz", handler: Healthz})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Backend unavailable", body["msg"])
}
