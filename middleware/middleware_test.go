package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/healthghar/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCorsHeadersDefaults(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/test", "")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "session-token")

	w = serve(r, http.MethodOptions, "/test", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := serve(r, http.MethodGet, "/test", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}

func identityRouter(svc *Services) *gin.Engine {
	r := gin.New()
	r.Use(ServicesMiddleware(svc), ResolveIdentity())
	r.GET("/me", echoIdentity)
	r.GET("/admin", RequireRole(model.RoleAdmin), echoIdentity)
	return r
}

func decode(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestResolveIdentity(t *testing.T) {
	svc := newServices(t)
	token := signIn(t, svc, "user@example.com")
	r := identityRouter(svc)

	body := decode(t, serve(r, http.MethodGet, "/me", token).Body.Bytes())
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, model.RoleUser, body["role"])

	body = decode(t, serve(r, http.MethodGet, "/me", "").Body.Bytes())
	assert.Equal(t, false, body["authenticated"])
}

func TestResolveIdentityLeavesBadTokensAnonymous(t *testing.T) {
	buf := captureSecurityLog(t)
	r := identityRouter(newServices(t))

	w := serve(r, http.MethodGet, "/me", "not-a-session")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w.Body.Bytes())["authenticated"])
	assert.Contains(t, buf.String(), "UNAUTHORIZED_ACCESS")
}

func TestResolveIdentityWithoutServices(t *testing.T) {
	r := gin.New()
	r.Use(ResolveIdentity())
	r.GET("/me", echoIdentity)

	w := serve(r, http.MethodGet, "/me", "some-token")
	assert.Equal(t, false, decode(t, w.Body.Bytes())["authenticated"])
}

func TestRequireRole(t *testing.T) {
	captureSecurityLog(t)
	svc, b := newServicesWithBackend(t)
	user := signIn(t, svc, "user@example.com")
	admin := signInAdmin(t, svc, b, "admin@example.com")
	r := identityRouter(svc)

	w := serve(r, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decode(t, w.Body.Bytes())["msg"])

	w = serve(r, http.MethodGet, "/admin", user)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodGet, "/admin", admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.RoleAdmin, decode(t, w.Body.Bytes())["role"])
}

func TestGetServices(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetServices(c)
	assert.False(t, ok)

	svc := newServices(t)
	c.Set(servicesKey, svc)
	got, ok := GetServices(c)
	assert.True(t, ok)
	assert.Same(t, svc, got)
}

func TestMetricsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/metered/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := serve(r, http.MethodGet, "/metered/42", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
}
