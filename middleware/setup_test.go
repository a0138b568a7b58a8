package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/store/storetest"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)
	config.ResetRedisClientForTest()
	util.SetJWTSecret("middleware-test-secret")
	os.Exit(m.Run())
}

func withMockRedis(t *testing.T) redismock.ClientMock {
	t.Helper()
	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() {
		config.ResetRedisClientForTest()
		_ = db.Close()
	})
	return mock
}

// captureSecurityLog routes security events into a buffer for the test.
func captureSecurityLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	util.SetSecurityLoggerForTest(zerolog.New(buf))
	t.Cleanup(func() { util.SetSecurityLoggerForTest(util.Component("security")) })
	return buf
}

func newServices(t *testing.T) *Services {
	svc, _ := newServicesWithBackend(t)
	return svc
}

func newServicesWithBackend(t *testing.T) (*Services, store.Backend) {
	t.Helper()
	b := storetest.NewSQLite(t)
	return NewServices(store.Backends{User: b, Service: b}, Options{}), b
}

// signIn creates a user and returns a session token for them.
func signIn(t *testing.T, svc *Services, email string) string {
	t.Helper()
	ctx := context.Background()
	client := identity.ClientInfo{IP: "127.0.0.1", Agent: "test"}
	_, err := svc.Identity.Signup(ctx, identity.SignupInput{Name: "Test User", Email: email, Password: "password123"}, client)
	require.NoError(t, err)
	return login(t, svc, email)
}

// signInAdmin is signIn for a user promoted to Admin directly in b.
func signInAdmin(t *testing.T, svc *Services, b store.Backend, email string) string {
	t.Helper()
	ctx := context.Background()
	client := identity.ClientInfo{IP: "127.0.0.1", Agent: "test"}
	user, err := svc.Identity.Signup(ctx, identity.SignupInput{Name: "Test User", Email: email, Password: "password123"}, client)
	require.NoError(t, err)
	_, err = b.Update(ctx, &model.User{}, store.Where(store.Eq("id", user.ID)), map[string]interface{}{"role_id": model.RoleAdminID})
	require.NoError(t, err)
	return login(t, svc, email)
}

func login(t *testing.T, svc *Services, email string) string {
	t.Helper()
	res, err := svc.Identity.Login(context.Background(), identity.LoginInput{Email: email, Password: "password123"}, identity.ClientInfo{IP: "127.0.0.1", Agent: "test"})
	require.NoError(t, err)
	return res.Token
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.168.1.100:1234"
	req.Header.Set("User-Agent", "TestAgent/1.0")
	if token != "" {
		req.Header.Set(SessionTokenHeader, token)
	}
	r.ServeHTTP(w, req)
	return w
}

func echoIdentity(c *gin.Context) {
	id, ok := GetIdentity(c)
	c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user_id": id.UserID, "role": id.Role})
}
