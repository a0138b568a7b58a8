package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/metrics"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionTokenHeader carries the session token of a signed-in caller.
const SessionTokenHeader = "session-token"

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization, session-token, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Content-Type", "application/json")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestID tags the request with the incoming X-Request-ID or a new uuid.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// Metrics records request counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
		metrics.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// ResolveIdentity attaches the caller behind the session-token header to the
// request context. It never aborts: operations decide themselves whether an
// identity is required, so a bad token simply leaves the request anonymous.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionTokenHeader)
		if token == "" {
			c.Next()
			return
		}
		svc, ok := GetServices(c)
		if !ok {
			c.Next()
			return
		}

		id, err := svc.Identity.Resolve(c.Request.Context(), token)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindPersistence {
				l := util.Component("middleware")
				l.Error().Err(err).Msg("session lookup failed")
			} else {
				util.LogUnauthorizedAccess("", "", c.ClientIP(), c.Request.URL.Path, apperror.Message(err))
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		c.Set("user_id", id.UserID)
		c.Set("email", id.Email)
		c.Set("role", id.Role)
		c.Next()
	}
}

// GetIdentity returns the caller resolved by ResolveIdentity.
func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	return identity.FromContext(c.Request.Context())
}

// RequireRole rejects callers without one of roles. It runs after
// ResolveIdentity.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			util.LogUnauthorizedAccess("", "", c.ClientIP(), c.Request.URL.Path, "no session")
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Unauthorized",
				Err: apperror.Unauthenticated("Unauthorized"),
			})
			c.Abort()
			return
		}
		if !util.Contains(id.Role, roles) {
			util.LogForbiddenAccess(id.UserID, id.Email, c.ClientIP(), c.Request.URL.Path)
			util.CallForbidden(c, util.APIErrorParams{
				Msg: "Forbidden",
				Err: apperror.Forbidden("insufficient role"),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
