package endpoint

import (
	"fmt"

	"github.com/ariebrainware/healthghar/admin"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/middleware"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
)

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getServicesOrRespond(c *gin.Context) (*middleware.Services, bool) {
	svc, ok := middleware.GetServices(c)
	if !ok {
		util.CallServerError(c, util.APIErrorParams{Msg: "Services not available", Err: fmt.Errorf("services missing from context")})
		return nil, false
	}
	return svc, true
}

// grantOrRespond turns the caller into an admin capability.
func grantOrRespond(c *gin.Context, svc *middleware.Services) (admin.Capability, bool) {
	capability, err := svc.Authority.Grant(c.Request.Context())
	if err != nil {
		id, _ := middleware.GetIdentity(c)
		util.LogForbiddenAccess(id.UserID, id.Email, c.ClientIP(), c.Request.URL.Path)
		util.CallAppError(c, err)
		return admin.Capability{}, false
	}
	return capability, true
}

func clientOf(c *gin.Context) identity.ClientInfo {
	return identity.ClientInfo{IP: c.ClientIP(), Agent: c.Request.UserAgent()}
}

// requireIdentityOrRespond rejects anonymous callers before the body is
// bound, so they see 401 whatever they sent.
func requireIdentityOrRespond(c *gin.Context) bool {
	if _, ok := middleware.GetIdentity(c); !ok {
		util.CallAppError(c, identity.ErrNotAuthenticated)
		return false
	}
	return true
}
