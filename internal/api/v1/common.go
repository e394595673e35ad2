package v1

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/types"
)

// fail hands err to the error middleware along with the page the client should return to
func fail(c *gin.Context, err error, redirectTarget string) {
	c.Set(types.GinKeyRedirectTarget, redirectTarget)
	_ = c.Error(err)
}

// bindFailed reports a request body gin could not decode
func bindFailed(c *gin.Context, err error, redirectTarget string) {
	fail(c, ierr.WithError(err).
		WithHint("Invalid request format").
		Mark(ierr.ErrValidation), redirectTarget)
}

func respond(c *gin.Context, status int, result *types.Result) {
	result.RedirectTarget = types.ResolveRedirectTarget(result.RedirectTarget, c.GetHeader(types.HeaderReferer))
	c.JSON(status, result)
}

// caller is the identity the auth middleware attached to the request
func caller(c *gin.Context) types.Caller {
	return types.CallerFromContext(c.Request.Context())
}
