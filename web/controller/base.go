// Package controller provides the HTTP handlers of the starrep API:
// authentication, user profile, reputation ledger and the Stellar wallet
// and transaction-relay bridge.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starrep/starrep/web/session"
)

// BaseController provides shared plumbing for handlers behind the token
// gate.
type BaseController struct{}

// identity returns the caller's identity, or nil after writing a 401. The
// gate middleware always attaches one; this is the handler-level recheck so
// no protected handler can run identity-less.
func (a *BaseController) identity(c *gin.Context) *session.Identity {
	identity := session.GetIdentity(c)
	if identity == nil {
		jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	return identity
}
