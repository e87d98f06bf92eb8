// Package session carries the authenticated identity across a single
// request. The token gate stores the verified claims here and handlers read
// them back; nothing survives the request, auth is fully stateless.
package session

import (
	"github.com/gin-gonic/gin"
)

const loginIdentity = "LOGIN_IDENTITY"

// Identity is the token-derived identity of the requesting user.
type Identity struct {
	Id    int
	Email string
}

func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(loginIdentity, identity)
}

func GetIdentity(c *gin.Context) *Identity {
	if obj, ok := c.Get(loginIdentity); ok {
		if identity, ok := obj.(*Identity); ok {
			return identity
		}
	}
	return nil
}

func IsAuthenticated(c *gin.Context) bool {
	return GetIdentity(c) != nil
}
