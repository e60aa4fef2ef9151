package mw

import "github.com/gin-gonic/gin"

// OwnerIDHeader carries the opaque owner identity supplied by the upstream
// auth layer. The server trusts it as-is; validating it is not our job.
const OwnerIDHeader = "X-Owner-Id"

const ownerIDKey = "ownerID"

// OwnerAuth copies the owner identity header into the request context.
// Handlers that need an identity read it back via OwnerID and decide for
// themselves whether its absence is an error.
func OwnerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(OwnerIDHeader); id != "" {
			c.Set(ownerIDKey, id)
		}
		c.Next()
	}
}

// OwnerID returns the caller's owner identity, if one was supplied.
func OwnerID(c *gin.Context) (string, bool) {
	id, ok := c.Get(ownerIDKey)
	if !ok {
		return "", false
	}
	s, _ := id.(string)
	return s, s != ""
}
