package middleware

import "github.com/gin-gonic/gin"

// actorHeader carries the operator identity stamped into audit fields.
// The service runs without user accounts; clients identify the acting
// operator per request and anything else is attributed to "system".
const actorHeader = "X-Actor"

const defaultActor = "system"

// GetActorFromRequest returns the acting operator for audit stamping.
func GetActorFromRequest(c *gin.Context) string {
	if actor := c.GetHeader(actorHeader); actor != "" {
		return actor
	}
	return defaultActor
}
