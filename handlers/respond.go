package handlers

import (
	"net/http"

	"shelterhub/services/availability"

	"github.com/gin-gonic/gin"
)

// statusForCode maps service error codes onto HTTP statuses. Unknown codes
// (wrapped infrastructure errors without a code) fall back to 500.
func statusForCode(code string) int {
	switch code {
	case availability.CodeInvalidArgument:
		return http.StatusBadRequest
	case availability.CodeNotFound:
		return http.StatusNotFound
	case availability.CodePreconditionFailed:
		return http.StatusPreconditionFailed
	case availability.CodeDependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a service error as a JSON body with the mapped status.
func respondError(c *gin.Context, err error) {
	status := statusForCode(availability.CodeOf(err))
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// orgIDFromContext returns the organization set by the auth middleware.
func orgIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get("orgID")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	orgID, ok := val.(string)
	if !ok || orgID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	return orgID, true
}
