package middleware

import (
	"errors"
	"strings"

	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	ContextActorID    = "actor_id"
	ContextActorEmail = "actor_email"
	ContextAdminRole  = "admin_role"
)

// BearerToken extracts the token from the Authorization header.
// Returns "" when the header is missing or not Bearer-shaped.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AdminRequired verifies that the caller is an active admin on every
// request. A user not found behind a valid token is reported the same
// way as a bad token so the endpoint does not leak account existence.
func AdminRequired(guard *services.AuthGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := guard.VerifyAdmin(BearerToken(c))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoToken):
				response.Unauthorized(c, "No token provided")
			case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrProfileNotFound):
				response.Unauthorized(c, "Invalid token")
			case errors.Is(err, services.ErrUnauthorized):
				response.Forbidden(c, "Unauthorized")
			default:
				response.ServerError(c, err.Error())
			}
			c.Abort()
			return
		}

		c.Set(ContextActorID, admin.ID)
		c.Set(ContextActorEmail, admin.Email)
		if admin.AdminRole != nil {
			c.Set(ContextAdminRole, *admin.AdminRole)
		}

		c.Next()
	}
}

// GetActorID gets the acting admin's user ID from context
func GetActorID(c *gin.Context) string {
	if id, exists := c.Get(ContextActorID); exists {
		return id.(string)
	}
	return ""
}

// GetActorEmail gets the acting admin's email from context
func GetActorEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextActorEmail); exists {
		return email.(string)
	}
	return ""
}
