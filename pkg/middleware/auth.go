package middleware

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthenticateToken verifies the bearer credential and loads the caller
// into the request context.
func AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		// Cookie first, then Authorization header
		if cookieToken, err := c.Cookie("token"); err == nil && cookieToken != "" {
			token = cookieToken
		}
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					token = parts[1]
				}
			}
		}

		if token == "" {
			utils.UnauthorizedResponse(c, "Access denied. No token provided.")
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or expired token.")
			c.Abort()
			return
		}

		var user models.User
		if err := database.DB.First(&user, claims.ID).Error; err != nil {
			log.Printf("Error fetching user %d: %v", claims.ID, err)
			utils.UnauthorizedResponse(c, "Invalid token. User not found.")
			c.Abort()
			return
		}

		if !user.IsActive {
			utils.ForbiddenResponse(c, "Account is deactivated.")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireOperation authorizes the caller against the authz rule table.
// Must run after AuthenticateToken.
func RequireOperation(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.UnauthorizedResponse(c, "Authentication required.")
			c.Abort()
			return
		}

		if !authz.Allowed(op, user.Role) {
			utils.ForbiddenResponse(c, "Access denied. Insufficient permissions.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthenticateToken.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
