package routes

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/controllers/auth"
	"backend_savanna/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes wires signup, token issuance and account security endpoints.
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/auth/signup/", auth.CustomerSignup)
	router.POST("/token/", auth.IssueToken)

	authed := router.Group("/auth")
	authed.Use(middleware.AuthenticateToken())
	{
		authed.GET("/me/", auth.Me)
		authed.POST("/signout/", auth.SignOut)
	}

	twoFactor := router.Group("/auth/2fa")
	twoFactor.Use(middleware.AuthenticateToken(), middleware.RequireOperation(authz.OpTwoFactor))
	{
		twoFactor.POST("/setup/", auth.Generate2FASetup)
		twoFactor.POST("/enable/", auth.Enable2FA)
		twoFactor.POST("/disable/", auth.Disable2FA)
	}
}
