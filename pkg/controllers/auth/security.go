package auth

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Generate2FASetup creates a TOTP secret for the caller and returns the
// provisioning URL. The secret is stored but 2FA stays off until the
// first code is verified through Enable2FA.
func Generate2FASetup(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Savanna Restaurant",
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to generate 2FA secret")
		return
	}

	secret := key.Secret()
	if err := database.DB.Model(&user).Update("two_factor_secret", secret).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to store 2FA secret")
		return
	}

	utils.OKResponse(c, gin.H{
		"secret":     secret,
		"otpauthUrl": key.URL(),
	})
}

// Enable2FA verifies the first TOTP code and turns enforcement on.
func Enable2FA(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Code is required", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	if user.TwoFactorSecret == nil {
		utils.InvalidStateResponse(c, "2FA setup has not been generated")
		return
	}
	if !totp.Validate(req.Code, *user.TwoFactorSecret) {
		utils.ValidationErrorResponse(c, "Invalid two-factor code", map[string]string{"code": "invalid"})
		return
	}

	if err := database.DB.Model(&user).Update("two_factor_enabled", true).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to enable 2FA")
		return
	}

	utils.OKResponse(c, gin.H{"message": "2FA enabled successfully"})
}

// Disable2FA turns enforcement off and discards the secret.
func Disable2FA(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	err := database.DB.Model(&user).Updates(map[string]interface{}{
		"two_factor_enabled": false,
		"two_factor_secret":  nil,
	}).Error
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to disable 2FA")
		return
	}

	utils.OKResponse(c, gin.H{"message": "2FA disabled successfully"})
}
