package auth

import (
	"backend_savanna/pkg/config"
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"
)

// CustomerSignup registers an onsite or online customer along with the
// matching profile.
func CustomerSignup(c *gin.Context) {
	var req struct {
		Email          string  `json:"email" binding:"required,email"`
		Password       string  `json:"password" binding:"required"`
		RetypePassword string  `json:"retypePassword" binding:"required"`
		FirstName      string  `json:"firstName"`
		LastName       string  `json:"lastName"`
		Role           string  `json:"role" binding:"required"`
		FullName       string  `json:"fullName"`
		Gender         string  `json:"gender"`
		TableNumber    string  `json:"tableNumber"`
		Location       string  `json:"location"`
		Birthday       *string `json:"birthday"` // YYYY-MM-DD
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Email, password, retype password, and role are required", nil)
		return
	}

	if req.Password != req.RetypePassword {
		utils.ValidationErrorResponse(c, "Passwords do not match", map[string]string{"retypePassword": "does not match password"})
		return
	}
	if err := utils.CheckPasswordStrength(req.Password); err != nil {
		utils.ValidationErrorResponse(c, err.Error(), map[string]string{"password": err.Error()})
		return
	}

	role := models.Role(req.Role)
	if !role.IsCustomer() {
		utils.ValidationErrorResponse(c, "Role must be onsite_customer or online_customer", map[string]string{"role": "unsupported role"})
		return
	}

	var birthday *time.Time
	if req.Birthday != nil && *req.Birthday != "" {
		parsed, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			utils.ValidationErrorResponse(c, "Birthday must be YYYY-MM-DD", map[string]string{"birthday": "invalid date"})
			return
		}
		birthday = &parsed
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = req.FirstName + " " + req.LastName
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		IsActive:  true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if role == models.RoleOnsiteCustomer {
			profile := models.OnsiteCustomerProfile{
				UserID:      user.ID,
				FullName:    fullName,
				Gender:      models.Gender(req.Gender),
				TableNumber: req.TableNumber,
			}
			return tx.Create(&profile).Error
		}

		profile := models.OnlineCustomerProfile{
			UserID:   user.ID,
			FullName: fullName,
			Gender:   models.Gender(req.Gender),
			Location: req.Location,
			Birthday: birthday,
		}
		return tx.Create(&profile).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.ValidationErrorResponse(c, "User already exists", map[string]string{"email": "already registered"})
			return
		}
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	setTokenCookie(c, token)

	utils.CreatedResponse(c, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// IssueToken authenticates (email, password) and returns a bearer token.
// Accounts with 2FA enabled must also supply a valid TOTP code.
func IssueToken(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		TOTPCode string `json:"totpCode"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Email and password are required", nil)
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.UnauthorizedResponse(c, "Invalid email or password")
		return
	}

	if err := utils.ComparePassword(user.Password, req.Password); err != nil {
		utils.UnauthorizedResponse(c, "Invalid email or password")
		return
	}

	if !user.IsActive {
		utils.ForbiddenResponse(c, "Account is deactivated")
		return
	}

	if user.TwoFactorEnabled {
		if user.TwoFactorSecret == nil || !totp.Validate(req.TOTPCode, *user.TwoFactorSecret) {
			utils.UnauthorizedResponse(c, "Valid two-factor code required")
			return
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	setTokenCookie(c, token)

	utils.OKResponse(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Me returns the authenticated caller.
func Me(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}
	utils.OKResponse(c, userInterface)
}

// SignOut clears the token cookie.
func SignOut(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", config.AppConfig.CookieSecure == "true", true)
	utils.OKResponse(c, gin.H{"message": "Signed out successfully"})
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(
		"token",
		token,
		7*24*60*60,
		"/",
		"",
		config.AppConfig.CookieSecure == "true",
		true, // httpOnly
	)
}
