package reception

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ownProfile loads the receptionist profile owned by the given user.
func ownProfile(userID int) (models.ReceptionistProfile, error) {
	var profile models.ReceptionistProfile
	err := database.DB.Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

// scopedProfiles applies the reception capability set to the profile
// collection: admin sees all, receptionist their own row, others none.
func scopedProfiles(user models.User) *gorm.DB {
	switch authz.ReceptionScope(user.Role) {
	case authz.ScopeAll:
		return database.DB.Model(&models.ReceptionistProfile{})
	case authz.ScopeOwn:
		return database.DB.Model(&models.ReceptionistProfile{}).Where("user_id = ?", user.ID)
	default:
		return database.DB.Model(&models.ReceptionistProfile{}).Where("1 = 0")
	}
}

// ListReceptionists lists receptionist profiles visible to the caller.
func ListReceptionists(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profiles []models.ReceptionistProfile
	if err := scopedProfiles(user).Find(&profiles).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch receptionists")
		return
	}

	utils.OKResponse(c, profiles)
}

// CreateReceptionist creates a receptionist profile. Admin only in
// practice: a receptionist already owns exactly one profile.
func CreateReceptionist(c *gin.Context) {
	var req struct {
		UserID   int    `json:"userId" binding:"required"`
		FullName string `json:"fullName" binding:"required"`
		Gender   string `json:"gender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "userId and fullName are required", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	if authz.ReceptionScope(user.Role) != authz.ScopeAll && req.UserID != user.ID {
		utils.ForbiddenResponse(c, "Cannot create a profile for another user")
		return
	}

	var owner models.User
	if err := database.DB.Where("id = ? AND role = ?", req.UserID, models.RoleReceptionist).First(&owner).Error; err != nil {
		utils.NotFoundResponse(c, "Receptionist user not found")
		return
	}

	profile := models.ReceptionistProfile{
		UserID:   req.UserID,
		FullName: req.FullName,
		Gender:   models.Gender(req.Gender),
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create profile")
		return
	}

	utils.CreatedResponse(c, profile)
}

// GetReceptionist returns one visible profile.
func GetReceptionist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profile models.ReceptionistProfile
	if err := scopedProfiles(user).Where("id = ?", id).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Receptionist not found")
		return
	}

	utils.OKResponse(c, profile)
}

// UpdateReceptionist updates a visible profile.
func UpdateReceptionist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	var req struct {
		FullName *string `json:"fullName"`
		Gender   *string `json:"gender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid request body", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profile models.ReceptionistProfile
	if err := scopedProfiles(user).Where("id = ?", id).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Receptionist not found")
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to update profile")
			return
		}
	}

	utils.OKResponse(c, profile)
}

// DeleteReceptionist removes a visible profile and, via cascade, its
// rosters and call logs.
func DeleteReceptionist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profile models.ReceptionistProfile
	if err := scopedProfiles(user).Where("id = ?", id).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Receptionist not found")
		return
	}

	if err := database.DB.Select("ShiftRosters", "CallLogs").Delete(&profile).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to delete profile")
		return
	}

	utils.OKResponse(c, gin.H{"message": "Receptionist deleted"})
}
