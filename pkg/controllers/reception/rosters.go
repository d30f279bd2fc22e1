package reception

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// scopedRosters applies the same capability set as the profile
// collection: rosters join to the owning profile's user.
func scopedRosters(user models.User) *gorm.DB {
	switch authz.ReceptionScope(user.Role) {
	case authz.ScopeAll:
		return database.DB.Model(&models.ShiftRoster{})
	case authz.ScopeOwn:
		return database.DB.Model(&models.ShiftRoster{}).
			Joins("JOIN receptionist_profiles ON receptionist_profiles.id = shift_rosters.receptionist_id").
			Where("receptionist_profiles.user_id = ?", user.ID)
	default:
		return database.DB.Model(&models.ShiftRoster{}).Where("1 = 0")
	}
}

// ListRosters lists shift rosters visible to the caller.
func ListRosters(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var rosters []models.ShiftRoster
	if err := scopedRosters(user).Find(&rosters).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch rosters")
		return
	}

	utils.OKResponse(c, rosters)
}

// CreateRoster creates a shift roster entry. shift_end must be after
// shift_start.
func CreateRoster(c *gin.Context) {
	var req struct {
		ReceptionistID int       `json:"receptionistId"`
		ShiftDate      time.Time `json:"shiftDate" binding:"required"`
		ShiftStart     time.Time `json:"shiftStart" binding:"required"`
		ShiftEnd       time.Time `json:"shiftEnd" binding:"required"`
		IsOnDuty       bool      `json:"isOnDuty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "shiftDate, shiftStart, and shiftEnd are required", nil)
		return
	}

	if !req.ShiftEnd.After(req.ShiftStart) {
		utils.ValidationErrorResponse(c, "shiftEnd must be after shiftStart", map[string]string{"shiftEnd": "must be after shiftStart"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	receptionistID := req.ReceptionistID
	if authz.ReceptionScope(user.Role) == authz.ScopeOwn {
		// Receptionists can only roster themselves.
		profile, err := ownProfile(user.ID)
		if err != nil {
			utils.NotFoundResponse(c, "Receptionist profile not found")
			return
		}
		receptionistID = profile.ID
	} else if receptionistID == 0 {
		utils.ValidationErrorResponse(c, "receptionistId is required", map[string]string{"receptionistId": "required"})
		return
	}

	roster := models.ShiftRoster{
		ReceptionistID: receptionistID,
		ShiftDate:      req.ShiftDate,
		ShiftStart:     req.ShiftStart,
		ShiftEnd:       req.ShiftEnd,
		IsOnDuty:       req.IsOnDuty,
	}
	if err := database.DB.Create(&roster).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create roster")
		return
	}

	utils.CreatedResponse(c, roster)
}

// GetRoster returns one visible roster entry.
func GetRoster(c *gin.Context) {
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

	var roster models.ShiftRoster
	if err := scopedRosters(user).Where("shift_rosters.id = ?", id).First(&roster).Error; err != nil {
		utils.NotFoundResponse(c, "Roster not found")
		return
	}

	utils.OKResponse(c, roster)
}

// UpdateRoster updates a visible roster entry.
func UpdateRoster(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	var req struct {
		ShiftDate  *time.Time `json:"shiftDate"`
		ShiftStart *time.Time `json:"shiftStart"`
		ShiftEnd   *time.Time `json:"shiftEnd"`
		IsOnDuty   *bool      `json:"isOnDuty"`
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

	var roster models.ShiftRoster
	if err := scopedRosters(user).Where("shift_rosters.id = ?", id).First(&roster).Error; err != nil {
		utils.NotFoundResponse(c, "Roster not found")
		return
	}

	start := roster.ShiftStart
	end := roster.ShiftEnd
	if req.ShiftStart != nil {
		start = *req.ShiftStart
	}
	if req.ShiftEnd != nil {
		end = *req.ShiftEnd
	}
	if !end.After(start) {
		utils.ValidationErrorResponse(c, "shiftEnd must be after shiftStart", map[string]string{"shiftEnd": "must be after shiftStart"})
		return
	}

	updates := map[string]interface{}{"shift_start": start, "shift_end": end}
	if req.ShiftDate != nil {
		updates["shift_date"] = *req.ShiftDate
	}
	if req.IsOnDuty != nil {
		updates["is_on_duty"] = *req.IsOnDuty
	}
	if err := database.DB.Model(&roster).Updates(updates).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to update roster")
		return
	}

	utils.OKResponse(c, roster)
}

// DeleteRoster removes a visible roster entry.
func DeleteRoster(c *gin.Context) {
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

	var roster models.ShiftRoster
	if err := scopedRosters(user).Where("shift_rosters.id = ?", id).First(&roster).Error; err != nil {
		utils.NotFoundResponse(c, "Roster not found")
		return
	}

	if err := database.DB.Delete(&roster).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to delete roster")
		return
	}

	utils.OKResponse(c, gin.H{"message": "Roster deleted"})
}
