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

// scopedCallLogs applies the same capability set as the other two
// reception collections.
func scopedCallLogs(user models.User) *gorm.DB {
	switch authz.ReceptionScope(user.Role) {
	case authz.ScopeAll:
		return database.DB.Model(&models.CRMCallLog{})
	case authz.ScopeOwn:
		return database.DB.Model(&models.CRMCallLog{}).
			Joins("JOIN receptionist_profiles ON receptionist_profiles.id = crm_call_logs.receptionist_id").
			Where("receptionist_profiles.user_id = ?", user.ID)
	default:
		return database.DB.Model(&models.CRMCallLog{}).Where("1 = 0")
	}
}

// ListCallLogs lists CRM call logs visible to the caller.
func ListCallLogs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var logs []models.CRMCallLog
	if err := scopedCallLogs(user).Order("call_time DESC").Find(&logs).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch call logs")
		return
	}

	utils.OKResponse(c, logs)
}

// CreateCallLog records a CRM call.
func CreateCallLog(c *gin.Context) {
	var req struct {
		ReceptionistID int        `json:"receptionistId"`
		CustomerName   string     `json:"customerName" binding:"required"`
		Phone          string     `json:"phone"`
		Notes          string     `json:"notes"`
		Reason         string     `json:"reason"`
		FollowUpDate   *time.Time `json:"followUpDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "customerName is required", map[string]string{"customerName": "required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	receptionistID := req.ReceptionistID
	if authz.ReceptionScope(user.Role) == authz.ScopeOwn {
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

	log := models.CRMCallLog{
		ReceptionistID: receptionistID,
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		CallTime:       time.Now(),
		Notes:          req.Notes,
		Reason:         req.Reason,
		FollowUpDate:   req.FollowUpDate,
	}
	if err := database.DB.Create(&log).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create call log")
		return
	}

	utils.CreatedResponse(c, log)
}

// GetCallLog returns one visible call log.
func GetCallLog(c *gin.Context) {
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

	var log models.CRMCallLog
	if err := scopedCallLogs(user).Where("crm_call_logs.id = ?", id).First(&log).Error; err != nil {
		utils.NotFoundResponse(c, "Call log not found")
		return
	}

	utils.OKResponse(c, log)
}

// UpdateCallLog updates a visible call log.
func UpdateCallLog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	var req struct {
		CustomerName *string    `json:"customerName"`
		Phone        *string    `json:"phone"`
		Notes        *string    `json:"notes"`
		Reason       *string    `json:"reason"`
		FollowUpDate *time.Time `json:"followUpDate"`
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

	var log models.CRMCallLog
	if err := scopedCallLogs(user).Where("crm_call_logs.id = ?", id).First(&log).Error; err != nil {
		utils.NotFoundResponse(c, "Call log not found")
		return
	}

	updates := map[string]interface{}{}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Reason != nil {
		updates["reason"] = *req.Reason
	}
	if req.FollowUpDate != nil {
		updates["follow_up_date"] = *req.FollowUpDate
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&log).Updates(updates).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to update call log")
			return
		}
	}

	utils.OKResponse(c, log)
}

// DeleteCallLog removes a visible call log.
func DeleteCallLog(c *gin.Context) {
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

	var log models.CRMCallLog
	if err := scopedCallLogs(user).Where("crm_call_logs.id = ?", id).First(&log).Error; err != nil {
		utils.NotFoundResponse(c, "Call log not found")
		return
	}

	if err := database.DB.Delete(&log).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to delete call log")
		return
	}

	utils.OKResponse(c, gin.H{"message": "Call log deleted"})
}
