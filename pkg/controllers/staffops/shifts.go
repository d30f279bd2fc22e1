package staffops

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClockIn opens a shift for the authenticated waiter. The partial unique
// index on open records rejects a second clock-in, so two concurrent
// requests cannot both succeed.
func ClockIn(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	record := models.ClockInRecord{
		WaiterID:    user.ID,
		ClockInTime: time.Now(),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.InvalidStateResponse(c, "Already clocked in. Please clock out first.")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to clock in")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":       "Clock-in successful",
		"record_id":     record.ID,
		"clock_in_time": record.ClockInTime,
	})
}

// ClockOut closes the waiter's open shift. Shifts left open past the cap
// are closed at clock_in + 12h by the model's save hook.
func ClockOut(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var record models.ClockInRecord
	if err := database.DB.
		Where("waiter_id = ? AND clock_out_time IS NULL", user.ID).
		First(&record).Error; err != nil {
		utils.InvalidStateResponse(c, "No active shift to clock out from")
		return
	}

	now := time.Now()
	if now.Sub(record.ClockInTime) <= models.MaxShiftDuration {
		record.ClockOutTime = &now
	}
	// An overlong shift keeps a nil clock-out here; BeforeSave caps it.
	if err := database.DB.Save(&record).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to clock out")
		return
	}

	utils.OKResponse(c, gin.H{
		"message":        "Clock-out successful",
		"clock_out_time": record.ClockOutTime,
	})
}

// CurrentShift returns the waiter's open shift, if any.
func CurrentShift(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var records []models.ClockInRecord
	if err := database.DB.
		Where("waiter_id = ? AND clock_out_time IS NULL", user.ID).
		Find(&records).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch shifts")
		return
	}

	utils.OKResponse(c, records)
}
