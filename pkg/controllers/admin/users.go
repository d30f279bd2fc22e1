package admin

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListUsers returns all users, optionally filtered by role.
func ListUsers(c *gin.Context) {
	query := database.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		if !models.IsValidRole(role) {
			utils.ValidationErrorResponse(c, "Invalid role", map[string]string{"role": "unknown role"})
			return
		}
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch users")
		return
	}

	utils.OKResponse(c, users)
}

// DeleteUser removes a user. Profiles and shift/call records go with the
// user; orders they delivered survive with the delivery person detached,
// orders they placed are removed.
func DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid user id", nil)
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Detach from orders they were delivering before the row goes.
		if err := tx.Model(&models.Order{}).
			Where("delivery_person_id = ?", user.ID).
			Update("delivery_person_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Feedback{}).
			Where("delivery_personnel_id = ?", user.ID).
			Update("delivery_personnel_id", nil).Error; err != nil {
			return err
		}

		// Their own order history and feedback.
		if err := tx.Where("customer_id = ?", user.ID).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		var orderIDs []int
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", user.ID).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.ProofOfDelivery{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		// Profiles and shift records.
		if err := tx.Where("waiter_id = ?", user.ID).Delete(&models.ClockInRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.DeliveryPersonnelProfile{}).Error; err != nil {
			return err
		}
		var reception models.ReceptionistProfile
		if err := tx.Where("user_id = ?", user.ID).First(&reception).Error; err == nil {
			if err := tx.Where("receptionist_id = ?", reception.ID).Delete(&models.ShiftRoster{}).Error; err != nil {
				return err
			}
			if err := tx.Where("receptionist_id = ?", reception.ID).Delete(&models.CRMCallLog{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&reception).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.OnsiteCustomerProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.OnlineCustomerProfile{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})

	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to delete user")
		return
	}

	utils.OKResponse(c, gin.H{"message": "User deleted"})
}
