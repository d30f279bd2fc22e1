package customer

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmitFeedback records rating, tip, and comment for one of the
// caller's delivered orders. The unique index on order_id guarantees at
// most one feedback per order even under concurrent submissions; tips
// are credited to the assigned delivery person's profile in the same
// transaction.
func SubmitFeedback(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid order id", nil)
		return
	}

	var req struct {
		Rating  int     `json:"rating" binding:"required"`
		Tip     float64 `json:"tip"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "rating is required", map[string]string{"rating": "required"})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		utils.ValidationErrorResponse(c, "Rating must be between 1 and 5", map[string]string{"rating": "must be between 1 and 5"})
		return
	}
	if req.Tip < 0 {
		utils.ValidationErrorResponse(c, "Tip cannot be negative", map[string]string{"tip": "must be >= 0"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var order models.Order
	if err := database.DB.Where("id = ? AND customer_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		utils.NotFoundResponse(c, "Order not found")
		return
	}

	if order.Status != models.OrderStatusDelivered {
		utils.InvalidStateResponse(c, "Cannot leave feedback until order is delivered")
		return
	}

	feedback := models.Feedback{
		OrderID:             order.ID,
		MealID:              order.MealID,
		CustomerID:          user.ID,
		Rating:              req.Rating,
		Tip:                 req.Tip,
		Comment:             req.Comment,
		DeliveryPersonnelID: order.DeliveryPersonID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&feedback).Error; err != nil {
			return err
		}
		if order.DeliveryPersonID != nil && req.Tip > 0 {
			return tx.Model(&models.DeliveryPersonnelProfile{}).
				Where("user_id = ?", *order.DeliveryPersonID).
				Update("tips_earned", gorm.Expr("tips_earned + ?", req.Tip)).Error
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.InvalidStateResponse(c, "Feedback has already been submitted for this order")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to submit feedback")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     "Feedback submitted successfully",
		"feedback_id": feedback.ID,
	})
}

// MealFeedback lists all feedback for a meal.
func MealFeedback(c *gin.Context) {
	mealID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid meal id", nil)
		return
	}

	var feedbacks []models.Feedback
	if err := database.DB.
		Where("meal_id = ?", mealID).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch feedback")
		return
	}

	utils.OKResponse(c, feedbacks)
}
