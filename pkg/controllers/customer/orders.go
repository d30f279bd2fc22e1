package customer

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PlaceOrder creates a pending order for the authenticated customer.
// Online customers get delivery orders, onsite customers pickup orders.
func PlaceOrder(c *gin.Context) {
	var req struct {
		MealID int `json:"meal_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "meal_id is required", map[string]string{"meal_id": "required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var meal models.Meal
	if err := database.DB.First(&meal, req.MealID).Error; err != nil {
		utils.NotFoundResponse(c, "Meal not found")
		return
	}

	order := models.Order{
		CustomerID: user.ID,
		MealID:     meal.ID,
		Status:     models.OrderStatusPending,
		IsDelivery: user.Role == models.RoleOnlineCustomer,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to place order")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  "Order placed successfully",
		"order_id": order.ID,
	})
}

// MyOrders lists the caller's orders, newest first.
func MyOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var orders []models.Order
	if err := database.DB.
		Preload("Meal").
		Preload("Feedback").
		Where("customer_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch orders")
		return
	}

	data := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		tip := 0.0
		if o.Feedback != nil {
			tip = o.Feedback.Tip
		}
		data = append(data, gin.H{
			"id":          o.ID,
			"meal":        o.Meal.Name,
			"status":      o.Status,
			"is_delivery": o.IsDelivery,
			"created_at":  o.CreatedAt,
			"tip":         tip,
		})
	}

	utils.OKResponse(c, data)
}

// ChangeDeliveryPerson reassigns the delivery person on one of the
// caller's orders. Only permitted while the order is still pending.
func ChangeDeliveryPerson(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid order id", nil)
		return
	}

	var req struct {
		DeliveryPersonID int `json:"delivery_person_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "delivery_person_id is required", map[string]string{"delivery_person_id": "required"})
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

	if order.Status != models.OrderStatusPending {
		utils.InvalidStateResponse(c, "Delivery person can only be changed while the order is pending")
		return
	}

	var newDelivery models.User
	if err := database.DB.Where("id = ? AND role = ?", req.DeliveryPersonID, models.RoleDelivery).First(&newDelivery).Error; err != nil {
		utils.NotFoundResponse(c, "New delivery person not found")
		return
	}

	if err := database.DB.Model(&order).Update("delivery_person_id", newDelivery.ID).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to update delivery person")
		return
	}

	utils.OKResponse(c, gin.H{"message": "Delivery person updated successfully"})
}
