package admin

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListOrders returns every order, newest first.
func ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := database.DB.
		Preload("Meal").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch orders")
		return
	}

	utils.OKResponse(c, orders)
}

// SetOrderStatus advances an order through its lifecycle. Illegal
// transitions are rejected; there is no free-form status write.
func SetOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid order id", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "status is required", map[string]string{"status": "required"})
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		utils.ValidationErrorResponse(c, "Unknown order status", map[string]string{"status": "unknown status"})
		return
	}
	next := models.OrderStatus(req.Status)

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		utils.NotFoundResponse(c, "Order not found")
		return
	}

	if !order.Status.CanTransitionTo(next) {
		utils.InvalidStateResponse(c, "Cannot transition order from "+string(order.Status)+" to "+string(next))
		return
	}

	if err := database.DB.Model(&order).Update("status", next).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to update order")
		return
	}

	utils.OKResponse(c, gin.H{
		"message": "Order status updated",
		"status":  next,
	})
}

// AssignDeliveryPerson sets the delivery person on an order. The
// assignee must hold the delivery role.
func AssignDeliveryPerson(c *gin.Context) {
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

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		utils.NotFoundResponse(c, "Order not found")
		return
	}

	if order.Status.IsTerminal() {
		utils.InvalidStateResponse(c, "Cannot assign delivery person to a "+string(order.Status)+" order")
		return
	}

	var assignee models.User
	if err := database.DB.Where("id = ? AND role = ?", req.DeliveryPersonID, models.RoleDelivery).First(&assignee).Error; err != nil {
		utils.NotFoundResponse(c, "Delivery person not found")
		return
	}

	if err := database.DB.Model(&order).Update("delivery_person_id", assignee.ID).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to assign delivery person")
		return
	}

	utils.OKResponse(c, gin.H{"message": "Delivery person assigned"})
}
