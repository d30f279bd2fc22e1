package delivery

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

// Register is open registration for delivery personnel: a user with role
// delivery plus their profile, created in one transaction.
func Register(c *gin.Context) {
	var req struct {
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required"`
		TransportMethod string `json:"transport_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Email and password are required", nil)
		return
	}

	if err := utils.CheckPasswordStrength(req.Password); err != nil {
		utils.ValidationErrorResponse(c, err.Error(), map[string]string{"password": err.Error()})
		return
	}

	transport := models.TransportMethod(req.TransportMethod)
	if transport == "" {
		transport = models.TransportBike
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleDelivery,
		IsActive: true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.DeliveryPersonnelProfile{
			UserID:          user.ID,
			TransportMethod: transport,
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

	utils.CreatedResponse(c, gin.H{"message": "Delivery personnel registered successfully", "id": user.ID})
}

// GetProfile returns the caller's delivery profile.
func GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profile models.DeliveryPersonnelProfile
	if err := database.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Delivery profile not found")
		return
	}

	utils.OKResponse(c, profile)
}

// UpdateProfile updates transport method and current location.
func UpdateProfile(c *gin.Context) {
	var req struct {
		TransportMethod *string `json:"transport_method"`
		CurrentLocation *string `json:"current_location"`
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

	var profile models.DeliveryPersonnelProfile
	if err := database.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Delivery profile not found")
		return
	}

	updates := map[string]interface{}{}
	if req.TransportMethod != nil {
		updates["transport_method"] = *req.TransportMethod
	}
	if req.CurrentLocation != nil {
		updates["current_location"] = *req.CurrentLocation
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to update profile")
			return
		}
	}

	utils.OKResponse(c, profile)
}

// AssignedOrders lists orders assigned to the caller, newest first.
func AssignedOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var orders []models.Order
	if err := database.DB.
		Preload("Meal").
		Where("delivery_person_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch orders")
		return
	}

	utils.OKResponse(c, orders)
}

// MarkDelivered marks an assigned order delivered. The order must be in
// a state the lifecycle allows to reach delivered.
func MarkDelivered(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid order id", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var order models.Order
	if err := database.DB.Where("id = ? AND delivery_person_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		utils.NotFoundResponse(c, "Order not found or not assigned to you")
		return
	}

	if !order.Status.CanTransitionTo(models.OrderStatusDelivered) {
		utils.InvalidStateResponse(c, "Order cannot be delivered from status "+string(order.Status))
		return
	}

	if err := database.DB.Model(&order).Update("status", models.OrderStatusDelivered).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to update order")
		return
	}

	utils.OKResponse(c, gin.H{"message": "Order marked as delivered"})
}
