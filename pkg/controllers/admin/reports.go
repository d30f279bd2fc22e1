package admin

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Stats returns the admin dashboard counters.
func Stats(c *gin.Context) {
	var totalUsers int64
	database.DB.Model(&models.User{}).Count(&totalUsers)

	var byRole []struct {
		Role  models.Role
		Count int64
	}
	database.DB.Model(&models.User{}).
		Select("role, COUNT(id) as count").
		Group("role").
		Scan(&byRole)

	usersByRole := make(map[models.Role]int64, len(byRole))
	for _, row := range byRole {
		usersByRole[row.Role] = row.Count
	}

	var totalOrders int64
	database.DB.Model(&models.Order{}).Count(&totalOrders)

	var totalMeals int64
	database.DB.Model(&models.Meal{}).Count(&totalMeals)

	var totalFeedback int64
	database.DB.Model(&models.Feedback{}).Count(&totalFeedback)

	var totalTips float64
	database.DB.Model(&models.Feedback{}).
		Select("COALESCE(SUM(tip), 0)").
		Scan(&totalTips)

	utils.OKResponse(c, gin.H{
		"total_users":    totalUsers,
		"users_by_role":  usersByRole,
		"total_orders":   totalOrders,
		"total_meals":    totalMeals,
		"total_feedback": totalFeedback,
		"total_tips":     fmt.Sprintf("%.2f", totalTips),
	})
}

// RoleReport returns per-user order count and tip total for every user
// of the requested role.
func RoleReport(c *gin.Context) {
	role := c.Query("role")
	if !models.IsValidRole(role) {
		utils.ValidationErrorResponse(c, "Invalid role", map[string]string{"role": "unknown role"})
		return
	}

	var users []models.User
	if err := database.DB.Where("role = ?", role).Find(&users).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch users")
		return
	}

	report := make([]gin.H, 0, len(users))
	for _, user := range users {
		var totalOrders int64
		database.DB.Model(&models.Order{}).Where("customer_id = ?", user.ID).Count(&totalOrders)

		var totalTips float64
		database.DB.Model(&models.Feedback{}).
			Joins("JOIN orders ON orders.id = feedbacks.order_id").
			Where("orders.customer_id = ?", user.ID).
			Select("COALESCE(SUM(feedbacks.tip), 0)").
			Scan(&totalTips)

		report = append(report, gin.H{
			"name":         user.FullName(),
			"email":        user.Email,
			"total_orders": totalOrders,
			"total_tips":   totalTips,
		})
	}

	utils.OKResponse(c, gin.H{
		"role":       role,
		"user_count": len(users),
		"report":     report,
	})
}
