package customer

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PublicMenu lists available meals, most recently added first. No auth.
func PublicMenu(c *gin.Context) {
	var meals []models.Meal
	if err := database.DB.
		Where("is_available = ?", true).
		Order("created_at DESC").
		Find(&meals).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch menu")
		return
	}

	utils.OKResponse(c, meals)
}
