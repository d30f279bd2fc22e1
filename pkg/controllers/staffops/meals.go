package staffops

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SetAvailability updates a meal's availability flag.
func SetAvailability(c *gin.Context) {
	mealID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid meal id", nil)
		return
	}

	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "is_available is required", map[string]string{"is_available": "required"})
		return
	}

	var meal models.Meal
	if err := database.DB.First(&meal, mealID).Error; err != nil {
		utils.NotFoundResponse(c, "Meal not found")
		return
	}

	if err := database.DB.Model(&meal).Update("is_available", *req.IsAvailable).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to update availability")
		return
	}

	utils.OKResponse(c, gin.H{
		"message":      "Availability updated",
		"is_available": *req.IsAvailable,
	})
}

// Dashboard lists every meal with its average rating and the most recent
// non-empty comments.
func Dashboard(c *gin.Context) {
	var meals []models.Meal
	if err := database.DB.Order("created_at DESC").Find(&meals).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch meals")
		return
	}

	data := make([]gin.H, 0, len(meals))
	for _, meal := range meals {
		avg, comments, err := mealFeedbackSummary(meal.ID, 3)
		if err != nil {
			utils.InternalServerErrorResponse(c, "Failed to fetch feedback")
			return
		}
		data = append(data, gin.H{
			"id":             meal.ID,
			"name":           meal.Name,
			"description":    meal.Description,
			"price":          meal.Price,
			"average_rating": avg,
			"top_feedback":   comments,
		})
	}

	utils.OKResponse(c, data)
}

// mealFeedbackSummary returns the 2-decimal mean rating (nil when the
// meal has no feedback) and up to limit most recent non-empty comments.
func mealFeedbackSummary(mealID, limit int) (*float64, []string, error) {
	var feedbacks []models.Feedback
	if err := database.DB.
		Where("meal_id = ?", mealID).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		return nil, nil, err
	}

	if len(feedbacks) == 0 {
		return nil, []string{}, nil
	}

	sum := 0
	comments := make([]string, 0, limit)
	for _, f := range feedbacks {
		sum += f.Rating
		if f.Comment != "" && len(comments) < limit {
			comments = append(comments, f.Comment)
		}
	}

	avg := math.Round(float64(sum)/float64(len(feedbacks))*100) / 100
	return &avg, comments, nil
}
