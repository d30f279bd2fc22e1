package admin

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/services"
	"backend_savanna/pkg/utils"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListMeals returns the full catalog, newest first, availability
// included.
func ListMeals(c *gin.Context) {
	var meals []models.Meal
	if err := database.DB.Order("created_at DESC").Find(&meals).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch meals")
		return
	}

	utils.OKResponse(c, meals)
}

// CreateMeal adds a meal to the catalog. Multipart form; the optional
// "image" file goes to the object store.
func CreateMeal(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		utils.ValidationErrorResponse(c, "name is required", map[string]string{"name": "required"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		utils.ValidationErrorResponse(c, "price must be a non-negative number", map[string]string{"price": "must be >= 0"})
		return
	}

	meal := models.Meal{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		IsAvailable: true,
	}
	if category := c.PostForm("category"); category != "" {
		meal.Category = models.MealCategory(category)
	}

	imageURL, err := uploadMealImage(c)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to store image")
		return
	}
	meal.ImageURL = imageURL

	if err := database.DB.Create(&meal).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create meal")
		return
	}

	utils.CreatedResponse(c, meal)
}

// UpdateMeal edits catalog fields and optionally replaces the image.
func UpdateMeal(c *gin.Context) {
	mealID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid meal id", nil)
		return
	}

	var meal models.Meal
	if err := database.DB.First(&meal, mealID).Error; err != nil {
		utils.NotFoundResponse(c, "Meal not found")
		return
	}

	updates := map[string]interface{}{}
	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
	}
	if description := c.PostForm("description"); description != "" {
		updates["description"] = description
	}
	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			utils.ValidationErrorResponse(c, "price must be a non-negative number", map[string]string{"price": "must be >= 0"})
			return
		}
		updates["price"] = price
	}
	if category := c.PostForm("category"); category != "" {
		updates["category"] = category
	}

	imageURL, err := uploadMealImage(c)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to store image")
		return
	}
	if imageURL != nil {
		if meal.ImageURL != nil && services.Store != nil {
			services.Store.Delete(c.Request.Context(), *meal.ImageURL)
		}
		updates["image_url"] = *imageURL
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&meal).Updates(updates).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to update meal")
			return
		}
	}

	utils.OKResponse(c, meal)
}

// DeleteMeal removes a meal from the catalog.
func DeleteMeal(c *gin.Context) {
	mealID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid meal id", nil)
		return
	}

	var meal models.Meal
	if err := database.DB.First(&meal, mealID).Error; err != nil {
		utils.NotFoundResponse(c, "Meal not found")
		return
	}

	if err := database.DB.Delete(&meal).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to delete meal")
		return
	}

	if meal.ImageURL != nil && services.Store != nil {
		services.Store.Delete(c.Request.Context(), *meal.ImageURL)
	}

	utils.OKResponse(c, gin.H{"message": "Meal deleted"})
}

// uploadMealImage stores the optional "image" form file, returning nil
// when the request has none.
func uploadMealImage(c *gin.Context) (*string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	if services.Store == nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	url, err := services.Store.Upload(c.Request.Context(), data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return &url, nil
}
