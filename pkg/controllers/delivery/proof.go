package delivery

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/services"
	"backend_savanna/pkg/utils"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UploadProof attaches proof of delivery to an assigned order. Multipart
// form: "image" file plus optional "notes". Re-uploading replaces the
// existing proof; the order keeps exactly one.
func UploadProof(c *gin.Context) {
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

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ValidationErrorResponse(c, "image file is required", map[string]string{"image": "required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to read image")
		return
	}

	if services.Store == nil {
		utils.InternalServerErrorResponse(c, "Object storage is not configured")
		return
	}

	imageURL, err := services.Store.Upload(c.Request.Context(), data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to store image")
		return
	}

	notes := c.PostForm("notes")

	var proof models.ProofOfDelivery
	err = database.DB.Where("order_id = ?", order.ID).First(&proof).Error
	if err == nil {
		oldURL := proof.ImageURL
		if err := database.DB.Model(&proof).Updates(map[string]interface{}{
			"image_url": imageURL,
			"notes":     notes,
		}).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to save proof")
			return
		}
		// Replaced proof: best-effort cleanup of the old object.
		services.Store.Delete(c.Request.Context(), oldURL)
	} else {
		proof = models.ProofOfDelivery{
			OrderID:  order.ID,
			ImageURL: imageURL,
			Notes:    notes,
		}
		if err := database.DB.Create(&proof).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to save proof")
			return
		}
	}

	utils.OKResponse(c, gin.H{
		"message":   "Proof uploaded successfully",
		"image_url": imageURL,
	})
}
