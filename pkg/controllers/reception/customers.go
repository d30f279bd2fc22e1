package reception

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Customer profile collections share one scoping rule: front-of-house
// staff see everything, a customer sees only their own profile.

func scopedOnsite(user models.User) *gorm.DB {
	switch authz.CustomerProfileScope(user.Role) {
	case authz.ScopeAll:
		return database.DB.Model(&models.OnsiteCustomerProfile{})
	case authz.ScopeOwn:
		return database.DB.Model(&models.OnsiteCustomerProfile{}).Where("user_id = ?", user.ID)
	default:
		return database.DB.Model(&models.OnsiteCustomerProfile{}).Where("1 = 0")
	}
}

func scopedOnline(user models.User) *gorm.DB {
	switch authz.CustomerProfileScope(user.Role) {
	case authz.ScopeAll:
		return database.DB.Model(&models.OnlineCustomerProfile{})
	case authz.ScopeOwn:
		return database.DB.Model(&models.OnlineCustomerProfile{}).Where("user_id = ?", user.ID)
	default:
		return database.DB.Model(&models.OnlineCustomerProfile{}).Where("1 = 0")
	}
}

// ListOnsiteCustomers lists onsite customer profiles visible to the caller.
func ListOnsiteCustomers(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profiles []models.OnsiteCustomerProfile
	if err := scopedOnsite(user).Find(&profiles).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch profiles")
		return
	}

	utils.OKResponse(c, profiles)
}

// GetOnsiteCustomer returns one visible onsite profile.
func GetOnsiteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profile models.OnsiteCustomerProfile
	if err := scopedOnsite(user).Where("id = ?", id).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Profile not found")
		return
	}

	utils.OKResponse(c, profile)
}

// UpdateOnsiteCustomer updates table number and assigned waiter on a
// visible onsite profile.
func UpdateOnsiteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	var req struct {
		FullName    *string `json:"fullName"`
		TableNumber *string `json:"tableNumber"`
		WaiterID    *int    `json:"waiterId"`
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

	var profile models.OnsiteCustomerProfile
	if err := scopedOnsite(user).Where("id = ?", id).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Profile not found")
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.TableNumber != nil {
		updates["table_number"] = *req.TableNumber
	}
	if req.WaiterID != nil {
		var waiter models.User
		if err := database.DB.Where("id = ? AND role = ?", *req.WaiterID, models.RoleWaiter).First(&waiter).Error; err != nil {
			utils.NotFoundResponse(c, "Waiter not found")
			return
		}
		updates["waiter_id"] = *req.WaiterID
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to update profile")
			return
		}
	}

	utils.OKResponse(c, profile)
}

// ListOnlineCustomers lists online customer profiles visible to the caller.
func ListOnlineCustomers(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profiles []models.OnlineCustomerProfile
	if err := scopedOnline(user).Find(&profiles).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Failed to fetch profiles")
		return
	}

	utils.OKResponse(c, profiles)
}

// GetOnlineCustomer returns one visible online profile.
func GetOnlineCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var profile models.OnlineCustomerProfile
	if err := scopedOnline(user).Where("id = ?", id).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Profile not found")
		return
	}

	utils.OKResponse(c, profile)
}

// UpdateOnlineCustomer updates a visible online profile.
func UpdateOnlineCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid id", nil)
		return
	}

	var req struct {
		FullName *string `json:"fullName"`
		Location *string `json:"location"`
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

	var profile models.OnlineCustomerProfile
	if err := scopedOnline(user).Where("id = ?", id).First(&profile).Error; err != nil {
		utils.NotFoundResponse(c, "Profile not found")
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
			utils.InternalServerErrorResponse(c, "Failed to update profile")
			return
		}
	}

	utils.OKResponse(c, profile)
}
