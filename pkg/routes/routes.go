package routes

import "github.com/gin-gonic/gin"

// Register mounts every API route group under the given group.
func Register(api *gin.RouterGroup) {
	RegisterAuthRoutes(api)
	RegisterCustomerRoutes(api)
	RegisterStaffRoutes(api)
	RegisterDeliveryRoutes(api)
	RegisterReceptionRoutes(api)
	RegisterAdminRoutes(api)
}
