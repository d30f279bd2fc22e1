package routes

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/controllers/admin"
	"backend_savanna/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes wires reporting, order management, catalog management
// and user administration.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	group := router.Group("/admin")
	group.Use(middleware.AuthenticateToken())
	{
		group.GET("/stats/", middleware.RequireOperation(authz.OpAdminStats), admin.Stats)
		group.GET("/reports/", middleware.RequireOperation(authz.OpAdminReports), admin.RoleReport)

		orders := group.Group("/orders", middleware.RequireOperation(authz.OpManageOrders))
		{
			orders.GET("/", admin.ListOrders)
			orders.PATCH("/:id/status/", admin.SetOrderStatus)
			orders.PATCH("/:id/delivery-person/", admin.AssignDeliveryPerson)
		}

		meals := group.Group("/meals", middleware.RequireOperation(authz.OpManageMeals))
		{
			meals.GET("/", admin.ListMeals)
			meals.POST("/", admin.CreateMeal)
			meals.PUT("/:id/", admin.UpdateMeal)
			meals.DELETE("/:id/", admin.DeleteMeal)
		}

		users := group.Group("/users", middleware.RequireOperation(authz.OpManageUsers))
		{
			users.GET("/", admin.ListUsers)
			users.DELETE("/:id/", admin.DeleteUser)
		}
	}
}
