package routes

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/controllers/customer"
	"backend_savanna/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes wires the menu, ordering and feedback endpoints.
func RegisterCustomerRoutes(router *gin.RouterGroup) {
	router.GET("/menu/", customer.PublicMenu)

	meals := router.Group("/meals")
	meals.Use(middleware.AuthenticateToken())
	{
		meals.GET("/:id/feedback/", customer.MealFeedback)
	}

	orders := router.Group("/orders")
	orders.Use(middleware.AuthenticateToken())
	{
		orders.POST("/place/", middleware.RequireOperation(authz.OpPlaceOrder), customer.PlaceOrder)
		orders.GET("/my/", middleware.RequireOperation(authz.OpViewOwnOrders), customer.MyOrders)
		orders.POST("/:id/feedback/", middleware.RequireOperation(authz.OpSubmitFeedback), customer.SubmitFeedback)
		orders.PATCH("/:id/delivery-person/", middleware.RequireOperation(authz.OpChangeDelivery), customer.ChangeDeliveryPerson)
	}

	dashboard := router.Group("/customer")
	dashboard.Use(middleware.AuthenticateToken(), middleware.RequireOperation(authz.OpCustomerDashboard))
	{
		dashboard.GET("/dashboard/", customer.Dashboard)
	}
}
