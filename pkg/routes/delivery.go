package routes

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/controllers/delivery"
	"backend_savanna/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterDeliveryRoutes wires delivery personnel registration, profile
// management and delivery workflow endpoints.
func RegisterDeliveryRoutes(router *gin.RouterGroup) {
	router.POST("/delivery/register/", delivery.Register)

	authed := router.Group("/delivery")
	authed.Use(middleware.AuthenticateToken(), middleware.RequireOperation(authz.OpDeliveryWork))
	{
		authed.GET("/profile/", delivery.GetProfile)
		authed.PUT("/profile/", delivery.UpdateProfile)
		authed.GET("/orders/", delivery.AssignedOrders)
		authed.POST("/orders/:id/upload-proof/", delivery.UploadProof)
	}

	orders := router.Group("/orders")
	orders.Use(middleware.AuthenticateToken(), middleware.RequireOperation(authz.OpDeliveryWork))
	{
		orders.PATCH("/:id/delivered/", delivery.MarkDelivered)
	}
}
