package routes

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/controllers/staffops"
	"backend_savanna/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterStaffRoutes wires waiter shift tracking, the waiter dashboard and
// meal availability toggling.
func RegisterStaffRoutes(router *gin.RouterGroup) {
	waiter := router.Group("/waiter")
	waiter.Use(middleware.AuthenticateToken())
	{
		shifts := waiter.Group("", middleware.RequireOperation(authz.OpClockShift))
		{
			shifts.POST("/clock-in/", staffops.ClockIn)
			shifts.POST("/clock-out/", staffops.ClockOut)
			shifts.GET("/shifts/current/", staffops.CurrentShift)
		}
		waiter.GET("/dashboard/", middleware.RequireOperation(authz.OpWaiterDashboard), staffops.Dashboard)
	}

	meals := router.Group("/meals")
	meals.Use(middleware.AuthenticateToken(), middleware.RequireOperation(authz.OpToggleAvailability))
	{
		meals.PATCH("/:id/availability/", staffops.SetAvailability)
	}
}
