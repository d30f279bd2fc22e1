package routes

import (
	"backend_savanna/pkg/authz"
	"backend_savanna/pkg/controllers/reception"
	"backend_savanna/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterReceptionRoutes wires receptionist management, shift rosters,
// CRM call logs and customer profile administration.
func RegisterReceptionRoutes(router *gin.RouterGroup) {
	crud := middleware.RequireOperation(authz.OpReceptionCRUD)

	receptionists := router.Group("/receptionists")
	receptionists.Use(middleware.AuthenticateToken(), crud)
	{
		receptionists.GET("/", reception.ListReceptionists)
		receptionists.POST("/", reception.CreateReceptionist)
		receptionists.GET("/:id/", reception.GetReceptionist)
		receptionists.PUT("/:id/", reception.UpdateReceptionist)
		receptionists.DELETE("/:id/", reception.DeleteReceptionist)
	}

	rosters := router.Group("/shift-rosters")
	rosters.Use(middleware.AuthenticateToken(), crud)
	{
		rosters.GET("/", reception.ListRosters)
		rosters.POST("/", reception.CreateRoster)
		rosters.GET("/:id/", reception.GetRoster)
		rosters.PUT("/:id/", reception.UpdateRoster)
		rosters.DELETE("/:id/", reception.DeleteRoster)
	}

	calls := router.Group("/crm-calls")
	calls.Use(middleware.AuthenticateToken(), crud)
	{
		calls.GET("/", reception.ListCallLogs)
		calls.POST("/", reception.CreateCallLog)
		calls.GET("/:id/", reception.GetCallLog)
		calls.PUT("/:id/", reception.UpdateCallLog)
		calls.DELETE("/:id/", reception.DeleteCallLog)
	}

	profiles := middleware.RequireOperation(authz.OpCustomerProfiles)

	onsite := router.Group("/onsite-customers")
	onsite.Use(middleware.AuthenticateToken(), profiles)
	{
		onsite.GET("/", reception.ListOnsiteCustomers)
		onsite.GET("/:id/", reception.GetOnsiteCustomer)
		onsite.PUT("/:id/", reception.UpdateOnsiteCustomer)
	}

	online := router.Group("/online-customers")
	online.Use(middleware.AuthenticateToken(), profiles)
	{
		online.GET("/", reception.ListOnlineCustomers)
		online.GET("/:id/", reception.GetOnlineCustomer)
		online.PUT("/:id/", reception.UpdateOnlineCustomer)
	}
}
