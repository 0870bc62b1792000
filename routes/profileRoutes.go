package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shadecart/shadecart/controllers"
	"github.com/shadecart/shadecart/middlewares"
)

func ProfileRoutes(server *gin.Engine) {
	api := server.Group("/api", middlewares.RequireAuth())
	{
		api.GET("/profile", controllers.GetProfile)
		api.POST("/profile/family-members", controllers.AddFamilyMember)
		api.POST("/appointments", controllers.CreateAppointment)
		api.GET("/appointments", controllers.GetAppointments)
	}
}
