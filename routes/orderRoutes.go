package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shadecart/shadecart/controllers"
	"github.com/shadecart/shadecart/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.GetMyOrders)
	}
}
