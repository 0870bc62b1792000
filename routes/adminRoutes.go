package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shadecart/shadecart/controllers"
	"github.com/shadecart/shadecart/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/api/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/stats", controllers.GetStats)
		admin.GET("/orders/undelivered", controllers.GetUndeliveredOrders)
		admin.PUT("/orders/:orderId/deliver", controllers.MarkOrderDelivered)
		admin.GET("/orders", controllers.GetOrdersByUser)
		admin.GET("/users", controllers.GetUsers)
		admin.GET("/users/:userId", controllers.GetUser)
	}
}
