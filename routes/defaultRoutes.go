package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shadecart/shadecart/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
