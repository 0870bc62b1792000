package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shadecart/shadecart/controllers"
)

func CatalogRoutes(server *gin.Engine) {
	server.GET("/api/catalog", controllers.GetCatalog)
}
