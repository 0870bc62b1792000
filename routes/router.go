package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/middlewares"
)

// corsConfig allows the origins listed in CORS_ORIGINS, or any origin
// without credentials when the variable is empty.
func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	var origins []string
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}

func NewRouter() *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middlewares.RequestLogger(initializers.Logger))
	server.Use(cors.New(corsConfig()))

	DefaultRoutes(server)
	AuthRoutes(server)
	CatalogRoutes(server)
	OrderRoutes(server)
	ProfileRoutes(server)
	AdminRoutes(server)
	return server
}
