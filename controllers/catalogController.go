package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/models"
)

// GetCatalog lists every category with its shade chart.
func GetCatalog(ctx *gin.Context) {
	var categories []models.Category
	result := initializers.DB.WithContext(ctx.Request.Context()).
		Order("id").
		Find(&categories)
	if result.Error != nil {
		initializers.Logger.Error("failed to fetch catalog", zap.Error(result.Error))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}
