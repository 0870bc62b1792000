package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/models"
)

const (
	recentOrderWindow = 30 * 24 * time.Hour

	msgInvalidUserID = "Invalid user id"
	msgUserMissing   = "User not found"
)

// GetStats reports the number of users and of orders placed in the last 30
// days.
func GetStats(ctx *gin.Context) {
	db := initializers.DB.WithContext(ctx.Request.Context())

	var userCount, recentOrderCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		initializers.Logger.Error("failed to count users", zap.Error(err))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	since := time.Now().Add(-recentOrderWindow)
	if err := db.Model(&models.Order{}).Where("date >= ?", since).Count(&recentOrderCount).Error; err != nil {
		initializers.Logger.Error("failed to count orders", zap.Error(err))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"userCount":        userCount,
		"recentOrderCount": recentOrderCount,
	})
}

func GetUsers(ctx *gin.Context) {
	var users []models.User
	result := initializers.DB.WithContext(ctx.Request.Context()).
		Order("created_at DESC").
		Find(&users)
	if result.Error != nil {
		initializers.Logger.Error("failed to fetch users", zap.Error(result.Error))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func GetUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		sendAPIError(ctx, http.StatusBadRequest, msgInvalidUserID)
		return
	}

	var user models.User
	err := initializers.DB.WithContext(ctx.Request.Context()).
		Preload("FamilyMembers").
		First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendAPIError(ctx, http.StatusNotFound, msgUserMissing)
		return
	}
	if err != nil {
		initializers.Logger.Error("failed to fetch user", zap.Uint("user_id", userID), zap.Error(err))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
