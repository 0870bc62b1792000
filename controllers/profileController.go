package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/models"
)

const msgFamilyMemberAdded = "Family member added successfully"

func GetProfile(ctx *gin.Context) {
	var user models.User
	err := initializers.DB.WithContext(ctx.Request.Context()).
		Preload("FamilyMembers").
		First(&user, currentUserID(ctx)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendAPIError(ctx, http.StatusNotFound, msgUserMissing)
		return
	}
	if err != nil {
		initializers.Logger.Error("failed to fetch profile", zap.Error(err))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func AddFamilyMember(ctx *gin.Context) {
	var member models.FamilyMember
	if err := ctx.ShouldBindJSON(&member); err != nil {
		sendAPIError(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	member.ID = 0
	member.UserID = currentUserID(ctx)

	if err := initializers.DB.WithContext(ctx.Request.Context()).Create(&member).Error; err != nil {
		initializers.Logger.Error("failed to add family member", zap.Error(err))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	initializers.Logger.Info("family member added", zap.Uint("user_id", member.UserID), zap.Uint("member_id", member.ID))
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgFamilyMemberAdded})
}
