package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/models"
)

const defaultAppointmentReason = "General Consultation"

func CreateAppointment(ctx *gin.Context) {
	var appointment models.Appointment
	if err := ctx.ShouldBindJSON(&appointment); err != nil {
		sendAPIError(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	appointment.ID = 0
	appointment.UserID = currentUserID(ctx)
	if strings.TrimSpace(appointment.Reason) == "" {
		appointment.Reason = defaultAppointmentReason
	}

	if err := initializers.DB.WithContext(ctx.Request.Context()).Create(&appointment).Error; err != nil {
		initializers.Logger.Error("failed to book appointment", zap.Error(err))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, appointment)
}

func GetAppointments(ctx *gin.Context) {
	var appointments []models.Appointment
	result := initializers.DB.WithContext(ctx.Request.Context()).
		Where("user_id = ?", currentUserID(ctx)).
		Order("date DESC").
		Find(&appointments)
	if result.Error != nil {
		initializers.Logger.Error("failed to fetch appointments", zap.Error(result.Error))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, appointments)
}
