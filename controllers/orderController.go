package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/models"
	"github.com/shadecart/shadecart/utils"
)

const (
	dateLayout = "2006-01-02"

	msgInvalidOrder       = "Order must contain at least one item with a quantity of 1 or more."
	msgFailedToPlaceOrder = "Failed to place order"
	msgFailedToLoadOrders = "Failed to fetch orders"
	msgInvalidDateRange   = "startDate and endDate must be dates in YYYY-MM-DD format"
	msgOrderNotFound      = "Order not found"
	msgInvalidOrderID     = "Invalid order id"
	msgUserIDRequired     = "userId query parameter is required"
)

// CreateOrder stores the posted cart as an order and answers with its bill
// number.
func CreateOrder(ctx *gin.Context) {
	var request models.OrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		initializers.Logger.Debug("invalid order request", zap.Error(err))
		sendAPIError(ctx, http.StatusBadRequest, msgInvalidOrder)
		return
	}

	reqCtx := ctx.Request.Context()
	order := models.Order{
		UserID: currentUserID(ctx),
		Date:   time.Now(),
		Items:  request.Items,
	}

	err := initializers.DB.WithContext(reqCtx).Transaction(func(tx *gorm.DB) error {
		billNo, err := initializers.Bills.Next(reqCtx, tx)
		if err != nil {
			return err
		}
		order.BillNo = billNo
		return tx.Create(&order).Error
	})
	if err != nil {
		initializers.Logger.Error("order creation failed", zap.Uint("user_id", order.UserID), zap.Error(err))
		sendAPIError(ctx, http.StatusInternalServerError, msgFailedToPlaceOrder)
		return
	}

	initializers.Logger.Info("order placed",
		zap.String("billno", order.BillNo),
		zap.Uint("user_id", order.UserID),
		zap.Int("items", len(order.Items)),
	)

	if utils.MailConfigured() {
		go sendOrderReceipt(order)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"billno": order.BillNo})
}

func sendOrderReceipt(order models.Order) {
	var user models.User
	if err := initializers.DB.Select("id", "first_name", "email").First(&user, order.UserID).Error; err != nil {
		initializers.Logger.Warn("receipt skipped, user lookup failed", zap.String("billno", order.BillNo), zap.Error(err))
		return
	}
	if user.Email == "" {
		return
	}

	lines := make([]utils.ReceiptLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, utils.ReceiptLine{Category: item.Category, Color: item.Color, Quantity: item.Quantity})
	}

	err := utils.SendReceiptEmail(user.Email, utils.ReceiptEmailData{
		Name:   user.FirstName,
		BillNo: order.BillNo,
		Date:   order.Date.Format("02 Jan 2006"),
		Lines:  lines,
	})
	if err != nil {
		initializers.Logger.Warn("receipt email failed", zap.String("billno", order.BillNo), zap.Error(err))
	}
}

// parseDateRange reads startDate and endDate. endDate is inclusive, so the
// returned upper bound is the start of the following day.
func parseDateRange(ctx *gin.Context) (from, to time.Time, ok bool) {
	startRaw, endRaw := ctx.Query("startDate"), ctx.Query("endDate")
	now := time.Now()
	to = now.AddDate(0, 0, 1)
	from = now.AddDate(0, -1, 0)

	var err error
	if startRaw != "" {
		if from, err = time.ParseInLocation(dateLayout, startRaw, time.Local); err != nil {
			return from, to, false
		}
	}
	if endRaw != "" {
		if to, err = time.ParseInLocation(dateLayout, endRaw, time.Local); err != nil {
			return from, to, false
		}
		to = to.AddDate(0, 0, 1)
	}
	return from, to, !to.Before(from)
}

// GetMyOrders lists the caller's orders within the requested date range.
func GetMyOrders(ctx *gin.Context) {
	from, to, ok := parseDateRange(ctx)
	if !ok {
		sendAPIError(ctx, http.StatusBadRequest, msgInvalidDateRange)
		return
	}

	var orders []models.Order
	result := initializers.DB.WithContext(ctx.Request.Context()).
		Preload("Items").
		Where("user_id = ? AND date >= ? AND date < ?", currentUserID(ctx), from, to).
		Order("date DESC").
		Find(&orders)
	if result.Error != nil {
		initializers.Logger.Error("failed to fetch orders", zap.Error(result.Error))
		sendAPIError(ctx, http.StatusInternalServerError, msgFailedToLoadOrders)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.WithContext(ctx.Request.Context()).
		Preload("Items").
		Where("status = ?", false).
		Order("date DESC").
		Find(&orders)
	if result.Error != nil {
		initializers.Logger.Error("failed to fetch undelivered orders", zap.Error(result.Error))
		sendAPIError(ctx, http.StatusInternalServerError, msgFailedToLoadOrders)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func MarkOrderDelivered(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "orderId")
	if !ok {
		sendAPIError(ctx, http.StatusBadRequest, msgInvalidOrderID)
		return
	}

	result := initializers.DB.WithContext(ctx.Request.Context()).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", true)
	if result.Error != nil {
		initializers.Logger.Error("failed to mark order delivered", zap.Uint("order_id", orderID), zap.Error(result.Error))
		sendAPIError(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendAPIError(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	initializers.Logger.Info("order delivered", zap.Uint("order_id", orderID))
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order marked as delivered"})
}

func GetOrdersByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("userId"), 10, 64)
	if err != nil || userID == 0 {
		sendAPIError(ctx, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	var orders []models.Order
	result := initializers.DB.WithContext(ctx.Request.Context()).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&orders)
	if result.Error != nil {
		initializers.Logger.Error("failed to fetch user orders", zap.Uint64("user_id", userID), zap.Error(result.Error))
		sendAPIError(ctx, http.StatusInternalServerError, msgFailedToLoadOrders)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}
