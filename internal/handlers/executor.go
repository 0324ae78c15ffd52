package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/logger"
	"github.com/orderdesk-dev/orderdesk/internal/services"
	"github.com/orderdesk-dev/orderdesk/internal/utils"
	"go.uber.org/zap"
)

type SubmitCommentRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

type SetStatusRequest struct {
	OrderID  uint `json:"orderId" binding:"required"`
	StatusID uint `json:"statusId" binding:"required"`
}

// ExecutorIndex lists the orders assigned to the caller.
func ExecutorIndex(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orders, err := services.NewOrderService(db.DB).ListForExecutor(userID, pageQuery(ctx))

	if err != nil {
		logger.Log.Error("list executor orders", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ExecutorViewOrder answers the same order aggregate the admin page uses.
func ExecutorViewOrder(ctx *gin.Context) {
	AdminViewOrder(ctx)
}

// SubmitComment appends a comment to an order, answering a plain JSON bool.
func SubmitComment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body SubmitCommentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusOK, false)
		return
	}

	submitted, err := services.NewOrderService(db.DB).SubmitComment(body.OrderID, userID, body.Text)

	if err != nil {
		logger.Log.Error("submit comment", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit comment"})
		return
	}

	ctx.JSON(http.StatusOK, submitted)
}

// SetStatusOrder moves an order to the given status, answering a plain JSON
// bool.
func SetStatusOrder(ctx *gin.Context) {
	var body SetStatusRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusOK, false)
		return
	}

	updated, err := services.NewOrderService(db.DB).SetStatus(body.OrderID, body.StatusID)

	if err != nil {
		logger.Log.Error("set status", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set status"})
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
