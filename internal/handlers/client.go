package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/logger"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/services"
	"github.com/orderdesk-dev/orderdesk/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type ConfirmOrderRequest struct {
	Description string `json:"description"`
}

type ChangeProfileRequest struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Organization    string `json:"organization"`
	PhoneNumber     string `json:"phone_number"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8"`
}

// ClientIndex lists the caller's own orders.
func ClientIndex(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orders, err := services.NewOrderService(db.DB).ListForClient(userID, pageQuery(ctx))

	if err != nil {
		logger.Log.Error("list client orders", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ConfirmOrder converts the session cart into a persisted order and clears
// the cart.
func ConfirmOrder(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ConfirmOrderRequest
	// body is optional; an empty payload confirms the cart as-is
	_ = ctx.ShouldBindJSON(&body)

	current, ok := sessionCart(ctx)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	orderService := services.NewOrderService(db.DB)

	order, err := orderService.Confirm(userID, current, body.Description)

	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		logger.Log.Error("confirm order", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm order"})
		return
	}

	clearCartSession(ctx)

	detail, err := orderService.Detail(order.ID, 1)
	if err == nil {
		go notifier().OrderConfirmed(*order, detail.Order)
		ctx.JSON(http.StatusCreated, gin.H{"order": detail.Order})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"order": gin.H{"id": order.ID}})
}

// ClientGetOrder shows one of the caller's own orders.
func ClientGetOrder(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orderID, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := services.NewOrderService(db.DB).Detail(orderID, pageQuery(ctx))

	if err != nil {
		logger.Log.Error("order detail", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	if !detail.Found || detail.Order.ClientID != userID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order":    detail.Order,
		"comments": detail.Comments,
		"statuses": detail.Statuses,
	})
}

func Profile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, userID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"address":      user.Address,
		"organization": user.Organization,
		"phone_number": user.PhoneNumber,
	}})
}

// GetCartInfo mirrors GetShoppingCart for the authenticated client area.
func GetCartInfo(ctx *gin.Context) {
	GetShoppingCart(ctx)
}

func ChangeProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dbUser models.User
	if err := db.DB.First(&dbUser, userID).Error; err != nil {
		logger.Log.Error("fetch user", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var body ChangeProfileRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if body.Name != "" {
		updates["name"] = strings.TrimSpace(body.Name)
	}
	if body.Address != "" {
		updates["address"] = body.Address
	}
	if body.Organization != "" {
		updates["organization"] = body.Organization
	}
	if body.PhoneNumber != "" {
		updates["phone_number"] = body.PhoneNumber
	}

	if body.NewPassword != "" {
		if body.CurrentPassword == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is required to change password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(body.CurrentPassword)); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Error("hash password", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		updates["password_hash"] = string(hash)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := db.DB.Model(&dbUser).Updates(updates).Error; err != nil {
		logger.Log.Error("update profile", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
