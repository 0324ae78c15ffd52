package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/logger"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/services"
	"go.uber.org/zap"
)

type PostUserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Address      string `json:"address"`
	Organization string `json:"organization"`
	PhoneNumber  string `json:"phone_number"`
}

type RoleChangeRequest struct {
	UserID uint `json:"userId" binding:"required"`
	RoleID uint `json:"roleId" binding:"required"`
}

type AdminDashboard struct {
	Users     int64 `json:"users"`
	Orders    int64 `json:"orders"`
	NewOrders int64 `json:"new_orders"`
	Services  int64 `json:"services"`
}

// AdminIndex answers with dashboard counts.
func AdminIndex(ctx *gin.Context) {
	var dashboard AdminDashboard

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &dashboard.Users},
		{&models.Order{}, &dashboard.Orders},
		{&models.Service{}, &dashboard.Services},
	}

	for _, count := range counts {
		if err := db.DB.Model(count.model).Count(count.dest).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
	}

	err := db.DB.Model(&models.Order{}).
		Where("status_id IS NULL").
		Count(&dashboard.NewOrders).Error
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}

// AdminListOrders answers the filtered, paginated order listing together
// with the dropdown data (statuses, clients, executors).
func AdminListOrders(ctx *gin.Context) {
	filter := services.OrderFilter{
		StatusID:   ctx.Query("statusId"),
		ClientID:   uintQuery(ctx, "clientId"),
		ExecutorID: uintQuery(ctx, "executorId"),
	}

	listing, err := services.NewOrderService(db.DB).List(filter, pageQuery(ctx))

	if err != nil {
		logger.Log.Error("list orders", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	ctx.JSON(http.StatusOK, listing)
}

// AdminViewOrder answers the full order page aggregate. A missing order id
// yields an empty order view, not an error.
func AdminViewOrder(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, detail)
}

// SetExecutor assigns an executor to an order, answering a plain JSON bool.
func SetExecutor(ctx *gin.Context) {
	orderID, ok := uintParam(ctx, "orderId")
	if !ok {
		return
	}
	userID, ok := uintParam(ctx, "userId")
	if !ok {
		return
	}

	assigned, err := services.NewOrderService(db.DB).AssignExecutor(orderID, userID)

	if err != nil {
		if errors.Is(err, models.ErrRoleUnconfigured) {
			ctx.JSON(http.StatusOK, false)
			return
		}
		logger.Log.Error("assign executor", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign executor"})
		return
	}

	ctx.JSON(http.StatusOK, assigned)
}

// RevokeExecutor removes an executor from an order, answering a plain JSON
// bool reflecting whether a row was deleted.
func RevokeExecutor(ctx *gin.Context) {
	orderID, ok := uintParam(ctx, "orderId")
	if !ok {
		return
	}
	userID, ok := uintParam(ctx, "userId")
	if !ok {
		return
	}

	revoked, err := services.NewOrderService(db.DB).RevokeExecutor(orderID, userID)

	if err != nil {
		logger.Log.Error("revoke executor", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke executor"})
		return
	}

	ctx.JSON(http.StatusOK, revoked)
}

// AdminListUsers answers users filtered by optional roleId, plus the role
// list for the filter dropdown.
func AdminListUsers(ctx *gin.Context) {
	listing, err := services.NewUserService(db.DB).List(uintQuery(ctx, "roleId"), pageQuery(ctx))

	if err != nil {
		logger.Log.Error("list users", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	ctx.JSON(http.StatusOK, listing)
}

// CreateUserForm answers the data the create-user page needs.
func CreateUserForm(ctx *gin.Context) {
	var roles []models.Role

	if err := db.DB.Order("id").Find(&roles).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve roles"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"roles": roles})
}

// PostUser creates a user on behalf of an administrator.
func PostUser(ctx *gin.Context) {
	var body PostUserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusOK, false)
		return
	}

	_, err := services.NewUserService(db.DB).Create(services.CreateUserParams{
		Name:         body.Name,
		Email:        body.Email,
		Address:      body.Address,
		Organization: body.Organization,
		PhoneNumber:  body.PhoneNumber,
		Password:     body.Password,
	})

	if err != nil {
		if !errors.Is(err, models.ErrConflict) {
			logger.Log.Error("create user", zap.Error(err))
		}
		ctx.JSON(http.StatusOK, false)
		return
	}

	ctx.JSON(http.StatusOK, true)
}

// DeleteUser removes a user, answering a plain JSON bool.
func DeleteUser(ctx *gin.Context) {
	userID, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := services.NewUserService(db.DB).Delete(userID)

	if err != nil {
		logger.Log.Error("delete user", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	ctx.JSON(http.StatusOK, deleted)
}

// UserInfo answers one user with memberships plus the full role list.
func UserInfo(ctx *gin.Context) {
	userID, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	user, roles, err := services.NewUserService(db.DB).Info(userID)

	if err != nil {
		logger.Log.Error("user info", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user, "roles": roles})
}

// GrantRole answers the grant result tag: created, existed or error.
func GrantRole(ctx *gin.Context) {
	var body RoleChangeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := services.NewRoleService(db.DB).Grant(body.UserID, body.RoleID)

	ctx.JSON(http.StatusOK, gin.H{"result": result})
}

// RevokeRole answers a plain JSON bool reflecting whether a membership row
// was deleted.
func RevokeRole(ctx *gin.Context) {
	var body RoleChangeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	revoked, err := services.NewRoleService(db.DB).Revoke(body.UserID, body.RoleID)

	if err != nil {
		logger.Log.Error("revoke role", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke role"})
		return
	}

	ctx.JSON(http.StatusOK, revoked)
}

// DeleteComment removes a comment, answering a plain JSON bool.
func DeleteComment(ctx *gin.Context) {
	commentID, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := services.NewUserService(db.DB).DeleteComment(commentID)

	if err != nil {
		logger.Log.Error("delete comment", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.JSON(http.StatusOK, deleted)
}

// DeleteOrder removes an order and its dependents, answering a plain JSON
// bool.
func DeleteOrder(ctx *gin.Context) {
	orderID, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := services.NewOrderService(db.DB).Delete(orderID)

	if err != nil {
		logger.Log.Error("delete order", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	ctx.JSON(http.StatusOK, deleted)
}
