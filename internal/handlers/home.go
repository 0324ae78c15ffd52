package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/logger"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/services"
	"go.uber.org/zap"
)

type ContactFormRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Comments string `json:"comments"`
}

var (
	notifyOnce sync.Once
	notify     *services.Notifier
)

// notifier delivers webhook notifications for orders and contact requests.
// Built on first use so webhook URLs loaded from .env are seen.
func notifier() *services.Notifier {
	notifyOnce.Do(func() {
		notify = services.NewNotifierFromEnv()
	})
	return notify
}

// Home returns the index page payload: the active service catalog.
func Home(ctx *gin.Context) {
	var featured []models.Service

	if err := db.DB.Where("active = ?", true).Order("id").Limit(6).Find(&featured).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"services": featured})
}

func ListServices(ctx *gin.Context) {
	var allServices []models.Service

	if err := db.DB.Where("active = ?", true).Order("id").Find(&allServices).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"services": allServices})
}

// ContactRequest stores a contact-form submission and answers with a plain
// JSON boolean. Validation failures answer false, not an error object.
func ContactRequest(ctx *gin.Context) {
	var body ContactFormRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusOK, false)
		return
	}

	request := models.ContactRequest{
		Name:     body.Name,
		Phone:    body.Phone,
		Comments: body.Comments,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		logger.Log.Error("store contact request", zap.Error(err))
		ctx.JSON(http.StatusOK, false)
		return
	}

	go notifier().ContactRequested(request)

	ctx.JSON(http.StatusOK, true)
}
