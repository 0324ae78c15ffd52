package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/cart"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/session"
	"gorm.io/gorm"
)

// CartCookie names the session cookie carrying the cart token.
const CartCookie = "cart_session"

// Sessions holds the per-browser carts.
var Sessions = session.NewStore()

type AddToCartRequest struct {
	ServiceID uint `json:"serviceId" binding:"required"`
}

// CartLineRequest addresses one cart line. The wire name is orderId, which is
// what the frontend sends.
type CartLineRequest struct {
	OrderID uint `json:"orderId" binding:"required"`
}

// AddToCart puts one unit of the service into the session cart and answers
// with the new total quantity.
func AddToCart(ctx *gin.Context) {
	var body AddToCartRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var service models.Service

	err := db.DB.Where("active = ?", true).First(&service, body.ServiceID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
		}
		return
	}

	token := cartToken(ctx, true)

	current, ok := Sessions.Cart(token)
	if !ok {
		current = cart.New()
	}

	current.AddItem(service)
	Sessions.Put(token, current)

	ctx.JSON(http.StatusOK, gin.H{"count": current.TotalQty()})
}

// GetShoppingCart answers with the cart contents, or an explicit empty state
// when the session has no cart.
func GetShoppingCart(ctx *gin.Context) {
	current, ok := sessionCart(ctx)

	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"empty": true})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"empty": false, "cart": current.Info()})
}

func IncreaseItem(ctx *gin.Context) {
	mutateCartLine(ctx, func(c *cart.Cart, serviceID uint) {
		c.IncreaseItem(serviceID)
	})
}

func ReduceItem(ctx *gin.Context) {
	mutateCartLine(ctx, func(c *cart.Cart, serviceID uint) {
		c.ReduceItem(serviceID)
	})
}

func DeleteItem(ctx *gin.Context) {
	mutateCartLine(ctx, func(c *cart.Cart, serviceID uint) {
		c.DeleteItem(serviceID)
	})
}

func mutateCartLine(ctx *gin.Context, mutate func(c *cart.Cart, serviceID uint)) {
	var body CartLineRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	current, ok := sessionCart(ctx)

	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"updated_results": cart.New().Info()})
		return
	}

	mutate(current, body.OrderID)
	Sessions.Put(cartToken(ctx, false), current)

	ctx.JSON(http.StatusOK, gin.H{"updated_results": current.Info()})
}

func sessionCart(ctx *gin.Context) (*cart.Cart, bool) {
	token := cartToken(ctx, false)
	if token == "" {
		return nil, false
	}
	return Sessions.Cart(token)
}

// cartToken returns the session token from the cart cookie. With create set,
// a missing cookie is replaced by a fresh session.
func cartToken(ctx *gin.Context, create bool) string {
	if token, err := ctx.Cookie(CartCookie); err == nil && token != "" {
		return token
	}

	if !create {
		return ""
	}

	token := session.NewToken()

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     CartCookie,
		Value:    token,
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   60 * 60 * 24,
		HttpOnly: true,
	})

	return token
}

func clearCartSession(ctx *gin.Context) {
	token := cartToken(ctx, false)
	if token == "" {
		return
	}

	Sessions.Clear(token)

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     CartCookie,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   -1,
		HttpOnly: true,
	})
}
