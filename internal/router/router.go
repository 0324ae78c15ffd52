package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/orderdesk-dev/orderdesk/internal/handlers"
	"github.com/orderdesk-dev/orderdesk/internal/middleware"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handlers.HealthCheck)

	// public storefront
	r.GET("/", handlers.Home)
	r.GET("/allServices", handlers.ListServices)
	r.POST("/add-to-cart", handlers.AddToCart)
	r.GET("/get-shopping-cart/", handlers.GetShoppingCart)
	r.POST("/reduceByOne", handlers.ReduceItem)
	r.POST("/increaseByOne", handlers.IncreaseItem)
	r.POST("/deleteItemRequest", handlers.DeleteItem)
	r.POST("/contactRequest", handlers.ContactRequest)

	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	client := r.Group("/client", middleware.AuthMiddleware())
	{
		client.GET("/index", handlers.ClientIndex)
		client.POST("/postOrder", handlers.ConfirmOrder)
		client.GET("/getOrder/:id", handlers.ClientGetOrder)
		client.GET("/profile", handlers.Profile)
		client.GET("/getCartInfoClient", handlers.GetCartInfo)
		client.POST("/changeProfile", handlers.ChangeProfile)
		client.GET("/me", handlers.Me)
	}

	admin := r.Group("/admin", middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/index", handlers.AdminIndex)
		admin.GET("/orders", handlers.AdminListOrders)
		admin.GET("/viewOrder/:id", handlers.AdminViewOrder)
		admin.GET("/users", handlers.AdminListUsers)
		admin.GET("/createUser", handlers.CreateUserForm)
		admin.GET("/userInfo/:id", handlers.UserInfo)
		admin.POST("/postUser", handlers.PostUser)
		admin.POST("/set-executor-order/:orderId/:userId", handlers.SetExecutor)
		admin.POST("/revoke-executor-order/:orderId/:userId", handlers.RevokeExecutor)
		admin.POST("/deleteUserRequest/:id", handlers.DeleteUser)
		admin.POST("/grantRole", handlers.GrantRole)
		admin.POST("/revokeRole", handlers.RevokeRole)
		admin.POST("/deleteCommentRequest/:id", handlers.DeleteComment)
		admin.POST("/deleteOrderRequest/:id", handlers.DeleteOrder)
	}

	executor := r.Group("/executor", middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleExecutor, models.RoleAdmin))
	{
		executor.GET("/index", handlers.ExecutorIndex)
		executor.GET("/viewOrder/:id", handlers.ExecutorViewOrder)
		executor.POST("/submitComment", handlers.SubmitComment)
		executor.POST("/setStatusOrder", handlers.SetStatusOrder)
	}

	return r
}
