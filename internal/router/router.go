package router

import (
	"fmt"
	"strings"

	"github.com/shopmono/shopmono/internal/cache"
	"github.com/shopmono/shopmono/internal/config"
	adminhandlers "github.com/shopmono/shopmono/internal/http/handlers/admin"
	publichandlers "github.com/shopmono/shopmono/internal/http/handlers/public"
	"github.com/shopmono/shopmono/internal/logger"
	"github.com/shopmono/shopmono/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP routing tree.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sm"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// Catalog reads are public.
		api.GET("/products", publicHandler.ListProducts)
		api.GET("/products/:id", publicHandler.GetProduct)

		// Catalog writes go through the role policy.
		adminAuthed := api.Group("")
		adminAuthed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		adminAuthed.Use(AdminRBACMiddleware(c.AuthzService))
		{
			adminAuthed.POST("/products", adminHandler.CreateProduct)
			adminAuthed.PUT("/products/:id", adminHandler.UpdateProduct)
			adminAuthed.DELETE("/products/:id", adminHandler.DeleteProduct)
		}

		// Member routes need a valid token only.
		user := api.Group("")
		user.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:productId", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:productId", publicHandler.RemoveCartItem)

			user.POST("/orders/checkout", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)

			user.POST("/payments/orders/:orderId/pay", publicHandler.PayOrder)
		}
	}

	return r
}
