package router

import (
	"fmt"
	"strings"

	"github.com/ramani-fashion/api/internal/cache"
	"github.com/ramani-fashion/api/internal/config"
	adminhandlers "github.com/ramani-fashion/api/internal/http/handlers/admin"
	publichandlers "github.com/ramani-fashion/api/internal/http/handlers/public"
	"github.com/ramani-fashion/api/internal/logger"
	"github.com/ramani-fashion/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all routes and middleware.
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
		redisPrefix = "rm"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "Too many login attempts, please try again later",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "Too many login attempts, please try again later",
	}
	otpRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:send_otp", redisPrefix),
		WindowSeconds: cfg.Security.OTPRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.OTPRateLimit.MaxAttempts,
		Message:       "Too many OTP requests, please try again later",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api")
	{
		// Catalog (public reads, admin-authenticated writes)
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.GET("/filters", publicHandler.GetFilters)
		api.POST("/products", AdminJWTAuthMiddleware(c.AuthService), adminHandler.CreateProduct)
		api.PUT("/products/:id", AdminJWTAuthMiddleware(c.AuthService), adminHandler.UpdateProduct)
		api.DELETE("/products/:id", AdminJWTAuthMiddleware(c.AuthService), adminHandler.DeleteProduct)

		// Contact form (public in the storefront design)
		api.POST("/contact", publicHandler.SubmitContact)
		api.GET("/contact", publicHandler.ListContactSubmissions)

		// User auth
		auth := api.Group("/auth")
		{
			auth.POST("/send-otp", RateLimitMiddleware(redisClient, otpRule, KeyByIPAndJSONField("phone")), publicHandler.SendOTP)
			auth.POST("/verify-otp", publicHandler.VerifyOTP)
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.GET("/me", UserJWTAuthMiddleware(c.UserAuthService), publicHandler.GetCurrentUser)
		}

		// User-scoped routes
		user := api.Group("")
		user.Use(UserJWTAuthMiddleware(c.UserAuthService))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart", publicHandler.AddToCart)
			user.PUT("/cart/:productId", publicHandler.UpdateCartItem)
			user.DELETE("/cart/:productId", publicHandler.RemoveFromCart)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.GET("/wishlist", publicHandler.GetWishlist)
			user.POST("/wishlist", publicHandler.AddToWishlist)
			user.POST("/wishlist/:productId", publicHandler.AddToWishlist)
			user.DELETE("/wishlist/:productId", publicHandler.RemoveFromWishlist)

			user.GET("/addresses", publicHandler.GetAddresses)
			user.POST("/addresses", publicHandler.CreateAddress)
			user.PUT("/addresses/:id", publicHandler.UpdateAddress)
			user.DELETE("/addresses/:id", publicHandler.DeleteAddress)

			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
		}

		// Back office
		admin := api.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)
			admin.GET("/captcha", adminHandler.GetCaptcha)

			authorized := admin.Use(AdminJWTAuthMiddleware(c.AuthService))
			{
				authorized.GET("/verify", adminHandler.Verify)

				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PATCH("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

				authorized.GET("/analytics", adminHandler.GetAnalytics)
				authorized.GET("/customers", adminHandler.GetCustomers)
				authorized.GET("/inventory", adminHandler.GetInventory)
				authorized.PUT("/inventory/:id", adminHandler.UpdateInventory)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
