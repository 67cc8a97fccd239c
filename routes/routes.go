package routes

import (
	"net/http"
	"time"

	"github.com/Souvikgooooo/ThrivePro/config"
	userRepo "github.com/Souvikgooooo/ThrivePro/database/repository/user"
	"github.com/Souvikgooooo/ThrivePro/handlers"
	"github.com/Souvikgooooo/ThrivePro/middleware"
	"github.com/Souvikgooooo/ThrivePro/models"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Users    *handlers.UserHandler
	Catalog  *handlers.CatalogHandler
	Requests *handlers.RequestHandler
	Payments *handlers.PaymentHandler

	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.JWTAuthMiddleware(h.UserRepo, h.AuthCache)

	users := r.Group("/api/users")
	{
		users.POST("/register", h.Users.Register)
		users.POST("/login", h.Users.Login)
		users.POST("/logout", auth, h.Users.Logout)
	}

	services := r.Group("/api/services")
	{
		services.Use(auth)
		services.POST("", middleware.RequireRole(models.RoleProvider), h.Catalog.CreateService)
		services.GET("/provider", middleware.RequireRole(models.RoleProvider), h.Catalog.ListServices)
	}

	requests := r.Group("/api/service-requests")
	{
		requests.Use(auth)
		requests.POST("", middleware.RequireRole(models.RoleCustomer), h.Requests.CreateRequest)
		requests.GET("/provider", middleware.RequireRole(models.RoleProvider), h.Requests.ListForProvider)
		requests.GET("/customer", middleware.RequireRole(models.RoleCustomer), h.Requests.ListForCustomer)
		requests.PATCH("/:id/provider", middleware.RequireRole(models.RoleProvider), h.Requests.UpdateStatus)

		requests.POST("/:id/payment-intent", middleware.RequireRole(models.RoleCustomer), h.Payments.CreateIntent)
		requests.POST("/:id/payment-confirm", middleware.RequireRole(models.RoleCustomer), h.Payments.ConfirmPayment)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
