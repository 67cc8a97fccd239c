package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Souvikgooooo/ThrivePro/config"
	"github.com/Souvikgooooo/ThrivePro/database"
	requestRepoPkg "github.com/Souvikgooooo/ThrivePro/database/repository/request"
	serviceRepoPkg "github.com/Souvikgooooo/ThrivePro/database/repository/service"
	userRepoPkg "github.com/Souvikgooooo/ThrivePro/database/repository/user"
	"github.com/Souvikgooooo/ThrivePro/handlers"
	"github.com/Souvikgooooo/ThrivePro/middleware"
	"github.com/Souvikgooooo/ThrivePro/routes"
	"github.com/Souvikgooooo/ThrivePro/services/catalog"
	"github.com/Souvikgooooo/ThrivePro/services/payment"
	"github.com/Souvikgooooo/ThrivePro/services/request"
	"github.com/Souvikgooooo/ThrivePro/services/user"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	cfg := config.Load()
	utils.InitializeLogger(cfg.IsProduction())
	logger := utils.GetLogger()
	utils.InitJWT(cfg.JWTSecret)
	stripe.Key = cfg.StripeKey

	mongoClient := database.Connect(cfg.DatabaseURL)
	db := mongoClient.Database(cfg.DatabaseName)
	authCache := utils.NewAuthCacheClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
	utils.StartHealthMonitor(authCache, mongoClient)

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	users := userRepoPkg.NewMongoUserRepo(db)
	services := serviceRepoPkg.NewMongoServiceRepo(db)
	requests := requestRepoPkg.NewMongoRequestRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:   users,
		Logger: logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:   services,
		Logger: logger,
	}
	requestService := &request.DefaultRequestService{
		Repo:     requests,
		Users:    users,
		Services: services,
		Logger:   logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:     requests,
		Requests: requestService,
		Intents:  payment.StripeIntentClient{},
		Currency: cfg.StripeCurrency,
		Logger:   logger,
	}

	routes.RegisterRoutes(router, cfg, &routes.Handlers{
		Users:     handlers.NewUserHandler(userService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Requests:  handlers.NewRequestHandler(requestService),
		Payments:  handlers.NewPaymentHandler(paymentService),
		UserRepo:  users,
		AuthCache: authCache,
	})

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
