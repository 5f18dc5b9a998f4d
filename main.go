package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tidymate/config"
	"tidymate/handlers"
	"tidymate/middleware"
	"tidymate/routes"
	"tidymate/services/booking"
	"tidymate/services/notification"
	"tidymate/services/payment"
	"tidymate/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// External collaborators. A missing secret leaves the collaborator nil;
	// the services degrade per-request instead of crashing the process.
	var gateway payment.Gateway
	if config.AppConfig.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(
			config.AppConfig.StripeSecretKey,
			config.AppConfig.StripeWebhookSecret,
			logger,
		)
	} else {
		logger.Warn("main: STRIPE_SECRET_KEY not set, checkout endpoints will report a configuration error")
	}

	var sender notification.EmailSender
	if config.AppConfig.SendGridAPIKey != "" && config.AppConfig.OwnerNotificationEmail != "" {
		sender = notification.NewSendGridSender(
			config.AppConfig.SendGridAPIKey,
			config.AppConfig.OwnerNotificationEmail,
			config.AppConfig.FromEmail,
			logger,
		)
	} else {
		logger.Warn("main: owner email delivery not configured, notifications will be skipped")
	}

	var seen notification.SeenStore
	if config.AppConfig.RedisAddr != "" {
		seen = notification.NewRedisSeenStore(utils.GetDedupClient(), 30*24*time.Hour)
	} else {
		seen = notification.NewMemorySeenStore()
	}

	// Services.
	checkoutService := &booking.DefaultCheckoutService{
		Gateway: gateway,
		BaseURL: config.AppConfig.PublicBaseURL,
		Logger:  logger,
	}
	notifierService := &notification.DefaultNotifierService{
		Gateway: gateway,
		Sender:  sender,
		Seen:    seen,
		Logger:  logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(checkoutService, logger),
		Payment: handlers.NewPaymentHandler(
			notifierService,
			gateway,
			config.AppConfig.StripeWebhookSecret != "",
			logger,
		),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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
