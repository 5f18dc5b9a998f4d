package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tidymate/handlers"
)

// RegisterCheckoutRoutes registers the booking and checkout endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-checkout-session", hb.Booking.CreateCheckoutSession)
	r.GET("/booking-details", hb.Booking.BookingDetails)

	api := r.Group("/api")
	{
		api.GET("/services", hb.Booking.GetAvailableServices)
		api.POST("/quote", hb.Booking.Quote)
	}
}

// RegisterPaymentRoutes registers the payment confirmation endpoints. The
// webhook path is what the Stripe dashboard points at.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/webhook", hb.Payment.Webhook)
	r.POST("/notify-owner", hb.Payment.NotifyOwner)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TidyMate"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCheckoutRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
