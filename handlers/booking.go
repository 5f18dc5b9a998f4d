package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tidymate/models"
	"tidymate/services/booking"
	"tidymate/services/catalog"
	"tidymate/utils"
)

// BookingHandler serves the quote form, checkout creation and the success
// page's booking summary.
type BookingHandler struct {
	Checkout booking.CheckoutService
	Logger   *zap.Logger
}

func NewBookingHandler(checkout booking.CheckoutService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Checkout: checkout, Logger: logger}
}

// CreateCheckoutSession handles POST /create-checkout-session.
func (h *BookingHandler) CreateCheckoutSession(c *gin.Context) {
	var order models.OrderRequest
	if err := c.ShouldBindJSON(&order); err != nil {
		h.Logger.Warn("CreateCheckoutSession: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	sessionID, err := h.Checkout.CreateCheckoutSession(c.Request.Context(), order)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// BookingDetails handles GET /booking-details?session_id=. The success page
// polls this after the redirect back from Stripe.
func (h *BookingHandler) BookingDetails(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session ID required", "")
		return
	}

	details, err := h.Checkout.GetBookingDetails(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// Quote handles POST /api/quote: the server-side price for a selection, so
// the booking page shows the exact amount checkout will charge.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.QuoteResponse{
		TotalMinorUnits: catalog.QuoteTotal(req.ServiceCode, req.AddonCodes),
		Currency:        "cad",
	})
}

// GetAvailableServices handles GET /api/services: the catalog grouped by
// category, plus the add-on list, for the marketing and booking pages.
func (h *BookingHandler) GetAvailableServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services": catalog.ServicesByCategory(),
		"addons":   catalog.Addons(),
	})
}
