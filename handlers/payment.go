package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tidymate/services/apperrors"
	"tidymate/services/notification"
	"tidymate/services/payment"
	"tidymate/utils"
)

// PaymentHandler receives Stripe webhooks and the client-pull confirmation
// trigger. Both converge on the notifier service.
type PaymentHandler struct {
	Notifier notification.NotifierService
	Gateway  payment.Gateway
	// WebhookConfigured reports whether a signing secret is present. When it
	// is not, the webhook acknowledges receipt without acting so Stripe does
	// not retry-storm a misconfigured deployment.
	WebhookConfigured bool
	Logger            *zap.Logger
}

func NewPaymentHandler(notifier notification.NotifierService, gateway payment.Gateway, webhookConfigured bool, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		Notifier:          notifier,
		Gateway:           gateway,
		WebhookConfigured: webhookConfigured,
		Logger:            logger,
	}
}

// Webhook handles POST /webhook. Missing configuration fails open (200,
// logged); a missing or invalid signature fails closed (400). The two guard
// clauses are deliberately separate.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if h.Gateway == nil || !h.WebhookConfigured {
		h.Logger.Error("stripe webhook received but payment provider is not fully configured")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body", "")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing Stripe signature", "")
		return
	}

	event, err := h.Gateway.VerifyWebhook(body, signature)
	if err != nil {
		var sigErr *apperrors.SignatureError
		if errors.As(err, &sigErr) {
			h.Logger.Warn("webhook signature verification failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			return
		}
		// The signature checked out but the event body did not decode.
		// Stripe must not retry on our decode bugs.
		h.Logger.Error("webhook event decode failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if event.Type == payment.EventCheckoutCompleted {
		if _, err := h.Notifier.NotifyOwner(c.Request.Context(), event.SessionID); err != nil {
			// Downstream email failure is not Stripe's problem; ack anyway.
			h.Logger.Error("checkout completion handling failed",
				zap.String("sessionID", event.SessionID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// NotifyOwner handles POST /notify-owner, the pull-based confirmation the
// success page fires after the redirect back from checkout.
func (h *PaymentHandler) NotifyOwner(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		var body struct {
			SessionID      string `json:"sessionId"`
			SessionIDSnake string `json:"session_id"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			sessionID = body.SessionID
			if sessionID == "" {
				sessionID = body.SessionIDSnake
			}
		}
	}

	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session ID required", "")
		return
	}

	result, err := h.Notifier.NotifyOwner(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	if result.Skipped {
		c.JSON(http.StatusOK, gin.H{"skipped": true, "reason": result.Reason})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
