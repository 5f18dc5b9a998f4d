package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tidymate/services/apperrors"
)

// respondError maps the service error taxonomy onto HTTP responses. It is
// the single place status codes are decided; services never see HTTP.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErr *apperrors.ValidationError
		signatureErr  *apperrors.SignatureError
		configErr     *apperrors.ConfigurationError
		paymentErr    *apperrors.UpstreamPaymentError
		emailErr      *apperrors.UpstreamEmailError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.As(err, &signatureErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": signatureErr.Msg})
	case errors.As(err, &configErr):
		// Never echo which secret is missing.
		logger.Error("configuration error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
	case errors.As(err, &paymentErr):
		logger.Error("payment provider call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": paymentErr.Error()})
	case errors.As(err, &emailErr):
		logger.Error("email provider call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": emailErr.Error()})
	default:
		logger.Error("unexpected handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
