// Package booking implements the checkout flow: order validation,
// server-side pricing, and the hand-off to the payment provider's hosted
// checkout page.
package booking

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tidymate/models"
	"tidymate/services/apperrors"
	"tidymate/services/catalog"
	"tidymate/services/payment"
)

const defaultCurrency = "cad"

// CheckoutService starts checkout sessions and reads them back for the
// success page.
type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, order models.OrderRequest) (string, error)
	GetBookingDetails(ctx context.Context, sessionID string) (*models.BookingDetails, error)
}

// DefaultCheckoutService is the production implementation.
type DefaultCheckoutService struct {
	Gateway payment.Gateway
	BaseURL string
	Logger  *zap.Logger
}

// CreateCheckoutSession validates the order, recomputes the charge from the
// pricing catalog and opens a hosted checkout session. The order details
// ride along as session metadata; nothing is stored locally.
func (s *DefaultCheckoutService) CreateCheckoutSession(ctx context.Context, order models.OrderRequest) (string, error) {
	if s.Gateway == nil {
		return "", &apperrors.ConfigurationError{Msg: "payment provider not configured"}
	}
	if err := validateOrder(order); err != nil {
		return "", err
	}

	svc, _ := catalog.ServiceByCode(order.ServiceCode)
	currency := strings.ToLower(order.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	// One line item per service and add-on, priced from the catalog. The
	// client-displayed total is never trusted.
	items := []payment.LineItem{{
		Name:             svc.DisplayName,
		Description:      fmt.Sprintf("%s • Professional Equipment Included", svc.CrewDescription),
		AmountMinorUnits: svc.BasePriceMinorUnits,
		Currency:         currency,
	}}

	var addonNames []string
	for _, code := range order.AddonCodes {
		addon, ok := catalog.AddonByCode(code)
		if !ok {
			continue
		}
		addonNames = append(addonNames, addon.DisplayName)
		items = append(items, payment.LineItem{
			Name:             addon.DisplayName,
			Description:      "Add-on service",
			AmountMinorUnits: addon.PriceMinorUnits,
			Currency:         currency,
		})
	}

	sessionID, err := s.Gateway.CreateCheckoutSession(ctx, payment.CreateSessionInput{
		LineItems:     items,
		SuccessURL:    s.BaseURL + "/booking/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.BaseURL + "/booking",
		CustomerEmail: order.Customer.Email,
		Metadata: map[string]string{
			"customerName": strings.TrimSpace(order.Customer.FirstName + " " + order.Customer.LastName),
			"phone":        order.Customer.Phone,
			"address":      order.Customer.Address,
			"date":         order.Customer.Date,
			"time":         order.Customer.Time,
			"instructions": order.Customer.Instructions,
			"service":      svc.DisplayName,
			"addons":       strings.Join(addonNames, ", "),
		},
	})
	if err != nil {
		return "", err
	}

	s.Logger.Info("checkout session initiated",
		zap.String("sessionID", sessionID),
		zap.String("service", order.ServiceCode),
		zap.Int64("total", catalog.QuoteTotal(order.ServiceCode, order.AddonCodes)))

	return sessionID, nil
}

// GetBookingDetails returns the reduced session view for the success page.
// Read-only and safe to poll.
func (s *DefaultCheckoutService) GetBookingDetails(ctx context.Context, sessionID string) (*models.BookingDetails, error) {
	if s.Gateway == nil {
		return nil, &apperrors.ConfigurationError{Msg: "payment provider not configured"}
	}

	sess, err := s.Gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.BookingDetails{
		Service:       sess.Metadata["service"],
		Amount:        sess.AmountTotal,
		CustomerEmail: sess.CustomerEmail,
		PaymentStatus: sess.PaymentStatus,
	}, nil
}

func validateOrder(order models.OrderRequest) error {
	if _, ok := catalog.ServiceByCode(order.ServiceCode); !ok {
		return &apperrors.ValidationError{Msg: fmt.Sprintf("unknown service code %q", order.ServiceCode)}
	}

	c := order.Customer
	required := map[string]string{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
		"address":   c.Address,
		"date":      c.Date,
		"time":      c.Time,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return &apperrors.ValidationError{Msg: fmt.Sprintf("missing required field %q", field)}
		}
	}
	return nil
}
