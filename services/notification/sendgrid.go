package notification

import (
	"context"
	"fmt"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"tidymate/models"
	"tidymate/services/apperrors"
)

const senderName = "TidyMate Bookings"

// SendGridSender delivers owner notifications through SendGrid.
type SendGridSender struct {
	client     *sendgrid.Client
	ownerEmail string
	fromEmail  string
	logger     *zap.Logger
}

func NewSendGridSender(apiKey, ownerEmail, fromEmail string, logger *zap.Logger) *SendGridSender {
	return &SendGridSender{
		client:     sendgrid.NewSendClient(apiKey),
		ownerEmail: ownerEmail,
		fromEmail:  fromEmail,
		logger:     logger,
	}
}

func (s *SendGridSender) SendOwnerBookingEmail(ctx context.Context, payload models.NotificationPayload) error {
	from := mail.NewEmail(senderName, s.fromEmail)
	to := mail.NewEmail("", s.ownerEmail)
	message := mail.NewSingleEmail(from, OwnerEmailSubject(payload), to,
		OwnerEmailText(payload), OwnerEmailHTML(payload))

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return &apperrors.UpstreamEmailError{Err: err}
	}
	if resp.StatusCode >= 400 {
		return &apperrors.UpstreamEmailError{Err: fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)}
	}

	s.logger.Info("owner booking email sent",
		zap.String("to", s.ownerEmail),
		zap.Int("status", resp.StatusCode))
	return nil
}
