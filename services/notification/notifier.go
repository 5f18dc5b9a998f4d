package notification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tidymate/models"
	"tidymate/services/apperrors"
	"tidymate/services/payment"
)

// Fallbacks for sessions whose metadata is incomplete.
const (
	unknownCustomerName  = "Unknown"
	unknownCustomerEmail = "unknown@example.com"
	fallbackServiceName  = "Cleaning Service"
)

// DefaultNotifierService is the production implementation. Seen is optional;
// without it, overlapping webhook and pull triggers can each send a mail.
type DefaultNotifierService struct {
	Gateway payment.Gateway
	Sender  EmailSender
	Seen    SeenStore
	Logger  *zap.Logger
}

// NotifyOwner re-retrieves the session from the payment provider and, if it
// is paid and not yet notified, emails the booking summary to the owner.
func (s *DefaultNotifierService) NotifyOwner(ctx context.Context, sessionID string) (Result, error) {
	if s.Gateway == nil {
		return Result{}, &apperrors.ConfigurationError{Msg: "payment provider not configured"}
	}

	sess, err := s.Gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}

	// A pull can race the provider finalizing the payment; not-paid is a
	// normal outcome, not an error.
	if !sess.Paid() {
		return Result{Skipped: true, Reason: "Session not paid"}, nil
	}

	// Checked before the dedup mark: a skip for missing configuration must
	// not consume the session's notification slot.
	if s.Sender == nil {
		s.Logger.Warn("owner email not sent: email delivery is not configured",
			zap.String("sessionID", sess.ID))
		return Result{Skipped: true, Reason: "Email delivery not configured"}, nil
	}

	if s.Seen != nil {
		fresh, err := s.Seen.MarkIfNew(ctx, sess.ID)
		if err != nil {
			s.Logger.Warn("dedup store unavailable, proceeding without it",
				zap.String("sessionID", sess.ID), zap.Error(err))
		} else if !fresh {
			return Result{Skipped: true, Reason: "Owner already notified"}, nil
		}
	}

	payload := PayloadFromSession(sess)
	if err := s.Sender.SendOwnerBookingEmail(ctx, payload); err != nil {
		if s.Seen != nil {
			// Free the slot so a later trigger can retry the send.
			if relErr := s.Seen.Release(ctx, sess.ID); relErr != nil {
				s.Logger.Warn("failed to release dedup mark", zap.String("sessionID", sess.ID), zap.Error(relErr))
			}
		}
		return Result{}, err
	}

	s.Logger.Info("owner notified of paid booking",
		zap.String("sessionID", sess.ID),
		zap.String("service", payload.ServiceName))

	return Result{}, nil
}

// PayloadFromSession derives the owner email content from a session's
// metadata, applying the documented fallbacks for missing fields.
func PayloadFromSession(sess *payment.Session) models.NotificationPayload {
	meta := sess.Metadata

	name := meta["customerName"]
	if name == "" {
		name = unknownCustomerName
	}

	email := sess.CustomerEmail
	if email == "" {
		email = meta["customerEmail"]
	}
	if email == "" {
		email = unknownCustomerEmail
	}

	service := meta["service"]
	if service == "" && len(sess.LineItemDescriptions) > 0 {
		service = sess.LineItemDescriptions[0]
	}
	if service == "" {
		service = fallbackServiceName
	}

	return models.NotificationPayload{
		CustomerName:    name,
		CustomerEmail:   email,
		Phone:           meta["phone"],
		Address:         meta["address"],
		Date:            meta["date"],
		Time:            meta["time"],
		ServiceName:     service,
		Addons:          SplitAddons(meta["addons"]),
		TotalMinorUnits: sess.AmountTotal,
		Currency:        sess.Currency,
	}
}

// SplitAddons parses the comma-joined add-ons metadata field into an ordered
// list, trimming whitespace and dropping empty entries.
func SplitAddons(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
