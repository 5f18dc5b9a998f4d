// Package notification confirms paid checkout sessions and emails the
// booking summary to the business owner.
package notification

import (
	"context"

	"tidymate/models"
)

// EmailSender delivers the owner notification. Implementations wrap a
// transactional email provider; tests substitute a fake.
type EmailSender interface {
	SendOwnerBookingEmail(ctx context.Context, payload models.NotificationPayload) error
}

// Result is the outcome of a notification attempt. Skipped is a valid,
// non-error outcome (session not yet paid, already notified, or email
// delivery not configured).
type Result struct {
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// NotifierService runs the shared confirmation logic for both the webhook
// and the client-pull entry points.
type NotifierService interface {
	NotifyOwner(ctx context.Context, sessionID string) (Result, error)
}
