package payment

import "context"

// LineItem is one priced entry on a checkout session, already resolved
// server-side from the pricing catalog.
type LineItem struct {
	Name             string
	Description      string
	AmountMinorUnits int64
	Currency         string
}

// CreateSessionInput carries everything needed to open a hosted checkout.
type CreateSessionInput struct {
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// Session is the provider-neutral view of a checkout session. Metadata is
// the only persistence this system uses; there is no local database.
type Session struct {
	ID                   string
	PaymentStatus        string
	AmountTotal          int64
	Currency             string
	CustomerEmail        string
	Metadata             map[string]string
	LineItemDescriptions []string
}

// PaymentStatusPaid is the only status that triggers owner notification.
const PaymentStatusPaid = "paid"

// Paid reports whether the session has been paid in full.
func (s *Session) Paid() bool {
	return s != nil && s.PaymentStatus == PaymentStatusPaid
}

// Event is a verified webhook event from the payment provider.
type Event struct {
	Type      string
	SessionID string
}

// EventCheckoutCompleted is the event type that confirms payment.
const EventCheckoutCompleted = "checkout.session.completed"

// Gateway abstracts the payment provider so handlers and services can be
// tested against a fake without network access.
type Gateway interface {
	// CreateCheckoutSession opens a new hosted checkout and returns its
	// session identifier.
	CreateCheckoutSession(ctx context.Context, in CreateSessionInput) (string, error)

	// RetrieveSession re-fetches a session with its line items expanded.
	RetrieveSession(ctx context.Context, sessionID string) (*Session, error)

	// VerifyWebhook checks the provider signature over the raw payload and
	// returns the decoded event. Returns apperrors.SignatureError when the
	// signature does not verify.
	VerifyWebhook(payload []byte, signature string) (Event, error)
}
