package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tidymate/models"
	"tidymate/services/apperrors"
	"tidymate/services/payment"
)

type fakeGateway struct {
	sessions  map[string]*payment.Session
	retrieves int
}

func (f *fakeGateway) CreateCheckoutSession(context.Context, payment.CreateSessionInput) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeGateway) RetrieveSession(_ context.Context, sessionID string) (*payment.Session, error) {
	f.retrieves++
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, &apperrors.UpstreamPaymentError{Err: errors.New("no such session")}
	}
	return sess, nil
}

func (f *fakeGateway) VerifyWebhook([]byte, string) (payment.Event, error) {
	return payment.Event{}, errors.New("not implemented")
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []models.NotificationPayload
	sendErr error
}

func (f *fakeSender) SendOwnerBookingEmail(_ context.Context, payload models.NotificationPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, payload)
	return nil
}

func paidSession(id string) *payment.Session {
	return &payment.Session{
		ID:            id,
		PaymentStatus: payment.PaymentStatusPaid,
		AmountTotal:   21000,
		Currency:      "cad",
		CustomerEmail: "jane@example.com",
		Metadata: map[string]string{
			"customerName": "Jane Doe",
			"phone":        "555-0100",
			"address":      "12 Main St, Ottawa",
			"date":         "2026-09-15",
			"time":         "10:00",
			"service":      "Airbnb 2 Bedrooms",
			"addons":       "Inside Oven, Windows, ",
		},
	}
}

func newNotifier(gw *fakeGateway, sender EmailSender, seen SeenStore) *DefaultNotifierService {
	return &DefaultNotifierService{
		Gateway: gw,
		Sender:  sender,
		Seen:    seen,
		Logger:  zap.NewNop(),
	}
}

func TestNotifyOwnerUnpaidSessionSkipsWithoutSending(t *testing.T) {
	sess := paidSession("cs_unpaid")
	sess.PaymentStatus = "unpaid"
	gw := &fakeGateway{sessions: map[string]*payment.Session{"cs_unpaid": sess}}
	sender := &fakeSender{}

	result, err := newNotifier(gw, sender, nil).NotifyOwner(context.Background(), "cs_unpaid")
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, sender.sent)
}

func TestNotifyOwnerPaidSessionSendsPayload(t *testing.T) {
	gw := &fakeGateway{sessions: map[string]*payment.Session{"cs_1": paidSession("cs_1")}}
	sender := &fakeSender{}

	result, err := newNotifier(gw, sender, nil).NotifyOwner(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	require.Len(t, sender.sent, 1)

	payload := sender.sent[0]
	assert.Equal(t, "Jane Doe", payload.CustomerName)
	assert.Equal(t, "jane@example.com", payload.CustomerEmail)
	assert.Equal(t, "Airbnb 2 Bedrooms", payload.ServiceName)
	assert.Equal(t, []string{"Inside Oven", "Windows"}, payload.Addons)
	assert.Equal(t, int64(21000), payload.TotalMinorUnits)
	assert.Equal(t, "cad", payload.Currency)
}

func TestNotifyOwnerAppliesDefaultsForSparseMetadata(t *testing.T) {
	sess := &payment.Session{
		ID:                   "cs_sparse",
		PaymentStatus:        payment.PaymentStatusPaid,
		Metadata:             map[string]string{},
		LineItemDescriptions: []string{"1 Cleaner • Professional Equipment Included"},
	}
	gw := &fakeGateway{sessions: map[string]*payment.Session{"cs_sparse": sess}}
	sender := &fakeSender{}

	_, err := newNotifier(gw, sender, nil).NotifyOwner(context.Background(), "cs_sparse")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	payload := sender.sent[0]
	assert.Equal(t, "Unknown", payload.CustomerName)
	assert.Equal(t, "unknown@example.com", payload.CustomerEmail)
	assert.Equal(t, "1 Cleaner • Professional Equipment Included", payload.ServiceName)
	assert.Empty(t, payload.Addons)
}

func TestNotifyOwnerServiceNameFinalFallback(t *testing.T) {
	sess := &payment.Session{
		ID:            "cs_bare",
		PaymentStatus: payment.PaymentStatusPaid,
		Metadata:      map[string]string{},
	}
	payload := PayloadFromSession(sess)
	assert.Equal(t, "Cleaning Service", payload.ServiceName)
}

func TestNotifyOwnerDedupSendsOnce(t *testing.T) {
	gw := &fakeGateway{sessions: map[string]*payment.Session{"cs_1": paidSession("cs_1")}}
	sender := &fakeSender{}
	notifier := newNotifier(gw, sender, NewMemorySeenStore())

	first, err := notifier.NotifyOwner(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.False(t, first.Skipped)

	second, err := notifier.NotifyOwner(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Equal(t, "Owner already notified", second.Reason)

	assert.Len(t, sender.sent, 1)
}

func TestNotifyOwnerSendFailureReleasesDedup(t *testing.T) {
	gw := &fakeGateway{sessions: map[string]*payment.Session{"cs_1": paidSession("cs_1")}}
	sender := &fakeSender{sendErr: &apperrors.UpstreamEmailError{Err: errors.New("boom")}}
	notifier := newNotifier(gw, sender, NewMemorySeenStore())

	_, err := notifier.NotifyOwner(context.Background(), "cs_1")
	require.Error(t, err)

	// The failed send must not block the retry.
	sender.sendErr = nil
	result, err := notifier.NotifyOwner(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Len(t, sender.sent, 1)
}

func TestNotifyOwnerWithoutSenderSkips(t *testing.T) {
	gw := &fakeGateway{sessions: map[string]*payment.Session{"cs_1": paidSession("cs_1")}}

	result, err := newNotifier(gw, nil, nil).NotifyOwner(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "Email delivery not configured", result.Reason)
}

func TestNotifyOwnerMissingSenderSkipKeepsSessionRetryable(t *testing.T) {
	gw := &fakeGateway{sessions: map[string]*payment.Session{"cs_1": paidSession("cs_1")}}
	seen := NewMemorySeenStore()

	// First trigger arrives while email delivery is unconfigured.
	result, err := newNotifier(gw, nil, seen).NotifyOwner(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "Email delivery not configured", result.Reason)

	// Once the operator configures the sender, the same dedup store must
	// still allow the owner email for that booking to go out.
	sender := &fakeSender{}
	result, err = newNotifier(gw, sender, seen).NotifyOwner(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Jane Doe", sender.sent[0].CustomerName)
}

func TestNotifyOwnerWithoutGatewayIsConfigurationError(t *testing.T) {
	notifier := &DefaultNotifierService{Logger: zap.NewNop()}

	_, err := notifier.NotifyOwner(context.Background(), "cs_1")
	var configErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func TestSplitAddons(t *testing.T) {
	assert.Equal(t, []string{"Inside Oven", "Windows"}, SplitAddons("Inside Oven, Windows, "))
	assert.Equal(t, []string{"Garage Cleaning"}, SplitAddons("Garage Cleaning"))
	assert.Nil(t, SplitAddons(""))
	assert.Nil(t, SplitAddons(" , , "))
}
