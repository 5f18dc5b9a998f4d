package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tidymate/models"
)

func samplePayload() models.NotificationPayload {
	return models.NotificationPayload{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		Phone:           "555-0100",
		Address:         "12 Main St, Ottawa",
		Date:            "2026-09-15",
		Time:            "10:00",
		ServiceName:     "Airbnb 2 Bedrooms",
		Addons:          []string{"Inside Oven", "Windows"},
		TotalMinorUnits: 25000,
		Currency:        "cad",
	}
}

func TestOwnerEmailSubject(t *testing.T) {
	assert.Equal(t, "New Booking: Airbnb 2 Bedrooms for Jane Doe", OwnerEmailSubject(samplePayload()))
}

func TestOwnerEmailHTMLContents(t *testing.T) {
	body := OwnerEmailHTML(samplePayload())
	assert.Contains(t, body, "New Booking Received")
	assert.Contains(t, body, "Inside Oven, Windows")
	assert.Contains(t, body, "250.00 CAD")
	assert.Contains(t, body, "Jane Doe (jane@example.com)")
	assert.Contains(t, body, "2026-09-15 at 10:00")
}

func TestOwnerEmailNoAddonsAndNoTotal(t *testing.T) {
	p := samplePayload()
	p.Addons = nil
	p.TotalMinorUnits = 0
	p.Currency = ""

	body := OwnerEmailHTML(p)
	assert.Contains(t, body, "Add-ons:</strong> None")
	assert.Contains(t, body, "(total shown in Stripe)")
}

func TestOwnerEmailEscapesCustomerFields(t *testing.T) {
	p := samplePayload()
	p.CustomerName = `<script>alert("x")</script>`

	body := OwnerEmailHTML(p)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
