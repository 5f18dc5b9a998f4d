package notification

import (
	"fmt"
	"html"
	"strings"

	"tidymate/models"
)

// OwnerEmailSubject builds the subject line for the owner notification.
func OwnerEmailSubject(p models.NotificationPayload) string {
	return fmt.Sprintf("New Booking: %s for %s", p.ServiceName, p.CustomerName)
}

// OwnerEmailHTML renders the owner notification body. Customer-supplied
// fields are escaped before interpolation.
func OwnerEmailHTML(p models.NotificationPayload) string {
	var b strings.Builder
	b.WriteString("<h2>New Booking Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Service:</strong> %s</p>", html.EscapeString(p.ServiceName))
	fmt.Fprintf(&b, "<p><strong>Add-ons:</strong> %s</p>", html.EscapeString(addonsLine(p.Addons)))
	fmt.Fprintf(&b, "<p><strong>Total:</strong> %s</p>", html.EscapeString(totalLine(p)))
	b.WriteString("<hr/>")
	fmt.Fprintf(&b, "<p><strong>Customer:</strong> %s (%s)</p>",
		html.EscapeString(p.CustomerName), html.EscapeString(p.CustomerEmail))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(p.Phone))
	fmt.Fprintf(&b, "<p><strong>Address:</strong> %s</p>", html.EscapeString(p.Address))
	fmt.Fprintf(&b, "<p><strong>Preferred Date &amp; Time:</strong> %s at %s</p>",
		html.EscapeString(p.Date), html.EscapeString(p.Time))
	return b.String()
}

// OwnerEmailText is the plain-text alternative part.
func OwnerEmailText(p models.NotificationPayload) string {
	lines := []string{
		"New Booking Received",
		"Service: " + p.ServiceName,
		"Add-ons: " + addonsLine(p.Addons),
		"Total: " + totalLine(p),
		fmt.Sprintf("Customer: %s (%s)", p.CustomerName, p.CustomerEmail),
		"Phone: " + p.Phone,
		"Address: " + p.Address,
		fmt.Sprintf("Preferred Date & Time: %s at %s", p.Date, p.Time),
	}
	return strings.Join(lines, "\n")
}

func addonsLine(addons []string) string {
	if len(addons) == 0 {
		return "None"
	}
	return strings.Join(addons, ", ")
}

func totalLine(p models.NotificationPayload) string {
	if p.TotalMinorUnits > 0 && p.Currency != "" {
		return fmt.Sprintf("%.2f %s", float64(p.TotalMinorUnits)/100, strings.ToUpper(p.Currency))
	}
	return "(total shown in Stripe)"
}
