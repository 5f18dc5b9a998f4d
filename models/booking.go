package models

// CustomerInfo carries the contact fields the booking form collects.
type CustomerInfo struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Instructions string `json:"instructions"`
}

// OrderRequest is the client-submitted order. The total is never taken from
// the client; it is recomputed server-side from the pricing catalog.
type OrderRequest struct {
	ServiceCode string       `json:"serviceCode" binding:"required"`
	AddonCodes  []string     `json:"addonCodes"`
	Currency    string       `json:"currency"`
	Customer    CustomerInfo `json:"customer" binding:"required"`
}

// QuoteRequest asks for the server-side price of a selection so the booking
// page displays the same number the checkout will charge.
type QuoteRequest struct {
	ServiceCode string   `json:"serviceCode"`
	AddonCodes  []string `json:"addonCodes"`
}

// QuoteResponse is the computed total in minor units.
type QuoteResponse struct {
	TotalMinorUnits int64  `json:"totalMinorUnits"`
	Currency        string `json:"currency"`
}

// BookingDetails is the reduced session view shown on the success page.
type BookingDetails struct {
	Service       string `json:"service"`
	Amount        int64  `json:"amount"`
	CustomerEmail string `json:"customerEmail"`
	PaymentStatus string `json:"paymentStatus"`
}

// NotificationPayload is the owner email content derived from a paid
// checkout session's metadata. Transient; never stored.
type NotificationPayload struct {
	CustomerName    string
	CustomerEmail   string
	Phone           string
	Address         string
	Date            string
	Time            string
	ServiceName     string
	Addons          []string
	TotalMinorUnits int64
	Currency        string
}
