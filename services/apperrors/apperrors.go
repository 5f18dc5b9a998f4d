// Package apperrors defines the error taxonomy shared by the booking and
// notification services. Handlers map these to HTTP status codes at the
// boundary; nothing else inspects error strings.
package apperrors

import "fmt"

// ConfigurationError means a required provider secret is missing. It is
// reported as a 500 and never names the missing variable to the caller.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// ValidationError means the caller's input is missing or malformed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// SignatureError means a webhook signature header is absent or failed
// verification.
type SignatureError struct {
	Msg string
}

func (e *SignatureError) Error() string { return e.Msg }

// UpstreamPaymentError wraps a failed call to the payment provider.
type UpstreamPaymentError struct {
	Err error
}

func (e *UpstreamPaymentError) Error() string {
	return fmt.Sprintf("payment provider error: %v", e.Err)
}

func (e *UpstreamPaymentError) Unwrap() error { return e.Err }

// UpstreamEmailError wraps a failed call to the email provider.
type UpstreamEmailError struct {
	Err error
}

func (e *UpstreamEmailError) Error() string {
	return fmt.Sprintf("email provider error: %v", e.Err)
}

func (e *UpstreamEmailError) Unwrap() error { return e.Err }
