package checkout

import (
	"fmt"
	"strings"
)

// ValidationError reports required booking fields missing from the form.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// InvalidServiceError reports a service tier we do not recognize.
type InvalidServiceError struct {
	Service string
}

func (e *InvalidServiceError) Error() string {
	return fmt.Sprintf("invalid service selected: %s", e.Service)
}

// UnsupportedServiceError reports a tier that exists but cannot be
// checked out automatically (enterprise needs a custom quote).
type UnsupportedServiceError struct {
	Service string
}

func (e *UnsupportedServiceError) Error() string {
	return fmt.Sprintf("the %s tier requires a custom quote; please contact us directly to arrange your engagement", e.Service)
}

// PaymentProviderError wraps any upstream Stripe failure. The handler
// reports it generically; the wrapped detail stays in server logs.
type PaymentProviderError struct {
	Err error
}

func (e *PaymentProviderError) Error() string {
	return fmt.Sprintf("payment provider error: %v", e.Err)
}

func (e *PaymentProviderError) Unwrap() error {
	return e.Err
}
