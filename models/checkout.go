package models

// CheckoutSession is the local handle on a processor-hosted payment flow.
// Stripe owns the session; we only keep the identifiers needed to send
// the customer to the hosted page.
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// PaymentNotification is a verified webhook event from the payment
// processor. Metadata is exactly what was attached at session-creation
// time; nothing here is re-derived from another source.
type PaymentNotification struct {
	Type      string            `json:"type"`
	SessionID string            `json:"sessionId"`
	Metadata  map[string]string `json:"metadata"`
}

// CheckoutCompleted is the only notification type that triggers fulfillment.
const CheckoutCompleted = "checkout.session.completed"

// Completed reports whether this notification should trigger fulfillment.
func (n PaymentNotification) Completed() bool {
	return n.Type == CheckoutCompleted
}
