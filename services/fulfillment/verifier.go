package fulfillment

import (
	"encoding/json"
	"fmt"

	"bookeasy/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// VerifyNotification authenticates a raw webhook payload against the
// signing secret and parses it into a typed PaymentNotification.
//
// Verification is byte-exact over the payload as it arrived on the wire.
// The body must not be parsed or re-serialized before this call: Stripe
// signs the original bytes, and re-encoding is not guaranteed to
// reproduce them, which would silently break authentication.
func VerifyNotification(payload []byte, sigHeader, secret string) (*models.PaymentNotification, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, secret)
	if err != nil {
		return nil, &SignatureVerificationError{Err: err}
	}

	notif := &models.PaymentNotification{Type: string(event.Type)}

	if notif.Completed() {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session from event: %w", err)
		}
		notif.SessionID = sess.ID
		notif.Metadata = sess.Metadata
	}

	return notif, nil
}
