package models

import "fmt"

// Service tiers offered on the booking form.
const (
	ServiceConsultation = "consultation"
	ServiceStarter      = "starter"
	ServiceProfessional = "professional"
	ServiceEnterprise   = "enterprise"
)

// MessagePlaceholder fills the optional message field when the customer
// left it empty, so the metadata round-trip never carries an empty value.
const MessagePlaceholder = "No additional message provided"

// BookingRequest carries the booking form fields. It is never persisted;
// it rides along the checkout session as string metadata and comes back
// verbatim on the completed-payment webhook.
type BookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM, 24h
	Message string `json:"message,omitempty"`
}

// metadataKeys is the exact key set a booking serializes to. Anything
// else coming back on a webhook is treated as corruption, not trusted.
var metadataKeys = []string{"name", "email", "phone", "service", "date", "time", "message"}

// MissingFields returns the required fields that are empty. Message is
// the only optional field.
func (b BookingRequest) MissingFields() []string {
	var missing []string
	required := []struct {
		key string
		val string
	}{
		{"name", b.Name},
		{"email", b.Email},
		{"phone", b.Phone},
		{"service", b.Service},
		{"date", b.Date},
		{"time", b.Time},
	}
	for _, f := range required {
		if f.val == "" {
			missing = append(missing, f.key)
		}
	}
	return missing
}

// ToMetadata serializes the booking into the string mapping attached to
// the checkout session.
func (b BookingRequest) ToMetadata() map[string]string {
	message := b.Message
	if message == "" {
		message = MessagePlaceholder
	}
	return map[string]string{
		"name":    b.Name,
		"email":   b.Email,
		"phone":   b.Phone,
		"service": b.Service,
		"date":    b.Date,
		"time":    b.Time,
		"message": message,
	}
}

// BookingFromMetadata rebuilds a typed booking from webhook metadata.
// The key set must match ToMetadata exactly: missing required keys or
// unexpected extras are rejected rather than silently carried through.
func BookingFromMetadata(md map[string]string) (BookingRequest, error) {
	known := make(map[string]bool, len(metadataKeys))
	for _, k := range metadataKeys {
		known[k] = true
	}
	for k := range md {
		if !known[k] {
			return BookingRequest{}, fmt.Errorf("unexpected metadata key %q", k)
		}
	}

	booking := BookingRequest{
		Name:    md["name"],
		Email:   md["email"],
		Phone:   md["phone"],
		Service: md["service"],
		Date:    md["date"],
		Time:    md["time"],
		Message: md["message"],
	}
	if missing := booking.MissingFields(); len(missing) > 0 {
		return BookingRequest{}, fmt.Errorf("metadata missing required keys: %v", missing)
	}
	return booking, nil
}
