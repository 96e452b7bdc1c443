package models

import (
	"reflect"
	"testing"
)

func validBooking() BookingRequest {
	return BookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "555-0100",
		Service: ServiceProfessional,
		Date:    "2025-03-10",
		Time:    "14:00",
		Message: "Looking forward to it",
	}
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingRequest)
		want   []string
	}{
		{name: "complete", mutate: func(b *BookingRequest) {}, want: nil},
		{name: "no name", mutate: func(b *BookingRequest) { b.Name = "" }, want: []string{"name"}},
		{name: "no email", mutate: func(b *BookingRequest) { b.Email = "" }, want: []string{"email"}},
		{name: "no phone", mutate: func(b *BookingRequest) { b.Phone = "" }, want: []string{"phone"}},
		{name: "no service", mutate: func(b *BookingRequest) { b.Service = "" }, want: []string{"service"}},
		{name: "no date", mutate: func(b *BookingRequest) { b.Date = "" }, want: []string{"date"}},
		{name: "no time", mutate: func(b *BookingRequest) { b.Time = "" }, want: []string{"time"}},
		{name: "message optional", mutate: func(b *BookingRequest) { b.Message = "" }, want: nil},
		{
			name:   "several missing",
			mutate: func(b *BookingRequest) { b.Name = ""; b.Date = "" },
			want:   []string{"name", "date"},
		},
	}

	for _, tt := range tests {
		b := validBooking()
		tt.mutate(&b)
		if got := b.MissingFields(); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: MissingFields() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	b := validBooking()
	md := b.ToMetadata()

	got, err := BookingFromMetadata(md)
	if err != nil {
		t.Fatalf("unexpected round-trip error: %v", err)
	}
	if got != b {
		t.Fatalf("round trip changed booking: got %+v, want %+v", got, b)
	}
}

func TestToMetadataDefaultsMessage(t *testing.T) {
	b := validBooking()
	b.Message = ""

	md := b.ToMetadata()
	if md["message"] != MessagePlaceholder {
		t.Fatalf("expected message placeholder, got %q", md["message"])
	}
}

func TestBookingFromMetadataRejectsUnexpectedKey(t *testing.T) {
	md := validBooking().ToMetadata()
	md["admin"] = "true"

	if _, err := BookingFromMetadata(md); err == nil {
		t.Fatalf("expected unexpected-key rejection")
	}
}

func TestBookingFromMetadataRejectsMissingKey(t *testing.T) {
	md := validBooking().ToMetadata()
	delete(md, "email")

	if _, err := BookingFromMetadata(md); err == nil {
		t.Fatalf("expected missing-key rejection")
	}
}

func TestNotificationCompleted(t *testing.T) {
	if !(PaymentNotification{Type: CheckoutCompleted}).Completed() {
		t.Fatalf("expected completed notification")
	}
	if (PaymentNotification{Type: "checkout.session.expired"}).Completed() {
		t.Fatalf("expected non-completed notification")
	}
}
