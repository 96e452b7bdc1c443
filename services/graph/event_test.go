package graph

import (
	"testing"

	"bookeasy/models"
)

func testBooking() models.BookingRequest {
	return models.BookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "555-0100",
		Service: models.ServiceProfessional,
		Date:    "2025-03-10",
		Time:    "14:00",
		Message: "See you then",
	}
}

func TestBuildEvent(t *testing.T) {
	event, err := buildEvent(testBooking(), "America/New_York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.Start.DateTime != "2025-03-10T14:00:00" {
		t.Fatalf("unexpected start %q", event.Start.DateTime)
	}
	if event.End.DateTime != "2025-03-10T15:00:00" {
		t.Fatalf("expected end one hour later, got %q", event.End.DateTime)
	}
	if event.Start.TimeZone != "America/New_York" || event.End.TimeZone != "America/New_York" {
		t.Fatalf("unexpected timezone: %q / %q", event.Start.TimeZone, event.End.TimeZone)
	}
	if len(event.Attendees) != 1 {
		t.Fatalf("expected one attendee, got %d", len(event.Attendees))
	}
	att := event.Attendees[0]
	if att.EmailAddress.Address != "jane@x.com" || att.Type != "required" {
		t.Fatalf("unexpected attendee: %+v", att)
	}
	if !event.IsOnlineMeeting || event.OnlineMeetingProvider != "teamsForBusiness" {
		t.Fatalf("event must be an online meeting: %+v", event)
	}
}

func TestBuildEventCrossesMidnight(t *testing.T) {
	booking := testBooking()
	booking.Time = "23:30"

	event, err := buildEvent(booking, "America/New_York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.End.DateTime != "2025-03-11T00:30:00" {
		t.Fatalf("expected end on the next day, got %q", event.End.DateTime)
	}
}

func TestBuildEventInvalidDateTime(t *testing.T) {
	tests := []struct {
		date string
		time string
	}{
		{date: "03/10/2025", time: "14:00"},
		{date: "2025-03-10", time: "2pm"},
		{date: "", time: ""},
	}

	for _, tt := range tests {
		booking := testBooking()
		booking.Date = tt.date
		booking.Time = tt.time
		if _, err := buildEvent(booking, "America/New_York"); err == nil {
			t.Fatalf("expected error for date=%q time=%q", tt.date, tt.time)
		}
	}
}
