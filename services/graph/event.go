package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bookeasy/models"
	"bookeasy/services/checkout"

	"go.uber.org/zap"
)

// appointmentDuration is how long every booked slot runs.
const appointmentDuration = time.Hour

type dateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type attendee struct {
	EmailAddress emailAddress `json:"emailAddress"`
	Type         string       `json:"type"`
}

type itemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type calendarEvent struct {
	Subject               string           `json:"subject"`
	Body                  itemBody         `json:"body"`
	Start                 dateTimeTimeZone `json:"start"`
	End                   dateTimeTimeZone `json:"end"`
	Attendees             []attendee       `json:"attendees"`
	IsOnlineMeeting       bool             `json:"isOnlineMeeting"`
	OnlineMeetingProvider string           `json:"onlineMeetingProvider"`
}

// buildEvent derives the Graph event payload from the booking. It is a
// pure function of the booking plus the configured timezone, built fresh
// per notification.
func buildEvent(booking models.BookingRequest, timezone string) (calendarEvent, error) {
	start, err := time.Parse("2006-01-02 15:04", booking.Date+" "+booking.Time)
	if err != nil {
		return calendarEvent{}, fmt.Errorf("invalid booking date/time %q %q: %w", booking.Date, booking.Time, err)
	}
	end := start.Add(appointmentDuration)

	const graphLayout = "2006-01-02T15:04:05"
	label := checkout.LabelFor(booking.Service)

	return calendarEvent{
		Subject: fmt.Sprintf("%s — %s", label, booking.Name),
		Body: itemBody{
			ContentType: "HTML",
			Content: fmt.Sprintf(
				"<p><strong>Client:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p><strong>Service:</strong> %s</p><p><strong>Message:</strong> %s</p>",
				booking.Name, booking.Email, booking.Phone, label, booking.Message),
		},
		Start: dateTimeTimeZone{DateTime: start.Format(graphLayout), TimeZone: timezone},
		End:   dateTimeTimeZone{DateTime: end.Format(graphLayout), TimeZone: timezone},
		Attendees: []attendee{
			{
				EmailAddress: emailAddress{Address: booking.Email, Name: booking.Name},
				Type:         "required",
			},
		},
		IsOnlineMeeting:       true,
		OnlineMeetingProvider: "teamsForBusiness",
	}, nil
}

// CreateEvent creates a calendar event on the administrative mailbox,
// spanning the requested date/time to one hour later, with the customer
// as a required attendee.
func (c *Client) CreateEvent(ctx context.Context, booking models.BookingRequest) (string, error) {
	event, err := buildEvent(booking, c.Timezone)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/users/%s/events", c.BaseURL, c.Mailbox)
	status, body, err := c.postJSON(ctx, url, event)
	if err != nil {
		return "", err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", &CalendarAPIError{StatusCode: status, Body: string(body)}
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("failed to parse created event: %w", err)
	}

	c.Logger.Info("CreateEvent: calendar event created",
		zap.String("eventID", created.ID), zap.String("start", event.Start.DateTime))
	return created.ID, nil
}
