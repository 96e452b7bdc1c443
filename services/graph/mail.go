package graph

import (
	"context"
	"fmt"
	"net/http"

	"bookeasy/models"
	"bookeasy/services/checkout"

	"go.uber.org/zap"
)

type mailMessage struct {
	Subject      string     `json:"subject"`
	Body         itemBody   `json:"body"`
	ToRecipients []attendee `json:"toRecipients"`
}

type sendMailRequest struct {
	Message         mailMessage `json:"message"`
	SaveToSentItems bool        `json:"saveToSentItems"`
}

// SendConfirmation emails the customer an HTML summary of their booking.
// Fire-and-forget from the customer's perspective: a failure here is
// logged for operators, never surfaced back through the webhook.
func (c *Client) SendConfirmation(ctx context.Context, booking models.BookingRequest) error {
	label := checkout.LabelFor(booking.Service)
	content := fmt.Sprintf(
		"<h2>Your booking is confirmed</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Thanks for your payment. Here are your booking details:</p>"+
			"<ul><li><strong>Service:</strong> %s</li>"+
			"<li><strong>Date:</strong> %s</li>"+
			"<li><strong>Time:</strong> %s</li></ul>"+
			"<p>A calendar invitation with the meeting link will follow shortly.</p>",
		booking.Name, label, booking.Date, booking.Time)

	msg := sendMailRequest{
		Message: mailMessage{
			Subject: fmt.Sprintf("Booking confirmed: %s on %s", label, booking.Date),
			Body:    itemBody{ContentType: "HTML", Content: content},
			ToRecipients: []attendee{
				{EmailAddress: emailAddress{Address: booking.Email, Name: booking.Name}},
			},
		},
		SaveToSentItems: true,
	}

	return c.sendMail(ctx, msg, booking.Email)
}

// SendReminder emails the customer ahead of their appointment. Used by
// the background reminder worker.
func (c *Client) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	label := checkout.LabelFor(payload.Service)
	content := fmt.Sprintf(
		"<h2>Upcoming appointment</h2>"+
			"<p>Hi %s,</p>"+
			"<p>This is a reminder of your upcoming booking:</p>"+
			"<ul><li><strong>Service:</strong> %s</li>"+
			"<li><strong>Date:</strong> %s</li>"+
			"<li><strong>Time:</strong> %s</li></ul>",
		payload.Name, label, payload.Date, payload.Time)

	msg := sendMailRequest{
		Message: mailMessage{
			Subject: fmt.Sprintf("Reminder: %s on %s at %s", label, payload.Date, payload.Time),
			Body:    itemBody{ContentType: "HTML", Content: content},
			ToRecipients: []attendee{
				{EmailAddress: emailAddress{Address: payload.Email, Name: payload.Name}},
			},
		},
		SaveToSentItems: true,
	}

	return c.sendMail(ctx, msg, payload.Email)
}

func (c *Client) sendMail(ctx context.Context, msg sendMailRequest, recipient string) error {
	url := fmt.Sprintf("%s/users/%s/sendMail", c.BaseURL, c.Mailbox)
	status, body, err := c.postJSON(ctx, url, msg)
	if err != nil {
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &MailAPIError{StatusCode: status, Body: string(body)}
	}

	c.Logger.Info("sendMail: mail dispatched", zap.String("to", recipient))
	return nil
}
