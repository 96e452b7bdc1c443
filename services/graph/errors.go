package graph

import "fmt"

// CalendarAPIError reports a non-2xx response from the Graph events API.
// The orchestrator treats it as non-fatal; it never reaches the webhook
// sender.
type CalendarAPIError struct {
	StatusCode int
	Body       string
}

func (e *CalendarAPIError) Error() string {
	return fmt.Sprintf("graph calendar API returned %d: %s", e.StatusCode, e.Body)
}

// MailAPIError reports a non-2xx response from the Graph sendMail API.
type MailAPIError struct {
	StatusCode int
	Body       string
}

func (e *MailAPIError) Error() string {
	return fmt.Sprintf("graph mail API returned %d: %s", e.StatusCode, e.Body)
}
