package models

// ReminderPayload is the queued task payload for the appointment
// reminder email sent ahead of the booked time.
type ReminderPayload struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
