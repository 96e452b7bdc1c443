package graph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookeasy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func newTestClient(baseURL string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Tokens:     staticToken("test-token"),
		BaseURL:    baseURL,
		Mailbox:    "bookings@example.com",
		Timezone:   "America/New_York",
		Logger:     zap.NewNop(),
	}
}

func TestCreateEvent(t *testing.T) {
	var gotPath, gotAuth string
	var gotEvent calendarEvent

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEvent))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "AAMkAD_event_1"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	eventID, err := client.CreateEvent(context.Background(), testBooking())
	require.NoError(t, err)

	assert.Equal(t, "AAMkAD_event_1", eventID)
	assert.Equal(t, "/users/bookings@example.com/events", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "2025-03-10T14:00:00", gotEvent.Start.DateTime)
	assert.Equal(t, "America/New_York", gotEvent.Start.TimeZone)
}

func TestCreateEventNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": "ErrorAccessDenied"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.CreateEvent(context.Background(), testBooking())

	var calErr *CalendarAPIError
	require.ErrorAs(t, err, &calErr)
	assert.Equal(t, http.StatusForbidden, calErr.StatusCode)
}

func TestSendConfirmation(t *testing.T) {
	var gotPath string
	var gotMail sendMailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMail))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.SendConfirmation(context.Background(), testBooking())
	require.NoError(t, err)

	assert.Equal(t, "/users/bookings@example.com/sendMail", gotPath)
	require.Len(t, gotMail.Message.ToRecipients, 1)
	assert.Equal(t, "jane@x.com", gotMail.Message.ToRecipients[0].EmailAddress.Address)
	assert.Equal(t, "HTML", gotMail.Message.Body.ContentType)
	assert.Contains(t, gotMail.Message.Body.Content, "2025-03-10")
}

func TestSendConfirmationNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.SendConfirmation(context.Background(), testBooking())

	var mailErr *MailAPIError
	require.ErrorAs(t, err, &mailErr)
	assert.Equal(t, http.StatusServiceUnavailable, mailErr.StatusCode)
}

func TestSendReminder(t *testing.T) {
	var gotMail sendMailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMail))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.SendReminder(context.Background(), models.ReminderPayload{
		SessionID: "cs_test_123",
		Name:      "Jane Doe",
		Email:     "jane@x.com",
		Service:   models.ServiceProfessional,
		Date:      "2025-03-10",
		Time:      "14:00",
	})
	require.NoError(t, err)

	assert.Contains(t, gotMail.Message.Subject, "Reminder")
	assert.Equal(t, "jane@x.com", gotMail.Message.ToRecipients[0].EmailAddress.Address)
}

type failingToken struct{}

func (failingToken) Token(ctx context.Context) (string, error) {
	return "", errors.New("invalid client secret")
}

func TestCreateEventTokenFailure(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	client.Tokens = failingToken{}

	_, err := client.CreateEvent(context.Background(), testBooking())
	require.Error(t, err)

	var calErr *CalendarAPIError
	assert.False(t, errors.As(err, &calErr), "token failure is not a calendar API error")
}
