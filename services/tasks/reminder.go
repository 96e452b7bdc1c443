package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"bookeasy/config"
	"bookeasy/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload into an asynq task scheduled
// for the given fire time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminders to fire a configured
// number of hours before the booked slot.
type ReminderScheduler struct {
	Client    *asynq.Client
	LeadHours int
	Logger    *zap.Logger
}

func NewReminderScheduler(client *asynq.Client, logger *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		Client:    client,
		LeadHours: config.AppConfig.ReminderLeadHours,
		Logger:    logger,
	}
}

// ScheduleReminder queues the reminder email for a fulfilled booking.
// Appointments nearer than the lead window get no reminder; the
// confirmation email already covers them.
func (s *ReminderScheduler) ScheduleReminder(booking models.BookingRequest, sessionID string) error {
	loc, err := time.LoadLocation(config.AppConfig.BookingTimezone)
	if err != nil {
		return fmt.Errorf("invalid booking timezone: %w", err)
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.Time, loc)
	if err != nil {
		return fmt.Errorf("invalid booking date/time: %w", err)
	}

	fireAt := start.Add(-time.Duration(s.LeadHours) * time.Hour)
	if !fireAt.After(time.Now()) {
		s.Logger.Info("ScheduleReminder: appointment too soon, skipping reminder",
			zap.String("sessionID", sessionID), zap.Time("start", start))
		return nil
	}

	payload := models.ReminderPayload{
		SessionID: sessionID,
		Name:      booking.Name,
		Email:     booking.Email,
		Service:   booking.Service,
		Date:      booking.Date,
		Time:      booking.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	s.Logger.Info("ScheduleReminder: reminder queued",
		zap.String("sessionID", sessionID), zap.Time("fireAt", fireAt))
	return nil
}
