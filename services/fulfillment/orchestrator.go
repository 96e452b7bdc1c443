package fulfillment

import (
	"context"
	"time"

	"bookeasy/models"

	"go.uber.org/zap"
)

// CalendarMailClient is what the orchestrator needs from the groupware
// adapter: event creation and confirmation mail, nothing more.
type CalendarMailClient interface {
	CreateEvent(ctx context.Context, booking models.BookingRequest) (string, error)
	SendConfirmation(ctx context.Context, booking models.BookingRequest) error
}

// ReminderScheduler queues an appointment reminder to fire ahead of the
// booked time. Optional; wired to the asynq client in production.
type ReminderScheduler interface {
	ScheduleReminder(booking models.BookingRequest, sessionID string) error
}

// Orchestrator runs the post-payment pipeline for verified webhook
// notifications. The payment is already captured by the time this runs,
// so no stage failure is allowed to bounce the notification back to the
// sender: Stripe retrying the webhook would re-attempt calendar and
// email without retrying the payment itself.
type Orchestrator struct {
	Client    CalendarMailClient
	Dedup     Store
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

func NewOrchestrator(client CalendarMailClient, dedup Store, reminders ReminderScheduler, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		Client:    client,
		Dedup:     dedup,
		Reminders: reminders,
		Logger:    logger,
	}
}

// Fulfill sequences calendar-event creation then confirmation email for
// a completed-payment notification. Calendar goes first so the email a
// customer reads reflects an existing meeting, but the two stages are
// independent: a calendar failure never blocks the email attempt.
// Fulfill always runs to completion and the caller always acknowledges.
func (o *Orchestrator) Fulfill(ctx context.Context, notif *models.PaymentNotification) models.FulfillmentResult {
	result := models.FulfillmentResult{
		SessionID: notif.SessionID,
		State:     models.StateVerified,
	}

	if !notif.Completed() {
		o.Logger.Debug("Fulfill: ignoring notification type", zap.String("type", notif.Type))
		o.skipAll(&result, "")
		return o.acknowledge(result)
	}

	booking, err := models.BookingFromMetadata(notif.Metadata)
	if err != nil {
		o.Logger.Error("Fulfill: rejected webhook metadata",
			zap.String("sessionID", notif.SessionID), zap.Error(err))
		o.skipAll(&result, err.Error())
		return o.acknowledge(result)
	}

	first, err := o.Dedup.MarkFulfilled(ctx, notif.SessionID)
	if err != nil {
		// Dedup store being down should not drop a paid booking; proceed
		// and accept the duplicate risk.
		o.Logger.Warn("Fulfill: dedup store unavailable, proceeding",
			zap.String("sessionID", notif.SessionID), zap.Error(err))
		first = true
	}
	if !first {
		o.Logger.Info("Fulfill: duplicate notification, skipping",
			zap.String("sessionID", notif.SessionID))
		result.Duplicate = true
		o.skipAll(&result, "already fulfilled")
		return o.acknowledge(result)
	}

	result.State = models.StateCalendarAttempted
	eventID, err := o.Client.CreateEvent(ctx, booking)
	if err != nil {
		o.Logger.Error("Fulfill: calendar event creation failed",
			zap.String("sessionID", notif.SessionID), zap.Error(err))
		result.Calendar = models.StageResult{Status: models.StageFailed, Error: err.Error()}
	} else {
		o.Logger.Info("Fulfill: calendar event created",
			zap.String("sessionID", notif.SessionID), zap.String("eventID", eventID))
		result.Calendar = models.StageResult{Status: models.StageSucceeded}
	}

	result.State = models.StateEmailAttempted
	if err := o.Client.SendConfirmation(ctx, booking); err != nil {
		o.Logger.Error("Fulfill: confirmation email failed",
			zap.String("sessionID", notif.SessionID), zap.Error(err))
		result.Email = models.StageResult{Status: models.StageFailed, Error: err.Error()}
	} else {
		o.Logger.Info("Fulfill: confirmation email sent",
			zap.String("sessionID", notif.SessionID), zap.String("email", booking.Email))
		result.Email = models.StageResult{Status: models.StageSucceeded}
	}

	result.Reminder = o.scheduleReminder(booking, notif.SessionID, result.Email)

	return o.acknowledge(result)
}

func (o *Orchestrator) scheduleReminder(booking models.BookingRequest, sessionID string, email models.StageResult) models.StageResult {
	if o.Reminders == nil || email.Status != models.StageSucceeded {
		return models.StageResult{Status: models.StageSkipped}
	}
	if err := o.Reminders.ScheduleReminder(booking, sessionID); err != nil {
		o.Logger.Error("Fulfill: reminder scheduling failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return models.StageResult{Status: models.StageFailed, Error: err.Error()}
	}
	return models.StageResult{Status: models.StageSucceeded}
}

func (o *Orchestrator) skipAll(result *models.FulfillmentResult, reason string) {
	skipped := models.StageResult{Status: models.StageSkipped, Error: reason}
	result.Calendar = skipped
	result.Email = skipped
	result.Reminder = skipped
}

func (o *Orchestrator) acknowledge(result models.FulfillmentResult) models.FulfillmentResult {
	result.State = models.StateAcknowledged
	result.CompletedAt = time.Now()
	return result
}
