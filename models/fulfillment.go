package models

import "time"

// FulfillmentState tracks how far a notification made it through the
// pipeline. The orchestrator advances the state as each step runs.
type FulfillmentState string

const (
	StateReceived          FulfillmentState = "received"
	StateVerified          FulfillmentState = "verified"
	StateCalendarAttempted FulfillmentState = "calendar_attempted"
	StateEmailAttempted    FulfillmentState = "email_attempted"
	StateAcknowledged      FulfillmentState = "acknowledged"
)

// StageStatus is the outcome of one fulfillment stage.
type StageStatus string

const (
	StageSucceeded StageStatus = "succeeded"
	StageFailed    StageStatus = "failed"
	StageSkipped   StageStatus = "skipped"
)

// StageResult records one stage's outcome so failures are queryable
// instead of only appearing in text logs.
type StageResult struct {
	Status StageStatus `json:"status"`
	Error  string      `json:"error,omitempty"`
}

// FulfillmentResult is the per-notification pipeline outcome. The
// webhook is always acknowledged once verified; this struct is how
// operators see what actually happened downstream.
type FulfillmentResult struct {
	SessionID   string           `json:"sessionId"`
	State       FulfillmentState `json:"state"`
	Duplicate   bool             `json:"duplicate"`
	Calendar    StageResult      `json:"calendar"`
	Email       StageResult      `json:"email"`
	Reminder    StageResult      `json:"reminder"`
	CompletedAt time.Time        `json:"completedAt"`
}
