package handlers

import (
	"net/http"

	"bookeasy/models"
	"bookeasy/services/fulfillment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Verifier authenticates a raw webhook payload. Matches the signature of
// fulfillment.VerifyNotification; swappable in tests.
type Verifier func(payload []byte, sigHeader, secret string) (*models.PaymentNotification, error)

// WebhookHandler receives asynchronous payment notifications.
type WebhookHandler struct {
	Orchestrator *fulfillment.Orchestrator
	Verify       Verifier
	Secret       string
	Logger       *zap.Logger
}

func NewWebhookHandler(orch *fulfillment.Orchestrator, secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		Orchestrator: orch,
		Verify:       fulfillment.VerifyNotification,
		Secret:       secret,
		Logger:       logger,
	}
}

// HandleWebhook handles POST /api/webhook. The body is read raw before
// any parsing; signature verification runs over those exact bytes. A
// verification failure answers 400 so Stripe redelivers. Once verified,
// the response is always 200: fulfillment failures are logged, never
// bounced back to the sender.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		h.Logger.Warn("HandleWebhook: failed to read request body", zap.Error(err))
		c.String(http.StatusBadRequest, "failed to read request body")
		return
	}

	notif, err := h.Verify(payload, c.GetHeader("Stripe-Signature"), h.Secret)
	if err != nil {
		h.Logger.Warn("HandleWebhook: webhook rejected", zap.Error(err))
		c.String(http.StatusBadRequest, "webhook verification failed")
		return
	}

	result := h.Orchestrator.Fulfill(c.Request.Context(), notif)
	h.Logger.Info("HandleWebhook: notification processed",
		zap.String("sessionID", result.SessionID),
		zap.String("type", notif.Type),
		zap.Bool("duplicate", result.Duplicate),
		zap.String("calendar", string(result.Calendar.Status)),
		zap.String("email", string(result.Email.Status)),
		zap.String("reminder", string(result.Reminder.Status)))

	c.JSON(http.StatusOK, gin.H{"received": true})
}
