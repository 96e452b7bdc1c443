package handlers

import (
	"errors"
	"net/http"

	"bookeasy/models"
	"bookeasy/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the booking form's checkout endpoint.
type CheckoutHandler struct {
	Svc    checkout.CheckoutService
	Logger *zap.Logger
}

func NewCheckoutHandler(svc checkout.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc, Logger: logger}
}

// CreateCheckoutSession handles POST /api/create-checkout-session.
// Client-facing errors (validation, tier) carry their message; upstream
// payment failures are reported generically so Stripe details never
// leak to the browser.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var booking models.BookingRequest
	if err := c.ShouldBindJSON(&booking); err != nil {
		h.Logger.Warn("CreateCheckoutSession: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.Svc.CreateSession(c.Request.Context(), booking)
	if err != nil {
		var (
			validationErr  *checkout.ValidationError
			invalidErr     *checkout.InvalidServiceError
			unsupportedErr *checkout.UnsupportedServiceError
		)
		switch {
		case errors.As(err, &validationErr), errors.As(err, &invalidErr), errors.As(err, &unsupportedErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("CreateCheckoutSession: session creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create checkout session, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID, "url": sess.URL})
}
