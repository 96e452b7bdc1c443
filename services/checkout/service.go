package checkout

import (
	"context"
	"fmt"

	"bookeasy/config"
	"bookeasy/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// CheckoutService creates hosted payment sessions for booking requests.
type CheckoutService interface {
	CreateSession(ctx context.Context, booking models.BookingRequest) (*models.CheckoutSession, error)
}

// SessionGateway is the thin seam over the Stripe API so the service can
// be exercised in tests without network access.
type SessionGateway interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// stripeGateway calls the real Stripe Checkout API.
type stripeGateway struct{}

func (stripeGateway) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Gateway    SessionGateway
	Logger     *zap.Logger
	SuccessURL string
	CancelURL  string
}

// NewCheckoutService builds the service against the real Stripe gateway,
// with redirect URLs derived from the configured frontend base.
func NewCheckoutService(logger *zap.Logger) *DefaultCheckoutService {
	base := config.AppConfig.FrontendBaseURL
	return &DefaultCheckoutService{
		Gateway:    stripeGateway{},
		Logger:     logger,
		SuccessURL: base + "/success.html?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  base + "/booking.html",
	}
}

// CreateSession validates the booking, prices the selected tier, and asks
// Stripe for a one-time-payment checkout session carrying the booking as
// string metadata. Nothing is stored locally; Stripe holds the session.
func (s *DefaultCheckoutService) CreateSession(ctx context.Context, booking models.BookingRequest) (*models.CheckoutSession, error) {
	if missing := booking.MissingFields(); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	amount, err := PriceFor(booking.Service)
	if err != nil {
		return nil, err
	}

	label := LabelFor(booking.Service)
	description := fmt.Sprintf("%s booking for %s at %s", label, booking.Date, booking.Time)

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(booking.Email),
		SuccessURL:    stripe.String(s.SuccessURL),
		CancelURL:     stripe.String(s.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(label),
						Description: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	// Guard against transport-level retries creating two sessions for
	// one submission.
	params.SetIdempotencyKey(uuid.New().String())
	for key, val := range booking.ToMetadata() {
		params.AddMetadata(key, val)
	}

	sess, err := s.Gateway.Create(params)
	if err != nil {
		s.Logger.Error("CreateSession: stripe session creation failed",
			zap.String("service", booking.Service), zap.Error(err))
		return nil, &PaymentProviderError{Err: err}
	}

	s.Logger.Info("CreateSession: checkout session created",
		zap.String("sessionID", sess.ID), zap.String("service", booking.Service))

	return &models.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
