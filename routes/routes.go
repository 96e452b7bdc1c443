package routes

import (
	"time"

	"bookeasy/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router needs.
type HandlerBundle struct {
	Checkout *handlers.CheckoutHandler
	Webhook  *handlers.WebhookHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here. The booking form is a
	// static page served from a different origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/create-checkout-session", hb.Checkout.CreateCheckoutSession)
		api.POST("/webhook", hb.Webhook.HandleWebhook)
		api.GET("/health", handlers.HealthHandler)
	}
}
