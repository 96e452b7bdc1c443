// File: bookeasy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookeasy/config"
	"bookeasy/cron"
	"bookeasy/handlers"
	"bookeasy/middleware"
	"bookeasy/routes"
	"bookeasy/services/checkout"
	"bookeasy/services/fulfillment"
	"bookeasy/services/graph"
	"bookeasy/services/tasks"
	"bookeasy/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitDedupCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// External clients.
	graphClient := graph.NewClient(logger)
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// Services.
	checkoutService := checkout.NewCheckoutService(logger)
	dedupStore := fulfillment.NewRedisStore(utils.GetDedupClient())
	reminderScheduler := tasks.NewReminderScheduler(asynqClient, logger)
	orchestrator := fulfillment.NewOrchestrator(graphClient, dedupStore, reminderScheduler, logger)

	// Background reminder worker.
	cron.InitReminderWorker(graphClient)
	utils.StartHealthMonitor(utils.GetDedupClient())

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Checkout: handlers.NewCheckoutHandler(checkoutService, logger),
		Webhook:  handlers.NewWebhookHandler(orchestrator, config.AppConfig.StripeWebhookSecret, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
