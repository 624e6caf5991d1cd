package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v5"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"

	"github.com/Abdul1ayev/Tickets/config"
	"github.com/Abdul1ayev/Tickets/handlers"
	"github.com/Abdul1ayev/Tickets/internal/store"
	_ "github.com/Abdul1ayev/Tickets/migrations"
	"github.com/Abdul1ayev/Tickets/monitoring"
	"github.com/Abdul1ayev/Tickets/security"
	"github.com/Abdul1ayev/Tickets/services"
	"github.com/Abdul1ayev/Tickets/utils"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	// Initialize PubNub. Without publish keys the notifier degrades to
	// a no-op and the booking flow runs without realtime updates.
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey

		pn = pubnub.NewPubNub(pnConfig)
	}
	notifier := services.NewNotifier(pn, cfg.InventoryChannel)

	// Initialize services
	ticketStore := monitoring.InstrumentStore(store.NewPocketBaseClient(app))
	bookingService := services.NewBookingService(ticketStore, notifier)
	ticketService := services.NewTicketService(ticketStore, notifier)
	catalogService := services.NewCatalogService(cfg, redisClient)
	limiter := security.NewRateLimiter(redisClient, cfg.BuyRateLimit, cfg.BuyRateWindow)

	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(app, bookingService, limiter)
	adminHandler := handlers.NewAdminHandler(app, ticketService)
	catalogHandler := handlers.NewCatalogHandler(app, catalogService)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background tasks
	monitor := monitoring.NewMonitor(ticketStore, cfg.MonitorInterval)
	go monitor.Run(ctx)

	// Setup graceful shutdown
	go handleShutdown(cancel)

	if cfg.EnableMetrics {
		go startMetricsServer(cfg.MetricsPort)
	}

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		// Public booking endpoints
		e.Router.GET("/api/v1/tickets", bookingHandler.ListTickets)
		e.Router.GET("/api/v1/tickets/search", bookingHandler.SearchTickets)
		e.Router.POST("/api/v1/tickets/{id}/buy", bookingHandler.BuyTicket)

		// Admin endpoints
		e.Router.GET("/api/v1/admin/tickets", adminHandler.ListTickets)
		e.Router.POST("/api/v1/admin/tickets", adminHandler.SaveTicket)
		e.Router.DELETE("/api/v1/admin/tickets/{id}", adminHandler.DeleteTicket)
		e.Router.GET("/api/v1/admin/tickets/options", adminHandler.GetFormOptions)
		e.Router.GET("/api/v1/admin/dashboard", adminHandler.GetDashboard)

		// Catalog endpoint
		e.Router.GET("/api/v1/catalog/{categoryId}", catalogHandler.GetCategory)

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(503, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(200, map[string]string{"status": "healthy"})
		})

		log.Println("Server routes registered")

		return e.Next()
	})

	// Start server
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
	return nil
}

// startMetricsServer exposes prometheus metrics on a separate port
func startMetricsServer(port string) {
	e := echo.New()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := &http.Server{
		Addr:    ":" + port,
		Handler: e,
	}

	log.Printf("Metrics server listening on :%s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Metrics server stopped: %v", err)
	}
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
