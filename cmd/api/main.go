package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"letsbookit/config"
	_ "letsbookit/docs"
	"letsbookit/internal/adapters/email"
	"letsbookit/internal/clock"
	delivery "letsbookit/internal/delivery/http"
	"letsbookit/internal/delivery/http/controllers"
	"letsbookit/internal/delivery/http/middleware"
	"letsbookit/internal/repository/postgres"
	"letsbookit/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title letsbookit API
// @version 1.0
// @description Booking backend for market events and vendor stands.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	marketRepo := postgres.NewMarketRepository(db)
	standRepo := postgres.NewStandRepository(db)
	txManager := postgres.NewTxManager(db)
	clk := clock.NewSystem()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventService := services.NewEventService(eventRepo, marketRepo, txManager, clk, serviceTimeout)
	standService := services.NewStandService(standRepo, eventRepo, emailService, cfg.BookingNotifyEmail, clk, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	standController := controllers.NewStandController(logger, standService)

	mux := delivery.NewRouter(eventController, standController)
	handler := middleware.CORS(cfg.CORSOrigins,
		middleware.Metrics(
			middleware.LoggingMiddleware(logger, mux)))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
