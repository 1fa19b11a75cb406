package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	availabilityapp "premiere/internal/app/handlers/availability"
	pricingapp "premiere/internal/app/handlers/pricing"
	propertiesapp "premiere/internal/app/handlers/properties"
	reviewsapp "premiere/internal/app/handlers/reviews"
	appoutbox "premiere/internal/app/outbox"
	kafkabroker "premiere/internal/infra/broker/kafka"
	"premiere/internal/infra/config"
	mongodb "premiere/internal/infra/db/mongo"
	ginserver "premiere/internal/infra/http/gin"
	"premiere/internal/infra/obs"
	"premiere/internal/infra/outbox"
	"premiere/internal/infra/ownerrez"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	db, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connect failed", "error", err)
		os.Exit(1)
	}

	propertyRepo := mongodb.NewPropertyRepository(db.DB)
	reviewRepo := mongodb.NewReviewRepository(db.DB)
	outboxStore := outbox.NewStore(db.DB)
	encoder := appoutbox.JSONEventEncoder{}

	rates := &ownerrez.Client{
		BaseURL:    cfg.OwnerRezBaseURL,
		Username:   cfg.OwnerRezUsername,
		Token:      cfg.OwnerRezToken,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     logger,
	}

	batchHandler := &pricingapp.BatchQuoteHandler{
		Fetcher:     rates,
		Logger:      logger,
		MaxInFlight: cfg.UpstreamMaxFetches,
		Limiter:     rate.NewLimiter(rate.Limit(cfg.UpstreamRatePerSec), cfg.UpstreamRatePerSec),
	}

	handlers := ginserver.Handlers{
		Pricing: ginserver.PricingHandler{
			Batch:  batchHandler,
			Quote:  &pricingapp.PropertyQuoteHandler{Fetcher: rates, Properties: propertyRepo, Logger: logger},
			Logger: logger,
		},
		Availability: ginserver.AvailabilityHandler{
			Calendars: &availabilityapp.GetCalendarHandler{Fetcher: rates, Properties: propertyRepo, Logger: logger},
		},
		Property: ginserver.PropertyHandler{
			Creator: &propertiesapp.CreatePropertyHandler{Repo: propertyRepo, Outbox: outboxStore, Encoder: encoder, Logger: logger},
			Updater: &propertiesapp.UpdatePropertyHandler{Repo: propertyRepo, Outbox: outboxStore, Encoder: encoder, Logger: logger},
			Deleter: &propertiesapp.DeletePropertyHandler{Repo: propertyRepo, Outbox: outboxStore, Encoder: encoder, Logger: logger},
			Getter:  &propertiesapp.GetPropertyHandler{Repo: propertyRepo},
			Lister:  &propertiesapp.ListPropertiesHandler{Repo: propertyRepo},
		},
		Review: ginserver.ReviewHandler{
			Submitter: &reviewsapp.SubmitReviewHandler{
				Reviews:    reviewRepo,
				Properties: propertyRepo,
				Outbox:     outboxStore,
				Encoder:    encoder,
				Logger:     logger,
			},
			Lister: &reviewsapp.ListReviewsHandler{Reviews: reviewRepo},
			Logger: logger,
		},
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.Ping(pingCtx)
		},
	}, handlers)

	startOutboxWorker(ctx, cfg, outboxStore, logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// startOutboxWorker begins publishing domain events to Kafka. Without brokers
// configured events stay queued in the outbox collection.
func startOutboxWorker(ctx context.Context, cfg config.Config, store *outbox.Store, logger *slog.Logger) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set, outbox publishing disabled")
		return
	}
	producer, err := kafkabroker.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Error("kafka producer init failed, outbox publishing disabled", "error", err)
		return
	}
	worker := &outbox.Worker{
		Store:       store,
		Producer:    producer,
		Interval:    cfg.OutboxPollInterval,
		TopicPrefix: cfg.KafkaTopicPrefix,
		Source:      "app://premiere",
		Backoff:     cfg.RetryBackoff,
	}
	go func() {
		defer producer.Close()
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("outbox worker stopped", "error", err)
		}
	}()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
