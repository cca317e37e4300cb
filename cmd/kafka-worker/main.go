package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	callLogWorker "ialynk-server/internal/calllog/worker"
	"ialynk-server/internal/clients/kafka"
	"ialynk-server/internal/clients/mail"
	redisClient "ialynk-server/internal/clients/redis"
	"ialynk-server/internal/config"
	"ialynk-server/internal/email"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting call log worker...")

	if !cfg.Kafka.Enabled {
		logger.Fatal(ctx, "call log worker needs Kafka", errors.New("KAFKA_ENABLED is not true"))
	}

	// Initialize store
	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}
	defer dataStore.Close()

	// Agency notifications are optional
	var notifier callLogWorker.Notifier
	if cfg.Services.ResendAPIKey != "" && cfg.Services.AgencyNotifyEmail != "" {
		mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
		if err != nil {
			logger.Fatal(ctx, "failed to create resend client", err)
		}
		notifier = email.New(mailClient, logger)
	} else {
		logger.Warn(ctx, "RESEND_API_KEY or AGENCY_NOTIFY_EMAIL is not set, call summaries will not be emailed")
	}

	// Realtime notifications are optional
	var realtime callLogWorker.RealtimePublisher
	rdb, err := redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to create redis client", err)
	}
	if rdb != nil {
		defer rdb.Close()
		realtime = rdb
	}

	worker := callLogWorker.New(callLogWorker.Config{
		NotifyEmail:     cfg.Services.AgencyNotifyEmail,
		RealtimeChannel: cfg.Redis.RealtimeChannel,
		WebAppURI:       cfg.Services.WebAppURI,
	}, &dataStore, notifier, realtime, logger)

	consumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.CallTopic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)
	defer consumer.Close()

	logger.Info(ctx, fmt.Sprintf(`Call log worker configuration:
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s
  - Realtime channel: %s (redis enabled: %t)`,
		cfg.Kafka.Brokers, cfg.Kafka.CallTopic, cfg.Kafka.ConsumerGroup, cfg.Redis.RealtimeChannel, rdb != nil))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info(ctx, "Received shutdown signal, stopping worker...")
		cancel()
	}()

	// Messages of one call share a partition key and are handled in order.
	if err := consumer.ConsumeEvents(ctx, worker.Process); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "call log consumer stopped with error", err)
	}

	logger.Info(ctx, "Call log worker stopped")
}
