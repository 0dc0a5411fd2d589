package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-blog-api/config"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/messaging"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

// indexer consumes entity events from RabbitMQ and applies them to the
// Elasticsearch indices behind the search endpoints.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-indexer", cfg.Env, cfg.LogLevel)

	if !cfg.EventsEnabled {
		logger.Info("EVENTS_ENABLED=false; indexer disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	addrs := cfg.ESAddrs()
	if len(addrs) == 0 {
		log.Fatal("Elasticsearch not configured")
	}

	es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}
	index := search.NewIndex(es, cfg.ESUsersIndex, cfg.ESPostsIndex, logger)

	consumer, err := messaging.NewConsumer(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue, logger)
	if err != nil {
		log.Fatalf("amqp: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.WithField("queue", cfg.RabbitMQEventsQueue).Info("indexer listening")
	if err := consumer.Run(ctx, index.Handle); err != nil {
		logger.WithError(err).Error("consumer stopped")
		return
	}
	logger.Info("indexer exited properly")
}
