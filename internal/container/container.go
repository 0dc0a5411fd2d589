// Package container builds the application's shared components once at
// startup and hands them to the router and the commands.
package container

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/config"
	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/cache"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/messaging"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/metrics"
	pginfra "github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	PGPool *pgxpool.Pool
	DB     *sql.DB
	Redis  *redis.Client
	ES     *elasticsearch.Client
	Rabbit *messaging.Publisher

	Users repository.UserRepository
	Posts repository.PostRepository

	// Index is nil when Elasticsearch is not configured.
	Index  *search.Index
	Events event.Publisher

	UserService   *application.UserService
	PostService   *application.PostService
	HealthService *application.HealthService
}

// New connects to every configured backend. Postgres and Redis are required;
// Elasticsearch and RabbitMQ are optional and only logged when unavailable.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	c.PGPool = pool
	c.DB = pginfra.OpenDB(pool)

	rdb, err := helpers.NewRedisClient(cfg.RedisURL)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("redis url: %w", err)
	}
	c.Redis = rdb

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			logger.WithError(err).Warn("elasticsearch disabled")
		} else {
			c.ES = es
			c.Index = search.NewIndex(es, cfg.ESUsersIndex, cfg.ESPostsIndex, logger)
		}
	}

	if cfg.EventsEnabled && cfg.RabbitMQURL != "" {
		pub, err := messaging.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; falling back to inline indexing")
		} else {
			c.Rabbit = pub
		}
	}

	c.Users = pginfra.NewUserRepository(c.DB)
	c.Posts = pginfra.NewPostRepository(c.DB)
	c.Events = c.eventPublisher()

	var searcher application.Searcher
	if c.Index != nil {
		searcher = c.Index
	}
	c.UserService = application.NewUserService(c.Users, c.Events, searcher, logger)
	c.PostService = application.NewPostService(c.Posts, c.Users, c.Events, searcher, logger)

	c.HealthService = application.NewHealthService(pginfra.NewProbe(c.DB), cache.NewProbe(cfg.RedisURL), cfg.HealthProbeTimeout, logger)
	if cfg.MetricsEnabled {
		c.HealthService.Observer = metrics.ObserveProbe
	}
	return c, nil
}

// eventPublisher picks the queue when connected, otherwise indexes inline,
// otherwise drops events.
func (c *Container) eventPublisher() event.Publisher {
	var pub event.Publisher
	switch {
	case !c.Config.EventsEnabled:
		return nil
	case c.Rabbit != nil:
		pub = c.Rabbit
	case c.Index != nil:
		pub = event.PublisherFunc(c.Index.Handle)
	default:
		return nil
	}
	if c.Config.MetricsEnabled {
		pub = metrics.InstrumentPublisher(pub)
	}
	return pub
}

// Close releases every connection opened by New.
func (c *Container) Close() {
	if c.Rabbit != nil {
		c.Rabbit.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}
