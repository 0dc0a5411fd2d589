package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/config"
	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/internal/container"
	pginfra "github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx := context.Background()
	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	defer c.Close()

	seeder := &application.Seeder{Users: c.Users, Posts: c.Posts, Events: c.Events, Logger: logger}
	res, err := seeder.Run(ctx)
	if err != nil {
		helpers.LogError(logger, "seeding failed", err, nil)
		return
	}
	if res.Skipped {
		logger.Info("database already seeded; skipping")
		return
	}
	names := make([]string, 0, len(res.Users))
	for _, u := range res.Users {
		names = append(names, u.Name())
	}
	titles := make([]string, 0, len(res.Posts))
	for _, p := range res.Posts {
		titles = append(titles, p.Title())
	}
	helpers.LogInfo(logger, "seeding completed", logrus.Fields{"users": names, "posts": titles})
}
