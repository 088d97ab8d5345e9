package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"devfolio/adapters/event"
	"devfolio/adapters/persistence"
	"devfolio/internal/application/service"
	portfolioUC "devfolio/internal/application/usecase/portfolio"
	"devfolio/internal/config"
	"devfolio/pkg/logger"
)

// The worker re-primes the cached public view after every entity write so
// the next visitor gets a warm cache instead of paying the fan-out.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting devfolio worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, appLogger)
	interestRepo := persistence.NewPostgresInterestRepo(dbPool, appLogger)

	viewCache := persistence.NewRedisViewCache(redisClient, appLogger)
	aggregateUseCase := portfolioUC.NewAggregateUseCase(
		profileRepo,
		educationRepo,
		experienceRepo,
		projectRepo,
		skillRepo,
		certificationRepo,
		interestRepo,
		viewCache,
		appLogger,
	)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-view-rebuilder",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening on topic '" + event.TopicPortfolioEvents + "'...")

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var ev service.PortfolioEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err)
			commitMessage(consumer, msg, appLogger)
			continue
		}

		appLogger.Info("Rebuilding public view after " + ev.Entity + " " + ev.Action)

		// Drop whatever is cached, then reassemble; ExecutePublic re-primes
		// the cache when the rebuild is clean.
		if err := viewCache.InvalidatePublicView(ctx); err != nil {
			appLogger.Error("Failed to invalidate cached view", err)
		}
		if _, err := aggregateUseCase.ExecutePublic(ctx); err != nil {
			appLogger.Error("Failed to rebuild public view", err)
			continue
		}

		commitMessage(consumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
