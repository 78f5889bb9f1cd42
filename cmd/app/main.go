package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelagent/api"
	"github.com/Domenick1991/travelagent/config"
	"github.com/Domenick1991/travelagent/internal/advisor"
	"github.com/Domenick1991/travelagent/internal/bootstrap"
	"github.com/Domenick1991/travelagent/internal/cache"
	"github.com/Domenick1991/travelagent/internal/dataset"
	"github.com/Domenick1991/travelagent/internal/kafka"
	"github.com/Domenick1991/travelagent/internal/repository"
	"github.com/Domenick1991/travelagent/internal/search"
	"github.com/Domenick1991/travelagent/internal/service/trip"
	"github.com/Domenick1991/travelagent/internal/session"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("prepare booking store: %v", err)
	}

	loader := dataset.NewLoader(time.Duration(cfg.Datasets.CacheTTLSeconds) * time.Second)

	// Dataset absence is the only startup-fatal condition.
	if _, err := loader.Flights(cfg.Datasets.FlightsCSV); err != nil {
		log.Fatalf("load flights dataset: %v", err)
	}
	if _, err := loader.Hotels(cfg.Datasets.HotelsCSV); err != nil {
		log.Fatalf("load hotels dataset: %v", err)
	}

	var resultsCache search.Cache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.ResultsCacheTTL)*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unavailable, search cache disabled: %v", err)
		} else {
			resultsCache = redisCache
		}
	}

	var adv advisor.Advisor
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		adv, err = advisor.NewGeminiClient(apiKey, cfg.Advisor.Model, cfg.Advisor.BaseURL, time.Duration(cfg.Advisor.TimeoutSeconds)*time.Second)
		if err != nil {
			log.Fatalf("init advisor: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, itinerary generation disabled")
		adv = advisor.NewStub()
	}

	searchService := search.NewService(resultsCache, cfg.Search.MatchCap, cfg.Search.DisplayCap)
	sessions := session.NewStore()
	bookingRepo := repository.NewBookingRepository(pool)

	opts := []trip.TripServiceOption{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts,
			trip.WithProducer(producer),
			trip.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	tripService := trip.NewTripService(
		bookingRepo,
		searchService,
		sessions,
		loader,
		cfg.Datasets.FlightsCSV,
		cfg.Datasets.HotelsCSV,
		adv,
		opts...,
	)

	tripHandler := api.NewTripHandler(tripService)
	bookingHandler := api.NewBookingHandler(tripService)

	if err := bootstrap.Run(ctx, cfg, tripHandler, bookingHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
