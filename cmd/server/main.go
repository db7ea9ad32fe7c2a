package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dealersurvey/config"
	"dealersurvey/internal/cache"
	"dealersurvey/internal/repository"
	"dealersurvey/internal/service"
	"dealersurvey/internal/transport/rest"
	"dealersurvey/internal/transport/ws"
)

// @title Dealer Product Survey API
// @version 1.0
// @description Collects questionnaire answers, ranks dealership products and submits results to the collector
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if cfg.UseMockCollector {
		log.Println("Collector: mock mode forced via USE_MOCK_COLLECTOR")
	} else {
		log.Printf("Collector endpoint: %s", cfg.CollectorEndpoint)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("dealersurvey")

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepo(db)
	attemptRepo := repository.NewAttemptRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	statsCache := cache.NewStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	scoringSvc := service.NewScoringService()
	catalogSvc := service.NewCatalogService(catalogRepo)
	sessionSvc := service.NewSessionService(sessionCache, catalogRepo, authSvc, nil)
	collector := service.NewCollectorClient(cfg.CollectorEndpoint, cfg.UseMockCollector, cfg.CollectorTimeout)
	submitSvc := service.NewSubmitService(sessionCache, catalogRepo, attemptRepo, statsCache, scoringSvc, collector, nil)
	statsSvc := service.NewStatsService(statsCache, attemptRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	submitSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		CatalogService: catalogSvc,
		SubmitService:  submitSvc,
		StatsService:   statsSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/questions")
		log.Println("  POST /v1/sessions?dealer_id=")
		log.Println("  PUT  /v1/sessions/respondent")
		log.Println("  PUT  /v1/sessions/answers/{index}")
		log.Println("  POST /v1/sessions/reset")
		log.Println("  POST /v1/sessions/submit")
		log.Println("  GET  /v1/stats?dealer_id=")
		log.Println("  GET  /v1/attempts?dealer_id=")
		log.Println("  WS   /v1/ws/feed?dealer_id=")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
