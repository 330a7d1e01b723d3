package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/loteplay/loteplay-backend/api/routes"
	"github.com/loteplay/loteplay-backend/internal/config"
	"github.com/loteplay/loteplay-backend/internal/handlers"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	mongorepo "github.com/loteplay/loteplay-backend/internal/repositories/mongodb"
	"github.com/loteplay/loteplay-backend/internal/scheduler"
	"github.com/loteplay/loteplay-backend/internal/scraper"
	"github.com/loteplay/loteplay-backend/internal/services"
	"github.com/loteplay/loteplay-backend/pkg/mongodb"
	"golang.org/x/exp/slog"
)

func main() {
	// Load .env when present; in production configuration comes from the
	// real environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	var lotteryRepo repositories.LotteryRepository = mongorepo.NewLotteryRepository(db)
	var gameRepo repositories.AnimalitoGameRepository = mongorepo.NewAnimalitoGameRepository(db)
	var lotteryDrawRepo repositories.LotteryDrawRepository = mongorepo.NewLotteryDrawRepository(db)
	var animalitoDrawRepo repositories.AnimalitoDrawRepository = mongorepo.NewAnimalitoDrawRepository(db)
	var lotteryBetRepo repositories.LotteryBetRepository = mongorepo.NewLotteryBetRepository(db)
	var animalitoBetRepo repositories.AnimalitoBetRepository = mongorepo.NewAnimalitoBetRepository(db)
	var matchRepo repositories.MatchRepository = mongorepo.NewMatchRepository(db)
	var marketRepo repositories.MarketRepository = mongorepo.NewMarketRepository(db)
	var legRepo repositories.ParleyLegRepository = mongorepo.NewParleyLegRepository(db)
	var ticketRepo repositories.ParleyTicketRepository = mongorepo.NewParleyTicketRepository(db)

	// Initialize the scraping pipeline
	scraperCfg := scraper.Config{
		MaxRetries:  cfg.Scraper.MaxRetries,
		BackoffBase: time.Duration(cfg.Scraper.BackoffBaseSeconds) * time.Second,
		Timeout:     time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second,
	}
	scrapers := scraper.NewResultScrapers(
		scraper.NewChromeFetcher(),
		scraperCfg,
		cfg.Scraper.AnimalitoSources,
		cfg.Scraper.LotterySources,
	)

	// Initialize services
	settlementService := services.NewSettlementService(lotteryBetRepo, animalitoBetRepo, matchRepo, marketRepo, legRepo, ticketRepo)
	resultsService := services.NewResultsService(scrapers, lotteryRepo, gameRepo, lotteryDrawRepo, animalitoDrawRepo, settlementService)

	// Initialize and start the scheduler
	sched := scheduler.New(resultsService, scheduler.Config{
		CatchAllInterval: time.Duration(cfg.Scheduler.CatchAllMinutes) * time.Minute,
		AnimalitoTimes:   cfg.Scheduler.AnimalitoTimes,
		LotteryTimes:     cfg.Scheduler.LotteryTimes,
		RunTimeout:       time.Duration(cfg.Scheduler.RunTimeoutMinutes) * time.Minute,
	})
	if cfg.Scheduler.Enabled {
		if err := sched.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	} else {
		slog.Warn("Scheduler disabled, results only process on demand")
	}

	// Initialize handlers and router
	resultsHandler := handlers.NewResultsHandler(resultsService, sched)
	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		ResultsHandler: resultsHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("Server exiting")
}

// setupLogger installs the process-wide structured logger
func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
