package services

import (
	"context"

	"github.com/loteplay/loteplay-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResultsService defines the interface for result reconciliation operations
type ResultsService interface {
	// ProcessAnimalitoResults scrapes the animalito sources and reconciles
	// every extracted result against today's scheduled draws
	ProcessAnimalitoResults(ctx context.Context) models.ProcessSummary

	// ProcessLotteryResults scrapes the lottery sources and reconciles
	// every extracted result against today's scheduled draws
	ProcessLotteryResults(ctx context.Context) models.ProcessSummary

	// ProcessAllResults runs both categories in sequence; a failure in one
	// category never prevents the other from running
	ProcessAllResults(ctx context.Context) models.AllResultsSummary

	// GetTodayResults returns everything published on the current date
	GetTodayResults(ctx context.Context) (*models.TodayResults, error)
}

// SettlementService defines the interface for wager settlement operations
type SettlementService interface {
	// SettleLotteryDraw settles every pending bet on a lottery draw against
	// the winning number (exact string match, leading zeros significant)
	SettleLotteryDraw(ctx context.Context, drawID primitive.ObjectID, winningNumber string) (models.SettlementSummary, error)

	// SettleAnimalitoDraw settles every pending bet on an animalito draw
	// against the winning animal number
	SettleAnimalitoDraw(ctx context.Context, drawID primitive.ObjectID, winningAnimalNumber int) (models.SettlementSummary, error)

	// SettleMatch settles the pending parley legs riding on a finished
	// match's markets and re-evaluates every affected ticket
	SettleMatch(ctx context.Context, matchID primitive.ObjectID) (models.ParleySettlementSummary, error)
}

// ResultsScraper abstracts the scraping pipeline so the results service can
// be exercised without a browser
type ResultsScraper interface {
	ScrapeAnimalitos(ctx context.Context) ([]models.AnimalitoResult, error)
	ScrapeLotteries(ctx context.Context) ([]models.LotteryResult, error)
}
