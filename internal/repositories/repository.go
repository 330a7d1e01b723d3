package repositories

import (
	"context"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LotteryRepository defines the interface for lottery catalog operations
type LotteryRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lottery, error)
	// FindByNameContains matches lotteries whose name contains the given
	// fragment, case-insensitive. Used to resolve scraped category names.
	FindByNameContains(ctx context.Context, name string) ([]*models.Lottery, error)
	FindActive(ctx context.Context) ([]*models.Lottery, error)
}

// AnimalitoGameRepository defines the interface for animalito game catalog operations
type AnimalitoGameRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AnimalitoGame, error)
	FindByNameContains(ctx context.Context, name string) ([]*models.AnimalitoGame, error)
	FindActive(ctx context.Context) ([]*models.AnimalitoGame, error)
}

// LotteryDrawRepository defines the interface for lottery draw operations
type LotteryDrawRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LotteryDraw, error)
	// FindByLotteryAndDate returns the lottery's draws whose drawDate falls
	// on the given calendar day and whose status is one of statuses.
	FindByLotteryAndDate(ctx context.Context, lotteryID primitive.ObjectID, date time.Time, statuses []models.DrawStatus) ([]*models.LotteryDraw, error)
	FindPublishedByDate(ctx context.Context, date time.Time) ([]*models.LotteryDraw, error)
	// PublishResult atomically sets the winning number and transitions the
	// draw to result_published, but only while the draw is still open or
	// closed. Returns false when the draw was already published (or gone),
	// which makes duplicate reconciliation runs a no-op.
	PublishResult(ctx context.Context, id primitive.ObjectID, winningNumber string) (bool, error)
}

// AnimalitoDrawRepository defines the interface for animalito draw operations
type AnimalitoDrawRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AnimalitoDraw, error)
	FindByGameAndDate(ctx context.Context, gameID primitive.ObjectID, date time.Time, statuses []models.DrawStatus) ([]*models.AnimalitoDraw, error)
	FindPublishedByDate(ctx context.Context, date time.Time) ([]*models.AnimalitoDraw, error)
	PublishResult(ctx context.Context, id primitive.ObjectID, winningAnimalNumber int) (bool, error)
}

// LotteryBetRepository defines the interface for lottery wager operations
type LotteryBetRepository interface {
	FindPendingByDraw(ctx context.Context, drawID primitive.ObjectID) ([]*models.LotteryBet, error)
	// Settle writes the terminal status and payout of a single bet
	Settle(ctx context.Context, id primitive.ObjectID, status models.BetStatus, paidAmount float64) error
}

// AnimalitoBetRepository defines the interface for animalito wager operations
type AnimalitoBetRepository interface {
	FindPendingByDraw(ctx context.Context, drawID primitive.ObjectID) ([]*models.AnimalitoBet, error)
	Settle(ctx context.Context, id primitive.ObjectID, status models.BetStatus, paidAmount float64) error
}

// MatchRepository defines the interface for sports fixture operations
type MatchRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
}

// MarketRepository defines the interface for match market operations
type MarketRepository interface {
	FindByMatch(ctx context.Context, matchID primitive.ObjectID) ([]*models.Market, error)
}

// ParleyLegRepository defines the interface for parley leg operations
type ParleyLegRepository interface {
	FindPendingByMarketIDs(ctx context.Context, marketIDs []primitive.ObjectID) ([]*models.ParleyLeg, error)
	FindByTicket(ctx context.Context, ticketID primitive.ObjectID) ([]*models.ParleyLeg, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BetStatus) error
}

// ParleyTicketRepository defines the interface for parley ticket operations
type ParleyTicketRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ParleyTicket, error)
	Settle(ctx context.Context, id primitive.ObjectID, status models.BetStatus, paidAmount float64) error
}
