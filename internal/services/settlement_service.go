package services

import (
	"context"
	"fmt"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure SettlementServiceImpl implements SettlementService
var _ SettlementService = (*SettlementServiceImpl)(nil)

// SettlementServiceImpl settles draw wagers and parley tickets. All of its
// operations only ever touch pending wagers, so running them twice for the
// same outcome is harmless.
type SettlementServiceImpl struct {
	lotteryBetRepo   repositories.LotteryBetRepository
	animalitoBetRepo repositories.AnimalitoBetRepository
	matchRepo        repositories.MatchRepository
	marketRepo       repositories.MarketRepository
	legRepo          repositories.ParleyLegRepository
	ticketRepo       repositories.ParleyTicketRepository
}

// NewSettlementService creates a new SettlementServiceImpl
func NewSettlementService(
	lotteryBetRepo repositories.LotteryBetRepository,
	animalitoBetRepo repositories.AnimalitoBetRepository,
	matchRepo repositories.MatchRepository,
	marketRepo repositories.MarketRepository,
	legRepo repositories.ParleyLegRepository,
	ticketRepo repositories.ParleyTicketRepository,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		lotteryBetRepo:   lotteryBetRepo,
		animalitoBetRepo: animalitoBetRepo,
		matchRepo:        matchRepo,
		marketRepo:       marketRepo,
		legRepo:          legRepo,
		ticketRepo:       ticketRepo,
	}
}

// SettleLotteryDraw settles every pending bet on the draw. The comparison is
// an exact string match so "09" and "9" stay different plays. A failed write
// on one bet is recorded and the pass continues with the rest.
func (s *SettlementServiceImpl) SettleLotteryDraw(ctx context.Context, drawID primitive.ObjectID, winningNumber string) (models.SettlementSummary, error) {
	var summary models.SettlementSummary

	bets, err := s.lotteryBetRepo.FindPendingByDraw(ctx, drawID)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch pending bets for draw %s: %w", drawID.Hex(), err)
	}

	var lastErr error
	for _, bet := range bets {
		status := models.BetStatusLost
		paid := 0.0
		if bet.BetNumber == winningNumber {
			status = models.BetStatusWon
			paid = bet.PotentialWin
		}

		if err := s.lotteryBetRepo.Settle(ctx, bet.ID, status, paid); err != nil {
			slog.Error("Failed to settle lottery bet", "betId", bet.ID.Hex(), "error", err)
			lastErr = err
			continue
		}

		summary.Updated++
		if status == models.BetStatusWon {
			summary.Won++
			summary.TotalPayout += paid
		} else {
			summary.Lost++
		}
	}

	if lastErr != nil {
		return summary, fmt.Errorf("some bets failed to settle: %w", lastErr)
	}
	return summary, nil
}

// SettleAnimalitoDraw settles every pending bet on the draw against the
// winning animal number
func (s *SettlementServiceImpl) SettleAnimalitoDraw(ctx context.Context, drawID primitive.ObjectID, winningAnimalNumber int) (models.SettlementSummary, error) {
	var summary models.SettlementSummary

	bets, err := s.animalitoBetRepo.FindPendingByDraw(ctx, drawID)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch pending bets for draw %s: %w", drawID.Hex(), err)
	}

	var lastErr error
	for _, bet := range bets {
		status := models.BetStatusLost
		paid := 0.0
		if bet.AnimalNumber == winningAnimalNumber {
			status = models.BetStatusWon
			paid = bet.PotentialWin
		}

		if err := s.animalitoBetRepo.Settle(ctx, bet.ID, status, paid); err != nil {
			slog.Error("Failed to settle animalito bet", "betId", bet.ID.Hex(), "error", err)
			lastErr = err
			continue
		}

		summary.Updated++
		if status == models.BetStatusWon {
			summary.Won++
			summary.TotalPayout += paid
		} else {
			summary.Lost++
		}
	}

	if lastErr != nil {
		return summary, fmt.Errorf("some bets failed to settle: %w", lastErr)
	}
	return summary, nil
}

// SettleMatch resolves the pending parley legs riding on a finished match
// and re-evaluates every ticket one of those legs belongs to. A match that
// is not finished yet is a no-op, not an error.
func (s *SettlementServiceImpl) SettleMatch(ctx context.Context, matchID primitive.ObjectID) (models.ParleySettlementSummary, error) {
	var summary models.ParleySettlementSummary

	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch match %s: %w", matchID.Hex(), err)
	}
	if match.Status != models.MatchStatusFinished {
		slog.Info("Match not finished, nothing to settle", "matchId", matchID.Hex(), "status", match.Status)
		return summary, nil
	}

	markets, err := s.marketRepo.FindByMatch(ctx, matchID)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch markets for match %s: %w", matchID.Hex(), err)
	}
	if len(markets) == 0 {
		return summary, nil
	}

	marketResults := make(map[primitive.ObjectID]models.MarketResult, len(markets))
	marketIDs := make([]primitive.ObjectID, 0, len(markets))
	for _, market := range markets {
		marketResults[market.ID] = market.Result
		marketIDs = append(marketIDs, market.ID)
	}

	legs, err := s.legRepo.FindPendingByMarketIDs(ctx, marketIDs)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch pending legs for match %s: %w", matchID.Hex(), err)
	}

	// Resolve each leg, remembering which tickets were touched.
	affectedTickets := make(map[primitive.ObjectID]bool)
	for _, leg := range legs {
		result := marketResults[leg.MarketID]
		if result == models.MarketResultPending || result == "" {
			// Market on a finished match without a graded result. Leave the
			// leg pending rather than guessing an outcome.
			slog.Warn("Market on finished match still ungraded", "marketId", leg.MarketID.Hex())
			continue
		}

		status := models.BetStatusLost
		if result == models.MarketResultWon {
			status = models.BetStatusWon
		}
		if err := s.legRepo.UpdateStatus(ctx, leg.ID, status); err != nil {
			return summary, fmt.Errorf("failed to settle leg %s: %w", leg.ID.Hex(), err)
		}
		affectedTickets[leg.TicketID] = true
	}

	for ticketID := range affectedTickets {
		won, payout, err := s.evaluateParleyTicket(ctx, ticketID)
		if err != nil {
			return summary, err
		}
		summary.Evaluated++
		switch won {
		case models.BetStatusWon:
			summary.Won++
			summary.TotalPayout += payout
		case models.BetStatusLost:
			summary.Lost++
		default:
			summary.StillPending++
		}
	}

	slog.Info("Match settled", "matchId", matchID.Hex(), "tickets", summary.Evaluated, "won", summary.Won, "lost", summary.Lost, "pending", summary.StillPending)
	return summary, nil
}

// evaluateParleyTicket recomputes a ticket's status from all of its legs.
// Any lost leg loses the ticket immediately; the ticket wins only once every
// leg has won. The write happens only when the status actually changes.
func (s *SettlementServiceImpl) evaluateParleyTicket(ctx context.Context, ticketID primitive.ObjectID) (models.BetStatus, float64, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch ticket %s: %w", ticketID.Hex(), err)
	}

	legs, err := s.legRepo.FindByTicket(ctx, ticketID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch legs for ticket %s: %w", ticketID.Hex(), err)
	}
	if len(legs) == 0 {
		return ticket.Status, 0, nil
	}

	status := models.BetStatusWon
	for _, leg := range legs {
		if leg.Status == models.BetStatusLost {
			status = models.BetStatusLost
			break
		}
		if leg.Status == models.BetStatusPending {
			status = models.BetStatusPending
		}
	}

	paid := 0.0
	if status == models.BetStatusWon {
		paid = ticket.PotentialWin
		if paid == 0 {
			paid = ticket.Stake * ticket.TotalOdds
		}
	}

	if status == ticket.Status {
		return status, paid, nil
	}
	if status == models.BetStatusPending {
		// Some legs still ride on unfinished matches.
		return status, 0, nil
	}

	if err := s.ticketRepo.Settle(ctx, ticketID, status, paid); err != nil {
		return "", 0, fmt.Errorf("failed to settle ticket %s: %w", ticketID.Hex(), err)
	}
	slog.Info("Parley ticket settled", "ticketId", ticketID.Hex(), "code", ticket.TicketCode, "status", status, "paid", paid)
	return status, paid, nil
}
