package services

import (
	"context"
	"fmt"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"github.com/loteplay/loteplay-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure ResultsServiceImpl implements ResultsService
var _ ResultsService = (*ResultsServiceImpl)(nil)

// reconcilableStatuses are the draw states a scraped result may still be
// applied to. Published draws are never touched again.
var reconcilableStatuses = []models.DrawStatus{models.DrawStatusOpen, models.DrawStatusClosed}

// ResultsServiceImpl reconciles scraped results against scheduled draws and
// hands published draws to the settlement service
type ResultsServiceImpl struct {
	scrapers          ResultsScraper
	lotteryRepo       repositories.LotteryRepository
	gameRepo          repositories.AnimalitoGameRepository
	lotteryDrawRepo   repositories.LotteryDrawRepository
	animalitoDrawRepo repositories.AnimalitoDrawRepository
	settlement        SettlementService
	now               func() time.Time
}

// NewResultsService creates a new ResultsServiceImpl
func NewResultsService(
	scrapers ResultsScraper,
	lotteryRepo repositories.LotteryRepository,
	gameRepo repositories.AnimalitoGameRepository,
	lotteryDrawRepo repositories.LotteryDrawRepository,
	animalitoDrawRepo repositories.AnimalitoDrawRepository,
	settlement SettlementService,
) *ResultsServiceImpl {
	return &ResultsServiceImpl{
		scrapers:          scrapers,
		lotteryRepo:       lotteryRepo,
		gameRepo:          gameRepo,
		lotteryDrawRepo:   lotteryDrawRepo,
		animalitoDrawRepo: animalitoDrawRepo,
		settlement:        settlement,
		now:               time.Now,
	}
}

// ProcessAnimalitoResults scrapes the animalito sources and reconciles every
// extracted result. One bad result never aborts the batch: it is recorded in
// the summary's error list and the pass continues.
func (s *ResultsServiceImpl) ProcessAnimalitoResults(ctx context.Context) models.ProcessSummary {
	summary := models.ProcessSummary{Errors: []string{}}

	results, err := s.scrapers.ScrapeAnimalitos(ctx)
	if err != nil {
		slog.Error("Animalito scraping failed", "error", err)
		summary.Errors = append(summary.Errors, fmt.Sprintf("scraping failed: %v", err))
		return summary
	}

	for _, result := range results {
		summary.Processed++
		updated, err := s.reconcileAnimalitoResult(ctx, result)
		if err != nil {
			slog.Error("Failed to reconcile animalito result", "game", result.GameName, "error", err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", result.GameName, err))
			continue
		}
		if updated {
			summary.Updated++
		}
	}

	summary.Success = len(summary.Errors) == 0
	slog.Info("Animalito results processed", "processed", summary.Processed, "updated", summary.Updated, "errors", len(summary.Errors))
	return summary
}

// ProcessLotteryResults scrapes the lottery sources and reconciles every
// extracted result
func (s *ResultsServiceImpl) ProcessLotteryResults(ctx context.Context) models.ProcessSummary {
	summary := models.ProcessSummary{Errors: []string{}}

	results, err := s.scrapers.ScrapeLotteries(ctx)
	if err != nil {
		slog.Error("Lottery scraping failed", "error", err)
		summary.Errors = append(summary.Errors, fmt.Sprintf("scraping failed: %v", err))
		return summary
	}

	for _, result := range results {
		summary.Processed++
		updated, err := s.reconcileLotteryResult(ctx, result)
		if err != nil {
			slog.Error("Failed to reconcile lottery result", "lottery", result.LotteryName, "error", err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", result.LotteryName, err))
			continue
		}
		if updated {
			summary.Updated++
		}
	}

	summary.Success = len(summary.Errors) == 0
	slog.Info("Lottery results processed", "processed", summary.Processed, "updated", summary.Updated, "errors", len(summary.Errors))
	return summary
}

// ProcessAllResults runs both categories in sequence. Categories are
// isolated: an all-sources failure on one side still lets the other side
// publish its results.
func (s *ResultsServiceImpl) ProcessAllResults(ctx context.Context) models.AllResultsSummary {
	animalitos := s.ProcessAnimalitoResults(ctx)
	lotteries := s.ProcessLotteryResults(ctx)

	summary := models.AllResultsSummary{
		Animalitos: models.CategorySummary{Processed: animalitos.Processed, Updated: animalitos.Updated},
		Lotteries:  models.CategorySummary{Processed: lotteries.Processed, Updated: lotteries.Updated},
		Errors:     append(append([]string{}, animalitos.Errors...), lotteries.Errors...),
	}
	summary.Success = animalitos.Success && lotteries.Success
	return summary
}

// GetTodayResults returns the draws published on the current date, joined
// with their catalog names
func (s *ResultsServiceImpl) GetTodayResults(ctx context.Context) (*models.TodayResults, error) {
	today := s.now()

	animalitoDraws, err := s.animalitoDrawRepo.FindPublishedByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published animalito draws: %w", err)
	}
	lotteryDraws, err := s.lotteryDrawRepo.FindPublishedByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published lottery draws: %w", err)
	}

	results := &models.TodayResults{
		Date:       today.Format("2006-01-02"),
		Animalitos: []models.PublishedAnimalitoResult{},
		Loterias:   []models.PublishedLotteryResult{},
	}

	for _, draw := range animalitoDraws {
		game, err := s.gameRepo.FindByID(ctx, draw.GameID)
		if err != nil {
			slog.Warn("Published animalito draw references unknown game", "drawId", draw.ID.Hex(), "gameId", draw.GameID.Hex())
			continue
		}
		results.Animalitos = append(results.Animalitos, models.PublishedAnimalitoResult{
			Game:   game.Name,
			Winner: draw.WinningAnimalNumber,
			Time:   draw.ScheduledTime,
		})
	}

	for _, draw := range lotteryDraws {
		lottery, err := s.lotteryRepo.FindByID(ctx, draw.LotteryID)
		if err != nil {
			slog.Warn("Published lottery draw references unknown lottery", "drawId", draw.ID.Hex(), "lotteryId", draw.LotteryID.Hex())
			continue
		}
		results.Loterias = append(results.Loterias, models.PublishedLotteryResult{
			Name:   lottery.Name,
			Winner: draw.WinningNumber,
			Time:   draw.DrawTime,
		})
	}

	return results, nil
}

// reconcileAnimalitoResult applies one scraped result to its scheduled draw.
// Returns true only when this call published the result; a result with no
// matching game or no reconcilable draw is a silent miss, not an error.
func (s *ResultsServiceImpl) reconcileAnimalitoResult(ctx context.Context, result models.AnimalitoResult) (bool, error) {
	games, err := s.gameRepo.FindByNameContains(ctx, result.GameName)
	if err != nil {
		return false, fmt.Errorf("failed to look up game %q: %w", result.GameName, err)
	}
	if len(games) == 0 {
		slog.Warn("No game matches scraped result", "game", result.GameName)
		return false, nil
	}
	game := games[0]

	drawDate, err := utils.ParseDrawDate(result.DrawDate)
	if err != nil {
		return false, fmt.Errorf("invalid draw date %q: %w", result.DrawDate, err)
	}

	draws, err := s.animalitoDrawRepo.FindByGameAndDate(ctx, game.ID, drawDate, reconcilableStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to look up draws for %q: %w", game.Name, err)
	}
	if len(draws) == 0 {
		slog.Info("No reconcilable draw for result", "game", game.Name, "date", result.DrawDate)
		return false, nil
	}
	draw := draws[0]

	published, err := s.animalitoDrawRepo.PublishResult(ctx, draw.ID, result.WinningNumber)
	if err != nil {
		return false, fmt.Errorf("failed to publish result for draw %s: %w", draw.ID.Hex(), err)
	}
	if !published {
		// Lost the race against a concurrent run; the other run settles.
		slog.Info("Draw already published", "drawId", draw.ID.Hex())
		return false, nil
	}

	slog.Info("Result published", "game", game.Name, "drawId", draw.ID.Hex(), "winner", result.WinningNumber)

	settlement, err := s.settlement.SettleAnimalitoDraw(ctx, draw.ID, result.WinningNumber)
	if err != nil {
		return true, fmt.Errorf("result published but settlement failed for draw %s: %w", draw.ID.Hex(), err)
	}
	slog.Info("Draw settled", "drawId", draw.ID.Hex(), "updated", settlement.Updated, "won", settlement.Won, "payout", settlement.TotalPayout)
	return true, nil
}

// reconcileLotteryResult applies one scraped lottery result to its scheduled draw
func (s *ResultsServiceImpl) reconcileLotteryResult(ctx context.Context, result models.LotteryResult) (bool, error) {
	lotteries, err := s.lotteryRepo.FindByNameContains(ctx, result.LotteryName)
	if err != nil {
		return false, fmt.Errorf("failed to look up lottery %q: %w", result.LotteryName, err)
	}
	if len(lotteries) == 0 {
		slog.Warn("No lottery matches scraped result", "lottery", result.LotteryName)
		return false, nil
	}
	lottery := lotteries[0]

	drawDate, err := utils.ParseDrawDate(result.DrawDate)
	if err != nil {
		return false, fmt.Errorf("invalid draw date %q: %w", result.DrawDate, err)
	}

	draws, err := s.lotteryDrawRepo.FindByLotteryAndDate(ctx, lottery.ID, drawDate, reconcilableStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to look up draws for %q: %w", lottery.Name, err)
	}
	if len(draws) == 0 {
		slog.Info("No reconcilable draw for result", "lottery", lottery.Name, "date", result.DrawDate)
		return false, nil
	}
	draw := draws[0]

	published, err := s.lotteryDrawRepo.PublishResult(ctx, draw.ID, result.WinningNumber)
	if err != nil {
		return false, fmt.Errorf("failed to publish result for draw %s: %w", draw.ID.Hex(), err)
	}
	if !published {
		slog.Info("Draw already published", "drawId", draw.ID.Hex())
		return false, nil
	}

	slog.Info("Result published", "lottery", lottery.Name, "drawId", draw.ID.Hex(), "winner", result.WinningNumber)

	settlement, err := s.settlement.SettleLotteryDraw(ctx, draw.ID, result.WinningNumber)
	if err != nil {
		return true, fmt.Errorf("result published but settlement failed for draw %s: %w", draw.ID.Hex(), err)
	}
	slog.Info("Draw settled", "drawId", draw.ID.Hex(), "updated", settlement.Updated, "won", settlement.Won, "payout", settlement.TotalPayout)
	return true, nil
}
