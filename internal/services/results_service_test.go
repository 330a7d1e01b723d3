package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Fakes ---

type fakeScrapers struct {
	animalitos    []models.AnimalitoResult
	animalitosErr error
	lotteries     []models.LotteryResult
	lotteriesErr  error
}

func (f *fakeScrapers) ScrapeAnimalitos(_ context.Context) ([]models.AnimalitoResult, error) {
	return f.animalitos, f.animalitosErr
}

func (f *fakeScrapers) ScrapeLotteries(_ context.Context) ([]models.LotteryResult, error) {
	return f.lotteries, f.lotteriesErr
}

type fakeGameRepo struct {
	games []*models.AnimalitoGame
}

func (r *fakeGameRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.AnimalitoGame, error) {
	for _, g := range r.games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, fmt.Errorf("game not found")
}

func (r *fakeGameRepo) FindByNameContains(_ context.Context, name string) ([]*models.AnimalitoGame, error) {
	var out []*models.AnimalitoGame
	for _, g := range r.games {
		if strings.Contains(strings.ToLower(g.Name), strings.ToLower(name)) ||
			strings.Contains(strings.ToLower(name), strings.ToLower(g.Name)) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGameRepo) FindActive(_ context.Context) ([]*models.AnimalitoGame, error) {
	return r.games, nil
}

type fakeLotteryRepo struct {
	lotteries []*models.Lottery
}

func (r *fakeLotteryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Lottery, error) {
	for _, l := range r.lotteries {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("lottery not found")
}

func (r *fakeLotteryRepo) FindByNameContains(_ context.Context, name string) ([]*models.Lottery, error) {
	var out []*models.Lottery
	for _, l := range r.lotteries {
		if strings.Contains(strings.ToLower(l.Name), strings.ToLower(name)) ||
			strings.Contains(strings.ToLower(name), strings.ToLower(l.Name)) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLotteryRepo) FindActive(_ context.Context) ([]*models.Lottery, error) {
	return r.lotteries, nil
}

type fakeAnimalitoDrawRepo struct {
	draws []*models.AnimalitoDraw
}

func (r *fakeAnimalitoDrawRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.AnimalitoDraw, error) {
	for _, d := range r.draws {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("draw not found")
}

func (r *fakeAnimalitoDrawRepo) FindByGameAndDate(_ context.Context, gameID primitive.ObjectID, date time.Time, statuses []models.DrawStatus) ([]*models.AnimalitoDraw, error) {
	var out []*models.AnimalitoDraw
	for _, d := range r.draws {
		if d.GameID == gameID && sameDay(d.DrawDate, date) && statusIn(d.Status, statuses) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeAnimalitoDrawRepo) FindPublishedByDate(_ context.Context, date time.Time) ([]*models.AnimalitoDraw, error) {
	var out []*models.AnimalitoDraw
	for _, d := range r.draws {
		if sameDay(d.DrawDate, date) && d.Status == models.DrawStatusResultPublished {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeAnimalitoDrawRepo) PublishResult(_ context.Context, id primitive.ObjectID, winningAnimalNumber int) (bool, error) {
	for _, d := range r.draws {
		if d.ID == id && (d.Status == models.DrawStatusOpen || d.Status == models.DrawStatusClosed) {
			d.Status = models.DrawStatusResultPublished
			d.WinningAnimalNumber = winningAnimalNumber
			return true, nil
		}
	}
	return false, nil
}

type fakeLotteryDrawRepo struct {
	draws []*models.LotteryDraw
}

func (r *fakeLotteryDrawRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.LotteryDraw, error) {
	for _, d := range r.draws {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("draw not found")
}

func (r *fakeLotteryDrawRepo) FindByLotteryAndDate(_ context.Context, lotteryID primitive.ObjectID, date time.Time, statuses []models.DrawStatus) ([]*models.LotteryDraw, error) {
	var out []*models.LotteryDraw
	for _, d := range r.draws {
		if d.LotteryID == lotteryID && sameDay(d.DrawDate, date) && statusIn(d.Status, statuses) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeLotteryDrawRepo) FindPublishedByDate(_ context.Context, date time.Time) ([]*models.LotteryDraw, error) {
	var out []*models.LotteryDraw
	for _, d := range r.draws {
		if sameDay(d.DrawDate, date) && d.Status == models.DrawStatusResultPublished {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeLotteryDrawRepo) PublishResult(_ context.Context, id primitive.ObjectID, winningNumber string) (bool, error) {
	for _, d := range r.draws {
		if d.ID == id && (d.Status == models.DrawStatusOpen || d.Status == models.DrawStatusClosed) {
			d.Status = models.DrawStatusResultPublished
			d.WinningNumber = winningNumber
			return true, nil
		}
	}
	return false, nil
}

type fakeSettlement struct {
	lotteryCalls   []primitive.ObjectID
	animalitoCalls []primitive.ObjectID
}

func (f *fakeSettlement) SettleLotteryDraw(_ context.Context, drawID primitive.ObjectID, _ string) (models.SettlementSummary, error) {
	f.lotteryCalls = append(f.lotteryCalls, drawID)
	return models.SettlementSummary{}, nil
}

func (f *fakeSettlement) SettleAnimalitoDraw(_ context.Context, drawID primitive.ObjectID, _ int) (models.SettlementSummary, error) {
	f.animalitoCalls = append(f.animalitoCalls, drawID)
	return models.SettlementSummary{}, nil
}

func (f *fakeSettlement) SettleMatch(_ context.Context, _ primitive.ObjectID) (models.ParleySettlementSummary, error) {
	return models.ParleySettlementSummary{}, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func statusIn(status models.DrawStatus, statuses []models.DrawStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// --- Fixture ---

type resultsFixture struct {
	svc            *ResultsServiceImpl
	scrapers       *fakeScrapers
	games          *fakeGameRepo
	lotteries      *fakeLotteryRepo
	animalitoDraws *fakeAnimalitoDrawRepo
	lotteryDraws   *fakeLotteryDrawRepo
	settlement     *fakeSettlement
}

func newResultsFixture() *resultsFixture {
	f := &resultsFixture{
		scrapers:       &fakeScrapers{},
		games:          &fakeGameRepo{},
		lotteries:      &fakeLotteryRepo{},
		animalitoDraws: &fakeAnimalitoDrawRepo{},
		lotteryDraws:   &fakeLotteryDrawRepo{},
		settlement:     &fakeSettlement{},
	}
	f.svc = NewResultsService(f.scrapers, f.lotteries, f.games, f.lotteryDraws, f.animalitoDraws, f.settlement)
	return f
}

var testDay = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func (f *resultsFixture) addGame(name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.games.games = append(f.games.games, &models.AnimalitoGame{ID: id, Name: name, Active: true})
	return id
}

func (f *resultsFixture) addAnimalitoDraw(gameID primitive.ObjectID, status models.DrawStatus) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.animalitoDraws.draws = append(f.animalitoDraws.draws, &models.AnimalitoDraw{
		ID: id, GameID: gameID, DrawDate: testDay, ScheduledTime: "12:00:00", Status: status,
	})
	return id
}

func (f *resultsFixture) addLottery(name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.lotteries.lotteries = append(f.lotteries.lotteries, &models.Lottery{ID: id, Name: name, Active: true})
	return id
}

func (f *resultsFixture) addLotteryDraw(lotteryID primitive.ObjectID, status models.DrawStatus) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.lotteryDraws.draws = append(f.lotteryDraws.draws, &models.LotteryDraw{
		ID: id, LotteryID: lotteryID, DrawDate: testDay, DrawTime: "13:00:00", Status: status,
	})
	return id
}

// --- Tests ---

func TestProcessAnimalitoResults_PublishesAndSettles(t *testing.T) {
	f := newResultsFixture()
	gameID := f.addGame("Animalitos 12pm")
	drawID := f.addAnimalitoDraw(gameID, models.DrawStatusClosed)
	f.scrapers.animalitos = []models.AnimalitoResult{
		{GameName: "Animalitos 12pm", WinningNumber: 25, DrawDate: "2025-01-10", ScheduledTime: "12:00:00"},
	}

	summary := f.svc.ProcessAnimalitoResults(context.Background())

	if !summary.Success || summary.Processed != 1 || summary.Updated != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	draw := f.animalitoDraws.draws[0]
	if draw.Status != models.DrawStatusResultPublished || draw.WinningAnimalNumber != 25 {
		t.Errorf("draw not published: %+v", draw)
	}
	if len(f.settlement.animalitoCalls) != 1 || f.settlement.animalitoCalls[0] != drawID {
		t.Errorf("settlement not invoked for draw: %v", f.settlement.animalitoCalls)
	}
}

func TestProcessAnimalitoResults_RerunIsIdempotent(t *testing.T) {
	f := newResultsFixture()
	gameID := f.addGame("Animalitos 12pm")
	f.addAnimalitoDraw(gameID, models.DrawStatusOpen)
	f.scrapers.animalitos = []models.AnimalitoResult{
		{GameName: "Animalitos 12pm", WinningNumber: 25, DrawDate: "2025-01-10"},
	}

	first := f.svc.ProcessAnimalitoResults(context.Background())
	second := f.svc.ProcessAnimalitoResults(context.Background())

	if first.Updated != 1 {
		t.Errorf("first run should publish: %+v", first)
	}
	if !second.Success || second.Updated != 0 {
		t.Errorf("second run should publish nothing: %+v", second)
	}
	if len(f.settlement.animalitoCalls) != 1 {
		t.Errorf("settlement should run exactly once, got %d", len(f.settlement.animalitoCalls))
	}
}

func TestProcessAnimalitoResults_UnknownGameIsMissNotError(t *testing.T) {
	f := newResultsFixture()
	f.scrapers.animalitos = []models.AnimalitoResult{
		{GameName: "Ruleta Salvaje", WinningNumber: 3, DrawDate: "2025-01-10"},
	}

	summary := f.svc.ProcessAnimalitoResults(context.Background())

	if !summary.Success || summary.Processed != 1 || summary.Updated != 0 {
		t.Errorf("unmatched result should be a silent miss: %+v", summary)
	}
}

func TestProcessAnimalitoResults_ScrapeFailure(t *testing.T) {
	f := newResultsFixture()
	f.scrapers.animalitosErr = fmt.Errorf("all sources failed")

	summary := f.svc.ProcessAnimalitoResults(context.Background())

	if summary.Success || len(summary.Errors) != 1 {
		t.Errorf("scrape failure should fail the summary: %+v", summary)
	}
}

func TestProcessLotteryResults_ExactNumberKept(t *testing.T) {
	f := newResultsFixture()
	lotteryID := f.addLottery("Lotería del Zulia")
	f.addLotteryDraw(lotteryID, models.DrawStatusClosed)
	f.scrapers.lotteries = []models.LotteryResult{
		{LotteryName: "Lotería del Zulia", WinningNumber: "09", DrawDate: "2025-01-10", DrawTime: "13:00:00"},
	}

	summary := f.svc.ProcessLotteryResults(context.Background())

	if !summary.Success || summary.Updated != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if f.lotteryDraws.draws[0].WinningNumber != "09" {
		t.Errorf("leading zero lost: %+v", f.lotteryDraws.draws[0])
	}
	if len(f.settlement.lotteryCalls) != 1 {
		t.Errorf("settlement not invoked: %v", f.settlement.lotteryCalls)
	}
}

func TestProcessAllResults_CategoriesAreIsolated(t *testing.T) {
	f := newResultsFixture()
	lotteryID := f.addLottery("Triple Zamorano")
	f.addLotteryDraw(lotteryID, models.DrawStatusOpen)
	f.scrapers.animalitosErr = fmt.Errorf("animalito sources down")
	f.scrapers.lotteries = []models.LotteryResult{
		{LotteryName: "Triple Zamorano", WinningNumber: "842", DrawDate: "2025-01-10"},
	}

	summary := f.svc.ProcessAllResults(context.Background())

	if summary.Success {
		t.Errorf("failed category should fail the overall run: %+v", summary)
	}
	if summary.Lotteries.Updated != 1 {
		t.Errorf("lottery category should still publish: %+v", summary)
	}
}

func TestGetTodayResults(t *testing.T) {
	f := newResultsFixture()
	f.svc.now = func() time.Time { return testDay }

	gameID := f.addGame("Animalitos 12pm")
	f.addAnimalitoDraw(gameID, models.DrawStatusOpen)
	f.animalitoDraws.draws[0].Status = models.DrawStatusResultPublished
	f.animalitoDraws.draws[0].WinningAnimalNumber = 25

	lotteryID := f.addLottery("Triple A")
	f.addLotteryDraw(lotteryID, models.DrawStatusResultPublished)
	f.lotteryDraws.draws[0].WinningNumber = "842"

	// Unpublished draws must not appear.
	f.addAnimalitoDraw(gameID, models.DrawStatusOpen)

	results, err := f.svc.GetTodayResults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results.Date != "2025-01-10" {
		t.Errorf("unexpected date: %q", results.Date)
	}
	if len(results.Animalitos) != 1 || results.Animalitos[0].Game != "Animalitos 12pm" || results.Animalitos[0].Winner != 25 {
		t.Errorf("unexpected animalito results: %+v", results.Animalitos)
	}
	if len(results.Loterias) != 1 || results.Loterias[0].Winner != "842" {
		t.Errorf("unexpected lottery results: %+v", results.Loterias)
	}
}
