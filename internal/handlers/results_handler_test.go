package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/scheduler"
)

type stubResultsService struct {
	allRuns       int
	animalitoRuns int
	lotteryRuns   int
}

func (s *stubResultsService) ProcessAnimalitoResults(_ context.Context) models.ProcessSummary {
	s.animalitoRuns++
	return models.ProcessSummary{Success: true, Processed: 2, Updated: 1, Errors: []string{}}
}

func (s *stubResultsService) ProcessLotteryResults(_ context.Context) models.ProcessSummary {
	s.lotteryRuns++
	return models.ProcessSummary{Success: true, Errors: []string{}}
}

func (s *stubResultsService) ProcessAllResults(_ context.Context) models.AllResultsSummary {
	s.allRuns++
	return models.AllResultsSummary{Success: true, Errors: []string{}}
}

func (s *stubResultsService) GetTodayResults(_ context.Context) (*models.TodayResults, error) {
	return &models.TodayResults{
		Date:       "2025-01-10",
		Animalitos: []models.PublishedAnimalitoResult{{Game: "Animalitos 12pm", Winner: 25, Time: "12:00:00"}},
		Loterias:   []models.PublishedLotteryResult{},
	}, nil
}

func newTestRouter(svc *stubResultsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewResultsHandler(svc, scheduler.New(svc, scheduler.DefaultConfig()))

	router := gin.New()
	router.POST("/results/process", handler.ProcessResults)
	router.GET("/results/today", handler.GetTodayResults)
	router.GET("/scheduler/status", handler.GetSchedulerStatus)
	return router
}

func TestProcessResults_DefaultTargetRunsAll(t *testing.T) {
	svc := &stubResultsService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/results/process", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.allRuns != 1 || svc.animalitoRuns != 0 || svc.lotteryRuns != 0 {
		t.Errorf("default target should run both categories once: %+v", svc)
	}
}

func TestProcessResults_TargetAnimalitos(t *testing.T) {
	svc := &stubResultsService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/results/process?target=animalitos", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.animalitoRuns != 1 || svc.allRuns != 0 {
		t.Errorf("only the animalito category should run: %+v", svc)
	}

	var summary models.ProcessSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if summary.Processed != 2 || summary.Updated != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestProcessResults_UnknownTarget(t *testing.T) {
	svc := &stubResultsService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/results/process?target=sports", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetTodayResults(t *testing.T) {
	router := newTestRouter(&stubResultsService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/results/today", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var results models.TodayResults
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if results.Date != "2025-01-10" || len(results.Animalitos) != 1 {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestGetSchedulerStatus(t *testing.T) {
	router := newTestRouter(&stubResultsService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scheduler/status", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
