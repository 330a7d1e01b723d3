package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/loteplay/loteplay-backend/internal/services"
	"github.com/loteplay/loteplay-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Config declares the trigger schedule. Daily times are wall-clock "HH:MM"
// strings in the server's location.
type Config struct {
	CatchAllInterval time.Duration
	AnimalitoTimes   []string
	LotteryTimes     []string
	RunTimeout       time.Duration
}

// DefaultConfig mirrors the production schedule: a catch-all sweep every
// five minutes plus one targeted run shortly after each scheduled draw.
func DefaultConfig() Config {
	return Config{
		CatchAllInterval: 5 * time.Minute,
		AnimalitoTimes:   []string{"09:05", "12:05", "16:05", "19:05"},
		LotteryTimes:     []string{"13:10", "16:10", "19:10"},
		RunTimeout:       4 * time.Minute,
	}
}

// TriggerStatus is the externally visible state of one trigger
type TriggerStatus struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"` // "interval" or "daily"
	Spec    string    `json:"spec"`
	Running bool      `json:"running"`
	Runs    int       `json:"runs"`
	LastRun time.Time `json:"lastRun,omitempty"`
}

type trigger struct {
	name string
	kind string
	spec string
	job  func(ctx context.Context)

	inFlight atomic.Bool
	mu       sync.Mutex
	lastRun  time.Time
	runs     int
}

// Scheduler owns the background triggers that drive result processing.
// Each trigger runs in its own goroutine; a trigger that is still running
// when it fires again skips the new firing instead of overlapping itself.
type Scheduler struct {
	results  services.ResultsService
	cfg      Config
	mu       sync.Mutex
	triggers []*trigger
	started  bool
	stop     chan struct{}
	wg       sync.WaitGroup
}

// New creates a new Scheduler
func New(results services.ResultsService, cfg Config) *Scheduler {
	if cfg.CatchAllInterval <= 0 {
		cfg.CatchAllInterval = 5 * time.Minute
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 4 * time.Minute
	}
	return &Scheduler{results: results, cfg: cfg}
}

// Start registers the configured triggers and launches their loops.
// Starting an already started scheduler is an error.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("scheduler already started")
	}

	triggers, err := s.buildTriggers()
	if err != nil {
		return err
	}

	s.triggers = triggers
	s.stop = make(chan struct{})
	s.started = true

	for _, t := range s.triggers {
		s.wg.Add(1)
		switch t.kind {
		case "interval":
			go s.runIntervalLoop(t, s.cfg.CatchAllInterval)
		case "daily":
			go s.runDailyLoop(t)
		}
	}

	slog.Info("Scheduler started", "triggers", len(s.triggers))
	return nil
}

// Stop signals every trigger loop and waits for them to exit. Runs already
// in flight finish on their own deadline.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	close(s.stop)
	s.started = false
	s.mu.Unlock()

	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

// Status reports every trigger, sorted by name
func (s *Scheduler) Status() []TriggerStatus {
	s.mu.Lock()
	triggers := s.triggers
	s.mu.Unlock()

	statuses := make([]TriggerStatus, 0, len(triggers))
	for _, t := range triggers {
		t.mu.Lock()
		statuses = append(statuses, TriggerStatus{
			Name:    t.name,
			Kind:    t.kind,
			Spec:    t.spec,
			Running: t.inFlight.Load(),
			Runs:    t.runs,
			LastRun: t.lastRun,
		})
		t.mu.Unlock()
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}

// buildTriggers materializes the schedule from the config. Bad clock times
// fail startup instead of silently dropping a trigger.
func (s *Scheduler) buildTriggers() ([]*trigger, error) {
	triggers := []*trigger{{
		name: "results-catch-all",
		kind: "interval",
		spec: s.cfg.CatchAllInterval.String(),
		job: func(ctx context.Context) {
			s.results.ProcessAllResults(ctx)
		},
	}}

	for _, at := range s.cfg.AnimalitoTimes {
		hour, _, err := utils.ParseClockTime(at)
		if err != nil {
			return nil, fmt.Errorf("invalid animalito trigger time: %w", err)
		}
		triggers = append(triggers, &trigger{
			name: "animalitos-" + utils.HourLabel(hour),
			kind: "daily",
			spec: at,
			job: func(ctx context.Context) {
				s.results.ProcessAnimalitoResults(ctx)
			},
		})
	}

	for _, at := range s.cfg.LotteryTimes {
		hour, _, err := utils.ParseClockTime(at)
		if err != nil {
			return nil, fmt.Errorf("invalid lottery trigger time: %w", err)
		}
		triggers = append(triggers, &trigger{
			name: "lottery-" + utils.HourLabel(hour),
			kind: "daily",
			spec: at,
			job: func(ctx context.Context) {
				s.results.ProcessLotteryResults(ctx)
			},
		})
	}

	return triggers, nil
}

func (s *Scheduler) runIntervalLoop(t *trigger, interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.fire(t)
		}
	}
}

func (s *Scheduler) runDailyLoop(t *trigger) {
	defer s.wg.Done()

	// spec was validated in buildTriggers
	hour, minute, _ := utils.ParseClockTime(t.spec)
	for {
		next := utils.NextOccurrence(time.Now(), hour, minute)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-s.stop:
			timer.Stop()
			return
		case <-timer.C:
			s.fire(t)
		}
	}
}

// fire runs one trigger execution, skipping if the previous one is still in
// flight and containing any panic to the trigger.
func (s *Scheduler) fire(t *trigger) {
	if !t.inFlight.CompareAndSwap(false, true) {
		slog.Warn("Trigger still running, skipping firing", "trigger", t.name)
		return
	}
	defer t.inFlight.Store(false)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Trigger panicked", "trigger", t.name, "panic", r)
		}
	}()

	t.mu.Lock()
	t.lastRun = time.Now()
	t.runs++
	t.mu.Unlock()

	slog.Info("Trigger firing", "trigger", t.name)
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RunTimeout)
	defer cancel()
	t.job(ctx)
}
