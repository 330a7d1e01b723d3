package scraper

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"golang.org/x/exp/slog"
)

// animalitoExtractJS collects result rows from the structures the known
// animalito sites publish. Selectors are volatile per-site configuration;
// adjust them here when a source changes its markup.
const animalitoExtractJS = `JSON.stringify(Array.from(
	document.querySelectorAll('.resultado-animalito, .result-row, [data-game]')
).map(function(row) {
	var game = row.querySelector('.game-name, .nombre-juego, [data-game-name]');
	var number = row.querySelector('.winning-number, .numero-ganador, [data-number]');
	var time = row.querySelector('.game-time, .hora, [data-time]');
	return {
		category: game ? game.textContent.trim() : '',
		value: number ? number.textContent.trim() : '',
		time: time ? time.textContent.trim() : ''
	};
}).filter(function(r) { return r.category !== '' && r.value !== ''; }))`

// animalitoNameTable maps free-form game names to canonical catalog names.
// Ordered, first match wins; the more specific fragments come first so
// "19" resolves before "9" and "16" before "4". Unmatched names pass
// through unchanged for a human to reconcile.
var animalitoNameTable = []nameMapping{
	{"mediodía", "Animalitos 12pm"},
	{"mediodia", "Animalitos 12pm"},
	{"doce", "Animalitos 12pm"},
	{"12", "Animalitos 12pm"},
	{"19", "Animalitos 7pm"},
	{"16", "Animalitos 4pm"},
	{"noche", "Animalitos 7pm"},
	{"nueve", "Animalitos 9am"},
	{"mañana", "Animalitos 9am"},
	{"tarde", "Animalitos 4pm"},
	{"9", "Animalitos 9am"},
	{"7", "Animalitos 7pm"},
	{"4", "Animalitos 4pm"},
}

type nameMapping struct {
	fragment  string
	canonical string
}

var animalNumberPattern = regexp.MustCompile(`(\d{1,2})`)

// AnimalitoExtractor parses animalito result rows (winning numbers 1-36)
type AnimalitoExtractor struct {
	waitSelector string
}

// NewAnimalitoExtractor creates a new AnimalitoExtractor
func NewAnimalitoExtractor() *AnimalitoExtractor {
	return &AnimalitoExtractor{waitSelector: "body"}
}

// Name returns the extractor name for logging
func (e *AnimalitoExtractor) Name() string {
	return "AnimalitosScraper"
}

// Request builds the fetch request for one source URL
func (e *AnimalitoExtractor) Request(sourceURL string) FetchRequest {
	return FetchRequest{
		URL:          sourceURL,
		WaitSelector: e.waitSelector,
		ExtractJS:    animalitoExtractJS,
	}
}

// Extract parses the raw payload into normalized animalito results.
// Records that cannot be parsed are skipped, not fatal: a batch may
// partially fail per-record and still yield whatever is usable.
func (e *AnimalitoExtractor) Extract(payload string, day time.Time) ([]models.AnimalitoResult, error) {
	var rows []RawRow
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	date := day.Format("2006-01-02")
	results := make([]models.AnimalitoResult, 0, len(rows))
	for _, row := range rows {
		result, ok := parseAnimalitoRow(row, date)
		if !ok {
			slog.Warn("Skipping unparseable animalito row", "category", row.Category, "value", row.Value)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// Validate accepts a batch only if it is non-empty and every record is in range
func (e *AnimalitoExtractor) Validate(results []models.AnimalitoResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no animalito results extracted")
	}
	for _, r := range results {
		if r.WinningNumber < 1 || r.WinningNumber > 36 {
			return fmt.Errorf("winning number %d out of range for %q", r.WinningNumber, r.GameName)
		}
		if r.GameName == "" || r.DrawDate == "" {
			return fmt.Errorf("incomplete animalito result: %+v", r)
		}
	}
	return nil
}

// parseAnimalitoRow normalizes one extracted row. Reports ok=false for rows
// whose number is missing or outside 1-36.
func parseAnimalitoRow(row RawRow, date string) (models.AnimalitoResult, bool) {
	match := animalNumberPattern.FindStringSubmatch(row.Value)
	if match == nil {
		return models.AnimalitoResult{}, false
	}
	number, err := strconv.Atoi(match[1])
	if err != nil || number < 1 || number > 36 {
		return models.AnimalitoResult{}, false
	}

	gameName := canonicalName(row.Category, animalitoNameTable)

	return models.AnimalitoResult{
		GameName:      gameName,
		WinningNumber: number,
		DrawDate:      date,
		ScheduledTime: inferAnimalitoTime(gameName, row.Time),
	}, true
}

// canonicalName resolves a free-form category name against an ordered
// lookup table; the first matching fragment wins and unmatched names are
// returned unchanged.
func canonicalName(name string, table []nameMapping) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, m := range table {
		if strings.Contains(normalized, m.fragment) {
			return m.canonical
		}
	}
	return name
}

// inferAnimalitoTime uses the scraped time when present and otherwise
// infers the draw time from the canonical game name
func inferAnimalitoTime(gameName, rawTime string) string {
	if t, ok := normalizeClockTime(rawTime); ok {
		return t
	}
	switch {
	case strings.Contains(gameName, "9am"):
		return "09:00:00"
	case strings.Contains(gameName, "12pm"):
		return "12:00:00"
	case strings.Contains(gameName, "4pm"):
		return "16:00:00"
	case strings.Contains(gameName, "7pm"):
		return "19:00:00"
	}
	return "12:00:00"
}
