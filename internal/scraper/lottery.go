package scraper

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"golang.org/x/exp/slog"
)

// lotteryExtractJS collects result rows from the structures the known
// lottery sites publish. Selectors are volatile per-site configuration.
const lotteryExtractJS = `JSON.stringify(Array.from(
	document.querySelectorAll('.resultado-loteria, .lottery-result, [data-lottery], .resultado')
).map(function(row) {
	var lottery = row.querySelector('.lottery-name, .nombre-loteria, [data-lottery-name], h3, h4');
	var number = row.querySelector('.winning-number, .numero-ganador, [data-number], .number');
	var time = row.querySelector('.draw-time, .hora-sorteo, [data-time], .time');
	return {
		category: lottery ? lottery.textContent.trim() : '',
		value: number ? number.textContent.trim() : '',
		time: time ? time.textContent.trim() : ''
	};
}).filter(function(r) { return r.category !== '' && r.value !== ''; }))`

// lotteryNameTable maps free-form lottery names to canonical catalog
// names. Ordered, first match wins; compound names come before the
// fragments they contain ("triple zamorano" before "zamorano" before
// "triple").
var lotteryNameTable = []nameMapping{
	{"triple zamorano", "Triple Zamorano"},
	{"zamorano", "Triple Zamorano"},
	{"triple a", "Triple A"},
	{"triplea", "Triple A"},
	{"triple", "Triple"},
	{"zulia", "Lotería del Zulia"},
	{"táchira", "Lotería del Táchira"},
	{"tachira", "Lotería del Táchira"},
	{"caracas", "Lotería de Caracas"},
	{"lara", "Lotería del Lara"},
	{"gúacharo", "Guácharo Activo"},
	{"guacharo", "Guácharo Activo"},
	{"granjita", "La Granjita"},
}

var lotteryNumberPattern = regexp.MustCompile(`(\d{2,4})`)

var clockTimePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// LotteryExtractor parses lottery result rows (2-4 digit winning numbers,
// leading zeros significant)
type LotteryExtractor struct {
	waitSelector string
}

// NewLotteryExtractor creates a new LotteryExtractor
func NewLotteryExtractor() *LotteryExtractor {
	return &LotteryExtractor{waitSelector: "body"}
}

// Name returns the extractor name for logging
func (e *LotteryExtractor) Name() string {
	return "LotteryScraper"
}

// Request builds the fetch request for one source URL
func (e *LotteryExtractor) Request(sourceURL string) FetchRequest {
	return FetchRequest{
		URL:          sourceURL,
		WaitSelector: e.waitSelector,
		ExtractJS:    lotteryExtractJS,
	}
}

// Extract parses the raw payload into normalized lottery results,
// skipping unparseable records
func (e *LotteryExtractor) Extract(payload string, day time.Time) ([]models.LotteryResult, error) {
	var rows []RawRow
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	date := day.Format("2006-01-02")
	results := make([]models.LotteryResult, 0, len(rows))
	for _, row := range rows {
		result, ok := parseLotteryRow(row, date)
		if !ok {
			slog.Warn("Skipping unparseable lottery row", "category", row.Category, "value", row.Value)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// Validate accepts a batch only if it is non-empty and every record has a
// plausible number, name and date
func (e *LotteryExtractor) Validate(results []models.LotteryResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no lottery results extracted")
	}
	for _, r := range results {
		if len(r.WinningNumber) < 2 {
			return fmt.Errorf("winning number %q too short for %q", r.WinningNumber, r.LotteryName)
		}
		if r.LotteryName == "" {
			return fmt.Errorf("lottery name missing: %+v", r)
		}
		if !datePattern.MatchString(r.DrawDate) {
			return fmt.Errorf("invalid draw date %q for %q", r.DrawDate, r.LotteryName)
		}
	}
	return nil
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseLotteryRow normalizes one extracted row. The winning number is kept
// as a string so leading zeros survive ("09" and "9" are different plays).
func parseLotteryRow(row RawRow, date string) (models.LotteryResult, bool) {
	match := lotteryNumberPattern.FindStringSubmatch(row.Value)
	if match == nil {
		return models.LotteryResult{}, false
	}

	return models.LotteryResult{
		LotteryName:   canonicalLotteryName(row.Category),
		WinningNumber: match[1],
		DrawDate:      date,
		DrawTime:      normalizeLotteryTime(row.Time),
	}, true
}

// canonicalLotteryName resolves a lottery name against the ordered table;
// unmatched names are title-cased so downstream matching stays readable.
func canonicalLotteryName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, m := range lotteryNameTable {
		if strings.Contains(normalized, m.fragment) {
			return m.canonical
		}
	}

	words := strings.Fields(normalized)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// normalizeClockTime extracts an "HH:MM:SS" time from free-form text
func normalizeClockTime(raw string) (string, bool) {
	match := clockTimePattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	hours := match[1]
	if len(hours) == 1 {
		hours = "0" + hours
	}
	return hours + ":" + match[2] + ":00", true
}

// normalizeLotteryTime normalizes a scraped time, falling back to the
// common Venezuelan lottery slots when only a coarse hint is present
func normalizeLotteryTime(raw string) string {
	if t, ok := normalizeClockTime(raw); ok {
		return t
	}

	hint := strings.ToLower(raw)
	if strings.Contains(hint, "pm") {
		switch {
		case strings.Contains(hint, "1"):
			return "13:00:00"
		case strings.Contains(hint, "4"):
			return "16:00:00"
		case strings.Contains(hint, "7"):
			return "19:00:00"
		}
	}
	return "12:00:00"
}
