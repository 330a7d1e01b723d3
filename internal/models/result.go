package models

// AnimalitoResult is a normalized animalito outcome extracted from a
// source site, before reconciliation against a scheduled draw.
type AnimalitoResult struct {
	GameName      string `json:"gameName"`
	WinningNumber int    `json:"winningNumber"` // 1-36
	DrawDate      string `json:"drawDate"`      // "2006-01-02"
	ScheduledTime string `json:"scheduledTime"` // "HH:MM:SS"
}

// LotteryResult is a normalized lottery outcome extracted from a source site
type LotteryResult struct {
	LotteryName   string `json:"lotteryName"`
	WinningNumber string `json:"winningNumber"` // 2-4 digits, leading zeros kept
	DrawDate      string `json:"drawDate"`      // "2006-01-02"
	DrawTime      string `json:"drawTime"`      // "HH:MM:SS"
}

// ProcessSummary aggregates one reconciliation pass over a result batch
type ProcessSummary struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"errors"`
}

// SettlementSummary aggregates one settlement pass over a draw's bets
type SettlementSummary struct {
	Updated     int     `json:"updated"`
	Won         int     `json:"won"`
	Lost        int     `json:"lost"`
	TotalPayout float64 `json:"totalPayout"`
}

// ParleySettlementSummary aggregates one settlement pass over the parley
// tickets touched by a finished match
type ParleySettlementSummary struct {
	Evaluated    int     `json:"evaluated"`
	StillPending int     `json:"stillPending"`
	Won          int     `json:"won"`
	Lost         int     `json:"lost"`
	TotalPayout  float64 `json:"totalPayout"`
}

// CategorySummary is the per-category slice of an all-results run
type CategorySummary struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
}

// AllResultsSummary aggregates one reconciliation pass over every category
type AllResultsSummary struct {
	Success    bool            `json:"success"`
	Animalitos CategorySummary `json:"animalitos"`
	Lotteries  CategorySummary `json:"lotteries"`
	Errors     []string        `json:"errors"`
}

// PublishedAnimalitoResult is the read-model row for today's animalito results
type PublishedAnimalitoResult struct {
	Game   string `json:"game"`
	Winner int    `json:"winner"`
	Time   string `json:"time"`
}

// PublishedLotteryResult is the read-model row for today's lottery results
type PublishedLotteryResult struct {
	Name   string `json:"name"`
	Winner string `json:"winner"`
	Time   string `json:"time"`
}

// TodayResults groups everything published on the current date
type TodayResults struct {
	Date       string                     `json:"date"`
	Animalitos []PublishedAnimalitoResult `json:"animalitos"`
	Loterias   []PublishedLotteryResult   `json:"loterias"`
}
