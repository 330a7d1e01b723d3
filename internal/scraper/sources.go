package scraper

import (
	"context"

	"github.com/loteplay/loteplay-backend/internal/models"
)

// DefaultAnimalitoSources lists the result sites tried in order for
// animalito draws. Order matters: the first validated source wins.
var DefaultAnimalitoSources = []string{
	"https://guacharoactivo.com.ve/resultados",
	"https://triplescandela.com/resultados",
	"https://triplesleones.com/resultados",
}

// DefaultLotterySources lists the result sites tried in order for lottery draws
var DefaultLotterySources = []string{
	"https://guacharoactivo.com.ve/resultados",
	"https://triplescandela.com/resultados",
	"https://lagranjitaanimalitos.com/resultados",
}

// ResultScrapers bundles the resilient driver with the two extractors and
// their configured source lists. This is the single entry point the
// results service scrapes through.
type ResultScrapers struct {
	scraper          *Scraper
	animalitoSources []string
	lotterySources   []string
	animalitos       *AnimalitoExtractor
	lotteries        *LotteryExtractor
}

// NewResultScrapers creates a new ResultScrapers
func NewResultScrapers(fetcher Fetcher, cfg Config, animalitoSources, lotterySources []string) *ResultScrapers {
	if len(animalitoSources) == 0 {
		animalitoSources = DefaultAnimalitoSources
	}
	if len(lotterySources) == 0 {
		lotterySources = DefaultLotterySources
	}
	return &ResultScrapers{
		scraper:          New(fetcher, cfg),
		animalitoSources: animalitoSources,
		lotterySources:   lotterySources,
		animalitos:       NewAnimalitoExtractor(),
		lotteries:        NewLotteryExtractor(),
	}
}

// ScrapeAnimalitos fetches one validated batch of animalito results
func (s *ResultScrapers) ScrapeAnimalitos(ctx context.Context) ([]models.AnimalitoResult, error) {
	return ScrapeWithFallback(ctx, s.scraper, s.animalitoSources, s.animalitos)
}

// ScrapeLotteries fetches one validated batch of lottery results
func (s *ResultScrapers) ScrapeLotteries(ctx context.Context) ([]models.LotteryResult, error) {
	return ScrapeWithFallback(ctx, s.scraper, s.lotterySources, s.lotteries)
}
