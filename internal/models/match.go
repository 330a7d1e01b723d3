package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchStatus represents the lifecycle status of a sports fixture
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusFinished  MatchStatus = "finished"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// MarketResult represents the final outcome of one wagerable proposition
type MarketResult string

const (
	MarketResultPending MarketResult = "pending"
	MarketResultWon     MarketResult = "won"
	MarketResultLost    MarketResult = "lost"
	MarketResultVoid    MarketResult = "void"
)

// Match is a sports fixture owned by the catalog layer
type Match struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Sport     string             `bson:"sport" json:"sport"`
	League    string             `bson:"league,omitempty" json:"league,omitempty"`
	HomeTeam  string             `bson:"homeTeam" json:"homeTeam"`
	AwayTeam  string             `bson:"awayTeam" json:"awayTeam"`
	StartTime time.Time          `bson:"startTime" json:"startTime"`
	Status    MatchStatus        `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Market is one wagerable proposition on a match. Result is written once
// by the catalog layer when the match finishes.
type Market struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MatchID    primitive.ObjectID `bson:"matchId" json:"matchId"`
	MarketType string             `bson:"marketType" json:"marketType"` // e.g. "moneyline", "total"
	Selection  string             `bson:"selection" json:"selection"`
	Odds       float64            `bson:"odds" json:"odds"`
	Line       float64            `bson:"line,omitempty" json:"line,omitempty"`
	Result     MarketResult       `bson:"result" json:"result"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
