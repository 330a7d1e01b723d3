package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BetStatus represents the settlement status of a wager
type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
)

// LotteryBet is a single wager against one lottery draw.
// PotentialWin is stake x the lottery's payout multiplier, fixed at
// placement time by the bet-placement layer.
type LotteryBet struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DrawID       primitive.ObjectID `bson:"drawId" json:"drawId"`
	TicketCode   string             `bson:"ticketCode" json:"ticketCode"`
	BetNumber    string             `bson:"betNumber" json:"betNumber"`
	Stake        float64            `bson:"stake" json:"stake"`
	PotentialWin float64            `bson:"potentialWin" json:"potentialWin"`
	Status       BetStatus          `bson:"status" json:"status"`
	PaidAmount   float64            `bson:"paidAmount" json:"paidAmount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AnimalitoBet is a single wager against one animalito draw
type AnimalitoBet struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DrawID       primitive.ObjectID `bson:"drawId" json:"drawId"`
	TicketCode   string             `bson:"ticketCode" json:"ticketCode"`
	AnimalNumber int                `bson:"animalNumber" json:"animalNumber"` // 1-36
	Stake        float64            `bson:"stake" json:"stake"`
	PotentialWin float64            `bson:"potentialWin" json:"potentialWin"`
	Status       BetStatus          `bson:"status" json:"status"`
	PaidAmount   float64            `bson:"paidAmount" json:"paidAmount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
