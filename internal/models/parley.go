package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParleyLeg is one market selection inside a combined ticket
type ParleyLeg struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TicketID  primitive.ObjectID `bson:"ticketId" json:"ticketId"`
	MarketID  primitive.ObjectID `bson:"marketId" json:"marketId"`
	Odds      float64            `bson:"odds" json:"odds"`
	Status    BetStatus          `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ParleyTicket is a combined wager that pays out only if every leg wins.
// Its status is a pure function of its legs' statuses and is recomputed,
// never independently mutated. TotalOdds is the product of all leg odds
// and PotentialWin = Stake x TotalOdds, both fixed at placement time.
type ParleyTicket struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TicketCode   string             `bson:"ticketCode" json:"ticketCode"`
	Stake        float64            `bson:"stake" json:"stake"`
	TotalOdds    float64            `bson:"totalOdds" json:"totalOdds"`
	PotentialWin float64            `bson:"potentialWin" json:"potentialWin"`
	Status       BetStatus          `bson:"status" json:"status"`
	PaidAmount   float64            `bson:"paidAmount" json:"paidAmount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
