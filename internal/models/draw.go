package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawStatus represents the lifecycle status of a draw
type DrawStatus string

const (
	DrawStatusOpen            DrawStatus = "open"
	DrawStatusClosed          DrawStatus = "closed"
	DrawStatusResultPublished DrawStatus = "result_published"
)

// LotteryDraw represents one scheduled drawing of a lottery.
// WinningNumber is set exactly once, together with the transition to
// result_published; a published draw is never mutated again.
type LotteryDraw struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LotteryID     primitive.ObjectID `bson:"lotteryId" json:"lotteryId"`
	DrawDate      time.Time          `bson:"drawDate" json:"drawDate"`
	DrawTime      string             `bson:"drawTime" json:"drawTime"` // "HH:MM:SS"
	Status        DrawStatus         `bson:"status" json:"status"`
	WinningNumber string             `bson:"winningNumber,omitempty" json:"winningNumber,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AnimalitoDraw represents one scheduled drawing of an animalito game
type AnimalitoDraw struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GameID              primitive.ObjectID `bson:"gameId" json:"gameId"`
	DrawDate            time.Time          `bson:"drawDate" json:"drawDate"`
	ScheduledTime       string             `bson:"scheduledTime" json:"scheduledTime"` // "HH:MM:SS"
	Status              DrawStatus         `bson:"status" json:"status"`
	WinningAnimalNumber int                `bson:"winningAnimalNumber,omitempty" json:"winningAnimalNumber,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
