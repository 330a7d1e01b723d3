package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lottery represents a lottery product whose draws are scheduled daily
type Lottery struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	DrawTimes        []string           `bson:"drawTimes" json:"drawTimes"` // "HH:MM:SS"
	PayoutMultiplier float64            `bson:"payoutMultiplier" json:"payoutMultiplier"`
	Active           bool               `bson:"active" json:"active"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AnimalitoGame represents an animal-number game (numbers 1-36)
type AnimalitoGame struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	ScheduledTimes   []string           `bson:"scheduledTimes" json:"scheduledTimes"` // "HH:MM:SS"
	PayoutMultiplier float64            `bson:"payoutMultiplier" json:"payoutMultiplier"`
	Active           bool               `bson:"active" json:"active"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Animalito is one of the 36 animals a player can bet on
type Animalito struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Number int                `bson:"number" json:"number"` // 1-36
	Name   string             `bson:"name" json:"name"`
}
