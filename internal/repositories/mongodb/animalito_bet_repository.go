package mongodb

import (
	"context"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnimalitoBetRepository implements the repositories.AnimalitoBetRepository interface
type AnimalitoBetRepository struct {
	collection *mongo.Collection
}

// NewAnimalitoBetRepository creates a new AnimalitoBetRepository
func NewAnimalitoBetRepository(db *mongo.Database) repositories.AnimalitoBetRepository {
	return &AnimalitoBetRepository{
		collection: db.Collection("animalito_bets"),
	}
}

// FindPendingByDraw finds all still-pending bets on a draw
func (r *AnimalitoBetRepository) FindPendingByDraw(ctx context.Context, drawID primitive.ObjectID) ([]*models.AnimalitoBet, error) {
	filter := bson.M{
		"drawId": drawID,
		"status": models.BetStatusPending,
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bets []*models.AnimalitoBet
	if err := cursor.All(ctx, &bets); err != nil {
		return nil, err
	}
	if bets == nil {
		bets = []*models.AnimalitoBet{}
	}
	return bets, nil
}

// Settle writes the terminal status and payout of a single bet
func (r *AnimalitoBetRepository) Settle(ctx context.Context, id primitive.ObjectID, status models.BetStatus, paidAmount float64) error {
	filter := bson.M{
		"_id":    id,
		"status": models.BetStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"paidAmount": paidAmount,
			"updatedAt":  time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}
