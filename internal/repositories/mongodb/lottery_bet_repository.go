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

// LotteryBetRepository implements the repositories.LotteryBetRepository interface
type LotteryBetRepository struct {
	collection *mongo.Collection
}

// NewLotteryBetRepository creates a new LotteryBetRepository
func NewLotteryBetRepository(db *mongo.Database) repositories.LotteryBetRepository {
	return &LotteryBetRepository{
		collection: db.Collection("lottery_bets"),
	}
}

// FindPendingByDraw finds all still-pending bets on a draw
func (r *LotteryBetRepository) FindPendingByDraw(ctx context.Context, drawID primitive.ObjectID) ([]*models.LotteryBet, error) {
	filter := bson.M{
		"drawId": drawID,
		"status": models.BetStatusPending,
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bets []*models.LotteryBet
	if err := cursor.All(ctx, &bets); err != nil {
		return nil, err
	}
	if bets == nil {
		bets = []*models.LotteryBet{}
	}
	return bets, nil
}

// Settle writes the terminal status and payout of a single bet. The pending
// filter keeps a concurrently settled bet from being written twice.
func (r *LotteryBetRepository) Settle(ctx context.Context, id primitive.ObjectID, status models.BetStatus, paidAmount float64) error {
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
