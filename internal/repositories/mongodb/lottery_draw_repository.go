package mongodb

import (
	"context"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LotteryDrawRepository implements the repositories.LotteryDrawRepository interface
type LotteryDrawRepository struct {
	collection *mongo.Collection
}

// NewLotteryDrawRepository creates a new LotteryDrawRepository
func NewLotteryDrawRepository(db *mongo.Database) repositories.LotteryDrawRepository {
	return &LotteryDrawRepository{
		collection: db.Collection("lottery_draws"),
	}
}

// FindByID finds a draw by ID
func (r *LotteryDrawRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LotteryDraw, error) {
	var draw models.LotteryDraw
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&draw)
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// FindByLotteryAndDate finds the lottery's draws on the given calendar day
// whose status is one of statuses
func (r *LotteryDrawRepository) FindByLotteryAndDate(ctx context.Context, lotteryID primitive.ObjectID, date time.Time, statuses []models.DrawStatus) ([]*models.LotteryDraw, error) {
	startOfDay, endOfDay := dayWindow(date)
	filter := bson.M{
		"lotteryId": lotteryID,
		"drawDate": bson.M{
			"$gte": startOfDay,
			"$lt":  endOfDay,
		},
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.M{"drawTime": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var draws []*models.LotteryDraw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, err
	}
	if draws == nil {
		draws = []*models.LotteryDraw{}
	}
	return draws, nil
}

// FindPublishedByDate finds all published draws on the given calendar day
func (r *LotteryDrawRepository) FindPublishedByDate(ctx context.Context, date time.Time) ([]*models.LotteryDraw, error) {
	startOfDay, endOfDay := dayWindow(date)
	filter := bson.M{
		"status": models.DrawStatusResultPublished,
		"drawDate": bson.M{
			"$gte": startOfDay,
			"$lt":  endOfDay,
		},
	}

	opts := options.Find().SetSort(bson.M{"drawTime": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var draws []*models.LotteryDraw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, err
	}
	if draws == nil {
		draws = []*models.LotteryDraw{}
	}
	return draws, nil
}

// PublishResult performs the compare-and-set publication of a winning number.
// The status filter guarantees a draw is published at most once even when
// two reconciliation runs race.
func (r *LotteryDrawRepository) PublishResult(ctx context.Context, id primitive.ObjectID, winningNumber string) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": []models.DrawStatus{models.DrawStatusOpen, models.DrawStatusClosed}},
	}
	update := bson.M{
		"$set": bson.M{
			"winningNumber": winningNumber,
			"status":        models.DrawStatusResultPublished,
			"updatedAt":     time.Now(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
