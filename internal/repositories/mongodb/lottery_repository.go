package mongodb

import (
	"context"
	"regexp"
	"time"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LotteryRepository implements the repositories.LotteryRepository interface
type LotteryRepository struct {
	collection *mongo.Collection
}

// NewLotteryRepository creates a new LotteryRepository
func NewLotteryRepository(db *mongo.Database) repositories.LotteryRepository {
	return &LotteryRepository{
		collection: db.Collection("lotteries"),
	}
}

// FindByID finds a lottery by ID
func (r *LotteryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lottery, error) {
	var lottery models.Lottery
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lottery)
	if err != nil {
		return nil, err
	}
	return &lottery, nil
}

// FindByNameContains finds lotteries whose name contains the fragment, case-insensitive
func (r *LotteryRepository) FindByNameContains(ctx context.Context, name string) ([]*models.Lottery, error) {
	filter := bson.M{
		"name": bson.M{"$regex": primitive.Regex{Pattern: regexQuote(name), Options: "i"}},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lotteries []*models.Lottery
	if err := cursor.All(ctx, &lotteries); err != nil {
		return nil, err
	}
	if lotteries == nil {
		lotteries = []*models.Lottery{}
	}
	return lotteries, nil
}

// FindActive finds all active lotteries
func (r *LotteryRepository) FindActive(ctx context.Context) ([]*models.Lottery, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lotteries []*models.Lottery
	if err := cursor.All(ctx, &lotteries); err != nil {
		return nil, err
	}
	if lotteries == nil {
		lotteries = []*models.Lottery{}
	}
	return lotteries, nil
}

// dayWindow returns the [start, end) interval covering the calendar day of date
func dayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// regexQuote escapes a name fragment before embedding it in a $regex filter
func regexQuote(s string) string {
	return regexp.QuoteMeta(s)
}
