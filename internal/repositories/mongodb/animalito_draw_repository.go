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

// AnimalitoDrawRepository implements the repositories.AnimalitoDrawRepository interface
type AnimalitoDrawRepository struct {
	collection *mongo.Collection
}

// NewAnimalitoDrawRepository creates a new AnimalitoDrawRepository
func NewAnimalitoDrawRepository(db *mongo.Database) repositories.AnimalitoDrawRepository {
	return &AnimalitoDrawRepository{
		collection: db.Collection("animalito_draws"),
	}
}

// FindByID finds a draw by ID
func (r *AnimalitoDrawRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AnimalitoDraw, error) {
	var draw models.AnimalitoDraw
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&draw)
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// FindByGameAndDate finds the game's draws on the given calendar day whose
// status is one of statuses
func (r *AnimalitoDrawRepository) FindByGameAndDate(ctx context.Context, gameID primitive.ObjectID, date time.Time, statuses []models.DrawStatus) ([]*models.AnimalitoDraw, error) {
	startOfDay, endOfDay := dayWindow(date)
	filter := bson.M{
		"gameId": gameID,
		"drawDate": bson.M{
			"$gte": startOfDay,
			"$lt":  endOfDay,
		},
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.M{"scheduledTime": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var draws []*models.AnimalitoDraw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, err
	}
	if draws == nil {
		draws = []*models.AnimalitoDraw{}
	}
	return draws, nil
}

// FindPublishedByDate finds all published draws on the given calendar day
func (r *AnimalitoDrawRepository) FindPublishedByDate(ctx context.Context, date time.Time) ([]*models.AnimalitoDraw, error) {
	startOfDay, endOfDay := dayWindow(date)
	filter := bson.M{
		"status": models.DrawStatusResultPublished,
		"drawDate": bson.M{
			"$gte": startOfDay,
			"$lt":  endOfDay,
		},
	}

	opts := options.Find().SetSort(bson.M{"scheduledTime": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var draws []*models.AnimalitoDraw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, err
	}
	if draws == nil {
		draws = []*models.AnimalitoDraw{}
	}
	return draws, nil
}

// PublishResult performs the compare-and-set publication of a winning animal
// number. The status filter guarantees at-most-once publication.
func (r *AnimalitoDrawRepository) PublishResult(ctx context.Context, id primitive.ObjectID, winningAnimalNumber int) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": []models.DrawStatus{models.DrawStatusOpen, models.DrawStatusClosed}},
	}
	update := bson.M{
		"$set": bson.M{
			"winningAnimalNumber": winningAnimalNumber,
			"status":              models.DrawStatusResultPublished,
			"updatedAt":           time.Now(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
