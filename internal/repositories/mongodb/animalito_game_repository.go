package mongodb

import (
	"context"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnimalitoGameRepository implements the repositories.AnimalitoGameRepository interface
type AnimalitoGameRepository struct {
	collection *mongo.Collection
}

// NewAnimalitoGameRepository creates a new AnimalitoGameRepository
func NewAnimalitoGameRepository(db *mongo.Database) repositories.AnimalitoGameRepository {
	return &AnimalitoGameRepository{
		collection: db.Collection("animalito_games"),
	}
}

// FindByID finds a game by ID
func (r *AnimalitoGameRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AnimalitoGame, error) {
	var game models.AnimalitoGame
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindByNameContains finds games whose name contains the fragment, case-insensitive
func (r *AnimalitoGameRepository) FindByNameContains(ctx context.Context, name string) ([]*models.AnimalitoGame, error) {
	filter := bson.M{
		"name": bson.M{"$regex": primitive.Regex{Pattern: regexQuote(name), Options: "i"}},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []*models.AnimalitoGame
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []*models.AnimalitoGame{}
	}
	return games, nil
}

// FindActive finds all active games
func (r *AnimalitoGameRepository) FindActive(ctx context.Context) ([]*models.AnimalitoGame, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []*models.AnimalitoGame
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []*models.AnimalitoGame{}
	}
	return games, nil
}
