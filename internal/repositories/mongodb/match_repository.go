package mongodb

import (
	"context"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MatchRepository implements the repositories.MatchRepository interface
type MatchRepository struct {
	collection *mongo.Collection
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(db *mongo.Database) repositories.MatchRepository {
	return &MatchRepository{
		collection: db.Collection("matches"),
	}
}

// FindByID finds a match by ID
func (r *MatchRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	var match models.Match
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err != nil {
		return nil, err
	}
	return &match, nil
}
