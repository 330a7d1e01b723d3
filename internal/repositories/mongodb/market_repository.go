package mongodb

import (
	"context"

	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MarketRepository implements the repositories.MarketRepository interface
type MarketRepository struct {
	collection *mongo.Collection
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *mongo.Database) repositories.MarketRepository {
	return &MarketRepository{
		collection: db.Collection("markets"),
	}
}

// FindByMatch finds all markets on a match
func (r *MarketRepository) FindByMatch(ctx context.Context, matchID primitive.ObjectID) ([]*models.Market, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"matchId": matchID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var markets []*models.Market
	if err := cursor.All(ctx, &markets); err != nil {
		return nil, err
	}
	if markets == nil {
		markets = []*models.Market{}
	}
	return markets, nil
}
