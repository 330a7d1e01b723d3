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

// ParleyLegRepository implements the repositories.ParleyLegRepository interface
type ParleyLegRepository struct {
	collection *mongo.Collection
}

// NewParleyLegRepository creates a new ParleyLegRepository
func NewParleyLegRepository(db *mongo.Database) repositories.ParleyLegRepository {
	return &ParleyLegRepository{
		collection: db.Collection("parley_legs"),
	}
}

// FindPendingByMarketIDs finds all still-pending legs referencing any of the markets
func (r *ParleyLegRepository) FindPendingByMarketIDs(ctx context.Context, marketIDs []primitive.ObjectID) ([]*models.ParleyLeg, error) {
	filter := bson.M{
		"marketId": bson.M{"$in": marketIDs},
		"status":   models.BetStatusPending,
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var legs []*models.ParleyLeg
	if err := cursor.All(ctx, &legs); err != nil {
		return nil, err
	}
	if legs == nil {
		legs = []*models.ParleyLeg{}
	}
	return legs, nil
}

// FindByTicket finds all legs of a ticket
func (r *ParleyLegRepository) FindByTicket(ctx context.Context, ticketID primitive.ObjectID) ([]*models.ParleyLeg, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ticketId": ticketID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var legs []*models.ParleyLeg
	if err := cursor.All(ctx, &legs); err != nil {
		return nil, err
	}
	if legs == nil {
		legs = []*models.ParleyLeg{}
	}
	return legs, nil
}

// UpdateStatus writes the terminal status of a single leg. The pending filter
// keeps a concurrently settled leg from being written twice.
func (r *ParleyLegRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BetStatus) error {
	filter := bson.M{
		"_id":    id,
		"status": models.BetStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}
