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

// ParleyTicketRepository implements the repositories.ParleyTicketRepository interface
type ParleyTicketRepository struct {
	collection *mongo.Collection
}

// NewParleyTicketRepository creates a new ParleyTicketRepository
func NewParleyTicketRepository(db *mongo.Database) repositories.ParleyTicketRepository {
	return &ParleyTicketRepository{
		collection: db.Collection("parley_tickets"),
	}
}

// FindByID finds a ticket by ID
func (r *ParleyTicketRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ParleyTicket, error) {
	var ticket models.ParleyTicket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Settle writes the recomputed status and payout of a ticket
func (r *ParleyTicketRepository) Settle(ctx context.Context, id primitive.ObjectID, status models.BetStatus, paidAmount float64) error {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"paidAmount": paidAmount,
			"updatedAt":  time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
