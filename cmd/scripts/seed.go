package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/loteplay/loteplay-backend/internal/models"
	"github.com/loteplay/loteplay-backend/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the game catalog and creates today's open draws. Safe to run more
// than once: catalog entries are upserted by name and draws are only
// created when the slot does not exist yet.
func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "loteplay"
	}

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	ctx := context.Background()

	if err := seedCatalog(ctx, db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if err := createTodaysDraws(ctx, db); err != nil {
		log.Fatalf("Failed to create today's draws: %v", err)
	}

	log.Println("Seed completed")
}

var lotteries = []models.Lottery{
	{Name: "Triple Zamorano", PayoutMultiplier: 30, DrawTimes: []string{"13:00:00", "16:00:00", "19:00:00"}, Active: true},
	{Name: "Triple A", PayoutMultiplier: 30, DrawTimes: []string{"13:00:00", "16:00:00", "19:00:00"}, Active: true},
	{Name: "Lotería del Zulia", PayoutMultiplier: 25, DrawTimes: []string{"13:00:00", "19:00:00"}, Active: true},
	{Name: "Lotería del Táchira", PayoutMultiplier: 25, DrawTimes: []string{"13:00:00", "19:00:00"}, Active: true},
	{Name: "La Granjita", PayoutMultiplier: 30, DrawTimes: []string{"13:00:00", "16:00:00", "19:00:00"}, Active: true},
}

var animalitoGames = []models.AnimalitoGame{
	{Name: "Animalitos 9am", PayoutMultiplier: 30, ScheduledTimes: []string{"09:00:00"}, Active: true},
	{Name: "Animalitos 12pm", PayoutMultiplier: 30, ScheduledTimes: []string{"12:00:00"}, Active: true},
	{Name: "Animalitos 4pm", PayoutMultiplier: 30, ScheduledTimes: []string{"16:00:00"}, Active: true},
	{Name: "Animalitos 7pm", PayoutMultiplier: 30, ScheduledTimes: []string{"19:00:00"}, Active: true},
}

// seedCatalog upserts the lottery and animalito catalogs by name
func seedCatalog(ctx context.Context, db *mongo.Database) error {
	now := time.Now()

	for _, lottery := range lotteries {
		lottery.CreatedAt = now
		lottery.UpdatedAt = now
		_, err := db.Collection("lotteries").UpdateOne(ctx,
			bson.M{"name": lottery.Name},
			bson.M{"$setOnInsert": lottery},
			updateUpsert(),
		)
		if err != nil {
			return err
		}
	}

	for _, game := range animalitoGames {
		game.CreatedAt = now
		game.UpdatedAt = now
		_, err := db.Collection("animalito_games").UpdateOne(ctx,
			bson.M{"name": game.Name},
			bson.M{"$setOnInsert": game},
			updateUpsert(),
		)
		if err != nil {
			return err
		}
	}

	log.Printf("Catalog seeded: %d lotteries, %d animalito games", len(lotteries), len(animalitoGames))
	return nil
}

// createTodaysDraws opens one draw per active game and time slot for the
// current date
func createTodaysDraws(ctx context.Context, db *mongo.Database) error {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	created := 0

	cursor, err := db.Collection("lotteries").Find(ctx, bson.M{"active": true})
	if err != nil {
		return err
	}
	var activeLotteries []models.Lottery
	if err := cursor.All(ctx, &activeLotteries); err != nil {
		return err
	}

	for _, lottery := range activeLotteries {
		for _, at := range lottery.DrawTimes {
			filter := bson.M{"lotteryId": lottery.ID, "drawDate": day, "drawTime": at}
			draw := models.LotteryDraw{
				LotteryID: lottery.ID,
				DrawDate:  day,
				DrawTime:  at,
				Status:    models.DrawStatusOpen,
				CreatedAt: now,
				UpdatedAt: now,
			}
			res, err := db.Collection("lottery_draws").UpdateOne(ctx, filter, bson.M{"$setOnInsert": draw}, updateUpsert())
			if err != nil {
				return err
			}
			if res.UpsertedCount > 0 {
				created++
			}
		}
	}

	cursor, err = db.Collection("animalito_games").Find(ctx, bson.M{"active": true})
	if err != nil {
		return err
	}
	var activeGames []models.AnimalitoGame
	if err := cursor.All(ctx, &activeGames); err != nil {
		return err
	}

	for _, game := range activeGames {
		for _, at := range game.ScheduledTimes {
			filter := bson.M{"gameId": game.ID, "drawDate": day, "scheduledTime": at}
			draw := models.AnimalitoDraw{
				GameID:        game.ID,
				DrawDate:      day,
				ScheduledTime: at,
				Status:        models.DrawStatusOpen,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			res, err := db.Collection("animalito_draws").UpdateOne(ctx, filter, bson.M{"$setOnInsert": draw}, updateUpsert())
			if err != nil {
				return err
			}
			if res.UpsertedCount > 0 {
				created++
			}
		}
	}

	log.Printf("Draws created for %s: %d", day.Format("2006-01-02"), created)
	return nil
}

func updateUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
