package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepo handles the persistence of per-level completion records.
// Only derived metadata lives here; mazes are regenerated from the level
// number on demand.
type ProgressRepo struct {
	collection *mongo.Collection
}

// NewProgressRepo creates a new ProgressRepo with the given MongoDB client, database name, and collection name.
func NewProgressRepo(client *mongo.Client, dbName, collectionName string) *ProgressRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ProgressRepo{
		collection: collection,
	}
}

// Save upserts a completion record keyed by (player, level), keeping the
// fastest recorded time.
func (r *ProgressRepo) Save(ctx context.Context, progress *dmn.Progress) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"playerId": progress.PlayerID, "level": progress.Level}
	update := bson.M{
		"$set": bson.M{
			"completed":   progress.Completed,
			"completedAt": progress.CompletedAt,
		},
		"$min": bson.M{
			"bestTime": progress.BestTime,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByPlayer lists a player's completion records ordered by level.
func (r *ProgressRepo) ByPlayer(ctx context.Context, playerID uuid.UUID) ([]dmn.Progress, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"level": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"playerId": playerID}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []dmn.Progress
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
