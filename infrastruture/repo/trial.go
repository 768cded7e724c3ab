package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrTrialNotFound = errors.New("trial not found")

var _ i.TrialRepo = &TrialRepo{}

// TrialRepo handles the persistence of trial records in MongoDB.
type TrialRepo struct {
	collection *mongo.Collection
}

// NewTrialRepo creates a new TrialRepo with the given MongoDB client, database name, and collection name.
func NewTrialRepo(client *mongo.Client, dbName, collectionName string) *TrialRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &TrialRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index used by ByMap.
func (t *TrialRepo) EnsureIndexes(ctx context.Context) error {
	_, err := t.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "mapName", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts or updates a trial in the repository.
func (t *TrialRepo) Save(trial *dmn.Trial) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": trial.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := t.collection.ReplaceOne(ctx, filter, trial, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a trial by its ID.
// Returns ErrTrialNotFound if the trial is not found.
func (t *TrialRepo) ByID(id uuid.UUID) (*dmn.Trial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var trial dmn.Trial
	if err := t.collection.FindOne(ctx, filter).Decode(&trial); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTrialNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &trial, nil
}

// ByMap lists the trials of a map, newest first.
func (t *TrialRepo) ByMap(mapName string, limit int64) ([]*dmn.Trial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := t.collection.Find(ctx, bson.M{"mapName": mapName}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	var trials []*dmn.Trial
	if err := cursor.All(ctx, &trials); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return trials, nil
}
