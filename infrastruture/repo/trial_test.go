package repo

import (
	"context"
	"os"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestTrialRepo(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	collection := "trials_" + uuid.NewString()
	r := NewTrialRepo(client, "explorer_test", collection)
	t.Cleanup(func() { _ = client.Database("explorer_test").Collection(collection).Drop(context.Background()) })
	require.NoError(t, r.EnsureIndexes(ctx))

	trial := &dmn.Trial{
		ID:             uuid.New(),
		MapName:        "open",
		Start:          explorer.Coordinate{X: 0, Y: 0},
		Steps:          8,
		RepeatedSpaces: 0,
		Visited:        9,
		Reachable:      9,
		Complete:       true,
		Trace:          []explorer.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}},
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, r.Save(trial))

	got, err := r.ByID(trial.ID)
	require.NoError(t, err)
	assert.Equal(t, trial.Trace, got.Trace)
	assert.True(t, trial.CreatedAt.Equal(got.CreatedAt))

	trial.RepeatedSpaces = 4
	require.NoError(t, r.Save(trial))
	trials, err := r.ByMap("open", 10)
	require.NoError(t, err)
	require.Len(t, trials, 1)
	assert.Equal(t, 4, trials[0].RepeatedSpaces)

	_, err = r.ByID(uuid.New())
	assert.ErrorIs(t, err, ErrTrialNotFound)
}
