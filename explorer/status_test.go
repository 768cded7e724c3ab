package explorer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStatusFrontier(t *testing.T) {
	for _, s := range []NodeStatus{Unvisited, Preferable, Priority} {
		assert.True(t, s.IsFrontier(), s.String())
	}
	for _, s := range []NodeStatus{Undiscovered, Visited, Current, Obstacle} {
		assert.False(t, s.IsFrontier(), s.String())
	}
	assert.Greater(t, Priority.rank(), Preferable.rank())
	assert.Greater(t, Preferable.rank(), Unvisited.rank())
}

func TestNodeStatusText(t *testing.T) {
	payload, err := json.Marshal(map[string]NodeStatus{"a": Priority, "b": Obstacle})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"priority","b":"obstacle"}`, string(payload))

	var decoded map[string]NodeStatus
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, Priority, decoded["a"])
	assert.Equal(t, Obstacle, decoded["b"])

	var s NodeStatus
	assert.Error(t, s.UnmarshalText([]byte("lava")))
	assert.Equal(t, "NodeStatus(42)", NodeStatus(42).String())
}
