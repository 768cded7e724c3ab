package trialapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/beka-birhanu/vinom-explorer/infrastruture/log"
	"github.com/beka-birhanu/vinom-explorer/infrastruture/repo"
	"github.com/beka-birhanu/vinom-explorer/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-explorer/service"
	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, ts i.TrialService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := NewTrialController(ts)
	require.NoError(t, err)

	engine := gin.New()
	group := engine.Group("/api/v1")
	c.RegisterPublic(group)
	c.RegisterThrottled(group)
	return engine
}

func newRunner(t *testing.T) *service.TrialRunner {
	t.Helper()
	catalog, err := service.NewMapCatalog("")
	require.NoError(t, err)
	logger, err := log.New("TEST", "", io.Discard)
	require.NoError(t, err)

	runner, err := service.NewTrialRunner(&service.Config{
		Catalog:     catalog,
		Repo:        repo.NewMemoryTrialRepo(),
		Leaderboard: sortedstorage.NewMemoryLeaderboard(),
		Logger:      logger,
	})
	require.NoError(t, err)
	return runner
}

func do(engine *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestNewTrialController(t *testing.T) {
	_, err := NewTrialController(nil)
	assert.Error(t, err)
}

func TestMaps(t *testing.T) {
	engine := newEngine(t, newRunner(t))
	w := do(engine, http.MethodGet, "/api/v1/maps", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"default", "open", "pocket"}, decode[MapsResponse](t, w).Maps)
}

func TestRunAndFetchTrial(t *testing.T) {
	engine := newEngine(t, newRunner(t))

	w := do(engine, http.MethodPost, "/api/v1/trials", TrialRequest{Map: "open"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dmn.Trial](t, w)
	assert.Equal(t, 0, created.RepeatedSpaces)
	assert.True(t, created.Complete)

	w = do(engine, http.MethodGet, "/api/v1/trials/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[dmn.Trial](t, w).ID)

	w = do(engine, http.MethodGet, "/api/v1/maps/open/leaderboard?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[LeaderboardResponse](t, w)
	assert.Equal(t, "open", board.Map)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, created.ID.String(), board.Entries[0].Member)
}

func TestRunErrors(t *testing.T) {
	engine := newEngine(t, newRunner(t))

	cases := map[string]struct {
		method string
		target string
		body   any
		status int
	}{
		"missing map":    {http.MethodPost, "/api/v1/trials", map[string]string{}, http.StatusBadRequest},
		"unknown map":    {http.MethodPost, "/api/v1/trials", TrialRequest{Map: "labyrinth"}, http.StatusBadRequest},
		"start off map":  {http.MethodPost, "/api/v1/trials", TrialRequest{Map: "open", Start: &explorer.Coordinate{X: 3, Y: 0}}, http.StatusBadRequest},
		"batch unknown":  {http.MethodPost, "/api/v1/trials/batch", BatchRequest{Map: "labyrinth"}, http.StatusBadRequest},
		"bad trial id":   {http.MethodGet, "/api/v1/trials/not-a-uuid", nil, http.StatusBadRequest},
		"missing trial":  {http.MethodGet, "/api/v1/trials/" + uuid.NewString(), nil, http.StatusNotFound},
		"bad limit":      {http.MethodGet, "/api/v1/maps/open/leaderboard?limit=0", nil, http.StatusBadRequest},
		"half a start":   {http.MethodGet, "/api/v1/maps/open/replay?steps=2&x=1", nil, http.StatusBadRequest},
		"negative steps": {http.MethodGet, "/api/v1/maps/open/replay?steps=-1", nil, http.StatusBadRequest},
		"replay unknown": {http.MethodGet, "/api/v1/maps/labyrinth/replay", nil, http.StatusBadRequest},
		"board unknown":  {http.MethodGet, "/api/v1/maps/labyrinth/leaderboard", nil, http.StatusBadRequest},
		"trials unknown": {http.MethodGet, "/api/v1/maps/labyrinth/trials", nil, http.StatusBadRequest},
		"trials limit":   {http.MethodGet, "/api/v1/maps/open/trials?limit=101", nil, http.StatusBadRequest},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(engine, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestBatch(t *testing.T) {
	engine := newEngine(t, newRunner(t))

	w := do(engine, http.MethodPost, "/api/v1/trials/batch", BatchRequest{Map: "open"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[dmn.BatchSummary](t, w)
	assert.Equal(t, 9, summary.Trials)
	assert.Equal(t, 0, summary.Incomplete)
}

func TestHistory(t *testing.T) {
	engine := newEngine(t, newRunner(t))

	w := do(engine, http.MethodGet, "/api/v1/maps/open/trials", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"map":"open","trials":[]}`, w.Body.String())

	w = do(engine, http.MethodPost, "/api/v1/trials/batch", BatchRequest{Map: "open"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(engine, http.MethodGet, "/api/v1/maps/open/trials?limit=4", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	history := decode[HistoryResponse](t, w)
	assert.Equal(t, "open", history.Map)
	require.Len(t, history.Trials, 4)
	for _, trial := range history.Trials {
		assert.Equal(t, "open", trial.MapName)
	}

	w = do(engine, http.MethodGet, "/api/v1/maps/open/trials", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[HistoryResponse](t, w).Trials, 9)
}

func TestReplay(t *testing.T) {
	engine := newEngine(t, newRunner(t))

	w := do(engine, http.MethodGet, "/api/v1/maps/open/replay?steps=2&x=1&y=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	replay := decode[i.Replay](t, w)
	assert.Equal(t, explorer.Coordinate{X: 1, Y: 1}, replay.Start)
	assert.Equal(t, 2, replay.Steps)
	assert.NotEmpty(t, replay.Memory)
	for _, n := range replay.Memory {
		assert.NotEqual(t, explorer.Undiscovered, n.Status)
	}
}

type failingService struct {
	i.TrialService
}

func (failingService) Run(context.Context, string, *explorer.Coordinate) (*dmn.Trial, error) {
	return nil, errors.New("disk on fire")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	engine := newEngine(t, failingService{})

	w := do(engine, http.MethodPost, "/api/v1/trials", TrialRequest{Map: "open"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk on fire")
}
