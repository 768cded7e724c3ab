package trialapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/beka-birhanu/vinom-explorer/infrastruture/repo"
	"github.com/beka-birhanu/vinom-explorer/service"
	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrialController serves exploration runs and their records.
type TrialController struct {
	trials i.TrialService
}

// NewTrialController initializes a TrialController.
func NewTrialController(ts i.TrialService) (*TrialController, error) {
	if ts == nil {
		return nil, errors.New("trial service is required")
	}
	return &TrialController{
		trials: ts,
	}, nil
}

// RegisterPublic registers public routes.
func (tc *TrialController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/maps", tc.maps)
	route.GET("/maps/:name/leaderboard", tc.leaderboard)
	route.GET("/maps/:name/trials", tc.history)
	route.GET("/trials/:ID", tc.trial)
}

// RegisterThrottled registers routes that run agents.
func (tc *TrialController) RegisterThrottled(route *gin.RouterGroup) {
	trials := route.Group("/trials")
	{
		trials.POST("", tc.run)
		trials.POST("/batch", tc.runBatch)
	}
	route.GET("/maps/:name/replay", tc.replay)
}

// maps lists the known maps.
func (tc *TrialController) maps(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &MapsResponse{Maps: tc.trials.Maps()})
}

// run explores a map once.
func (tc *TrialController) run(ctx *gin.Context) {
	var request TrialRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trial, err := tc.trials.Run(ctx.Request.Context(), request.Map, request.Start)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, trial)
}

// runBatch explores a map from every spawn point.
func (tc *TrialController) runBatch(ctx *gin.Context) {
	var request BatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := tc.trials.RunBatch(ctx.Request.Context(), request.Map)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// trial retrieves a recorded trial.
func (tc *TrialController) trial(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid trial id"})
		return
	}

	trial, err := tc.trials.Trial(ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, trial)
}

// leaderboard returns the best trials of a map.
func (tc *TrialController) leaderboard(ctx *gin.Context) {
	var query LeaderboardQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := ctx.Params.ByName("name")
	entries, err := tc.trials.Leaderboard(ctx.Request.Context(), name, query.Limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &LeaderboardResponse{Map: name, Entries: entries})
}

// history lists the recorded trials of a map.
func (tc *TrialController) history(ctx *gin.Context) {
	var query HistoryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := ctx.Params.ByName("name")
	trials, err := tc.trials.Trials(name, query.Limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if trials == nil {
		trials = []*dmn.Trial{}
	}
	ctx.JSON(http.StatusOK, &HistoryResponse{Map: name, Trials: trials})
}

// replay runs an agent part way and returns its memory.
func (tc *TrialController) replay(ctx *gin.Context) {
	var query ReplayQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (query.X == nil) != (query.Y == nil) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "x and y must be given together"})
		return
	}

	var start *explorer.Coordinate
	if query.X != nil {
		start = &explorer.Coordinate{X: *query.X, Y: *query.Y}
	}

	replay, err := tc.trials.Replay(ctx.Request.Context(), ctx.Params.ByName("name"), start, query.Steps)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, replay)
}

// respondError maps service errors to status codes.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrTrialNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownMap),
		errors.Is(err, service.ErrNoStarts),
		errors.Is(err, service.ErrInvalidSteps),
		errors.Is(err, explorer.ErrInvalidStart):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "exploration failed"})
	}
}
