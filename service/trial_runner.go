package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/beka-birhanu/vinom-explorer/maze"
	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers         = 4
	defaultMaxSteps        = 100000
	defaultLeaderboardSize = 100
	leaderboardKeyFmt      = "explorer:leaderboard:%s"
)

var (
	ErrNoStarts          = errors.New("map has no cell to start from")
	ErrMissingDependency = errors.New("missing dependency")
	ErrInvalidSteps      = errors.New("replay steps must not be negative")
	ErrNoLeaderboard     = errors.New("leaderboard is not configured")
)

var _ i.TrialService = &TrialRunner{}

// Config holds the dependencies and limits of a TrialRunner.
type Config struct {
	Catalog         i.MapCatalog
	Repo            i.TrialRepo
	Leaderboard     i.Leaderboard   // Optional.
	Recorder        i.TrialRecorder // Optional.
	Logger          i.Logger
	Agent           explorer.Config
	MaxSteps        int   // Per-trial step budget.
	Workers         int   // Trials explored in parallel by RunBatch.
	LeaderboardSize int64 // Members kept per map.
}

// TrialRunner runs exploration agents over catalogued maps and records the results.
type TrialRunner struct {
	catalog         i.MapCatalog
	repo            i.TrialRepo
	leaderboard     i.Leaderboard
	recorder        i.TrialRecorder
	logger          i.Logger
	agentCfg        explorer.Config
	maxSteps        int
	workers         int
	leaderboardSize int64
}

// NewTrialRunner validates cfg and fills the defaults of unset limits. A zero
// Agent config selects explorer.DefaultConfig.
func NewTrialRunner(cfg *Config) (*TrialRunner, error) {
	if cfg == nil || cfg.Catalog == nil || cfg.Repo == nil || cfg.Logger == nil {
		return nil, fmt.Errorf("%w: catalog, repo and logger are required", ErrMissingDependency)
	}
	agentCfg := cfg.Agent
	if agentCfg == (explorer.Config{}) {
		agentCfg = explorer.DefaultConfig()
	}
	if err := agentCfg.Validate(); err != nil {
		return nil, err
	}

	r := &TrialRunner{
		catalog:         cfg.Catalog,
		repo:            cfg.Repo,
		leaderboard:     cfg.Leaderboard,
		recorder:        cfg.Recorder,
		logger:          cfg.Logger,
		agentCfg:        agentCfg,
		maxSteps:        cfg.MaxSteps,
		workers:         cfg.Workers,
		leaderboardSize: cfg.LeaderboardSize,
	}
	if r.recorder == nil {
		r.recorder = nopRecorder{}
	}
	if r.maxSteps <= 0 {
		r.maxSteps = defaultMaxSteps
	}
	if r.workers <= 0 {
		r.workers = defaultWorkers
	}
	if r.leaderboardSize <= 0 {
		r.leaderboardSize = defaultLeaderboardSize
	}
	return r, nil
}

// Run explores mapName once and records the trial.
func (r *TrialRunner) Run(ctx context.Context, mapName string, start *explorer.Coordinate) (*dmn.Trial, error) {
	m, layout, err := r.catalog.Map(mapName)
	if err != nil {
		return nil, err
	}
	origin, err := startFor(m, layout, start)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	trial, err := r.explore(ctx, mapName, m, origin)
	if err != nil {
		r.fail(mapName, err)
		return nil, err
	}
	if err := r.record(ctx, trial); err != nil {
		r.fail(mapName, err)
		return nil, err
	}
	r.recorder.ObserveTrial(trial, time.Since(began))

	r.logger.Info(fmt.Sprintf("Trial %s on %s from %s: %d steps, %d repeated, %d/%d visited",
		trial.ID, mapName, origin, trial.Steps, trial.RepeatedSpaces, trial.Visited, trial.Reachable))
	return trial, nil
}

// RunBatch explores mapName from every spawn point, at most r.workers at a
// time. The first failing trial cancels the rest and nothing is recorded.
func (r *TrialRunner) RunBatch(ctx context.Context, mapName string) (*dmn.BatchSummary, error) {
	m, _, err := r.catalog.Map(mapName)
	if err != nil {
		return nil, err
	}
	spawns := m.SpawnPoints()
	if len(spawns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoStarts, mapName)
	}

	began := time.Now()
	trials := make([]*dmn.Trial, len(spawns))
	elapsed := make([]time.Duration, len(spawns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for idx, start := range spawns {
		g.Go(func() error {
			t0 := time.Now()
			trial, err := r.explore(gctx, mapName, m, start)
			if err != nil {
				return err
			}
			trials[idx] = trial
			elapsed[idx] = time.Since(t0)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.fail(mapName, err)
		return nil, err
	}

	for idx, trial := range trials {
		if err := r.record(ctx, trial); err != nil {
			r.fail(mapName, err)
			return nil, err
		}
		r.recorder.ObserveTrial(trial, elapsed[idx])
	}

	summary := dmn.Summarize(mapName, trials)
	r.recorder.ObserveBatch(summary, time.Since(began))
	r.logger.Info(fmt.Sprintf("Batch on %s: %d trials, repeated total=%d min=%d max=%d mean=%.2f",
		mapName, summary.Trials, summary.Total, summary.Min, summary.Max, summary.Mean))
	return summary, nil
}

// Replay runs at most steps moves without recording anything.
func (r *TrialRunner) Replay(ctx context.Context, mapName string, start *explorer.Coordinate, steps int) (*i.Replay, error) {
	if steps < 0 {
		return nil, ErrInvalidSteps
	}
	m, layout, err := r.catalog.Map(mapName)
	if err != nil {
		return nil, err
	}
	origin, err := startFor(m, layout, start)
	if err != nil {
		return nil, err
	}

	agent, err := explorer.NewAgent(origin, m, &r.agentCfg)
	if err != nil {
		return nil, err
	}
	for n := 0; n < steps && agent.Move(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return &i.Replay{
		MapName:        mapName,
		Start:          origin,
		Position:       agent.CurrentPosition(),
		Steps:          agent.Steps(),
		RepeatedSpaces: agent.RepeatedSpaces(),
		Heading:        agent.RotationOffset().String(),
		Done:           agent.Done(),
		PendingPath:    agent.PendingPath(),
		Memory:         agent.Memory().Snapshot(),
	}, nil
}

// Trial retrieves a recorded trial.
func (r *TrialRunner) Trial(id uuid.UUID) (*dmn.Trial, error) {
	return r.repo.ByID(id)
}

// Trials lists the recorded trials of mapName, newest first.
func (r *TrialRunner) Trials(mapName string, limit int64) ([]*dmn.Trial, error) {
	if _, _, err := r.catalog.Map(mapName); err != nil {
		return nil, err
	}
	return r.repo.ByMap(mapName, limit)
}

// Leaderboard returns the best n trials recorded for mapName.
func (r *TrialRunner) Leaderboard(ctx context.Context, mapName string, n int64) ([]i.LeaderboardEntry, error) {
	if r.leaderboard == nil {
		return nil, ErrNoLeaderboard
	}
	if _, _, err := r.catalog.Map(mapName); err != nil {
		return nil, err
	}
	return r.leaderboard.Best(ctx, leaderboardKey(mapName), n)
}

// Maps lists the catalogued maps.
func (r *TrialRunner) Maps() []string {
	return r.catalog.Names()
}

// explore drives one agent to completion, checking ctx between moves.
func (r *TrialRunner) explore(ctx context.Context, mapName string, m *maze.Maze, start explorer.Coordinate) (*dmn.Trial, error) {
	agent, err := explorer.NewAgent(start, m, &r.agentCfg)
	if err != nil {
		return nil, err
	}

	trace := []explorer.Coordinate{start}
	for agent.Move() {
		trace = append(trace, agent.CurrentPosition())
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if agent.Steps() >= r.maxSteps && !agent.Done() {
			return nil, fmt.Errorf("%w: %s from %s after %d steps", explorer.ErrStepLimit, mapName, start, agent.Steps())
		}
	}

	return dmn.NewTrial(dmn.TrialConfig{
		MapName:   mapName,
		Start:     start,
		Heading:   r.agentCfg.Heading,
		Reachable: m.ReachableFrom(start),
		Stats:     agent.Stats(),
		Trace:     trace,
	})
}

// record persists trial and ranks it. Leaderboard failures are logged only.
func (r *TrialRunner) record(ctx context.Context, trial *dmn.Trial) error {
	if err := r.repo.Save(trial); err != nil {
		return fmt.Errorf("saving trial %s: %w", trial.ID, err)
	}
	if r.leaderboard == nil {
		return nil
	}

	key := leaderboardKey(trial.MapName)
	if err := r.leaderboard.Submit(ctx, key, float64(trial.RepeatedSpaces), trial.ID.String()); err != nil {
		r.logger.Warning(fmt.Sprintf("Ranking trial %s: %v", trial.ID, err))
		return nil
	}
	if r.leaderboard.Count(ctx, key) > r.leaderboardSize {
		if err := r.leaderboard.Trim(ctx, key, r.leaderboardSize); err != nil {
			r.logger.Warning(fmt.Sprintf("Trimming leaderboard %s: %v", key, err))
		}
	}
	return nil
}

func (r *TrialRunner) fail(mapName string, err error) {
	r.recorder.ObserveFailure(mapName)
	r.logger.Error(fmt.Sprintf("Exploring %s: %v", mapName, err))
}

// startFor resolves the start of a run: the requested one, else the layout's
// suggestion, else the first spawn point.
func startFor(m *maze.Maze, layout *maze.Layout, requested *explorer.Coordinate) (explorer.Coordinate, error) {
	if requested != nil {
		if !m.HasNode(*requested) {
			return explorer.Coordinate{}, fmt.Errorf("%w: %s", explorer.ErrInvalidStart, *requested)
		}
		return *requested, nil
	}
	if layout != nil && layout.Start != nil {
		return *layout.Start, nil
	}
	spawns := m.SpawnPoints()
	if len(spawns) == 0 {
		return explorer.Coordinate{}, ErrNoStarts
	}
	return spawns[0], nil
}

func leaderboardKey(mapName string) string {
	return fmt.Sprintf(leaderboardKeyFmt, mapName)
}

type nopRecorder struct{}

func (nopRecorder) ObserveTrial(*dmn.Trial, time.Duration) {}
func (nopRecorder) ObserveBatch(*dmn.BatchSummary, time.Duration) {}
func (nopRecorder) ObserveFailure(string) {}
