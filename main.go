// vinom-explorer runs frontier-exploration agents over grid mazes.
//
// Usage:
//
//	vinom-explorer run [--map=<name>] [--x=<x> --y=<y>] [--trace]
//	vinom-explorer batch [--map=<name>]
//	vinom-explorer show [--map=<name>] [--list]
//	vinom-explorer serve
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-explorer/api"
	api_i "github.com/beka-birhanu/vinom-explorer/api/i"
	trialapi "github.com/beka-birhanu/vinom-explorer/api/trial"
	"github.com/beka-birhanu/vinom-explorer/config"
	"github.com/beka-birhanu/vinom-explorer/explorer"
	logger "github.com/beka-birhanu/vinom-explorer/infrastruture/log"
	"github.com/beka-birhanu/vinom-explorer/infrastruture/metrics"
	"github.com/beka-birhanu/vinom-explorer/infrastruture/repo"
	"github.com/beka-birhanu/vinom-explorer/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-explorer/service"
	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	mapCatalog      *service.MapCatalog
	trialRepo       i.TrialRepo
	leaderboard     i.Leaderboard
	registry        *prometheus.Registry
	recorder        i.TrialRecorder
	trialRunner     *service.TrialRunner
	trialController api_i.Controller
	router          *api.Router
	appLogger       i.Logger
	logOutput       io.Writer = os.Stderr
)

var agentFlags struct {
	heading  string
	reach    int
	promote  bool
	maxSteps int
	workers  int
	mapsDir  string
}

var rootCmd = &cobra.Command{
	Use:               "vinom-explorer",
	Short:             "Frontier-exploration agents for grid mazes",
	Long:              "vinom-explorer drives agents that map an unknown maze one cell at a time\nwhile avoiding walking over cells they already visited.",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&agentFlags.heading, "heading", config.Envs.Heading, "Direction the first scan starts from (east, south, west, north)")
	f.IntVar(&agentFlags.reach, "priority-reach", config.Envs.PriorityReach, "Distance (1 or 2) at which a nearby priority cell is taken")
	f.BoolVar(&agentFlags.promote, "promote-on-move", config.Envs.PromoteOnMove, "Promote unvisited neighbours of the cell being left")
	f.IntVar(&agentFlags.maxSteps, "max-steps", config.Envs.MaxSteps, "Step budget per trial")
	f.IntVar(&agentFlags.workers, "workers", config.Envs.Workers, "Trials run in parallel by batch")
	f.StringVar(&agentFlags.mapsDir, "maps-dir", config.Envs.MapsDir, "Directory with extra YAML map layouts")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	logOutput = cmd.ErrOrStderr()
	l, err := logger.New("APP", config.ColorGreen, logOutput)
	if err != nil {
		return err
	}
	appLogger = l
	return nil
}

func agentConfig() (explorer.Config, error) {
	heading, err := explorer.ParseDirection(agentFlags.heading)
	if err != nil {
		return explorer.Config{}, err
	}
	cfg := explorer.Config{
		Heading:       heading,
		PriorityReach: agentFlags.reach,
		PromoteOnMove: agentFlags.promote,
	}
	return cfg, cfg.Validate()
}

func initCatalog() error {
	var err error
	mapCatalog, err = service.NewMapCatalog(agentFlags.mapsDir)
	if err != nil {
		return fmt.Errorf("loading maps: %w", err)
	}
	appLogger.Info(fmt.Sprintf("Map catalog initialized with %d maps", len(mapCatalog.Names())))
	return nil
}

func initTrialRepo(ctx context.Context) error {
	if config.Envs.MongoURI == "" {
		trialRepo = repo.NewMemoryTrialRepo()
		appLogger.Info("Trial repository initialized in memory")
		return nil
	}

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(config.Envs.MongoURI))
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("pinging MongoDB: %w", err)
	}
	appLogger.Info("Connected to MongoDB")

	mongoRepo := repo.NewTrialRepo(mongoClient, config.Envs.DBName, "trials")
	if err := mongoRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Creating trial indexes: %v", err))
	}
	trialRepo = mongoRepo
	appLogger.Info("Trial repository initialized")
	return nil
}

func initLeaderboard(ctx context.Context) error {
	if config.Envs.RedisAddr == "" {
		leaderboard = sortedstorage.NewMemoryLeaderboard()
		appLogger.Info("Leaderboard initialized in memory")
		return nil
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging Redis: %w", err)
	}
	appLogger.Info("Connected to Redis")

	var err error
	leaderboard, err = sortedstorage.NewRedisLeaderboard(redisClient, config.Envs.LeaderboardTTL)
	if err != nil {
		return fmt.Errorf("creating leaderboard: %w", err)
	}
	appLogger.Info("Leaderboard initialized")
	return nil
}

func initRecorder() {
	registry = prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder = metrics.NewRecorder(registry)
	appLogger.Info("Metrics recorder initialized")
}

func initTrialRunner() error {
	agentCfg, err := agentConfig()
	if err != nil {
		return err
	}
	runnerLogger, err := logger.New("TRIAL-RUNNER", config.ColorCyan, logOutput)
	if err != nil {
		return fmt.Errorf("creating trial runner logger: %w", err)
	}

	trialRunner, err = service.NewTrialRunner(&service.Config{
		Catalog:     mapCatalog,
		Repo:        trialRepo,
		Leaderboard: leaderboard,
		Recorder:    recorder,
		Logger:      runnerLogger,
		Agent:       agentCfg,
		MaxSteps:    agentFlags.maxSteps,
		Workers:     agentFlags.workers,
	})
	if err != nil {
		return fmt.Errorf("creating trial runner: %w", err)
	}
	appLogger.Info("Trial runner initialized")
	return nil
}

func initTrialController() error {
	var err error
	trialController, err = trialapi.NewTrialController(trialRunner)
	if err != nil {
		return fmt.Errorf("creating trial controller: %w", err)
	}
	appLogger.Info("Trial controller initialized")
	return nil
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:               fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:            "/api",
		Controllers:        []api_i.Controller{trialController},
		ThrottleMiddleware: api.Throttle(int64(config.Envs.MaxInFlight)),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})
	appLogger.Info("Router initialized")
}

// initServices wires everything a command needs to run trials.
func initServices(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := initCatalog(); err != nil {
		return err
	}
	if err := initTrialRepo(connectCtx); err != nil {
		return err
	}
	if err := initLeaderboard(connectCtx); err != nil {
		return err
	}
	initRecorder()
	return initTrialRunner()
}

// closeServices releases the connections opened by initServices.
func closeServices() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if mongoClient != nil {
		_ = mongoClient.Disconnect(ctx)
		mongoClient = nil
	}
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
