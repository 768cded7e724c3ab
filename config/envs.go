package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string // Host IP for the server
	RESTPort       int    // Port for the REST API
	GinMode        string // Mode for the Gin framework (e.g., release, debug, test)
	MongoURI       string // Connection string for MongoDB; trials stay in memory when empty
	DBName         string // Name of the database
	RedisAddr      string // Address of the Redis server; the leaderboard stays in memory when empty
	RedisPassword  string // Password for the Redis server
	LeaderboardTTL int    // Leaderboard key TTL in seconds
	MapsDir        string // Directory holding extra YAML map layouts
	Heading        string // Direction the directional scan starts from
	PriorityReach  int    // Distance at which a nearby Priority node is adopted
	PromoteOnMove  bool   // Promote neighbours of the cell being left
	MaxSteps       int    // Per-trial step budget
	Workers        int    // Trials run in parallel during a batch
	MaxInFlight    int    // Agent-running HTTP requests served at once
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		MongoURI:       getEnvWithDefault("MONGO_URI", ""),
		DBName:         getEnvWithDefault("DB_NAME", "explorer"),
		RedisAddr:      getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:  getEnvWithDefault("REDIS_PASSWORD", ""),
		LeaderboardTTL: getEnvAsIntWithDefault("LEADERBOARD_TTL", 86400),
		MapsDir:        getEnvWithDefault("MAPS_DIR", ""),
		Heading:        getEnvWithDefault("EXPLORER_HEADING", "west"),
		PriorityReach:  getEnvAsIntWithDefault("EXPLORER_PRIORITY_REACH", 1),
		PromoteOnMove:  getEnvAsBoolWithDefault("EXPLORER_PROMOTE_ON_MOVE", false),
		MaxSteps:       getEnvAsIntWithDefault("EXPLORER_MAX_STEPS", 100000),
		Workers:        getEnvAsIntWithDefault("EXPLORER_WORKERS", 4),
		MaxInFlight:    getEnvAsIntWithDefault("EXPLORER_MAX_INFLIGHT", 8),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default if not set.
// A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves an environment variable as a boolean, or the default if not set.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
