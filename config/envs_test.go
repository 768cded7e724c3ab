package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("EXPLORER_TEST_SET", "north")
	assert.Equal(t, "north", getEnvWithDefault("EXPLORER_TEST_SET", "west"))
	assert.Equal(t, "west", getEnvWithDefault("EXPLORER_TEST_UNSET", "west"))

	t.Setenv("EXPLORER_TEST_EMPTY", "")
	assert.Equal(t, "", getEnvWithDefault("EXPLORER_TEST_EMPTY", "west"), "set but empty is kept")
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Setenv("EXPLORER_TEST_INT", "12")
	assert.Equal(t, 12, getEnvAsIntWithDefault("EXPLORER_TEST_INT", 4))
	assert.Equal(t, 4, getEnvAsIntWithDefault("EXPLORER_TEST_INT_UNSET", 4))

	t.Setenv("EXPLORER_TEST_INT_EMPTY", "")
	assert.Equal(t, 4, getEnvAsIntWithDefault("EXPLORER_TEST_INT_EMPTY", 4))
}

func TestGetEnvAsBoolWithDefault(t *testing.T) {
	for value, want := range map[string]bool{"true": true, "1": true, "false": false, "0": false} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("EXPLORER_TEST_BOOL", value)
			assert.Equal(t, want, getEnvAsBoolWithDefault("EXPLORER_TEST_BOOL", !want))
		})
	}
	assert.True(t, getEnvAsBoolWithDefault("EXPLORER_TEST_BOOL_UNSET", true))
}

func TestInitConfigDefaults(t *testing.T) {
	for _, key := range []string{"HOST_IP", "REST_PORT", "DB_NAME", "EXPLORER_HEADING", "EXPLORER_PRIORITY_REACH", "EXPLORER_WORKERS", "EXPLORER_MAX_STEPS"} {
		t.Setenv(key, "")
	}
	t.Setenv("EXPLORER_HEADING", "east")

	c := initConfig()
	assert.Equal(t, "east", c.Heading)
	assert.Equal(t, 8080, c.RESTPort)
	assert.Equal(t, 1, c.PriorityReach)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 100000, c.MaxSteps)
}
