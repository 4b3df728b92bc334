package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	assert.Equal(t, "value", GetEnvString("TEST_STRING", "default"))

	t.Setenv("TEST_STRING", "")
	assert.Equal(t, "default", GetEnvString("TEST_STRING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 7},
		{name: "valid", value: "42", want: 42},
		{name: "negative", value: "-3", want: -3},
		{name: "invalid", value: "forty", want: 7},
		{name: "trailing garbage", value: "12abc", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("TEST_INT", 7))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("TEST_FLOAT", 1))

	t.Setenv("TEST_FLOAT", "fast")
	assert.Equal(t, 1.0, GetEnvFloat("TEST_FLOAT", 1))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "false")
	assert.False(t, GetEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "1")
	assert.True(t, GetEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, GetEnvBool("TEST_BOOL", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_DURATION", time.Second))
}

func TestValidatePositiveDuration(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePositiveDuration(time.Millisecond))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.Error(t, ValidatePositiveDuration(-time.Second))
}

func TestValidatePositiveDurations(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePositiveDurations(map[string]time.Duration{
		"read_timeout": time.Second,
	}))
	assert.NoError(t, ValidatePositiveDurations(nil))

	err := ValidatePositiveDurations(map[string]time.Duration{
		"write_timeout":    0,
		"read_timeout":     time.Second,
		"shutdown_timeout": -time.Second,
	})
	assert.EqualError(t, err, "shutdown_timeout must be a positive duration, got -1s\n"+
		"write_timeout must be a positive duration, got 0s")
}
