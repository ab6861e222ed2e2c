package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-greeting/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime behavior.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"LogFileName", config.LogFileName},
		{"GreetingLine", config.GreetingLine},
		{"TimestampPrefix", config.TimestampPrefix},
		{"TimestampLayout", config.TimestampLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestOutputContract_Literals pins the stdout contract byte for byte.
// Any change here is a breaking change for consumers parsing the output.
func TestOutputContract_Literals(t *testing.T) {
	assert.Equal(t, "Hello! Welcome to Python!", config.GreetingLine)
	assert.Equal(t, "Today's date and time: ", config.TimestampPrefix)
	assert.True(t, strings.HasSuffix(config.TimestampPrefix, ": "),
		"Prefix must end with a separator so the timestamp reads naturally")
}

// TestTimestampLayout_RoundTrip verifies the layout both renders and parses,
// guarding against a malformed Go reference-time pattern.
func TestTimestampLayout_RoundTrip(t *testing.T) {
	ref := time.Date(2024, 3, 5, 9, 7, 42, 0, time.UTC)

	rendered := ref.Format(config.TimestampLayout)
	assert.Equal(t, "2024-03-05 09:07:42", rendered)

	parsed, err := time.Parse(config.TimestampLayout, rendered)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(ref), "Layout must round-trip without drift")
}

// TestDefaults_Sanity checks that operational values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 0, config.ExitCodeSuccess, "Success must map to exit 0")
	assert.NotEqual(t, config.ExitCodeSuccess, config.ExitCodeError)

	assert.Greater(t, config.LogMaxSizeMB, 0, "Rotation threshold must be positive")
	assert.Greater(t, config.LogMaxBackups, 0, "At least one rotated file should be retained")

	// Log artifacts must stay private to the owner.
	assert.EqualValues(t, 0o600, config.FilePermUserRW.Perm())
	assert.EqualValues(t, 0o700, config.DirPermUserRWX.Perm())
}
