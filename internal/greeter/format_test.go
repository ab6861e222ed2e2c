package greeter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestFormatTimestamp verifies the display layout across padding and
// truncation boundaries.
func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "All fields single digit",
			input:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			expected: "2024-01-02 03:04:05",
		},
		{
			name:     "Midnight",
			input:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: "2024-12-31 00:00:00",
		},
		{
			name:     "Last second of the year",
			input:    time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "2023-12-31 23:59:59",
		},
		{
			name:     "Afternoon stays 24-hour",
			input:    time.Date(2024, 3, 5, 21, 7, 42, 0, time.UTC),
			expected: "2024-03-05 21:07:42",
		},
		{
			name:     "Nanoseconds truncated not rounded",
			input:    time.Date(2024, 3, 5, 9, 7, 42, 999_999_999, time.UTC),
			expected: "2024-03-05 09:07:42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimestamp(tt.input))
		})
	}
}
