package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		fallback time.Duration
		expected time.Duration
		wantErr  bool
	}{
		{"empty uses fallback", "", 3 * time.Second, 3 * time.Second, false},
		{"valid seconds", "5s", 2 * time.Second, 5 * time.Second, false},
		{"valid minutes", "1m", 2 * time.Second, time.Minute, false},
		{"minimum allowed", "500ms", 2 * time.Second, 500 * time.Millisecond, false},
		{"too short", "100ms", 2 * time.Second, 0, true},
		{"not a duration", "fast", 2 * time.Second, 0, true},
		{"bare number", "5", 2 * time.Second, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInterval(tt.flag, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
