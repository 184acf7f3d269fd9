package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"http url", "http://localhost:8765", false},
		{"https url", "https://backend.example.com", false},
		{"missing scheme", "localhost:8765", true},
		{"empty", "", true},
		{"garbage", "://nope", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BaseURL = tt.baseURL
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_IntervalTooShort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Student.Interval = 100 * time.Millisecond
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Instructor.Interval = 0
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Student.Interval = MinInterval
	assert.NoError(t, Validate(cfg))
}

func TestValidate_TrendSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Student.TrendSize = 0
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Instructor.TrendSize = -3
	assert.Error(t, Validate(cfg))
}
