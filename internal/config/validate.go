package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/classpulse/classpulse/internal/errors"
)

// MinInterval is the shortest allowed poll interval. Anything faster
// just hammers the backend without changing what the chart shows.
const MinInterval = 500 * time.Millisecond

// Validate checks a loaded config for values that would misbehave at runtime.
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid base_url: %q", cfg.BaseURL),
			"Use a full URL like http://localhost:8765")
	}

	for name, view := range map[string]ViewConfig{
		"student":    cfg.Student,
		"instructor": cfg.Instructor,
	} {
		if view.Interval < MinInterval {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Interval too short for %s view: %s", name, view.Interval),
				"Minimum interval is 500ms to avoid overwhelming the backend")
		}
		if view.TrendSize < 1 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("trend_size must be at least 1 for %s view", name),
				"Remove the setting to use the default")
		}
	}

	return nil
}
