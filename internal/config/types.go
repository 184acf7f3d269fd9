package config

import (
	"time"

	"github.com/classpulse/classpulse/internal/api"
)

// Trend window capacities per view. The instructor chart covers a
// slightly shorter history at its slower poll rate.
const (
	InstructorTrendSize = 30
	StudentTrendSize    = 40
)

// Poll intervals per view.
const (
	InstructorInterval = 3 * time.Second
	StudentInterval    = 2 * time.Second
)

// Config represents the complete .classpulse.yaml configuration file.
type Config struct {
	// BaseURL is the well-being backend address. Overridable with the
	// CLASSPULSE_BASE_URL environment variable or --base-url flag.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	Student    ViewConfig   `yaml:"student" mapstructure:"student"`
	Instructor ViewConfig   `yaml:"instructor" mapstructure:"instructor"`
	Record     RecordConfig `yaml:"record" mapstructure:"record"`
	Serve      ServeConfig  `yaml:"serve" mapstructure:"serve"`
	Output     OutputConfig `yaml:"output" mapstructure:"output"`
}

// ViewConfig holds per-dashboard polling settings.
type ViewConfig struct {
	// Interval between polls. Minimum 500ms.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// TrendSize is the focus trend window capacity.
	TrendSize int `yaml:"trend_size" mapstructure:"trend_size"`
}

// MarshalYAML writes the interval as a duration string ("2s") rather
// than nanoseconds, so generated config files stay readable.
func (v ViewConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Interval  string `yaml:"interval"`
		TrendSize int    `yaml:"trend_size"`
	}{v.Interval.String(), v.TrendSize}, nil
}

// RecordConfig controls the headless session recorder.
type RecordConfig struct {
	// DBPath is the SQLite database file for recorded sessions.
	DBPath string `yaml:"db_path" mapstructure:"db_path"`
}

// ServeConfig controls the built-in mock backend.
type ServeConfig struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with documented defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: api.DefaultBaseURL,
		Student: ViewConfig{
			Interval:  StudentInterval,
			TrendSize: StudentTrendSize,
		},
		Instructor: ViewConfig{
			Interval:  InstructorInterval,
			TrendSize: InstructorTrendSize,
		},
		Record: RecordConfig{
			DBPath: "./classpulse.db",
		},
		Serve: ServeConfig{
			Addr: ":8765",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
