package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/classpulse/classpulse/internal/api"
	"github.com/classpulse/classpulse/internal/config"
	"github.com/classpulse/classpulse/internal/errors"
)

// initCommand creates a .classpulse.yaml in the current directory via
// interactive prompts.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	baseURL := api.DefaultBaseURL
	studentInterval := config.StudentInterval.String()
	instructorInterval := config.InstructorInterval.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend base URL").
				Description("Where the well-being backend listens").
				Placeholder(api.DefaultBaseURL).
				Value(&baseURL).
				Validate(func(s string) error {
					u, err := url.Parse(strings.TrimSpace(s))
					if err != nil || u.Scheme == "" || u.Host == "" {
						return fmt.Errorf("enter a full URL like %s", api.DefaultBaseURL)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Student poll interval").
				Description("How often the student dashboard refreshes").
				Placeholder(config.StudentInterval.String()).
				Value(&studentInterval).
				Validate(validateIntervalInput),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Instructor poll interval").
				Description("How often the instructor dashboard refreshes").
				Placeholder(config.InstructorInterval.String()).
				Value(&instructorInterval).
				Validate(validateIntervalInput),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Re-run 'classpulse init' to try again")
	}

	cfg := config.DefaultConfig()
	cfg.BaseURL = strings.TrimSpace(baseURL)
	cfg.Student.Interval, _ = time.ParseDuration(studentInterval)
	cfg.Instructor.Interval, _ = time.ParseDuration(instructorInterval)

	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("Start a dashboard with 'classpulse student' or 'classpulse instructor'.")
	return nil
}

// validateIntervalInput enforces the minimum poll interval on form input.
func validateIntervalInput(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a duration like 2s or 500ms")
	}
	if d < config.MinInterval {
		return fmt.Errorf("minimum interval is %s", config.MinInterval)
	}
	return nil
}

// writeConfig marshals the config to YAML with a header comment.
func writeConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config", "")
	}

	header := "# classpulse configuration\n# Backend overridable with CLASSPULSE_BASE_URL or --base-url.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}
	return nil
}
