package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/classpulse/classpulse/internal/config"
)

// Global flags available on every command.
var (
	configFlag  string
	baseURLFlag string
	noColorFlag bool
)

// rootCmd is the base command; running it bare prints help.
var rootCmd = &cobra.Command{
	Use:   "classpulse",
	Short: "Classroom well-being dashboards in your terminal",
	Long: `classpulse polls a well-being backend and renders live dashboards.

Students get a personal view of focus, stress, engagement, and
relaxation; instructors get the classroom-wide averages and the
high-stress headcount. Both views keep a rolling focus trend.

The backend address comes from .classpulse.yaml, the
CLASSPULSE_BASE_URL environment variable, or the --base-url flag.
No backend handy? 'classpulse serve' runs a mock one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyColorMode()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default: discovered .classpulse.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "well-being backend base URL")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// loadConfig resolves the effective config for a command: file,
// environment, then flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if noColorFlag {
		cfg.Output.Color = "never"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColorMode degrades lipgloss to plain output when color is off or
// stdout is not a terminal.
func applyColorMode() {
	if noColorFlag || os.Getenv("NO_COLOR") != "" ||
		!term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
