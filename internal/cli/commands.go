package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/classpulse/classpulse/internal/dashboard"
	"github.com/classpulse/classpulse/internal/errors"
)

// Command-specific flags
var (
	studentIntervalFlag    string
	studentTrendFlag       int
	instructorIntervalFlag string
	instructorTrendFlag    int
	serveAddrFlag          string
	serveSeedFlag          int64
	recordRoleFlag         string
	recordDurationFlag     string
	recordCountFlag        int
	recordDBFlag           string
	reportSessionFlag      int64
	reportOutFlag          string
	reportDBFlag           string
	reportListFlag         bool
	initForce              bool
)

// studentCmd runs the personal well-being dashboard
var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Personal well-being dashboard",
	Long: `Start the student dashboard: your own focus, stress, engagement,
and relaxation levels, the sensor signal quality, and a rolling focus
trend.

Polls the backend every 2 seconds by default. When a poll fails the
last good snapshot stays on screen under an error banner.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh
  ?           Show help

Examples:
  classpulse student
  classpulse student --interval 5s
  classpulse student --base-url http://lab-backend:8765`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboard.RoleStudent, studentIntervalFlag, studentTrendFlag)
	},
}

// instructorCmd runs the classroom overview dashboard
var instructorCmd = &cobra.Command{
	Use:   "instructor",
	Short: "Classroom overview dashboard",
	Long: `Start the instructor dashboard: classroom-average focus, stress,
and engagement, the active module, and how many students are currently
highly stressed.

Polls the backend every 3 seconds by default. When a poll fails the
last good snapshot stays on screen under an error banner.

Examples:
  classpulse instructor
  classpulse instructor --interval 10s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboard.RoleInstructor, instructorIntervalFlag, instructorTrendFlag)
	},
}

// serveCmd runs the built-in mock backend
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a mock well-being backend",
	Long: `Start a local HTTP server that mimics the real well-being backend
with randomized metrics. Useful for demos and for developing against
classpulse without sensor hardware.

Endpoints:
  GET /student/insights
  GET /instructor/summary
  GET /health

Examples:
  classpulse serve
  classpulse serve --addr :9000
  classpulse serve --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand(serveAddrFlag, serveSeedFlag)
	},
}

// recordCmd runs the headless session recorder
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a polling session to SQLite",
	Long: `Poll the backend without a UI and append every tick, failures
included, to a local SQLite database. Stop with Ctrl+C, --duration, or
--count.

Recorded sessions can be turned into HTML reports with
'classpulse report'.

Examples:
  classpulse record
  classpulse record --role instructor --duration 10m
  classpulse record --count 100 --db ./lab.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return recordCommand(recordRoleFlag, recordDurationFlag, recordCountFlag, recordDBFlag)
	},
}

// reportCmd renders a recorded session as HTML
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a recorded session as an HTML report",
	Long: `Generate a standalone HTML report, trend charts included, from a
session recorded with 'classpulse record'. Defaults to the most recent
session and stdout.

Examples:
  classpulse report > session.html
  classpulse report --session 3 --out session.html
  classpulse report --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportCommand(reportSessionFlag, reportOutFlag, reportDBFlag, reportListFlag)
	},
}

// initCmd creates a new .classpulse.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .classpulse.yaml configuration",
	Long: `Initialize a classpulse configuration file in the current
directory. Guides you through the backend address and poll intervals
with interactive prompts.

Examples:
  classpulse init
  classpulse init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for classpulse.

Examples:
  # Bash
  classpulse completion bash > /etc/bash_completion.d/classpulse

  # Zsh
  classpulse completion zsh > "${fpath[1]}/_classpulse"

  # Fish
  classpulse completion fish > ~/.config/fish/completions/classpulse.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

// parseInterval resolves an --interval flag over the configured default.
func parseInterval(flag string, fallback time.Duration) (time.Duration, error) {
	if flag == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid interval: "+flag,
			"Use a valid duration like 2s, 5s, or 1m")
	}
	if parsed < 500*time.Millisecond {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			"Minimum interval is 500ms to avoid hammering the backend")
	}
	return parsed, nil
}

func init() {
	// student command flags
	studentCmd.Flags().StringVar(&studentIntervalFlag, "interval", "", "poll interval (e.g., 2s, 5s)")
	studentCmd.Flags().IntVar(&studentTrendFlag, "trend-size", 0, "focus trend window size")

	// instructor command flags
	instructorCmd.Flags().StringVar(&instructorIntervalFlag, "interval", "", "poll interval (e.g., 3s, 10s)")
	instructorCmd.Flags().IntVar(&instructorTrendFlag, "trend-size", 0, "focus trend window size")

	// serve command flags
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "listen address (default from config, :8765)")
	serveCmd.Flags().Int64Var(&serveSeedFlag, "seed", 0, "random seed for reproducible metrics (0 = clock)")

	// record command flags
	recordCmd.Flags().StringVar(&recordRoleFlag, "role", "student", "which view to record: student or instructor")
	recordCmd.Flags().StringVar(&recordDurationFlag, "duration", "", "stop after this long (e.g., 10m)")
	recordCmd.Flags().IntVar(&recordCountFlag, "count", 0, "stop after this many ticks")
	recordCmd.Flags().StringVar(&recordDBFlag, "db", "", "SQLite database path (default from config)")

	// report command flags
	reportCmd.Flags().Int64Var(&reportSessionFlag, "session", 0, "session id (default: most recent)")
	reportCmd.Flags().StringVar(&reportOutFlag, "out", "", "output file (default: stdout)")
	reportCmd.Flags().StringVar(&reportDBFlag, "db", "", "SQLite database path (default from config)")
	reportCmd.Flags().BoolVar(&reportListFlag, "list", false, "list recorded sessions and exit")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(instructorCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
