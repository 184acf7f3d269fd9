// Package cli implements the classpulse command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small command function for the actual work. The
// general structure keeps a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Command functions (dashboardCommand, serveCommand, ...)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "classpulse" with subcommands per operation:
//
//	classpulse student     - Personal well-being dashboard
//	classpulse instructor  - Classroom overview dashboard
//	classpulse serve       - Built-in mock backend
//	classpulse record      - Headless session recorder
//	classpulse report      - HTML report from a recorded session
//	classpulse init        - Create .classpulse.yaml config
//	classpulse version     - Version information
//
// # Configuration Flow
//
// Every command resolves its settings the same way: defaults, then the
// discovered config file, then a .env file and CLASSPULSE_BASE_URL from
// the environment, then explicit flags. The --config flag pins the file;
// --base-url wins over everything.
//
// # Flag Handling
//
// Global flags (--config, --base-url, --no-color) are defined on the
// root command and available to all subcommands. Command-specific flags
// like --interval and --session are defined on individual commands.
package cli
