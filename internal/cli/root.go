package cli

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dataforge-labs/dataforge/internal/branding"
	"github.com/dataforge-labs/dataforge/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds analytics project workspaces from versioned
blueprints and loads their CSV datasets into MySQL, PostgreSQL, or SQLite.

Run '` + branding.CLIName() + ` new' to materialize a workspace. Re-running is safe:
dataset files that already hold data are never overwritten.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(rootVerbose || os.Getenv(branding.EnvVar("DEBUG")) != "")
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

// setupLogging routes slog through a tinted stderr handler. Command output
// goes to stdout; the log stream only carries diagnostics.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
