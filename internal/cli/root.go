package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/buildpin-labs/buildpin/internal/branding"
	"github.com/buildpin-labs/buildpin/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	workspacePath string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` runs the configuration pass of a multi-project native build:
it redirects every subproject's output into one shared build root, pins the
compile SDK of every subproject that supports it, and exposes a clean task
for the shared root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspacePath, "workspace", "w", branding.WorkspaceFile(), "Path to the workspace descriptor")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log override diagnostics to stderr")
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT cancels the command context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

// newLogger returns the diagnostic logger: silent unless --verbose is set.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)
}

// resolveWorkspacePath makes the --workspace value absolute.
func resolveWorkspacePath() (string, error) {
	return filepath.Abs(workspacePath)
}
