package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbekzhan/liftlog/internal/api"
	"github.com/nbekzhan/liftlog/internal/config"
	"github.com/nbekzhan/liftlog/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "A terminal client for the LLM Workout Trainer",
	Long: `liftlog is the terminal companion for the LLM Workout Trainer service.
Fetch your weekly plan, log workout sessions interactively with a live
timer, and send the results back so the trainer can adapt next week's plan.`,
}

// initStore initializes the local database and panics on error
func initStore() {
	if err := store.Initialize(); err != nil {
		panic(err) // For now, panic on store init failure
	}
}

// loadConfig reads the config file at its default location
func loadConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newLogger builds the diagnostics logger; chatty only with --verbose
func newLogger() *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAPIClient builds an authenticated client from config + stored
// credential and returns it together with the logged-in user id.
func newAPIClient() (*api.Client, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}

	cred, err := store.GetCredential()
	if err != nil {
		return nil, "", err
	}
	if cred == nil {
		return nil, "", fmt.Errorf("not logged in. Run 'liftlog login <user-id>' first")
	}

	return api.NewClient(cfg.ServerURL, cred.Token, newLogger()), cred.UserID, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("liftlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands here
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
