package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbekzhan/liftlog/internal/api"
	"github.com/nbekzhan/liftlog/internal/config"
	"github.com/nbekzhan/liftlog/internal/store"
)

var loginCmd = &cobra.Command{
	Use:   "login [user-id]",
	Short: "Log in to the trainer backend",
	Long: `Log in to the LLM Workout Trainer backend and store the access token
locally for later commands.

Examples:
  liftlog login demo_user`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		userID := args[0]

		cfg, err := loadConfig()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		client := api.NewClient(cfg.ServerURL, "", newLogger())
		token, err := client.Login(cmd.Context(), userID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := store.SaveCredential(userID, token.AccessToken); err != nil {
			fmt.Printf("Error: failed to store credential: %v\n", err)
			return
		}

		if path, err := config.DefaultPath(); err == nil {
			if err := persistLogin(cfg, path, userID); err != nil {
				fmt.Printf("⚠️  Logged in but could not update config: %v\n", err)
			}
		}

		fmt.Printf("✅ Logged in as %s (%s)\n", userID, cfg.ServerURL)
	},
}

// persistLogin records the authenticated user id in the config file so later
// commands default to it without a --user flag.
func persistLogin(cfg *config.Config, path, userID string) error {
	if cfg.UserID == userID {
		return nil
	}
	cfg.UserID = userID
	return cfg.Save(path)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored login",
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		if err := store.ClearCredential(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("👋 Logged out")
	},
}
