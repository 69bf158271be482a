package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbekzhan/liftlog/internal/store"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List saved workout logs",
	Long: `List workout logs for a week from the server, or recently cached
logs when the server cannot be reached.

Examples:
  liftlog logs --week 2
  liftlog logs            # recently saved, from the local cache`,
	Run: func(cmd *cobra.Command, args []string) {
		initStore()

		week, _ := cmd.Flags().GetInt("week")
		if week > 0 {
			listServerLogs(cmd, week)
			return
		}
		listCachedLogs()
	},
}

func listServerLogs(cmd *cobra.Command, week int) {
	client, userID, err := newAPIClient()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	logs, err := client.WeekLogs(cmd.Context(), userID, week)
	if err != nil {
		fmt.Printf("Error: %v\nFalling back to local cache.\n\n", err)
		listCachedLogs()
		return
	}

	if len(logs) == 0 {
		fmt.Printf("No logs recorded for week %d\n", week)
		return
	}

	fmt.Printf("📒 Week %d — %d session(s)\n", week, len(logs))
	for _, log := range logs {
		fmt.Printf("\n%s  %s (%d min, session RPE %d)\n",
			log.CompletedAt.Format("Jan 02"), strings.ToUpper(log.Day),
			log.DurationMinutes, log.SessionRPE)
		for _, ex := range log.Exercises {
			fmt.Printf("  • %-28s %d sets %v", ex.ExerciseName, ex.CompletedSets, ex.ActualReps)
			if ex.WeightUsed > 0 {
				fmt.Printf(" @ %.1fkg", ex.WeightUsed)
			}
			fmt.Println()
		}
	}
}

func listCachedLogs() {
	cached, err := store.RecentSavedLogs(10)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(cached) == 0 {
		fmt.Println("No cached logs yet — save a session first with 'liftlog start'")
		return
	}

	fmt.Printf("📒 Last %d saved session(s)\n", len(cached))
	for i := range cached {
		saved := &cached[i]
		fmt.Printf("\n%s  %s (%d min, session RPE %d)\n",
			saved.CompletedAt.Format("Jan 02"), strings.ToUpper(saved.Day),
			saved.DurationMinutes, saved.SessionRPE)

		payload, err := store.SavedLogPayload(saved)
		if err != nil {
			fmt.Printf("  (cache entry unreadable: %v)\n", err)
			continue
		}
		for _, ex := range payload.Exercises {
			fmt.Printf("  • %-28s %d sets %v\n", ex.ExerciseName, ex.CompletedSets, ex.ActualReps)
		}
	}
}

func init() {
	logsCmd.Flags().Int("week", 0, "Week number to fetch from the server")
}
