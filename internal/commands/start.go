package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbekzhan/liftlog/internal/parser"
	"github.com/nbekzhan/liftlog/internal/session"
	"github.com/nbekzhan/liftlog/internal/store"
	"github.com/nbekzhan/liftlog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [day]",
	Short: "Start logging a workout session",
	Long: `Start an interactive logging session for a day of the current plan.
Without an argument the day is today's weekday.

Keys inside the session: a adds a set, d removes the selected one, enter
edits its reps, w/r/n edit weight/RPE/notes, s saves, esc cancels.

Examples:
  liftlog start            # log today's workout
  liftlog start wednesday  # log Wednesday's workout
  liftlog start --no-ui    # prompt-based logging without the TUI`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()

		var day string
		var err error
		if len(args) == 1 {
			day, err = parser.ParseWorkoutDay(args[0])
		} else {
			day, err = parser.TodayWorkoutDay(time.Now())
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		client, userID, err := newAPIClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		plan, err := client.CurrentPlan(cmd.Context(), userID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		dayPlan, ok := plan.DayByName(day)
		if !ok {
			fmt.Printf("Error: plan %s has no workout for %s\n", plan.PlanID, day)
			return
		}

		controller := session.NewController(client)
		if err := controller.Initialize(session.Template{
			PlanID:    plan.PlanID,
			Day:       dayPlan.Day,
			Focus:     dayPlan.Focus,
			Exercises: dayPlan.Exercises,
		}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")

		var result *tui.SessionResult
		if noUI {
			result, err = runPlainSession(controller, os.Stdin, os.Stdout)
		} else {
			result, err = tui.RunSessionTUI(controller)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		switch {
		case result.Saved:
			// Cache the accepted log so 'liftlog logs' works offline
			if err := store.CacheSavedLog(result.Response.LogID, result.SessionID, result.Payload, time.Now()); err != nil {
				fmt.Printf("⚠️  Saved on server but failed to cache locally: %v\n", err)
			}
			fmt.Printf("💪 Workout saved (%s): %d exercise(s), %d min, session RPE %d\n",
				result.Response.LogID, len(result.Payload.Exercises),
				result.Payload.DurationMinutes, result.SessionRPE)
		case result.Cancelled:
			fmt.Println("❌ Session cancelled — nothing was saved.")
		}
	},
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Log the session with line prompts instead of the TUI")
}
