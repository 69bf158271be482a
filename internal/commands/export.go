package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [plan-id]",
	Short: "Download a plan's calendar file",
	Long: `Download the ICS calendar for a workout plan, for importing into a
calendar app.

Examples:
  liftlog export plan-abc
  liftlog export plan-abc -o ~/workouts.ics`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		planID := args[0]

		client, _, err := newAPIClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		dest, _ := cmd.Flags().GetString("output")
		if dest == "" {
			dest = fmt.Sprintf("workout_plan_%s.ics", planID)
		}

		if err := client.ExportCalendar(cmd.Context(), planID, dest); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📅 Calendar written to %s\n", dest)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Destination file (default workout_plan_<id>.ics)")
}
