package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbekzhan/liftlog/internal/models"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [text]",
	Short: "Send weekly feedback to the trainer",
	Long: `Send free-text feedback about a training week. The trainer service
uses it when adapting the next week's plan.

Examples:
  liftlog feedback "shoulder felt off on press days" --week 2`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()

		week, _ := cmd.Flags().GetInt("week")
		if week < 1 {
			fmt.Println("Error: --week is required")
			return
		}

		client, _, err := newAPIClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		resp, err := client.SubmitFeedback(cmd.Context(), models.FeedbackCreate{
			WeekNumber:   week,
			FeedbackText: args[0],
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📨 Feedback %s: %s\n", resp.FeedbackID, resp.Message)
	},
}

func init() {
	feedbackCmd.Flags().Int("week", 0, "Week number the feedback is about")
}
