package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbekzhan/liftlog/internal/models"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the current workout plan",
	Long: `Show the current week's workout plan, or ask the trainer service to
generate one.

Examples:
  liftlog plan                 # show the current plan
  liftlog plan --id plan-abc   # show a specific plan
  liftlog plan --generate 2    # generate a plan for week 2`,
	Run: func(cmd *cobra.Command, args []string) {
		initStore()

		client, userID, err := newAPIClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if week, _ := cmd.Flags().GetInt("generate"); week > 0 {
			resp, err := client.GeneratePlan(cmd.Context(), week)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("🧠 Plan %s for week %d: %s\n", resp.PlanID, week, resp.Message)
			return
		}

		var plan *models.WorkoutPlan
		if planID, _ := cmd.Flags().GetString("id"); planID != "" {
			plan, err = client.Plan(cmd.Context(), planID)
		} else {
			plan, err = client.CurrentPlan(cmd.Context(), userID)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		printPlan(plan)
	},
}

func printPlan(plan *models.WorkoutPlan) {
	fmt.Printf("📋 Plan %s — week %d\n", plan.PlanID, plan.WeekNumber)
	if plan.AdaptationRationale != "" {
		fmt.Printf("   %s\n", plan.AdaptationRationale)
	}
	for _, day := range plan.Days {
		fmt.Printf("\n%s — %s (~%d min)\n", strings.ToUpper(day.Day), day.Focus, day.EstimatedDuration)
		for _, ex := range day.Exercises {
			fmt.Printf("  • %-28s %d×%-6s @RPE%d  rest %ds\n",
				ex.ExerciseName, ex.Sets, ex.Reps, ex.TargetRPE, ex.RestSeconds)
			if ex.Notes != "" {
				fmt.Printf("    %s\n", ex.Notes)
			}
		}
	}
}

func init() {
	planCmd.Flags().String("id", "", "Show a specific plan by id")
	planCmd.Flags().Int("generate", 0, "Generate a plan for the given week number")
}
