package models

import "time"

// PlannedExercise represents one prescribed exercise within a day plan.
// Reps comes from the backend as a string, either a plain count ("10")
// or a range ("8-12").
type PlannedExercise struct {
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	RestSeconds  int    `json:"rest_seconds"`
	TargetRPE    int    `json:"target_rpe"` // 1-10 perceived exertion scale
	Notes        string `json:"notes,omitempty"`
}

// DayPlan represents one workout day within a weekly plan
type DayPlan struct {
	Day               string            `json:"day"` // monday..friday
	Focus             string            `json:"focus"`
	Exercises         []PlannedExercise `json:"exercises"`
	EstimatedDuration int               `json:"estimated_duration"`
}

// WorkoutPlan represents a weekly workout plan generated by the trainer service
type WorkoutPlan struct {
	PlanID              string    `json:"plan_id"`
	UserID              string    `json:"user_id"`
	WeekNumber          int       `json:"week_number"`
	CreatedAt           time.Time `json:"created_at"`
	Days                []DayPlan `json:"days"`
	AdaptationRationale string    `json:"adaptation_rationale,omitempty"`
}

// DayByName returns the day plan matching the given weekday name (case-insensitive
// match is the caller's job; plans always use lowercase day names).
func (p *WorkoutPlan) DayByName(day string) (DayPlan, bool) {
	for _, d := range p.Days {
		if d.Day == day {
			return d, true
		}
	}
	return DayPlan{}, false
}
