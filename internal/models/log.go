package models

import "time"

// CompletedExercise is the wire form of one logged exercise. ActualReps holds
// one rep count per completed set, so CompletedSets always equals
// len(ActualReps) when the payload is well-formed.
type CompletedExercise struct {
	ExerciseID    string  `json:"exercise_id"`
	ExerciseName  string  `json:"exercise_name"`
	CompletedSets int     `json:"completed_sets"`
	ActualReps    []int   `json:"actual_reps"`
	WeightUsed    float64 `json:"weight_used"`
	RPE           int     `json:"rpe"`
	Notes         string  `json:"notes,omitempty"`
}

// WorkoutLogCreate is the payload POSTed to /api/logs when a session is saved
type WorkoutLogCreate struct {
	PlanID          string              `json:"plan_id"`
	Day             string              `json:"day"`
	Exercises       []CompletedExercise `json:"exercises"`
	SessionRPE      int                 `json:"session_rpe"`
	DurationMinutes int                 `json:"duration_minutes"`
	GeneralFeedback string              `json:"general_feedback,omitempty"`
}

// WorkoutLog is a persisted log as returned by the backend
type WorkoutLog struct {
	LogID           string              `json:"log_id"`
	UserID          string              `json:"user_id"`
	PlanID          string              `json:"plan_id"`
	Day             string              `json:"day"`
	CompletedAt     time.Time           `json:"completed_at"`
	Exercises       []CompletedExercise `json:"exercises"`
	SessionRPE      int                 `json:"session_rpe"`
	DurationMinutes int                 `json:"duration_minutes"`
	GeneralFeedback string              `json:"general_feedback,omitempty"`
}
