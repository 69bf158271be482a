package parser

import (
	"fmt"
	"strings"
	"time"
)

// Plans cover weekdays only; weekend arguments and weekend "today" are rejected.
var workoutDays = map[string]string{
	"monday":    "monday",
	"mon":       "monday",
	"tuesday":   "tuesday",
	"tue":       "tuesday",
	"tues":      "tuesday",
	"wednesday": "wednesday",
	"wed":       "wednesday",
	"thursday":  "thursday",
	"thu":       "thursday",
	"thur":      "thursday",
	"thurs":     "thursday",
	"friday":    "friday",
	"fri":       "friday",
}

// ParseWorkoutDay parses a plan day name (monday..friday, short forms accepted)
func ParseWorkoutDay(input string) (string, error) {
	day, ok := workoutDays[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return "", fmt.Errorf("invalid workout day %q (expected monday..friday)", input)
	}
	return day, nil
}

// TodayWorkoutDay returns the plan day name for the given instant, or an
// error on weekends when no plan day exists.
func TodayWorkoutDay(now time.Time) (string, error) {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return "", fmt.Errorf("no workout planned for %s; pass a day explicitly", strings.ToLower(now.Weekday().String()))
	default:
		return strings.ToLower(now.Weekday().String()), nil
	}
}
