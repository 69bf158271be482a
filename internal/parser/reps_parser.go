package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var repsRangeRegex = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)

// ParseRepsTarget parses a reps prescription from the trainer backend.
// Supported formats:
// - plain count (e.g., "10")
// - range (e.g., "8-12"), in which case the lower bound is returned
func ParseRepsTarget(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty reps prescription")
	}

	if matches := repsRangeRegex.FindStringSubmatch(input); len(matches) == 3 {
		low, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid reps range %q", input)
		}
		high, err := strconv.Atoi(matches[2])
		if err != nil {
			return 0, fmt.Errorf("invalid reps range %q", input)
		}
		if low < 1 || high < low {
			return 0, fmt.Errorf("invalid reps range %q", input)
		}
		return low, nil
	}

	reps, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid reps prescription %q", input)
	}
	if reps < 1 {
		return 0, fmt.Errorf("reps prescription must be positive, got %d", reps)
	}
	return reps, nil
}

// CoerceReps converts free-form user input into a non-negative rep count.
// Non-numeric or negative input coerces to 0 instead of failing; ok reports
// whether the input was a clean non-negative integer.
func CoerceReps(input string) (reps int, ok bool) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseRPE parses a 1-10 RPE value from user input
func ParseRPE(input string) (int, error) {
	input = strings.TrimSpace(input)
	rpe, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("RPE must be a number between 1 and 10")
	}
	if rpe < 1 || rpe > 10 {
		return 0, fmt.Errorf("RPE must be between 1 and 10, got %d", rpe)
	}
	return rpe, nil
}

// ParseWeight parses a non-negative weight (kg) from user input.
// An empty string means bodyweight and parses to 0.
func ParseWeight(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	weight, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q", input)
	}
	if weight < 0 {
		return 0, fmt.Errorf("weight cannot be negative")
	}
	return weight, nil
}
