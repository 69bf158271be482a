package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkoutDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "monday", want: "monday"},
		{input: "Mon", want: "monday"},
		{input: "WEDNESDAY", want: "wednesday"},
		{input: "thurs", want: "thursday"},
		{input: " fri ", want: "friday"},
		{input: "saturday", wantErr: true},
		{input: "someday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseWorkoutDay(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestTodayWorkoutDay(t *testing.T) {
	// 2025-03-10 is a Monday
	monday := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	day, err := TodayWorkoutDay(monday)
	require.NoError(t, err)
	assert.Equal(t, "monday", day)

	saturday := monday.AddDate(0, 0, 5)
	_, err = TodayWorkoutDay(saturday)
	assert.Error(t, err)
}
