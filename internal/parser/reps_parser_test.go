package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepsTarget(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "10", want: 10},
		{input: "8-12", want: 8},
		{input: " 8 - 12 ", want: 8},
		{input: "1", want: 1},
		{input: "12-8", wantErr: true},
		{input: "0", wantErr: true},
		{input: "0-5", wantErr: true},
		{input: "", wantErr: true},
		{input: "AMRAP", wantErr: true},
		{input: "8–12", wantErr: true}, // en dash is not a range separator
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRepsTarget(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceReps(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{input: "12", want: 12, wantOK: true},
		{input: "0", want: 0, wantOK: true},
		{input: "  7 ", want: 7, wantOK: true},
		{input: "abc", want: 0, wantOK: false},
		{input: "", want: 0, wantOK: false},
		{input: "-3", want: 0, wantOK: false},
		{input: "8.5", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := CoerceReps(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
	}
}

func TestParseRPE(t *testing.T) {
	got, err := ParseRPE("7")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	for _, input := range []string{"0", "11", "-1", "seven", ""} {
		_, err := ParseRPE(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseWeight(t *testing.T) {
	got, err := ParseWeight("22.5")
	require.NoError(t, err)
	assert.Equal(t, 22.5, got)

	// Empty means bodyweight
	got, err = ParseWeight("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	for _, input := range []string{"-5", "heavy"} {
		_, err := ParseWeight(input)
		assert.Error(t, err, "input %q", input)
	}
}
