package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbekzhan/liftlog/internal/models"
)

func testExercises() []models.PlannedExercise {
	return []models.PlannedExercise{
		{
			ExerciseID:   "ex-squat",
			ExerciseName: "Goblet Squat",
			Sets:         3,
			Reps:         "10",
			RestSeconds:  90,
			TargetRPE:    7,
		},
		{
			ExerciseID:   "ex-row",
			ExerciseName: "Dumbbell Row",
			Sets:         3,
			Reps:         "8-12",
			RestSeconds:  60,
			TargetRPE:    8,
		},
	}
}

func TestLogStore_SeededFromTemplate(t *testing.T) {
	store := NewExerciseLogStore(testExercises())

	require.Equal(t, 2, store.Len())

	squat, err := store.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "Goblet Squat", squat.ExerciseName)
	assert.Equal(t, 10, squat.TargetReps)
	assert.Equal(t, 7, squat.RPE) // RPE defaults to the prescription target
	assert.Equal(t, 0, squat.CompletedSets())
	assert.Equal(t, 0.0, squat.WeightUsed)

	// Range prescriptions default to the lower bound
	row, err := store.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, 8, row.TargetReps)
}

func TestLogStore_AddSetUsesPrescribedDefault(t *testing.T) {
	store := NewExerciseLogStore(testExercises())

	require.NoError(t, store.AddSet(0))
	require.NoError(t, store.AddSet(0))

	entry, err := store.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10}, entry.ActualReps)
	assert.Equal(t, 2, entry.CompletedSets())
}

func TestLogStore_CompletedSetsAlwaysMatchesReps(t *testing.T) {
	store := NewExerciseLogStore(testExercises())

	check := func() {
		for _, e := range store.Entries() {
			assert.Equal(t, len(e.ActualReps), e.CompletedSets())
		}
	}

	check()
	require.NoError(t, store.AddSet(0))
	check()
	require.NoError(t, store.AddSet(0))
	require.NoError(t, store.AddSet(1))
	check()
	require.NoError(t, store.UpdateSetReps(0, 1, "12"))
	check()
	require.NoError(t, store.RemoveSet(0, 0))
	check()
}

func TestLogStore_RemoveSetShiftsDown(t *testing.T) {
	store := NewExerciseLogStore(testExercises())

	require.NoError(t, store.AddSet(0))
	require.NoError(t, store.AddSet(0))
	require.NoError(t, store.AddSet(0))
	require.NoError(t, store.UpdateSetReps(0, 0, "8"))
	require.NoError(t, store.UpdateSetReps(0, 1, "9"))
	require.NoError(t, store.UpdateSetReps(0, 2, "10"))

	require.NoError(t, store.RemoveSet(0, 1))

	entry, err := store.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 10}, entry.ActualReps)
	assert.Equal(t, 2, entry.CompletedSets())
}

func TestLogStore_RemoveSetOutOfRange(t *testing.T) {
	store := NewExerciseLogStore(testExercises())
	require.NoError(t, store.AddSet(0))

	err := store.RemoveSet(0, 3)
	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, "set", idxErr.Kind)
	assert.Equal(t, 3, idxErr.Index)
}

func TestLogStore_ExerciseIndexOutOfRange(t *testing.T) {
	store := NewExerciseLogStore(testExercises())

	var idxErr *IndexError
	require.ErrorAs(t, store.AddSet(5), &idxErr)
	assert.Equal(t, "exercise", idxErr.Kind)

	require.ErrorAs(t, store.AddSet(-1), &idxErr)
	require.ErrorAs(t, store.UpdateWeight(2, 40), &idxErr)
	_, err := store.Entry(2)
	require.ErrorAs(t, err, &idxErr)
}

func TestLogStore_UpdateSetRepsCoercesBadInput(t *testing.T) {
	store := NewExerciseLogStore(testExercises())
	require.NoError(t, store.AddSet(0))

	tests := []struct {
		name     string
		input    string
		want     int
		wantWarn bool
	}{
		{name: "clean integer", input: "12", want: 12, wantWarn: false},
		{name: "whitespace trimmed", input: " 9 ", want: 9, wantWarn: false},
		{name: "zero", input: "0", want: 0, wantWarn: false},
		{name: "non-numeric coerces to zero", input: "abc", want: 0, wantWarn: true},
		{name: "empty coerces to zero", input: "", want: 0, wantWarn: true},
		{name: "negative coerces to zero", input: "-4", want: 0, wantWarn: true},
		{name: "float coerces to zero", input: "8.5", want: 0, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.UpdateSetReps(0, 0, tt.input)
			if tt.wantWarn {
				var warn *ValidationWarning
				require.ErrorAs(t, err, &warn)
				assert.Equal(t, "reps", warn.Field)
			} else {
				require.NoError(t, err)
			}
			entry, err := store.Entry(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.ActualReps[0])
		})
	}
}

func TestLogStore_UpdateFields(t *testing.T) {
	store := NewExerciseLogStore(testExercises())

	require.NoError(t, store.UpdateWeight(0, 22.5))
	require.NoError(t, store.UpdateRPE(0, 9))
	require.NoError(t, store.UpdateNotes(0, "knees felt fine"))

	entry, err := store.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, 22.5, entry.WeightUsed)
	assert.Equal(t, 9, entry.RPE)
	assert.Equal(t, "knees felt fine", entry.Notes)
}

func TestLogStore_CompletedFiltersUntouchedExercises(t *testing.T) {
	exercises := testExercises()
	exercises = append(exercises, models.PlannedExercise{
		ExerciseID:   "ex-plank",
		ExerciseName: "Plank",
		Sets:         3,
		Reps:         "1",
		TargetRPE:    6,
	})
	store := NewExerciseLogStore(exercises)

	require.NoError(t, store.AddSet(0))
	require.NoError(t, store.AddSet(2))

	completed := store.Completed()
	require.Len(t, completed, 2)
	assert.Equal(t, "ex-squat", completed[0].ExerciseID)
	assert.Equal(t, "ex-plank", completed[1].ExerciseID)
	for _, c := range completed {
		assert.Equal(t, len(c.ActualReps), c.CompletedSets)
	}
}

func TestLogStore_EntryReturnsCopy(t *testing.T) {
	store := NewExerciseLogStore(testExercises())
	require.NoError(t, store.AddSet(0))

	entry, err := store.Entry(0)
	require.NoError(t, err)
	entry.ActualReps[0] = 99

	fresh, err := store.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, 10, fresh.ActualReps[0])
}
