package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbekzhan/liftlog/internal/models"
	"github.com/nbekzhan/liftlog/internal/session"
)

type stubPersister struct {
	saved    []models.WorkoutLogCreate
	failures int
}

func (p *stubPersister) SaveLog(_ context.Context, log models.WorkoutLogCreate) (models.LogResponse, error) {
	if p.failures > 0 {
		p.failures--
		return models.LogResponse{}, errors.New("backend unavailable")
	}
	p.saved = append(p.saved, log)
	return models.LogResponse{LogID: "log-1", Status: "recorded"}, nil
}

func plainTemplate(exercises ...models.PlannedExercise) session.Template {
	if len(exercises) == 0 {
		exercises = []models.PlannedExercise{
			{ExerciseID: "ex-squat", ExerciseName: "Goblet Squat", Sets: 3, Reps: "8-12", RestSeconds: 90, TargetRPE: 7},
		}
	}
	return session.Template{
		PlanID:    "plan-w1",
		Day:       "monday",
		Focus:     "lower body",
		Exercises: exercises,
	}
}

func newPlainController(t *testing.T, persister session.Persister, template session.Template) *session.Controller {
	t.Helper()
	controller := session.NewController(persister)
	require.NoError(t, controller.Initialize(template))
	return controller
}

func TestRunPlainSession_SavesLoggedSets(t *testing.T) {
	persister := &stubPersister{}
	controller := newPlainController(t, persister, plainTemplate())

	in := strings.NewReader("8 9\n22.5\n8\nfelt strong\n7\ngood session\n")
	var out bytes.Buffer
	result, err := runPlainSession(controller, in, &out)
	require.NoError(t, err)

	require.True(t, result.Saved)
	assert.Equal(t, session.Saved, controller.Status())
	assert.Equal(t, "log-1", result.Response.LogID)
	assert.Equal(t, controller.ID(), result.SessionID)

	require.Len(t, persister.saved, 1)
	payload := persister.saved[0]
	assert.Equal(t, "plan-w1", payload.PlanID)
	assert.Equal(t, "monday", payload.Day)
	assert.Equal(t, 7, payload.SessionRPE)
	assert.Equal(t, "good session", payload.GeneralFeedback)
	require.Len(t, payload.Exercises, 1)
	assert.Equal(t, []int{8, 9}, payload.Exercises[0].ActualReps)
	assert.Equal(t, 2, payload.Exercises[0].CompletedSets)
	assert.Equal(t, 22.5, payload.Exercises[0].WeightUsed)
	assert.Equal(t, 8, payload.Exercises[0].RPE)
	assert.Equal(t, "felt strong", payload.Exercises[0].Notes)
}

func TestRunPlainSession_SkippedExerciseIsNotSubmitted(t *testing.T) {
	persister := &stubPersister{}
	controller := newPlainController(t, persister, plainTemplate(
		models.PlannedExercise{ExerciseID: "ex-squat", ExerciseName: "Goblet Squat", Sets: 3, Reps: "8-12", TargetRPE: 7},
		models.PlannedExercise{ExerciseID: "ex-row", ExerciseName: "Dumbbell Row", Sets: 3, Reps: "10", TargetRPE: 8},
	))

	// Log one set of squats, skip the row entirely
	in := strings.NewReader("8\n\n\n\n\n6\n\n")
	var out bytes.Buffer
	result, err := runPlainSession(controller, in, &out)
	require.NoError(t, err)

	require.True(t, result.Saved)
	require.Len(t, persister.saved, 1)
	payload := persister.saved[0]
	require.Len(t, payload.Exercises, 1)
	assert.Equal(t, "ex-squat", payload.Exercises[0].ExerciseID)
	assert.Equal(t, 6, payload.SessionRPE)
}

func TestRunPlainSession_BadRepsCoerceToZero(t *testing.T) {
	persister := &stubPersister{}
	controller := newPlainController(t, persister, plainTemplate())

	in := strings.NewReader("8 abc\n\n\n\n7\n\n")
	var out bytes.Buffer
	result, err := runPlainSession(controller, in, &out)
	require.NoError(t, err)

	require.True(t, result.Saved)
	assert.Contains(t, out.String(), "invalid reps")
	require.Len(t, persister.saved, 1)
	require.Len(t, persister.saved[0].Exercises, 1)
	assert.Equal(t, []int{8, 0}, persister.saved[0].Exercises[0].ActualReps)
}

func TestRunPlainSession_EOFCancels(t *testing.T) {
	persister := &stubPersister{}
	controller := newPlainController(t, persister, plainTemplate())

	// Input runs dry at the weight prompt
	in := strings.NewReader("8 9\n")
	var out bytes.Buffer
	result, err := runPlainSession(controller, in, &out)
	require.NoError(t, err)

	assert.True(t, result.Cancelled)
	assert.False(t, result.Saved)
	assert.Equal(t, session.Cancelled, controller.Status())
	assert.Empty(t, persister.saved)
}

func TestRunPlainSession_RetryAfterSaveFailure(t *testing.T) {
	persister := &stubPersister{failures: 1}
	controller := newPlainController(t, persister, plainTemplate())

	in := strings.NewReader("5\n\n\n\n7\n\ny\n")
	var out bytes.Buffer
	result, err := runPlainSession(controller, in, &out)
	require.NoError(t, err)

	require.True(t, result.Saved)
	assert.Equal(t, session.Saved, controller.Status())
	assert.Contains(t, out.String(), "Retry save?")
	require.Len(t, persister.saved, 1)
}

func TestRunPlainSession_DeclinedRetryCancels(t *testing.T) {
	persister := &stubPersister{failures: 2}
	controller := newPlainController(t, persister, plainTemplate())

	in := strings.NewReader("5\n\n\n\n7\n\nn\n")
	var out bytes.Buffer
	result, err := runPlainSession(controller, in, &out)
	require.NoError(t, err)

	assert.True(t, result.Cancelled)
	assert.Equal(t, session.Cancelled, controller.Status())
	assert.Empty(t, persister.saved)
}
