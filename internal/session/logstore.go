package session

import (
	"strconv"

	"github.com/nbekzhan/liftlog/internal/models"
	"github.com/nbekzhan/liftlog/internal/parser"
)

// Entry is the mutable per-exercise record accumulated during a session. One
// entry exists per prescribed exercise, in template order. CompletedSets is
// always derived from ActualReps, never stored.
type Entry struct {
	ExerciseID   string
	ExerciseName string

	// Prescription, fixed at seed time
	TargetSets  int
	TargetReps  int // default rep count, lower bound of a "8-12" range
	TargetRPE   int
	RestSeconds int
	Prescribed  string // original reps string, for display

	// Logged values
	ActualReps []int
	WeightUsed float64
	RPE        int
	Notes      string
}

// CompletedSets returns the number of sets logged so far
func (e *Entry) CompletedSets() int {
	return len(e.ActualReps)
}

// ExerciseLogStore holds the ordered per-exercise records for one session,
// indexed by position in the day template.
type ExerciseLogStore struct {
	entries []Entry
}

// NewExerciseLogStore seeds one entry per prescribed exercise. RPE defaults
// to the prescription's target; reps prescriptions that fail to parse fall
// back to a default of 1 rep per added set.
func NewExerciseLogStore(exercises []models.PlannedExercise) *ExerciseLogStore {
	entries := make([]Entry, 0, len(exercises))
	for _, ex := range exercises {
		targetReps, err := parser.ParseRepsTarget(ex.Reps)
		if err != nil {
			targetReps = 1
		}
		entries = append(entries, Entry{
			ExerciseID:   ex.ExerciseID,
			ExerciseName: ex.ExerciseName,
			TargetSets:   ex.Sets,
			TargetReps:   targetReps,
			TargetRPE:    ex.TargetRPE,
			RestSeconds:  ex.RestSeconds,
			Prescribed:   ex.Reps,
			ActualReps:   []int{},
			RPE:          ex.TargetRPE,
		})
	}
	return &ExerciseLogStore{entries: entries}
}

// Len returns the number of exercises in the store
func (s *ExerciseLogStore) Len() int {
	return len(s.entries)
}

// Entry returns a copy of the record at the given exercise index
func (s *ExerciseLogStore) Entry(exercise int) (Entry, error) {
	if err := s.checkExercise(exercise); err != nil {
		return Entry{}, err
	}
	e := s.entries[exercise]
	e.ActualReps = append([]int(nil), e.ActualReps...)
	return e, nil
}

// Entries returns copies of all records in template order
func (s *ExerciseLogStore) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i := range s.entries {
		out[i] = s.entries[i]
		out[i].ActualReps = append([]int(nil), s.entries[i].ActualReps...)
	}
	return out
}

// AddSet appends one set to the exercise, pre-filled with the prescribed
// default rep count.
func (s *ExerciseLogStore) AddSet(exercise int) error {
	if err := s.checkExercise(exercise); err != nil {
		return err
	}
	e := &s.entries[exercise]
	e.ActualReps = append(e.ActualReps, e.TargetReps)
	return nil
}

// RemoveSet removes the set at the given index; later sets shift down
func (s *ExerciseLogStore) RemoveSet(exercise, set int) error {
	if err := s.checkExercise(exercise); err != nil {
		return err
	}
	e := &s.entries[exercise]
	if set < 0 || set >= len(e.ActualReps) {
		return &IndexError{Kind: "set", Index: set, Len: len(e.ActualReps)}
	}
	e.ActualReps = append(e.ActualReps[:set], e.ActualReps[set+1:]...)
	return nil
}

// UpdateSetReps sets the rep count for one set from raw user input.
// Non-numeric or negative input coerces to 0 and a ValidationWarning is
// returned; the coerced value is still applied. Index errors are fatal.
func (s *ExerciseLogStore) UpdateSetReps(exercise, set int, raw string) error {
	if err := s.checkExercise(exercise); err != nil {
		return err
	}
	e := &s.entries[exercise]
	if set < 0 || set >= len(e.ActualReps) {
		return &IndexError{Kind: "set", Index: set, Len: len(e.ActualReps)}
	}
	reps, ok := parser.CoerceReps(raw)
	e.ActualReps[set] = reps
	if !ok {
		return &ValidationWarning{Field: "reps", Input: raw, Used: strconv.Itoa(reps)}
	}
	return nil
}

// UpdateWeight sets the working weight for the exercise
func (s *ExerciseLogStore) UpdateWeight(exercise int, weight float64) error {
	if err := s.checkExercise(exercise); err != nil {
		return err
	}
	s.entries[exercise].WeightUsed = weight
	return nil
}

// UpdateRPE sets the per-exercise RPE. Range clamping is the input layer's
// concern, not enforced here.
func (s *ExerciseLogStore) UpdateRPE(exercise, rpe int) error {
	if err := s.checkExercise(exercise); err != nil {
		return err
	}
	s.entries[exercise].RPE = rpe
	return nil
}

// UpdateNotes sets free-text notes on the exercise
func (s *ExerciseLogStore) UpdateNotes(exercise int, notes string) error {
	if err := s.checkExercise(exercise); err != nil {
		return err
	}
	s.entries[exercise].Notes = notes
	return nil
}

// Completed returns the wire form of every entry with at least one logged
// set, in template order. Untouched exercises produce no record.
func (s *ExerciseLogStore) Completed() []models.CompletedExercise {
	out := make([]models.CompletedExercise, 0, len(s.entries))
	for i := range s.entries {
		e := &s.entries[i]
		if len(e.ActualReps) == 0 {
			continue
		}
		out = append(out, models.CompletedExercise{
			ExerciseID:    e.ExerciseID,
			ExerciseName:  e.ExerciseName,
			CompletedSets: len(e.ActualReps),
			ActualReps:    append([]int(nil), e.ActualReps...),
			WeightUsed:    e.WeightUsed,
			RPE:           e.RPE,
			Notes:         e.Notes,
		})
	}
	return out
}

func (s *ExerciseLogStore) checkExercise(exercise int) error {
	if exercise < 0 || exercise >= len(s.entries) {
		return &IndexError{Kind: "exercise", Index: exercise, Len: len(s.entries)}
	}
	return nil
}
