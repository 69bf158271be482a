package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nbekzhan/liftlog/internal/models"
)

// Status represents the session lifecycle state
type Status int

const (
	NotStarted Status = iota
	InProgress
	Cancelled
	Saved
)

// String returns the lowercase status name
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Cancelled:
		return "cancelled"
	case Saved:
		return "saved"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Template is the read-only seed for a session: which plan day is being
// performed and what was prescribed. Immutable for the session's duration.
type Template struct {
	PlanID    string
	Day       string
	Focus     string
	Exercises []models.PlannedExercise
}

// Persister durably stores a finalized workout log. There is no partial
// write: either the whole payload is stored or the call fails.
type Persister interface {
	SaveLog(ctx context.Context, log models.WorkoutLogCreate) (models.LogResponse, error)
}

// Controller owns one workout session from start to save or cancel. It is
// the only writer of the session's store and clock; a new session is a new
// Controller, terminal states never restart.
//
// Not safe for concurrent use; it is driven from a single UI loop.
type Controller struct {
	id        string
	status    Status
	template  Template
	store     *ExerciseLogStore
	clock     *Clock
	persister Persister
}

// NewController creates a session controller in the NotStarted state
func NewController(persister Persister) *Controller {
	return &Controller{
		id:        uuid.NewString(),
		status:    NotStarted,
		clock:     NewClock(),
		persister: persister,
	}
}

// newControllerAt is used by tests to control the clock's time source
func newControllerAt(persister Persister, now func() time.Time) *Controller {
	c := NewController(persister)
	c.clock = NewClockAt(now)
	return c
}

// ID returns the session's correlation id
func (c *Controller) ID() string {
	return c.id
}

// Status returns the current lifecycle state
func (c *Controller) Status() Status {
	return c.status
}

// Template returns the seeded template (zero value before Initialize)
func (c *Controller) Template() Template {
	return c.template
}

// Store returns the session's exercise log store, or nil before Initialize
func (c *Controller) Store() *ExerciseLogStore {
	return c.store
}

// Clock returns the session clock
func (c *Controller) Clock() *Clock {
	return c.clock
}

// Initialize seeds the store from a day template. Allowed from NotStarted or
// a terminal state; re-initializing before Start discards prior edits.
// Swapping templates mid-session is not allowed: cancel or save first.
func (c *Controller) Initialize(template Template) error {
	if c.status == InProgress {
		return fmt.Errorf("%w: cannot initialize while a session is %s", ErrInvalidTransition, c.status)
	}
	c.status = NotStarted
	c.template = template
	c.store = NewExerciseLogStore(template.Exercises)
	c.clock = NewClockAt(c.clock.now)
	return nil
}

// Start begins the session and its clock. Calling Start again while already
// InProgress is a deliberate no-op so the start instant is never reset.
// Starting from a terminal state is a contract violation.
func (c *Controller) Start() error {
	switch c.status {
	case InProgress:
		return nil
	case Cancelled, Saved:
		return fmt.Errorf("%w: cannot start a %s session", ErrInvalidTransition, c.status)
	}
	if c.store == nil {
		return fmt.Errorf("%w: start before initialize", ErrInvalidTransition)
	}
	c.clock.Start()
	c.status = InProgress
	return nil
}

// Cancel aborts an in-progress session. The clock stops, elapsed time is
// discarded, and nothing is persisted. Entry edits stay readable in memory.
func (c *Controller) Cancel() error {
	if c.status != InProgress {
		return fmt.Errorf("%w: cannot cancel a session that is %s", ErrInvalidTransition, c.status)
	}
	c.clock.Stop()
	c.status = Cancelled
	return nil
}

// Save finalizes the session into a workout log and hands it to the
// persister. Exercises with no logged sets are dropped from the payload. On
// persister failure the session stays InProgress with all edits intact so
// the user can retry by resubmitting; the clock keeps running. On success
// the clock stops and the session is Saved.
func (c *Controller) Save(ctx context.Context, sessionRPE int, generalFeedback string) (models.LogResponse, error) {
	if c.status != InProgress {
		return models.LogResponse{}, fmt.Errorf("%w: cannot save a session that is %s", ErrInvalidTransition, c.status)
	}

	payload := c.buildPayload(sessionRPE, generalFeedback)
	resp, err := c.persister.SaveLog(ctx, payload)
	if err != nil {
		return models.LogResponse{}, &PersistenceError{Err: err}
	}

	c.clock.Stop()
	c.status = Saved
	return resp, nil
}

// Payload returns the log that Save would submit right now; used by callers
// that want to preview or cache the outgoing record.
func (c *Controller) Payload(sessionRPE int, generalFeedback string) models.WorkoutLogCreate {
	return c.buildPayload(sessionRPE, generalFeedback)
}

func (c *Controller) buildPayload(sessionRPE int, generalFeedback string) models.WorkoutLogCreate {
	return models.WorkoutLogCreate{
		PlanID:          c.template.PlanID,
		Day:             c.template.Day,
		Exercises:       c.store.Completed(),
		SessionRPE:      sessionRPE,
		DurationMinutes: c.clock.ElapsedSeconds() / 60,
		GeneralFeedback: generalFeedback,
	}
}
