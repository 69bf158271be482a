package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle operation is called from
// the wrong state, e.g. Save before Start. These are contract violations and
// are never silently absorbed.
var ErrInvalidTransition = errors.New("invalid session state transition")

// IndexError reports an out-of-range exercise or set index
type IndexError struct {
	Kind  string // "exercise" or "set"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (len %d)", e.Kind, e.Index, e.Len)
}

// ValidationWarning is a non-fatal notice that user input was coerced rather
// than applied verbatim. The operation still took effect; callers may show
// the warning and move on.
type ValidationWarning struct {
	Field string
	Input string
	Used  string
}

func (w *ValidationWarning) Error() string {
	return fmt.Sprintf("invalid %s input %q, using %s", w.Field, w.Input, w.Used)
}

// PersistenceError wraps a failed save call. The session stays in progress so
// the user can retry without re-entering data.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist workout log: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
