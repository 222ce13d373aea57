package reconcile

import (
	"errors"
	"fmt"
)

// ErrAlreadyProcessed is returned by Initiate for intents that cannot be paid any more.
var ErrAlreadyProcessed = errors.New("intent already processed")

// ErrIntentConflict is returned when a client-supplied intent ID is reused for a different transfer.
var ErrIntentConflict = errors.New("intent id reused with different parameters")

// ValidationError reports malformed input. Nothing has been written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
