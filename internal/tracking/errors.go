package tracking

import "errors"

// ErrClosed is returned by any operation on a session that has already
// handed control back.
var ErrClosed = errors.New("tracking session is closed")

// ValidationError is a client-side input rejection. It never reaches the
// backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CapacityError rejects an item add once a meal holds the maximum number of
// items. Enforced before any RemoteClient call.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return "You can only add up to 8 meal items per meal."
}

// InferenceRejectedError means the AI endpoint answered but flagged the
// entry as not readable as food. No meal item is created.
type InferenceRejectedError struct {
	Message string
}

func (e *InferenceRejectedError) Error() string { return e.Message }
