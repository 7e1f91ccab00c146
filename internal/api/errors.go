package api

import "fmt"

// BadRequestError carries the backend's own message for a 400 response.
// Depending on the endpoint the message arrives as raw text or as a JSON
// {"error": ...} body; each operation decodes the shape its endpoint uses.
type BadRequestError struct {
	Op      string
	Message string
}

func (e *BadRequestError) Error() string {
	if e.Message == "" {
		return "Invalid request data"
	}
	return e.Message
}

// UnexpectedError is any non-2xx response other than a 400.
type UnexpectedError struct {
	Op     string
	Status int
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("An unexpected error occurred while %s.", e.Op)
}
