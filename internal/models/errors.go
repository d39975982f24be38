package models

import "fmt"

// ValidationError reports a malformed chat request. The HTTP layer maps it to
// a client error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FetchError reports a failed catalog fetch. StatusCode and Body are set when
// the source returned a non-success status, Reason when the payload carried no
// product list, and Err for transport and decode failures. Only one of the
// three is meaningful on any given error.
type FetchError struct {
	StatusCode int
	Body       string
	Reason     string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("catalog fetch: %v", e.Err)
	case e.Reason != "":
		return fmt.Sprintf("catalog fetch: %s", e.Reason)
	default:
		return fmt.Sprintf("catalog fetch: source returned status %d: %s", e.StatusCode, e.Body)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// GenerationError reports a failed call to the generation engine.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate reply: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
