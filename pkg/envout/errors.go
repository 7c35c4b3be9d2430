package envout

import "fmt"

// InvocationError reports that the inspection tool could not be started, or
// that it exited unsuccessfully.
type InvocationError struct {
	Tool   string
	Err    error
	Stderr string // tool stderr, trimmed; may be empty
}

func (e *InvocationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("running %s: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("running %s: %v", e.Tool, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// DecodeError reports tool output that is not valid JSON, or that lacks a
// required key, at either of the two decode layers.
type DecodeError struct {
	Layer string // which decode pass failed: reportLayer or configLayer
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Layer, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FormatError reports an environment entry with no "=" separator.
type FormatError struct {
	Entry string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("environment entry %q contains no %q separator", e.Entry, "=")
}
