package protocol

import "fmt"

// MalformedPayloadError indicates a message payload shorter than
// required by its type.
type MalformedPayloadError struct {
	Len int
	Min int
}

// Error implements error.
func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %d bytes, need at least %d", e.Len, e.Min)
}
