package transport

// ErrTimeout indicates a read deadline expired before any data arrived.
// It satisfies os.IsTimeout.
var ErrTimeout error = &timeoutError{}

type timeoutError struct{}

// Error implements error.
func (e *timeoutError) Error() string {
	return "read timeout"
}

// Timeout marks the error as a timeout for os.IsTimeout.
func (e *timeoutError) Timeout() bool {
	return true
}
