package transport

import "io"

// Conn is a bidirectional byte stream attached to a sensor device.
// Read returns an error satisfying os.IsTimeout when no data arrives
// within the connection read timeout.
type Conn interface {
	io.ReadWriteCloser
}
