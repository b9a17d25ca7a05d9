package protocol

import "io"

// MsgType identifies the type of a message frame by its ASCII tag.
type MsgType byte

// Message types known to the device.
const (
	MsgAccel   MsgType = 'a'
	MsgGyro    MsgType = 'g'
	MsgMag     MsgType = 'c'
	MsgQuat    MsgType = 'q'
	MsgEuler   MsgType = 'e'
	MsgHeading MsgType = 'h'
	MsgStatus  MsgType = 's'
)

// IsValid checks if it's a known message type.
func (t MsgType) IsValid() bool {
	switch t {
	case MsgAccel, MsgGyro, MsgMag, MsgQuat, MsgEuler, MsgHeading, MsgStatus:
		return true
	}
	return false
}

// IsMotion indicates the message payload is a 3-axis motion sample.
func (t MsgType) IsMotion() bool {
	switch t {
	case MsgAccel, MsgGyro, MsgMag, MsgEuler:
		return true
	}
	return false
}

// String returns the ASCII tag.
func (t MsgType) String() string {
	return string(rune(t))
}

// Wire layout of a frame. The declared length byte counts the payload
// plus 4, so a whole frame spans exactly declared length bytes from
// the start marker through the terminator.
const (
	startMarker byte = 0x01
	terminator  byte = 0x04

	// headerLen covers the start marker, length and type bytes.
	headerLen = 3
	// minFrameLen is the smallest structurally valid declared length.
	minFrameLen = headerLen + 1
	// scanAhead is the minimum number of bytes required after a start
	// marker before it is considered a frame candidate.
	scanAhead = 20
)

// Frame is one complete message extracted from the stream.
type Frame struct {
	Type    MsgType
	Payload []byte
}

// Bytes returns encoded bytes for sending.
func (f *Frame) Bytes() []byte {
	b := make([]byte, len(f.Payload)+minFrameLen)
	b[0], b[1], b[2] = startMarker, byte(len(b)), byte(f.Type)
	copy(b[headerLen:], f.Payload)
	b[len(b)-1] = terminator
	return b
}

// WriteTo writes encoded bytes.
func (f *Frame) WriteTo(w io.Writer) (int, error) {
	return w.Write(f.Bytes())
}
