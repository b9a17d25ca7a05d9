package protocol

import (
	"encoding/binary"
	"math"
)

// motionPayloadLen is the decoded prefix of a motion payload.
const motionPayloadLen = 16

// MotionSample is one 3-axis sensor reading.
type MotionSample struct {
	// Timestamp is device time in milliseconds.
	Timestamp uint32  `json:"timestamp"`
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Z         float32 `json:"z"`
}

// DecodeMotion decodes a motion payload: a big-endian 32-bit timestamp
// followed by three big-endian IEEE-754 floats.
func DecodeMotion(payload []byte) (MotionSample, error) {
	if len(payload) < motionPayloadLen {
		return MotionSample{}, &MalformedPayloadError{Len: len(payload), Min: motionPayloadLen}
	}
	return MotionSample{
		Timestamp: binary.BigEndian.Uint32(payload),
		X:         math.Float32frombits(binary.BigEndian.Uint32(payload[4:])),
		Y:         math.Float32frombits(binary.BigEndian.Uint32(payload[8:])),
		Z:         math.Float32frombits(binary.BigEndian.Uint32(payload[12:])),
	}, nil
}

// Payload encodes the sample into motion payload bytes.
func (m *MotionSample) Payload() []byte {
	b := make([]byte, motionPayloadLen)
	binary.BigEndian.PutUint32(b, m.Timestamp)
	binary.BigEndian.PutUint32(b[4:], math.Float32bits(m.X))
	binary.BigEndian.PutUint32(b[8:], math.Float32bits(m.Y))
	binary.BigEndian.PutUint32(b[12:], math.Float32bits(m.Z))
	return b
}
