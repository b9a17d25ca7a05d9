package protocol

import "encoding/binary"

// statusPayloadLen is the decoded prefix of a status payload.
const statusPayloadLen = 7

// Status payload bit masks.
const (
	statusMagEnabled   byte = 0x04
	statusGyroEnabled  byte = 0x02
	statusAccelEnabled byte = 0x01

	statusLowOutputRate byte = 0x01

	streamHeading uint32 = 0x40
	streamEuler   uint32 = 0x10
	streamMag     uint32 = 0x08
	streamQuat    uint32 = 0x04
	streamGyro    uint32 = 0x02
	streamAccel   uint32 = 0x01
)

// Streams holds the per-message-type streaming flags.
type Streams struct {
	Heading bool `json:"heading"`
	Euler   bool `json:"euler"`
	Mag     bool `json:"magnetometer"`
	Quat    bool `json:"quaternion"`
	Gyro    bool `json:"gyroscope"`
	Accel   bool `json:"accelerometer"`
}

// Enabled reports whether streaming of message type t is on.
func (s *Streams) Enabled(t MsgType) bool {
	switch t {
	case MsgHeading:
		return s.Heading
	case MsgEuler:
		return s.Euler
	case MsgMag:
		return s.Mag
	case MsgQuat:
		return s.Quat
	case MsgGyro:
		return s.Gyro
	case MsgAccel:
		return s.Accel
	}
	return false
}

// Toggle flips streaming of message type t, mirroring the device's
// XOR-style stream commands.
func (s *Streams) Toggle(t MsgType) {
	switch t {
	case MsgHeading:
		s.Heading = !s.Heading
	case MsgEuler:
		s.Euler = !s.Euler
	case MsgMag:
		s.Mag = !s.Mag
	case MsgQuat:
		s.Quat = !s.Quat
	case MsgGyro:
		s.Gyro = !s.Gyro
	case MsgAccel:
		s.Accel = !s.Accel
	}
}

// DeviceStatus is the decoded device status record.
type DeviceStatus struct {
	MagEnabled   bool `json:"magnetometer_enabled"`
	GyroEnabled  bool `json:"gyroscope_enabled"`
	AccelEnabled bool `json:"accelerometer_enabled"`
	// GyroResolution is in degrees/s: 250, 500, 1000 or 2000, 0 when
	// unknown.
	GyroResolution int `json:"gyroscope_resolution"`
	// AccelResolution is in g: 2, 4, 8 or 16, 0 when unknown.
	AccelResolution int     `json:"accelerometer_resolution"`
	LowOutputRate   bool    `json:"low_output_rate"`
	Streams         Streams `json:"streams"`
}

// DecodeStatus decodes a status payload: three packed bytes followed
// by a big-endian 32-bit streaming flags word.
func DecodeStatus(payload []byte) (DeviceStatus, error) {
	if len(payload) < statusPayloadLen {
		return DeviceStatus{}, &MalformedPayloadError{Len: len(payload), Min: statusPayloadLen}
	}
	s := DeviceStatus{
		MagEnabled:    payload[0]&statusMagEnabled != 0,
		GyroEnabled:   payload[0]&statusGyroEnabled != 0,
		AccelEnabled:  payload[0]&statusAccelEnabled != 0,
		LowOutputRate: payload[2]&statusLowOutputRate != 0,
	}
	// resolution fields are one-hot, most significant bit wins
	switch {
	case payload[1]&0x80 != 0:
		s.GyroResolution = 2000
	case payload[1]&0x40 != 0:
		s.GyroResolution = 1000
	case payload[1]&0x20 != 0:
		s.GyroResolution = 500
	case payload[1]&0x10 != 0:
		s.GyroResolution = 250
	}
	switch {
	case payload[1]&0x08 != 0:
		s.AccelResolution = 16
	case payload[1]&0x04 != 0:
		s.AccelResolution = 8
	case payload[1]&0x02 != 0:
		s.AccelResolution = 4
	case payload[1]&0x01 != 0:
		s.AccelResolution = 2
	}
	flags := binary.BigEndian.Uint32(payload[3:])
	s.Streams = Streams{
		Heading: flags&streamHeading != 0,
		Euler:   flags&streamEuler != 0,
		Mag:     flags&streamMag != 0,
		Quat:    flags&streamQuat != 0,
		Gyro:    flags&streamGyro != 0,
		Accel:   flags&streamAccel != 0,
	}
	return s, nil
}

// Payload encodes the status into the 7-byte status payload layout.
func (s *DeviceStatus) Payload() []byte {
	b := make([]byte, statusPayloadLen)
	if s.MagEnabled {
		b[0] |= statusMagEnabled
	}
	if s.GyroEnabled {
		b[0] |= statusGyroEnabled
	}
	if s.AccelEnabled {
		b[0] |= statusAccelEnabled
	}
	switch s.GyroResolution {
	case 2000:
		b[1] |= 0x80
	case 1000:
		b[1] |= 0x40
	case 500:
		b[1] |= 0x20
	case 250:
		b[1] |= 0x10
	}
	switch s.AccelResolution {
	case 16:
		b[1] |= 0x08
	case 8:
		b[1] |= 0x04
	case 4:
		b[1] |= 0x02
	case 2:
		b[1] |= 0x01
	}
	if s.LowOutputRate {
		b[2] |= statusLowOutputRate
	}
	var flags uint32
	if s.Streams.Heading {
		flags |= streamHeading
	}
	if s.Streams.Euler {
		flags |= streamEuler
	}
	if s.Streams.Mag {
		flags |= streamMag
	}
	if s.Streams.Quat {
		flags |= streamQuat
	}
	if s.Streams.Gyro {
		flags |= streamGyro
	}
	if s.Streams.Accel {
		flags |= streamAccel
	}
	binary.BigEndian.PutUint32(b[3:], flags)
	return b
}
