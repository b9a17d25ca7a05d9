package sim

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"strings"

	"github.com/robotalks/vmu.go/pkg/protocol"
	"github.com/robotalks/vmu.go/pkg/transport"
)

var (
	gyroResolutions  = [...]int{250, 500, 1000, 2000}
	accelResolutions = [...]int{2, 4, 8, 16}
)

// Device is an in-memory sensor. It accepts the device command set
// over Write and produces framed messages over Read, generating one
// batch of samples per read when the output drains. Device is not
// safe for concurrent use.
type Device struct {
	Status protocol.DeviceStatus

	clock  uint32
	phase  float64
	cmd    []byte
	out    bytes.Buffer
	closed bool
}

// NewDevice creates a device in the sensor wake-up state: all sensors
// on, euler and quaternion streaming. The wake-up streams matter; a
// status reply followed by silence would stay below the scanner's
// look-ahead and never resolve, on real hardware just as here.
func NewDevice() *Device {
	return &Device{
		Status: protocol.DeviceStatus{
			MagEnabled:      true,
			GyroEnabled:     true,
			AccelEnabled:    true,
			GyroResolution:  2000,
			AccelResolution: 2,
			Streams:         protocol.Streams{Euler: true, Quat: true},
		},
	}
}

// Write implements transport.Conn. Complete 4-byte commands are
// executed, a trailing partial command is kept for the next write.
func (d *Device) Write(p []byte) (int, error) {
	if d.closed {
		return 0, os.ErrClosed
	}
	d.cmd = append(d.cmd, p...)
	for len(d.cmd) >= 4 {
		cmd := string(d.cmd[:4])
		d.cmd = d.cmd[4:]
		d.exec(cmd)
	}
	return len(p), nil
}

// Read implements transport.Conn. It drains queued output, generating
// a fresh batch of samples when the queue is empty. With no streams
// enabled it reports transport.ErrTimeout like a silent device.
func (d *Device) Read(p []byte) (int, error) {
	if d.closed {
		return 0, os.ErrClosed
	}
	if d.out.Len() == 0 {
		d.tick()
	}
	if d.out.Len() == 0 {
		return 0, transport.ErrTimeout
	}
	return d.out.Read(p)
}

// Close implements transport.Conn.
func (d *Device) Close() error {
	d.closed = true
	return nil
}

// Inject queues raw bytes on the output, simulating line noise.
func (d *Device) Inject(p []byte) {
	d.out.Write(p)
}

func (d *Device) exec(cmd string) {
	if !strings.HasPrefix(cmd, "var") {
		return
	}
	switch c := cmd[3]; c {
	case 's':
		d.emit(protocol.MsgStatus, d.Status.Payload())
	case '0', '1', '2', '3':
		d.Status.GyroResolution = gyroResolutions[c-'0']
	case '4', '5', '6', '7':
		d.Status.AccelResolution = accelResolutions[c-'4']
	default:
		if typ := protocol.MsgType(c); typ.IsValid() {
			d.Status.Streams.Toggle(typ)
		}
	}
}

func (d *Device) tick() {
	step := uint32(1)
	if d.Status.LowOutputRate {
		step = 5
	}
	d.clock += step
	d.phase += 0.01

	if d.Status.Streams.Accel {
		d.emitMotion(protocol.MsgAccel)
	}
	if d.Status.Streams.Gyro {
		d.emitMotion(protocol.MsgGyro)
	}
	if d.Status.Streams.Mag {
		d.emitMotion(protocol.MsgMag)
	}
	if d.Status.Streams.Quat {
		d.emitQuat()
	}
	if d.Status.Streams.Euler {
		d.emitMotion(protocol.MsgEuler)
	}
	if d.Status.Streams.Heading {
		d.emitHeading()
	}
}

func (d *Device) emitMotion(typ protocol.MsgType) {
	m := protocol.MotionSample{
		Timestamp: d.clock,
		X:         float32(math.Sin(d.phase)),
		Y:         float32(math.Sin(d.phase + 2*math.Pi/3)),
		Z:         float32(math.Sin(d.phase + 4*math.Pi/3)),
	}
	d.emit(typ, m.Payload())
}

func (d *Device) emitQuat() {
	payload := make([]byte, 20)
	binary.BigEndian.PutUint32(payload, d.clock)
	binary.BigEndian.PutUint32(payload[4:], math.Float32bits(float32(math.Cos(d.phase/2))))
	binary.BigEndian.PutUint32(payload[8:], math.Float32bits(float32(math.Sin(d.phase/2))))
	d.emit(protocol.MsgQuat, payload)
}

func (d *Device) emitHeading() {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint32(payload, d.clock)
	deg := math.Mod(d.phase*180/math.Pi, 360)
	binary.BigEndian.PutUint32(payload[4:], math.Float32bits(float32(deg)))
	d.emit(protocol.MsgHeading, payload)
}

func (d *Device) emit(typ protocol.MsgType, payload []byte) {
	f := protocol.Frame{Type: typ, Payload: payload}
	f.WriteTo(&d.out)
}
