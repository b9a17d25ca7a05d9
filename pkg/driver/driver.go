package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/vmu.go/pkg/protocol"
)

// Defaults for the read loop.
const (
	DefaultReadSize  = 64
	DefaultScanLimit = 5000
)

// ErrScanTimeout indicates the wanted message type did not arrive
// within the scan attempt limit.
var ErrScanTimeout = errors.New("scan timeout")

// Driver runs a message session over a sensor connection.
type Driver struct {
	ReadWriter io.ReadWriter
	ReadSize   int // bytes requested per read
	ScanLimit  int // read and scan attempts per frame

	scanner protocol.Scanner
}

// New creates a Driver over a connection.
func New(rw io.ReadWriter) *Driver {
	return &Driver{
		ReadWriter: rw,
		ReadSize:   DefaultReadSize,
		ScanLimit:  DefaultScanLimit,
	}
}

// Send writes a command to the device.
func (d *Driver) Send(cmd protocol.Command) error {
	glog.V(4).Infof("SND %q", string(cmd))
	_, err := d.ReadWriter.Write([]byte(cmd))
	return err
}

// ReadFrame reads the next frame of the wanted type, discarding other
// traffic. It keeps reading until the frame arrives, the scan attempt
// limit is exhausted, or ctx is done. Read timeouts on the connection
// count against the attempt limit.
func (d *Driver) ReadFrame(ctx context.Context, want protocol.MsgType) (*protocol.Frame, error) {
	buf := make([]byte, d.ReadSize)
	var resyncs, skipped int
	for attempt := 0; attempt < d.ScanLimit; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r := d.scanner.Scan(want)
		resyncs += r.Resyncs
		skipped += r.Skipped
		if r.Frame != nil {
			if resyncs+skipped > 0 {
				glog.V(4).Infof("RCV %q after %d resyncs, %d skipped", want, resyncs, skipped)
			}
			return r.Frame, nil
		}
		n, err := d.ReadWriter.Read(buf)
		if n > 0 {
			d.scanner.Feed(buf[:n])
		} else if err != nil {
			if os.IsTimeout(err) {
				continue
			}
			return nil, err
		}
	}
	return nil, ErrScanTimeout
}

// ReadSample reads the next sample from a motion stream.
func (d *Driver) ReadSample(ctx context.Context, want protocol.MsgType) (protocol.MotionSample, error) {
	if !want.IsMotion() {
		return protocol.MotionSample{}, fmt.Errorf("message type %q is not a motion stream", want)
	}
	f, err := d.ReadFrame(ctx, want)
	if err != nil {
		return protocol.MotionSample{}, err
	}
	return protocol.DecodeMotion(f.Payload)
}

// Status requests and decodes the device status.
func (d *Driver) Status(ctx context.Context) (protocol.DeviceStatus, error) {
	if err := d.Send(protocol.CmdRequestStatus); err != nil {
		return protocol.DeviceStatus{}, err
	}
	f, err := d.ReadFrame(ctx, protocol.MsgStatus)
	if err != nil {
		return protocol.DeviceStatus{}, err
	}
	return protocol.DecodeStatus(f.Payload)
}

// Configure drives the device towards the desired status. Resolution
// commands go first, then stream toggles for every stream that
// differs. A zero resolution keeps the current setting.
func (d *Driver) Configure(ctx context.Context, desired protocol.DeviceStatus) error {
	current, err := d.Status(ctx)
	if err != nil {
		return err
	}
	glog.V(2).Infof("status received: %+v", current)
	if desired.GyroResolution != 0 {
		cmd, err := protocol.GyroResolutionCmd(desired.GyroResolution)
		if err != nil {
			return err
		}
		if err = d.Send(cmd); err != nil {
			return err
		}
	}
	if desired.AccelResolution != 0 {
		cmd, err := protocol.AccelResolutionCmd(desired.AccelResolution)
		if err != nil {
			return err
		}
		if err = d.Send(cmd); err != nil {
			return err
		}
	}
	cmds := protocol.DiffCommands(current, desired)
	for _, cmd := range cmds {
		if err = d.Send(cmd); err != nil {
			return err
		}
	}
	glog.V(2).Infof("%d stream toggles sent", len(cmds))
	return nil
}

// BasicConfiguration returns the minimal streaming setup: gyroscope
// stream only, gyroscope at 2000 dps, accelerometer at 2 g.
func BasicConfiguration() protocol.DeviceStatus {
	return protocol.DeviceStatus{
		GyroResolution:  2000,
		AccelResolution: 2,
		Streams:         protocol.Streams{Gyro: true},
	}
}
