package sim

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/vmu.go/pkg/protocol"
)

func TestDeviceStatusRequest(t *testing.T) {
	d := NewDevice()
	n, err := d.Write([]byte("vars"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	expect := (&protocol.Frame{Type: protocol.MsgStatus, Payload: d.Status.Payload()}).Bytes()
	buf := make([]byte, 64)
	n, err = d.Read(buf)
	require.NoError(t, err)
	require.Equal(t, expect, buf[:n])
}

func TestDeviceCommands(t *testing.T) {
	d := NewDevice()
	d.Write([]byte("var"))
	d.Write([]byte("gvar0va"))
	d.Write([]byte("r7"))
	require.True(t, d.Status.Streams.Gyro)
	require.Equal(t, 250, d.Status.GyroResolution)
	require.Equal(t, 16, d.Status.AccelResolution)

	d.Write([]byte("varg"))
	require.False(t, d.Status.Streams.Gyro)

	before := d.Status.Streams
	d.Write([]byte("varz"))
	d.Write([]byte("abcd"))
	require.Equal(t, before, d.Status.Streams)
}

func TestDeviceStream(t *testing.T) {
	d := NewDevice() // euler is a wake-up stream

	var scanner protocol.Scanner
	buf := make([]byte, 64)
	var last uint32
	for i := 0; i < 3; i++ {
		var frame *protocol.Frame
		for frame == nil {
			n, err := d.Read(buf)
			require.NoError(t, err)
			scanner.Feed(buf[:n])
			frame = scanner.Scan(protocol.MsgEuler).Frame
		}
		m, err := protocol.DecodeMotion(frame.Payload)
		require.NoError(t, err)
		if i > 0 {
			require.True(t, m.Timestamp > last)
		}
		last = m.Timestamp
		require.True(t, m.X >= -1 && m.X <= 1)
		require.True(t, m.Y >= -1 && m.Y <= 1)
		require.True(t, m.Z >= -1 && m.Z <= 1)
	}
}

func TestDeviceEmitOrder(t *testing.T) {
	d := NewDevice()
	d.Status.Streams = protocol.Streams{}
	for _, cmd := range []string{"vara", "varg", "varc", "varq", "vare", "varh"} {
		d.Write([]byte(cmd))
	}

	buf := make([]byte, 256)
	n, err := d.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4*20+24+12, n)

	var types []protocol.MsgType
	for i := 0; i < n; i += int(buf[i+1]) {
		require.Equal(t, byte(0x01), buf[i])
		types = append(types, protocol.MsgType(buf[i+2]))
	}
	require.Equal(t, []protocol.MsgType{
		protocol.MsgAccel, protocol.MsgGyro, protocol.MsgMag,
		protocol.MsgQuat, protocol.MsgEuler, protocol.MsgHeading,
	}, types)
}

func TestDeviceLowOutputRate(t *testing.T) {
	d := NewDevice()
	d.Status.Streams = protocol.Streams{}
	d.Status.LowOutputRate = true
	d.Write([]byte("varh"))

	buf := make([]byte, 64)
	n, err := d.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.Equal(t, byte('h'), buf[2])
	require.Equal(t, uint32(5), binary.BigEndian.Uint32(buf[3:]))
}

func TestDeviceSilentWithoutStreams(t *testing.T) {
	d := NewDevice()
	d.Status.Streams = protocol.Streams{}
	_, err := d.Read(make([]byte, 16))
	require.True(t, os.IsTimeout(err))
}

func TestDeviceInject(t *testing.T) {
	d := NewDevice()
	d.Inject([]byte{0xde, 0xad})
	d.Write([]byte("vars"))

	buf := make([]byte, 64)
	n, err := d.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 13, n)
	require.Equal(t, []byte{0xde, 0xad}, buf[:2])
	require.Equal(t, byte(0x01), buf[2])
}

func TestDeviceClose(t *testing.T) {
	d := NewDevice()
	require.NoError(t, d.Close())
	_, err := d.Read(make([]byte, 1))
	require.Equal(t, os.ErrClosed, err)
	_, err = d.Write([]byte("vars"))
	require.Equal(t, os.ErrClosed, err)
}
