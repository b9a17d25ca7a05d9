package serial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial/enumerator"
)

func TestMatchPort(t *testing.T) {
	testCases := []struct {
		name   string
		port   enumerator.PortDetails
		expect bool
	}{
		{"sensor", enumerator.PortDetails{Name: "/dev/ttyACM0", IsUSB: true, VID: "16D0", PID: "0CBA"}, true},
		{"lowercase ids", enumerator.PortDetails{Name: "/dev/ttyACM1", IsUSB: true, VID: "16d0", PID: "0cba"}, true},
		{"other device", enumerator.PortDetails{Name: "/dev/ttyUSB0", IsUSB: true, VID: "0403", PID: "6001"}, false},
		{"not usb", enumerator.PortDetails{Name: "/dev/ttyS0"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, matchPort(&tc.port))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, "", conf.Port)
	require.Equal(t, 9600, conf.Baud)
	require.Equal(t, 2*time.Second, conf.ReadTimeout)

	conf.Baud = 115200
	require.Equal(t, 9600, Default().Baud)
}
