package usb

import (
	"testing"
	"time"

	"github.com/google/gousb"
	"github.com/stretchr/testify/require"
)

func TestDataEndpoints(t *testing.T) {
	setting := gousb.InterfaceSetting{
		Number: dataInterface,
		Endpoints: map[gousb.EndpointAddress]gousb.EndpointDesc{
			0x83: {Address: 0x83, Number: 3, Direction: gousb.EndpointDirectionIn},
			0x02: {Address: 0x02, Number: 2, Direction: gousb.EndpointDirectionOut},
		},
	}
	in, out, err := dataEndpoints(setting)
	require.NoError(t, err)
	require.Equal(t, 3, in)
	require.Equal(t, 2, out)

	setting.Endpoints = map[gousb.EndpointAddress]gousb.EndpointDesc{
		0x83: {Address: 0x83, Number: 3, Direction: gousb.EndpointDirectionIn},
	}
	_, _, err = dataEndpoints(setting)
	require.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, 2*time.Second, conf.ReadTimeout)

	conf.ReadTimeout = time.Minute
	require.Equal(t, 2*time.Second, Default().ReadTimeout)
}
