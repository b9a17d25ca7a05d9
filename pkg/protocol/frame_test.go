package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgType(t *testing.T) {
	for _, typ := range []MsgType{MsgAccel, MsgGyro, MsgMag, MsgQuat, MsgEuler, MsgHeading, MsgStatus} {
		require.True(t, typ.IsValid())
	}
	require.False(t, MsgType('x').IsValid())
	require.False(t, MsgType(0).IsValid())

	for _, typ := range []MsgType{MsgAccel, MsgGyro, MsgMag, MsgEuler} {
		require.True(t, typ.IsMotion())
	}
	for _, typ := range []MsgType{MsgQuat, MsgHeading, MsgStatus} {
		require.False(t, typ.IsMotion())
	}

	require.Equal(t, "g", MsgGyro.String())
}

func TestFrame(t *testing.T) {
	testCases := []struct {
		name   string
		frame  Frame
		expect []byte
	}{
		{"no payload", Frame{Type: MsgStatus}, []byte{0x01, 0x04, 's', 0x04}},
		{"with payload", Frame{Type: MsgGyro, Payload: []byte{1, 2, 3}}, []byte{0x01, 0x07, 'g', 1, 2, 3, 0x04}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.frame.Bytes())
			var buf bytes.Buffer
			n, err := tc.frame.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, tc.expect, buf.Bytes())
			require.Equal(t, len(tc.expect), n)
		})
	}
}
