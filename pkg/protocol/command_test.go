package protocol

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleCmd(t *testing.T) {
	testCases := []struct {
		typ    MsgType
		expect Command
	}{
		{MsgAccel, "vara"},
		{MsgGyro, "varg"},
		{MsgMag, "varc"},
		{MsgQuat, "varq"},
		{MsgEuler, "vare"},
		{MsgHeading, "varh"},
	}
	for _, tc := range testCases {
		cmd, err := ToggleCmd(tc.typ)
		require.NoError(t, err)
		require.Equal(t, tc.expect, cmd)
	}

	_, err := ToggleCmd(MsgStatus)
	require.Error(t, err)
	_, err = ToggleCmd(MsgType('x'))
	require.Error(t, err)
}

func TestResolutionCmds(t *testing.T) {
	gyro := map[int]Command{250: "var0", 500: "var1", 1000: "var2", 2000: "var3"}
	for dps, expect := range gyro {
		cmd, err := GyroResolutionCmd(dps)
		require.NoError(t, err)
		require.Equal(t, expect, cmd)
	}
	_, err := GyroResolutionCmd(100)
	require.Error(t, err)

	accel := map[int]Command{2: "var4", 4: "var5", 8: "var6", 16: "var7"}
	for g, expect := range accel {
		cmd, err := AccelResolutionCmd(g)
		require.NoError(t, err)
		require.Equal(t, expect, cmd)
	}
	_, err = AccelResolutionCmd(32)
	require.Error(t, err)
}

func streamsFromMask(mask int) Streams {
	return Streams{
		Accel:   mask&0x01 != 0,
		Gyro:    mask&0x02 != 0,
		Mag:     mask&0x04 != 0,
		Quat:    mask&0x08 != 0,
		Euler:   mask&0x10 != 0,
		Heading: mask&0x20 != 0,
	}
}

func TestDiffCommands(t *testing.T) {
	all := DeviceStatus{Streams: Streams{Heading: true, Euler: true, Mag: true, Quat: true, Gyro: true, Accel: true}}
	expect := []Command{"vara", "varg", "varc", "varq", "vare", "varh"}
	require.Equal(t, expect, DiffCommands(DeviceStatus{}, all))
	require.Equal(t, expect, DiffCommands(all, DeviceStatus{}))

	require.Empty(t, DiffCommands(all, all))
	require.Empty(t, DiffCommands(DeviceStatus{}, DeviceStatus{}))
	require.Equal(t, []Command{"varg"}, DiffCommands(DeviceStatus{}, DeviceStatus{Streams: Streams{Gyro: true}}))

	// sensor and resolution fields never produce toggles
	require.Empty(t, DiffCommands(
		DeviceStatus{GyroResolution: 250, AccelResolution: 2},
		DeviceStatus{GyroResolution: 2000, AccelResolution: 16, MagEnabled: true, LowOutputRate: true}))
}

func TestDiffCommandsExhaustive(t *testing.T) {
	for cur := 0; cur < 64; cur++ {
		for des := 0; des < 64; des++ {
			current := DeviceStatus{Streams: streamsFromMask(cur)}
			desired := DeviceStatus{Streams: streamsFromMask(des)}
			cmds := DiffCommands(current, desired)
			require.Lenf(t, cmds, bits.OnesCount(uint(cur^des)), "cur=%06b des=%06b", cur, des)
			var hasAccel bool
			for _, cmd := range cmds {
				if cmd == "vara" {
					hasAccel = true
				}
			}
			require.Equalf(t, cur&0x01 != des&0x01, hasAccel, "cur=%06b des=%06b", cur, des)
		}
	}
}
