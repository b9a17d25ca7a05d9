package protocol

import "fmt"

// Command is an ASCII command string sent to the device as-is.
type Command string

// CmdRequestStatus asks the device to emit a status frame.
const CmdRequestStatus Command = "vars"

// toggleOrder lists message types in command emission order.
var toggleOrder = [...]MsgType{MsgAccel, MsgGyro, MsgMag, MsgQuat, MsgEuler, MsgHeading}

// ToggleCmd returns the command flipping streaming of message type t.
// The device supports no absolute on/off, only the flip.
func ToggleCmd(t MsgType) (Command, error) {
	switch t {
	case MsgAccel, MsgGyro, MsgMag, MsgQuat, MsgEuler, MsgHeading:
		return Command([]byte{'v', 'a', 'r', byte(t)}), nil
	}
	return "", fmt.Errorf("message type %q has no stream toggle", t)
}

// GyroResolutionCmd returns the command setting gyroscope resolution,
// one of 250, 500, 1000 or 2000 degrees/s.
func GyroResolutionCmd(dps int) (Command, error) {
	switch dps {
	case 250:
		return "var0", nil
	case 500:
		return "var1", nil
	case 1000:
		return "var2", nil
	case 2000:
		return "var3", nil
	}
	return "", fmt.Errorf("unsupported gyroscope resolution %d", dps)
}

// AccelResolutionCmd returns the command setting accelerometer
// resolution, one of 2, 4, 8 or 16 g.
func AccelResolutionCmd(g int) (Command, error) {
	switch g {
	case 2:
		return "var4", nil
	case 4:
		return "var5", nil
	case 8:
		return "var6", nil
	case 16:
		return "var7", nil
	}
	return "", fmt.Errorf("unsupported accelerometer resolution %d", g)
}

// DiffCommands computes the toggle commands moving the streaming flags
// in current to those in desired. Emission order is fixed:
// accelerometer, gyroscope, magnetometer, quaternion, euler, heading.
func DiffCommands(current, desired DeviceStatus) []Command {
	var cmds []Command
	for _, t := range toggleOrder {
		if current.Streams.Enabled(t) != desired.Streams.Enabled(t) {
			cmd, _ := ToggleCmd(t)
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
