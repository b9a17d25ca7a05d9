package vmu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/vmu.go/pkg/cli/sh"
	"github.com/robotalks/vmu.go/pkg/driver"
	"github.com/robotalks/vmu.go/pkg/protocol"
)

var (
	// StatusCmd queries the device status.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			ctx, cancel := sh.SessionContext()
			defer cancel()
			status, err := sh.ShellFrom(c).Session.Driver.Status(ctx)
			if err != nil {
				c.Err(err)
				return
			}
			sh.PrintResult(c, status)
		}),
	}

	// ConfigCmd applies a streaming configuration.
	ConfigCmd = ishell.Cmd{
		Name:    "config",
		Aliases: []string{"cfg"},
		Help:    "[STREAM|gyro:DPS|accel:G ...]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			desired := driver.BasicConfiguration()
			if len(c.Args) > 0 {
				var err error
				if desired, err = parseConfig(c.Args); err != nil {
					c.Err(err)
					return
				}
			}
			ctx, cancel := sh.SessionContext()
			defer cancel()
			if err := sh.ShellFrom(c).Session.Driver.Configure(ctx, desired); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// StreamCmd reads samples from a motion stream.
	StreamCmd = ishell.Cmd{
		Name:    "stream",
		Aliases: []string{"s"},
		Help:    "STREAM [COUNT]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("STREAM required"))
				return
			}
			typ, err := parseMsgType(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			count := 10
			if len(c.Args) > 1 {
				if count, err = strconv.Atoi(c.Args[1]); err != nil {
					c.Err(fmt.Errorf("invalid COUNT: %v", err))
					return
				}
			}
			d := sh.ShellFrom(c).Session.Driver
			ctx, cancel := sh.SessionContext()
			defer cancel()
			for i := 0; i < count; i++ {
				sample, err := d.ReadSample(ctx, typ)
				if err != nil {
					c.Err(err)
					return
				}
				sh.PrintResult(c, sample)
			}
		}),
	}

	// ToggleCmd toggles a single stream on the device.
	ToggleCmd = ishell.Cmd{
		Name:    "toggle",
		Aliases: []string{"t"},
		Help:    "STREAM",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("STREAM required"))
				return
			}
			typ, err := parseMsgType(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			cmd, err := protocol.ToggleCmd(typ)
			if err != nil {
				c.Err(err)
				return
			}
			if err = sh.ShellFrom(c).Session.Driver.Send(cmd); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// ResolutionCmd sets gyroscope or accelerometer resolution.
	ResolutionCmd = ishell.Cmd{
		Name:    "resolution",
		Aliases: []string{"res"},
		Help:    "gyro:DPS|accel:G ...",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("gyro:DPS or accel:G required"))
				return
			}
			for _, arg := range c.Args {
				cmd, err := parseResolution(arg)
				if err != nil {
					c.Err(err)
					return
				}
				if err = sh.ShellFrom(c).Session.Driver.Send(cmd); err != nil {
					c.Err(err)
					return
				}
			}
			c.Println("OK")
		}),
	}
)

func parseMsgType(name string) (protocol.MsgType, error) {
	switch strings.ToLower(name) {
	case "accel", "accelerometer", "a":
		return protocol.MsgAccel, nil
	case "gyro", "gyroscope", "g":
		return protocol.MsgGyro, nil
	case "mag", "magnetometer", "c":
		return protocol.MsgMag, nil
	case "quat", "quaternion", "q":
		return protocol.MsgQuat, nil
	case "euler", "e":
		return protocol.MsgEuler, nil
	case "heading", "h":
		return protocol.MsgHeading, nil
	}
	return 0, fmt.Errorf("unknown stream %q", name)
}

func parseConfig(args []string) (protocol.DeviceStatus, error) {
	var desired protocol.DeviceStatus
	for _, arg := range args {
		if i := strings.IndexByte(arg, ':'); i >= 0 {
			name, val := arg[:i], arg[i+1:]
			n, err := strconv.Atoi(val)
			if err != nil {
				return desired, fmt.Errorf("invalid resolution %q: %v", arg, err)
			}
			switch name {
			case "gyro", "g":
				desired.GyroResolution = n
			case "accel", "a":
				desired.AccelResolution = n
			default:
				return desired, fmt.Errorf("unknown setting %q", name)
			}
			continue
		}
		typ, err := parseMsgType(arg)
		if err != nil {
			return desired, err
		}
		desired.Streams.Toggle(typ)
	}
	return desired, nil
}

func parseResolution(arg string) (protocol.Command, error) {
	i := strings.IndexByte(arg, ':')
	if i < 0 {
		return "", fmt.Errorf("expect NAME:VALUE, got %q", arg)
	}
	name, val := arg[:i], arg[i+1:]
	n, err := strconv.Atoi(val)
	if err != nil {
		return "", fmt.Errorf("invalid value %q: %v", arg, err)
	}
	switch name {
	case "gyro", "g":
		return protocol.GyroResolutionCmd(n)
	case "accel", "a":
		return protocol.AccelResolutionCmd(n)
	}
	return "", fmt.Errorf("unknown setting %q", name)
}

func init() {
	sh.AddCmds(
		&StatusCmd,
		&ConfigCmd,
		&StreamCmd,
		&ToggleCmd,
		&ResolutionCmd,
	)
}
