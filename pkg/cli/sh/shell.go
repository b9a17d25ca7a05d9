package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/vmu.go/pkg/driver"
	"github.com/robotalks/vmu.go/pkg/sim"
	"github.com/robotalks/vmu.go/pkg/transport/serial"
	"github.com/robotalks/vmu.go/pkg/transport/usb"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoOpen    string

	Shell   *ishell.Shell
	Session *Session
}

// Session is an open sensor connection with its driver.
type Session struct {
	Name   string
	Driver *driver.Driver

	closer io.Closer
}

const (
	shellKey       = "$shell"
	closedPrompt   = "[none] > "
	commandTimeout = 10 * time.Second
)

var (
	// flags

	evalOnly   bool
	outputJSON bool
	autoOpen   string

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.StringVar(&autoOpen, "open", autoOpen, `Device to open on start: "auto", "serial", "usb", "sim" or a serial port path.`)
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New() *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		AutoOpen:    autoOpen,

		Shell: ishell.New(),
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command func requires an open session.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Session == nil {
			c.Err(fmt.Errorf("no device open"))
			return
		}
		fn(c)
	}
}

// SessionContext returns a context bounding one command against the
// device.
func SessionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// PrintResult prints a command result honoring the JSON flag.
func PrintResult(c *ishell.Context, v interface{}) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Printf("%+v\n", v)
}

// OpenSession opens a device connection by target: "auto", "serial",
// "usb", "sim" or a serial port path. Auto tries a detected serial
// port first, then raw USB.
func OpenSession(target string) (*Session, error) {
	switch target {
	case "sim":
		dev := sim.NewDevice()
		return newSession("sim", dev, dev), nil
	case "usb":
		conn, err := usb.NewConfig().Open()
		if err != nil {
			return nil, err
		}
		return newSession("usb", conn, conn), nil
	case "serial":
		conn, err := serial.NewConfig().Open()
		if err != nil {
			return nil, err
		}
		return newSession(conn.Name, conn, conn), nil
	case "auto":
		conn, err := serial.NewConfig().Open()
		if err == nil {
			return newSession(conn.Name, conn, conn), nil
		}
		if err != serial.ErrNotDetected {
			return nil, err
		}
		usbConn, err := usb.NewConfig().Open()
		if err == usb.ErrNotFound {
			return nil, fmt.Errorf("no sensor detected")
		}
		if err != nil {
			return nil, err
		}
		return newSession("usb", usbConn, usbConn), nil
	default:
		conf := serial.NewConfig()
		conf.Port = target
		conn, err := conf.Open()
		if err != nil {
			return nil, err
		}
		return newSession(conn.Name, conn, conn), nil
	}
}

func newSession(name string, rw io.ReadWriter, closer io.Closer) *Session {
	return &Session{Name: name, Driver: driver.New(rw), closer: closer}
}

// Open opens a device and replaces the current session.
func (s *Shell) Open(target string) error {
	session, err := OpenSession(target)
	if err != nil {
		return err
	}
	s.CloseSession()
	s.Session = session
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", session.Name))
	return nil
}

// CloseSession closes the current session if any.
func (s *Shell) CloseSession() {
	if s.Session != nil {
		s.Session.closer.Close()
		s.Session = nil
		s.Shell.SetPrompt(closedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoOpen != "" {
		if s.Interactive {
			s.Shell.Printf("Opening %s ...\n", s.AutoOpen)
		}
		if err := s.Open(s.AutoOpen); err != nil {
			log.Fatalf("open %q failed: %v", s.AutoOpen, err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// OpenCmd opens a device connection.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[auto|serial|usb|sim|PORT]",
		Func: func(c *ishell.Context) {
			target := "auto"
			if len(c.Args) > 0 {
				target = c.Args[0]
			}
			if err := ShellFrom(c).Open(target); err != nil {
				c.Err(err)
				return
			}
		},
	}

	// CloseCmd closes the current connection.
	CloseCmd = ishell.Cmd{
		Name:    "close",
		Aliases: []string{"c"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).CloseSession()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New().Run(flag.Args()...)
}
