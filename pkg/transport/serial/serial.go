package serial

import (
	"errors"
	"io"
	"strings"

	"github.com/golang/glog"
	tarm "github.com/tarm/serial"
	"go.bug.st/serial/enumerator"

	"github.com/robotalks/vmu.go/pkg/transport"
)

// USB identity of the sensor CDC ACM function.
const (
	usbVendorID  = "16d0"
	usbProductID = "0cba"
)

// ErrNotDetected indicates no sensor port was found during auto detection.
var ErrNotDetected = errors.New("no sensor port detected")

// Conn is a serial port connection to the sensor.
type Conn struct {
	Name string

	port *tarm.Port
}

// Read implements transport.Conn. An expired read deadline yields
// transport.ErrTimeout.
func (c *Conn) Read(p []byte) (int, error) {
	n, err := c.port.Read(p)
	if n == 0 && (err == nil || err == io.EOF) {
		return 0, transport.ErrTimeout
	}
	return n, err
}

// Write implements transport.Conn.
func (c *Conn) Write(p []byte) (int, error) {
	return c.port.Write(p)
}

// Close implements transport.Conn.
func (c *Conn) Close() error {
	return c.port.Close()
}

// Detect finds the serial port enumerated for an attached sensor.
func Detect() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", err
	}
	for _, port := range ports {
		if matchPort(port) {
			glog.V(2).Infof("detected sensor port %s", port.Name)
			return port.Name, nil
		}
	}
	return "", ErrNotDetected
}

func matchPort(port *enumerator.PortDetails) bool {
	return port.IsUSB &&
		strings.EqualFold(port.VID, usbVendorID) &&
		strings.EqualFold(port.PID, usbProductID)
}
