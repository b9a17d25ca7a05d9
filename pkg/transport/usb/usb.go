package usb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/gousb"

	"github.com/robotalks/vmu.go/pkg/transport"
)

// USB identity of the sensor.
const (
	VendorID  gousb.ID = 0x16d0
	ProductID gousb.ID = 0x0cba
)

// The sensor is a composite CDC ACM device. Interface 0 carries the
// control function, interface 1 the data function with one bulk
// endpoint per direction.
const (
	configNum     = 1
	dataInterface = 1
	dataAlternate = 0
)

// ErrNotFound indicates no sensor device is attached.
var ErrNotFound = errors.New("no sensor device found")

// Conn is a USB bulk connection to the sensor data interface.
type Conn struct {
	ReadTimeout time.Duration

	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	in   *gousb.InEndpoint
	out  *gousb.OutEndpoint
}

// Read implements transport.Conn. An expired read deadline yields
// transport.ErrTimeout.
func (c *Conn) Read(p []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.ReadTimeout)
	defer cancel()
	n, err := c.in.ReadContext(ctx, p)
	if n > 0 {
		return n, nil
	}
	switch err {
	case nil:
		return 0, transport.ErrTimeout
	case context.DeadlineExceeded, gousb.TransferTimedOut, gousb.TransferCancelled:
		return 0, transport.ErrTimeout
	}
	return 0, err
}

// Write implements transport.Conn.
func (c *Conn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Close implements transport.Conn.
func (c *Conn) Close() error {
	if c.intf != nil {
		c.intf.Close()
		c.intf = nil
	}
	var err error
	if c.cfg != nil {
		err = c.cfg.Close()
		c.cfg = nil
	}
	if c.dev != nil {
		if e := c.dev.Close(); err == nil {
			err = e
		}
		c.dev = nil
	}
	if e := c.ctx.Close(); err == nil {
		err = e
	}
	return err
}

func (c *Conn) open() error {
	var err error
	if c.dev, err = c.ctx.OpenDeviceWithVIDPID(VendorID, ProductID); err != nil {
		return err
	}
	if c.dev == nil {
		return ErrNotFound
	}
	if err = c.dev.SetAutoDetach(true); err != nil {
		return err
	}
	if c.cfg, err = c.dev.Config(configNum); err != nil {
		return err
	}
	if c.intf, err = c.cfg.Interface(dataInterface, dataAlternate); err != nil {
		return err
	}
	inNum, outNum, err := dataEndpoints(c.intf.Setting)
	if err != nil {
		return err
	}
	if c.in, err = c.intf.InEndpoint(inNum); err != nil {
		return err
	}
	if c.out, err = c.intf.OutEndpoint(outNum); err != nil {
		return err
	}
	glog.V(2).Infof("usb device %s opened", c.dev)
	return nil
}

func dataEndpoints(setting gousb.InterfaceSetting) (in, out int, err error) {
	in, out = -1, -1
	for _, ep := range setting.Endpoints {
		if ep.Direction == gousb.EndpointDirectionIn && in < 0 {
			in = ep.Number
		}
		if ep.Direction == gousb.EndpointDirectionOut && out < 0 {
			out = ep.Number
		}
	}
	if in < 0 || out < 0 {
		err = fmt.Errorf("no data endpoints on interface %d", setting.Number)
	}
	return
}
