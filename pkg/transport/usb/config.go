package usb

import (
	"flag"
	"time"

	"github.com/google/gousb"
)

// Config defines the configurations for a USB connection.
type Config struct {
	ReadTimeout time.Duration
}

var defaultConfig = Config{
	ReadTimeout: 2 * time.Second,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.ReadTimeout, "usb-read-timeout", defaultConfig.ReadTimeout, "USB bulk read timeout.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open opens the sensor device using the config.
func (c *Config) Open() (*Conn, error) {
	conn := &Conn{ReadTimeout: c.ReadTimeout, ctx: gousb.NewContext()}
	if err := conn.open(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
