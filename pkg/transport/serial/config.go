package serial

import (
	"flag"
	"time"

	tarm "github.com/tarm/serial"
)

// Config defines the configurations for a serial connection.
type Config struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

var defaultConfig = Config{
	Baud:        9600,
	ReadTimeout: 2 * time.Second,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial port of the sensor, empty for auto detection.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate.")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Serial read timeout.")
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

// Open opens the configured port, auto detecting when Port is empty.
func (c *Config) Open() (*Conn, error) {
	name := c.Port
	if name == "" {
		var err error
		if name, err = Detect(); err != nil {
			return nil, err
		}
	}
	port, err := tarm.OpenPort(&tarm.Config{Name: name, Baud: c.Baud, ReadTimeout: c.ReadTimeout})
	if err != nil {
		return nil, err
	}
	return &Conn{Name: name, port: port}, nil
}
