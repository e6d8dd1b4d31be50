// Package config loads the bridge configuration file.
package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	VariantSurface = "surface"
	VariantSliders = "sliders"
)

type Config struct {
	// Variant selects the front-end: "surface" or "sliders".
	Variant string `yaml:"variant"`

	// Addr is the HTTP listen address of the operator page.
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`

	Serial Serial `yaml:"serial"`

	// Tick is the control loop period.
	Tick time.Duration `yaml:"tick"`

	// Simulate replaces the serial port with the built-in flight controller simulator.
	Simulate bool `yaml:"simulate"`

	Influx Influx `yaml:"influx"`

	// LogFile, if set, receives a rotated copy of the log.
	LogFile string `yaml:"log_file"`
}

type Serial struct {
	Port        string        `yaml:"port"`
	Baud        int           `yaml:"baud"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// Influx is the optional command recorder. It is off when Server is empty.
type Influx struct {
	Server string `yaml:"server"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

func Default() *Config {
	return &Config{
		Variant: VariantSurface,
		Addr:    "127.0.0.1:8503",
		Serial: Serial{
			Baud:        115200,
			ReadTimeout: time.Second,
		},
		Tick: time.Second / 60,
		Influx: Influx{
			Org:    "w1xm",
			Bucket: "rc.commands",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.Variant {
	case VariantSurface, VariantSliders:
	default:
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	if c.Serial.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Serial.Baud)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("invalid tick %v", c.Tick)
	}
	return nil
}
