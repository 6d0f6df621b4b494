package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/callebjorkell/lightshow/internal/lightshow"
	"github.com/fogleman/ease"
	"gopkg.in/yaml.v3"
)

const (
	defaultLedCount   = 64
	defaultPin        = 18
	defaultBrightness = 90
	defaultStripType  = "grb"
	defaultFrequency  = 2500 // kHz
	defaultTick       = 10 * time.Millisecond
	defaultTopic      = "lightshow/command"
	defaultButtonPin  = "GPIO20"

	BackendNeoPixel = "neopixel"
	BackendFastLED  = "fastled"
)

var easings = map[string]func(float64) float64{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"in-out-sine":  ease.InOutSine,
}

type Strip struct {
	Backend    string `yaml:"backend"`
	Leds       int    `yaml:"leds"`
	Pin        int    `yaml:"pin"`
	Type       string `yaml:"type"`
	Brightness int    `yaml:"brightness"`
	Port       string `yaml:"port"`
	Frequency  int    `yaml:"frequency"`
	Easing     string `yaml:"easing"`
}

type Step struct {
	Duration time.Duration `yaml:"duration"`
	Color    string        `yaml:"color"`
}

type Show struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

type Mqtt struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
}

type Config struct {
	Strip  Strip         `yaml:"strip"`
	Tick   time.Duration `yaml:"tick"`
	Shows  []Show        `yaml:"shows"`
	Mqtt   Mqtt          `yaml:"mqtt"`
	Button struct {
		Enabled bool   `yaml:"enabled"`
		Pin     string `yaml:"pin"`
	} `yaml:"button"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	c, _ := Parse(nil)
	return c
}

// Read parses the configuration file at path.
func Read(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

// Parse decodes and validates a YAML configuration, filling in defaults.
func Parse(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	c.Strip.Backend = strings.ToLower(c.Strip.Backend)
	switch c.Strip.Backend {
	case "":
		c.Strip.Backend = BackendNeoPixel
	case BackendNeoPixel, BackendFastLED:
	default:
		return nil, fmt.Errorf("unknown strip backend %q", c.Strip.Backend)
	}
	if c.Strip.Leds < 0 {
		return nil, fmt.Errorf("number of leds cannot be negative")
	}
	if c.Strip.Leds == 0 {
		c.Strip.Leds = defaultLedCount
	}
	if c.Strip.Pin == 0 {
		c.Strip.Pin = defaultPin
	}
	if c.Strip.Brightness <= 0 {
		c.Strip.Brightness = defaultBrightness
	}
	if c.Strip.Type == "" {
		c.Strip.Type = defaultStripType
	}
	if c.Strip.Frequency <= 0 {
		c.Strip.Frequency = defaultFrequency
	}
	if c.Strip.Easing == "" {
		c.Strip.Easing = "linear"
	}
	if _, ok := easings[c.Strip.Easing]; !ok {
		return nil, fmt.Errorf("unknown easing %q", c.Strip.Easing)
	}

	if c.Tick <= 0 {
		c.Tick = defaultTick
	}

	for i, show := range c.Shows {
		if len(show.Name) < 1 {
			return nil, fmt.Errorf("name of show must be specified for entry %d", i)
		}
		for j, step := range show.Steps {
			if step.Duration < 0 {
				return nil, fmt.Errorf("duration of step %d in show %s cannot be negative", j, show.Name)
			}
			if _, err := lightshow.ParseHex(step.Color); err != nil {
				return nil, fmt.Errorf("color of step %d in show %s: %w", j, show.Name, err)
			}
		}
	}

	if c.Mqtt.Topic == "" {
		c.Mqtt.Topic = defaultTopic
	}
	if c.Button.Pin == "" {
		c.Button.Pin = defaultButtonPin
	}

	return c, nil
}

// Catalog is the show table for the controller. Without any configured
// shows it is the built-in catalog.
func (c Config) Catalog() lightshow.Catalog {
	if len(c.Shows) == 0 {
		return lightshow.DefaultCatalog()
	}

	catalog := make(lightshow.Catalog, 0, len(c.Shows))
	for _, show := range c.Shows {
		s := lightshow.Show{Name: show.Name}
		for _, step := range show.Steps {
			// validated by Parse
			color, _ := lightshow.ParseHex(step.Color)
			s.Steps = append(s.Steps, lightshow.Step{Duration: step.Duration, Color: color})
		}
		catalog = append(catalog, s)
	}
	return catalog
}

func (c Config) Easing() func(float64) float64 {
	if f, ok := easings[c.Strip.Easing]; ok {
		return f
	}
	return ease.Linear
}

// Options are the engine options the configuration implies.
func (c Config) Options() []lightshow.Option {
	return []lightshow.Option{
		lightshow.WithCatalog(c.Catalog()),
		lightshow.WithEasing(c.Easing()),
	}
}
