package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/callebjorkell/lightshow/internal/lightshow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
strip:
  backend: fastled
  leds: 30
  port: /dev/spidev0.0
  easing: in-out-sine
tick: 20ms
shows:
  - name: sunrise
    steps:
      - duration: 2s
        color: "#ff4000"
      - duration: 500ms
        color: "#ffffff80"
  - name: placeholder
mqtt:
  url: tcp://broker.local:1883
  topic: home/strip
button:
  enabled: true
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, BackendFastLED, c.Strip.Backend)
	assert.Equal(t, 30, c.Strip.Leds)
	assert.Equal(t, "/dev/spidev0.0", c.Strip.Port)
	assert.Equal(t, defaultFrequency, c.Strip.Frequency)
	assert.Equal(t, 20*time.Millisecond, c.Tick)
	assert.Equal(t, "tcp://broker.local:1883", c.Mqtt.URL)
	assert.Equal(t, "home/strip", c.Mqtt.Topic)
	assert.True(t, c.Button.Enabled)
	assert.Equal(t, defaultButtonPin, c.Button.Pin)

	catalog := c.Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, lightshow.Show{
		Name: "sunrise",
		Steps: []lightshow.Step{
			{Duration: 2 * time.Second, Color: lightshow.RGB(0xff, 0x40, 0)},
			{Duration: 500 * time.Millisecond, Color: lightshow.RGBW(0xff, 0xff, 0xff, 0x80)},
		},
	}, catalog[0])
	assert.Empty(t, catalog[1].Steps)

	assert.InDelta(t, 0.5, c.Easing()(0.5), 1e-9)
	assert.Len(t, c.Options(), 2)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Equal(t, BackendNeoPixel, c.Strip.Backend)
	assert.Equal(t, defaultLedCount, c.Strip.Leds)
	assert.Equal(t, defaultPin, c.Strip.Pin)
	assert.Equal(t, defaultBrightness, c.Strip.Brightness)
	assert.Equal(t, defaultStripType, c.Strip.Type)
	assert.Equal(t, defaultTick, c.Tick)
	assert.Equal(t, defaultTopic, c.Mqtt.Topic)
	assert.Empty(t, c.Mqtt.URL)
	assert.Equal(t, lightshow.DefaultCatalog(), c.Catalog())
	assert.Equal(t, 0.25, c.Easing()(0.25))
}

func TestParseErrors(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{"unknown backend", "strip:\n  backend: dmx\n"},
		{"negative leds", "strip:\n  leds: -1\n"},
		{"unknown easing", "strip:\n  easing: bounce\n"},
		{"unnamed show", "shows:\n  - steps: []\n"},
		{"bad color", "shows:\n  - name: x\n    steps:\n      - duration: 1s\n        color: purple\n"},
		{"negative duration", "shows:\n  - name: x\n    steps:\n      - duration: -1s\n        color: \"#ffffff\"\n"},
		{"not yaml", "strip: [\n"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.content))
			assert.Error(t, err)
		})
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	c, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 30, c.Strip.Leds)

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
