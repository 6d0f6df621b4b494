//go:build !pi

package neopixel

import (
	"github.com/callebjorkell/lightshow/internal/lightshow"
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	colors   []uint32
	renders  int
	finished bool
}

func (d *mockEngine) Init() error {
	return nil
}

func (d *mockEngine) Render() error {
	d.renders++
	log.Tracef("neopixel: Render %#v", d.colors)
	return nil
}

func (d *mockEngine) Wait() error {
	return nil
}

func (d *mockEngine) Fini() {
	log.Debug("neopixel: Fini")
	d.finished = true
}

func (d *mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

// NewController creates a controller backed by an in-memory engine, for
// running off the Pi.
func NewController(o Options, opts ...lightshow.Option) (*Controller, error) {
	log.Infof("Using mock NeoPixel strip with %d LEDs", o.LedCount)
	return newController(&mockEngine{colors: make([]uint32, o.LedCount)}, o.LedCount, opts...), nil
}
