// Package neopixel drives WS281x/SK6812 strips through the rpi_ws281x
// library. The strip is always addressed as RGBW; RGB strips ignore W.
package neopixel

import (
	"fmt"
	"time"

	"github.com/callebjorkell/lightshow/internal/lightshow"
	log "github.com/sirupsen/logrus"
)

const (
	brightness = 90
	ledCounts  = 64
	gpioPin    = 18
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// Options are handed to the ws281x driver, which validates them.
type Options struct {
	LedCount   int
	Pin        int
	Brightness int
	// StripType is the colour order and timing family, e.g. "grb" or "grbw".
	StripType string
}

var DefaultOptions = Options{
	LedCount:   ledCounts,
	Pin:        gpioPin,
	Brightness: brightness,
	StripType:  "grb",
}

// Controller is a lightshow.Controller for one ws281x channel.
type Controller struct {
	*lightshow.Engine
	ws wsEngine
}

type strip struct {
	ws wsEngine
}

func (s strip) Push(pixels []lightshow.Pixel) error {
	leds := s.ws.Leds(0)
	if len(leds) < len(pixels) {
		return fmt.Errorf("driver has %d leds, buffer has %d", len(leds), len(pixels))
	}
	for i, p := range pixels {
		leds[i] = p.Uint32()
	}
	return s.ws.Render()
}

func newController(ws wsEngine, n int, opts ...lightshow.Option) *Controller {
	return &Controller{
		Engine: lightshow.NewEngine(n, lightshow.LayoutRGBW, strip{ws: ws}, opts...),
		ws:     ws,
	}
}

// FadeColor fades to a packed 0xWWRRGGBB colour.
func (c *Controller) FadeColor(d time.Duration, color uint32) error {
	return c.Fade(d, lightshow.FromUint32(color))
}

// Close blacks the strip out and releases the driver.
func (c *Controller) Close() error {
	if c.ws == nil {
		return nil
	}
	err := c.Engine.Close()
	c.ws.Fini()
	c.ws = nil
	log.Info("NeoPixel strip released")
	return err
}
