// Package fastled drives 3-channel NRZ strips (WS2812B and friends, the
// strips FastLED calls NEOPIXEL) from an SPI port using periph's nrzled
// encoder.
package fastled

import (
	"io"

	"github.com/callebjorkell/lightshow/internal/lightshow"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

const channels = 3

// Drawer is the part of an nrzled device the controller needs.
type Drawer interface {
	Write(pixels []byte) (int, error)
	Halt() error
}

type Options struct {
	LedCount int
	// Port is the spireg name of the SPI port. Empty picks the first one.
	Port string
	// Frequency is the SPI clock handed to nrzled.
	Frequency physic.Frequency
}

var DefaultOptions = Options{
	LedCount:  64,
	Frequency: 2500 * physic.KiloHertz,
}

// Controller is a lightshow.Controller for one NRZ strip.
type Controller struct {
	*lightshow.Engine
	drawer Drawer
	port   io.Closer
}

type strip struct {
	d   Drawer
	raw []byte
}

func (s *strip) Push(pixels []lightshow.Pixel) error {
	raw := s.raw[:0]
	for _, p := range pixels {
		raw = append(raw, p.R, p.G, p.B)
	}
	s.raw = raw
	_, err := s.d.Write(raw)
	return err
}

// New wraps an already opened device of n LEDs.
func New(d Drawer, n int, opts ...lightshow.Option) *Controller {
	s := &strip{d: d, raw: make([]byte, 0, n*channels)}
	return &Controller{
		Engine: lightshow.NewEngine(n, lightshow.LayoutRGB, s, opts...),
		drawer: d,
	}
}

// Open initializes periph, opens the SPI port and builds the NRZ encoder.
func Open(o Options, opts ...lightshow.Option) (*Controller, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	port, err := spireg.Open(o.Port)
	if err != nil {
		return nil, err
	}

	d, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: o.LedCount,
		Channels:  channels,
		Freq:      o.Frequency,
	})
	if err != nil {
		port.Close()
		return nil, err
	}

	log.Infof("Opened %v with %d LEDs", d, o.LedCount)
	c := New(d, o.LedCount, opts...)
	c.port = port
	return c, nil
}

// Close blacks the strip out, halts the device and closes the port if Open
// created it.
func (c *Controller) Close() error {
	if c.drawer == nil {
		return nil
	}
	err := c.Engine.Close()
	if herr := c.drawer.Halt(); herr != nil && err == nil {
		err = herr
	}
	c.drawer = nil
	if c.port != nil {
		if perr := c.port.Close(); perr != nil && err == nil {
			err = perr
		}
	}
	log.Info("FastLED strip released")
	return err
}
