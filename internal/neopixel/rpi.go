//go:build pi

package neopixel

import (
	"fmt"
	"strings"

	"github.com/callebjorkell/lightshow/internal/lightshow"
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
	log "github.com/sirupsen/logrus"
)

var stripTypes = map[string]int{
	"rgb":  ws.WS2811StripRGB,
	"grb":  ws.WS2811StripGRB,
	"rgbw": ws.SK6812StripRGBW,
	"grbw": ws.SK6812StripGRBW,
}

// NewController initializes the ws281x driver on channel 0.
func NewController(o Options, opts ...lightshow.Option) (*Controller, error) {
	stripType, ok := stripTypes[strings.ToLower(o.StripType)]
	if !ok {
		return nil, fmt.Errorf("unknown strip type %q", o.StripType)
	}

	opt := ws.DefaultOptions
	opt.Channels[0].GpioPin = o.Pin
	opt.Channels[0].Brightness = o.Brightness
	opt.Channels[0].LedCount = o.LedCount
	opt.Channels[0].StripeType = stripType

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}
	err = dev.Init()
	if err != nil {
		return nil, err
	}

	log.Infof("Initialized %d %s LEDs on GPIO%d", o.LedCount, o.StripType, o.Pin)
	return newController(dev, o.LedCount, opts...), nil
}
