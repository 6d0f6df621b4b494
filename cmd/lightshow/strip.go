package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/callebjorkell/lightshow/internal/button"
	"github.com/callebjorkell/lightshow/internal/config"
	"github.com/callebjorkell/lightshow/internal/fastled"
	"github.com/callebjorkell/lightshow/internal/lightshow"
	"github.com/callebjorkell/lightshow/internal/neopixel"
	"github.com/callebjorkell/lightshow/internal/player"
	"github.com/callebjorkell/lightshow/internal/remote"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
)

type strip interface {
	lightshow.Controller
	io.Closer
}

func openStrip(cfg *config.Config) (strip, error) {
	switch cfg.Strip.Backend {
	case config.BackendFastLED:
		return fastled.Open(fastled.Options{
			LedCount:  cfg.Strip.Leds,
			Port:      cfg.Strip.Port,
			Frequency: physic.Frequency(cfg.Strip.Frequency) * physic.KiloHertz,
		}, cfg.Options()...)
	case config.BackendNeoPixel:
		return neopixel.NewController(neopixel.Options{
			LedCount:   cfg.Strip.Leds,
			Pin:        cfg.Strip.Pin,
			Brightness: cfg.Strip.Brightness,
			StripType:  cfg.Strip.Type,
		}, cfg.Options()...)
	}
	return nil, fmt.Errorf("unknown strip backend %q", cfg.Strip.Backend)
}

// withStrip opens the strip, hands it to f and releases it afterwards, which
// turns it off.
func withStrip(cfg *config.Config, f func(c lightshow.Controller) error) {
	s, err := openStrip(cfg)
	if err != nil {
		log.Fatal("Unable to open the LED strip: ", err)
	}
	h := lightshow.NewHandle(s)
	defer func() {
		if err := h.Release(); err != nil {
			log.Warn("Unable to release the LED strip: ", err)
		}
	}()

	if err := f(h); err != nil {
		log.Errorf("%v (code %#04x)", err, uint16(lightshow.Code(err)))
	}
}

func waitForSignal() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan
}

func playShow(cfg *config.Config, index int) {
	withStrip(cfg, func(c lightshow.Controller) error {
		return c.Start(index)
	})
}

func fadeTo(cfg *config.Config, d time.Duration, color string) {
	p, err := lightshow.ParseHex(color)
	if err != nil {
		log.Fatal(err)
	}
	withStrip(cfg, func(c lightshow.Controller) error {
		if err := c.Fade(d, p); err != nil {
			return err
		}
		log.Infof("Holding %v, interrupt to turn off", p)
		waitForSignal()
		return nil
	})
}

func turnOff(cfg *config.Config, d time.Duration) {
	withStrip(cfg, func(c lightshow.Controller) error {
		if d > 0 {
			return c.FadeOut(d)
		}
		return c.Stop()
	})
}

func runPlayer(cfg *config.Config) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	withStrip(cfg, func(c lightshow.Controller) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		p := player.New(c, cfg.Tick)

		if cfg.Button.Enabled {
			events, err := button.InitButton(cfg.Button.Pin)
			if err != nil {
				log.Warn("Button disabled: ", err)
			} else {
				go button.Forward(ctx, events, p)
			}
		}

		if cfg.Mqtt.URL != "" {
			client := remote.NewClient(cfg.Mqtt, func(client mqtt.Client) {
				log.Infof("Connected to %s", cfg.Mqtt.URL)
				if err := remote.Subscribe(client, cfg.Mqtt.Topic, p); err != nil {
					log.Warn(err)
				}
			})
			if err := remote.Connect(client); err != nil {
				log.Warn(err)
			} else {
				defer client.Disconnect(250)
			}
		}

		done := make(chan struct{})
		go func() {
			p.Run(ctx)
			close(done)
		}()

		<-signalChan
		log.Info("Stopping...")
		cancel()
		<-done
		return nil
	})

	log.Info("Done...")
}
