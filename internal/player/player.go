// Package player owns a Controller and feeds it commands from any number of
// sources (CLI, MQTT, the push button) through a single goroutine.
package player

import (
	"context"
	"time"

	"github.com/callebjorkell/lightshow/internal/lightshow"
	log "github.com/sirupsen/logrus"
)

const (
	queueSize   = 10
	defaultTick = 10 * time.Millisecond
)

// Sender is anything that accepts commands for a player.
type Sender interface {
	Send(cmd Command) bool
}

type Player struct {
	controller lightshow.Controller
	tick       time.Duration
	commands   chan Command

	preset  lightshow.Preset
	current int
}

// New creates a player for c that ticks the active preset every tick. A tick
// that is not positive falls back to 10ms.
func New(c lightshow.Controller, tick time.Duration) *Player {
	if tick <= 0 {
		tick = defaultTick
	}
	return &Player{
		controller: c,
		tick:       tick,
		commands:   make(chan Command, queueSize),
		current:    -1,
	}
}

// Send queues a command without blocking. It returns false if the queue is
// full and the command was dropped.
func (p *Player) Send(cmd Command) bool {
	select {
	case p.commands <- cmd:
		return true
	default:
		log.Warnf("Command queue full, dropping %q", cmd)
		return false
	}
}

// Run applies queued commands in order and ticks the active preset until ctx
// is cancelled. A fade or show blocks the loop until it has finished.
func (p *Player) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	log.Infof("Player running with a %v tick", p.tick)
	for {
		select {
		case <-ctx.Done():
			log.Debugln("Player stopped")
			return
		case cmd := <-p.commands:
			if err := p.apply(cmd); err != nil {
				log.Warnf("Command %q failed: %v", cmd, err)
			}
		case <-ticker.C:
			if p.preset == nil {
				continue
			}
			if err := p.preset.Loop(); err != nil {
				log.Warnf("Preset stopped: %v", err)
				p.preset = nil
			}
		}
	}
}

func (p *Player) apply(cmd Command) error {
	log.Debugf("Applying %q", cmd)

	switch cmd.Kind {
	case KindStart:
		p.preset = nil
		return p.startShow(cmd.Show)
	case KindNext:
		p.preset = nil
		n := p.controller.PresetCount()
		if n == 0 {
			return lightshow.ShowUndefined
		}
		return p.startShow((p.current + 1) % n)
	case KindFade:
		p.preset = nil
		return p.controller.Fade(cmd.Duration, cmd.Color)
	case KindStop:
		p.preset = nil
		if cmd.Duration > 0 {
			return p.controller.FadeOut(cmd.Duration)
		}
		return p.controller.Stop()
	case KindSolid:
		return p.run(lightshow.NewSolidColor(p.controller, cmd.Color))
	case KindFlash:
		return p.run(lightshow.NewFlashColor(p.controller, cmd.Color, cmd.Interval))
	case KindPulse:
		return p.run(lightshow.NewPulseColor(p.controller, cmd.Color, cmd.Interval, cmd.Steps))
	case KindRainbow:
		return p.run(lightshow.NewRainbowColor(p.controller, cmd.Interval))
	}
	return nil
}

// startShow plays show i and remembers it for next. A show that fails is not
// remembered.
func (p *Player) startShow(i int) error {
	if err := p.controller.Start(i); err != nil {
		return err
	}
	p.current = i
	return nil
}

func (p *Player) run(preset lightshow.Preset) error {
	p.preset = nil
	if err := preset.Start(); err != nil {
		return err
	}
	p.preset = preset
	return nil
}
