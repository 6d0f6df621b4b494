package lightshow

import "github.com/lucasb-eyer/go-colorful"

// Preset is an animation driven by the host loop. Start is called once, Loop
// once per host tick. Presets count ticks rather than wall clock time, so the
// caller's loop cadence decides the real speed.
type Preset interface {
	Start() error
	Loop() error
}

// SolidColor shows one colour and then does nothing.
type SolidColor struct {
	controller Controller
	color      Pixel
}

func NewSolidColor(c Controller, color Pixel) *SolidColor {
	return &SolidColor{controller: c, color: color}
}

func (s *SolidColor) Start() error {
	if err := s.controller.SetLEDs(s.color); err != nil {
		return err
	}
	return s.controller.Update()
}

func (s *SolidColor) Loop() error {
	return nil
}

// FlashColor toggles the strip between black and a colour every interval
// ticks.
type FlashColor struct {
	controller Controller
	color      Pixel
	interval   uint32

	loopCount uint32
	showing   bool
}

func NewFlashColor(c Controller, color Pixel, interval uint32) *FlashColor {
	return &FlashColor{controller: c, color: color, interval: interval}
}

func (f *FlashColor) Start() error {
	return nil
}

func (f *FlashColor) Loop() error {
	f.loopCount++
	if f.loopCount < f.interval {
		return nil
	}
	f.loopCount = 0

	next := f.color
	if f.showing {
		next = Black
	}
	if err := f.controller.SetLEDs(next); err != nil {
		return err
	}
	f.showing = !f.showing
	return f.controller.Update()
}

// Showing reports whether the colour is currently lit.
func (f *FlashColor) Showing() bool {
	return f.showing
}

// PulseColor ramps the brightness of a colour up and down in a triangle wave
// of steps steps, taking one step every interval ticks.
type PulseColor struct {
	controller Controller
	color      Pixel
	interval   uint32
	steps      uint32

	loopCount  uint32
	stepsTaken uint32
	advancing  bool
}

// NewPulseColor creates a pulse. A steps value of 0 is treated as 1.
func NewPulseColor(c Controller, color Pixel, interval, steps uint32) *PulseColor {
	if steps == 0 {
		steps = 1
	}
	return &PulseColor{
		controller: c,
		color:      color,
		interval:   interval,
		steps:      steps,
		advancing:  true,
	}
}

func (p *PulseColor) Start() error {
	return nil
}

func (p *PulseColor) Loop() error {
	p.loopCount++
	if p.loopCount < p.interval {
		return nil
	}
	p.loopCount = 0

	// switch direction at the ends, before the colour is computed
	if p.stepsTaken >= p.steps {
		p.advancing = false
	} else if p.stepsTaken == 0 {
		p.advancing = true
	}

	c := p.color.Scaled(float64(p.stepsTaken) / float64(p.steps))
	if err := p.controller.SetLEDs(c); err != nil {
		return err
	}
	if err := p.controller.Update(); err != nil {
		return err
	}

	if p.advancing {
		p.stepsTaken++
	} else {
		p.stepsTaken--
	}
	return nil
}

func (p *PulseColor) StepsTaken() uint32 {
	return p.stepsTaken
}

func (p *PulseColor) Advancing() bool {
	return p.advancing
}

// RainbowColor walks the whole strip around the hue wheel, one degree every
// interval ticks.
type RainbowColor struct {
	controller Controller
	interval   uint32

	loopCount uint32
	hue       uint32
}

func NewRainbowColor(c Controller, interval uint32) *RainbowColor {
	return &RainbowColor{controller: c, interval: interval}
}

func (r *RainbowColor) Start() error {
	return nil
}

func (r *RainbowColor) Loop() error {
	r.loopCount++
	if r.loopCount < r.interval {
		return nil
	}
	r.loopCount = 0

	red, green, blue := colorful.Hsv(float64(r.hue), 1, 1).RGB255()
	if err := r.controller.SetLEDs(RGB(red, green, blue)); err != nil {
		return err
	}
	r.hue = (r.hue + 1) % 360
	return r.controller.Update()
}

// Hue is the hue in degrees the next triggered tick will show.
func (r *RainbowColor) Hue() uint32 {
	return r.hue
}
