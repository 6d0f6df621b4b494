package lightshow

import (
	"fmt"
	"time"

	"github.com/fogleman/ease"
	log "github.com/sirupsen/logrus"
)

// Controller drives one physical LED strip. Every method returns nil on
// success or an Error (possibly wrapped) on failure.
//
// A Controller is not safe for concurrent use. Several presets may hold the
// same Controller, but only one of them may drive it at a time; callers
// coordinate that themselves.
type Controller interface {
	// SetLED stages the colour of one LED without pushing it to the strip.
	SetLED(i int, p Pixel) error
	// SetLEDs stages every LED to the same colour without pushing.
	SetLEDs(p Pixel) error
	// Update pushes the staged colours to the strip.
	Update() error
	// Fade blocks while every LED moves linearly from its current colour to
	// p over d, and returns once p has been pushed exactly.
	Fade(d time.Duration, p Pixel) error
	// Stop blacks the strip out immediately.
	Stop() error
	// FadeOut fades the strip to black over d.
	FadeOut(d time.Duration) error
	// Start plays one show of the catalog to completion.
	Start(show int) error
	// PresetCount is the number of shows in the catalog.
	PresetCount() int
}

// Pusher is the hardware half of a controller: it sends a full buffer to the
// strip and returns once the transmission has been triggered. The slice is
// owned by the caller and must not be kept after Push returns.
type Pusher interface {
	Push(pixels []Pixel) error
}

// Option configures an Engine.
type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

func WithCatalog(c Catalog) Option {
	return func(e *Engine) {
		e.shows = c
	}
}

// WithEasing shapes the time axis of every fade. Colours are still
// interpolated linearly per channel. nil restores the linear default.
func WithEasing(f func(float64) float64) Option {
	return func(e *Engine) {
		e.easing = f
	}
}

// noCopy makes go vet complain about copies of the value it is embedded in.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Engine implements Controller on top of a Pusher. It owns the pixel buffer
// of one strip; backends embed it and only provide the push primitive.
type Engine struct {
	noCopy noCopy

	layout Layout
	pixels []Pixel
	orig   []Pixel
	push   Pusher
	clock  Clock
	shows  Catalog
	easing func(float64) float64
	closed bool
}

// NewEngine creates an Engine for a strip of n LEDs. The buffer length never
// changes afterwards.
func NewEngine(n int, layout Layout, p Pusher, opts ...Option) *Engine {
	if n < 0 {
		n = 0
	}
	e := &Engine{
		layout: layout,
		pixels: make([]Pixel, n),
		orig:   make([]Pixel, n),
		push:   p,
		clock:  SystemClock(),
		shows:  DefaultCatalog(),
		easing: ease.Linear,
	}
	for _, o := range opts {
		o(e)
	}
	if e.easing == nil {
		e.easing = ease.Linear
	}
	if e.clock == nil {
		e.clock = SystemClock()
	}
	log.Debugf("Created %v engine with %d LEDs and %d shows", layout, n, len(e.shows))
	return e
}

func (e *Engine) Len() int {
	return len(e.pixels)
}

func (e *Engine) Layout() Layout {
	return e.layout
}

// Pixels returns a copy of the staged buffer.
func (e *Engine) Pixels() []Pixel {
	out := make([]Pixel, len(e.pixels))
	copy(out, e.pixels)
	return out
}

func (e *Engine) mask(p Pixel) Pixel {
	if e.layout != LayoutRGBW {
		p.W = 0
	}
	return p
}

func (e *Engine) SetLED(i int, p Pixel) error {
	if e.closed {
		return NoLEDStripConnected
	}
	if i < 0 || i >= len(e.pixels) {
		return LEDIndexOutOfRange
	}
	e.set(i, p)
	return nil
}

// set writes pixel i without the open and bounds checks of SetLED.
func (e *Engine) set(i int, p Pixel) {
	e.pixels[i] = e.mask(p)
}

func (e *Engine) SetLEDs(p Pixel) error {
	if e.closed {
		return NoLEDStripConnected
	}
	e.fill(e.mask(p))
	return nil
}

func (e *Engine) fill(p Pixel) {
	for i := range e.pixels {
		e.pixels[i] = p
	}
}

func (e *Engine) Update() error {
	if e.closed {
		return NoLEDStripConnected
	}
	if err := e.push.Push(e.pixels); err != nil {
		log.Warn("Unable to push to the LED strip: ", err)
		return fmt.Errorf("%w: %v", NoLEDStripConnected, err)
	}
	return nil
}

func (e *Engine) Stop() error {
	return e.Fade(0, Black)
}

func (e *Engine) FadeOut(d time.Duration) error {
	return e.Fade(d, Black)
}

func (e *Engine) PresetCount() int {
	return len(e.shows)
}

// Close blacks the strip out and detaches the engine from it. Every later
// call returns NoLEDStripConnected. Close is idempotent.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	err := e.Stop()
	e.closed = true
	return err
}
