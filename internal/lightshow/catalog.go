package lightshow

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultStepDuration = 1000 * time.Millisecond

// Step is one blocking fade of a show.
type Step struct {
	Duration time.Duration
	Color    Pixel
}

// Show is a named sequence of fades played to completion by Start. A show
// without steps is undefined.
type Show struct {
	Name  string
	Steps []Step
}

// Catalog is the indexed table of shows a controller can Start.
type Catalog []Show

// DefaultCatalog is the built-in set of five shows.
func DefaultCatalog() Catalog {
	step := func(c Pixel) Step {
		return Step{Duration: defaultStepDuration, Color: c}
	}
	white := RGB(0xff, 0xff, 0xff)
	red := RGB(0xff, 0x00, 0x00)
	green := RGB(0x00, 0xff, 0x00)
	blue := RGB(0x00, 0x00, 0xff)

	return Catalog{
		{Name: "white", Steps: []Step{step(white)}},
		{Name: "red", Steps: []Step{step(red)}},
		{Name: "green", Steps: []Step{step(green)}},
		{Name: "blue", Steps: []Step{step(blue)}},
		{Name: "rgb", Steps: []Step{step(red), step(green), step(blue), step(Black)}},
	}
}

// lookup resolves a show index. The range check admits len(c) itself, which
// then resolves to ShowUndefined like any other entry without steps.
func (c Catalog) lookup(i int) (Show, error) {
	if i < 0 || i > len(c) {
		return Show{}, ShowIndexOutOfRange
	}
	if i == len(c) || len(c[i].Steps) == 0 {
		return Show{}, ShowUndefined
	}
	return c[i], nil
}

func (e *Engine) Start(show int) error {
	if e.closed {
		return NoLEDStripConnected
	}
	s, err := e.shows.lookup(show)
	if err != nil {
		return err
	}

	log.Infof("Starting show %d (%s)", show, s.Name)
	for _, step := range s.Steps {
		if err := e.Fade(step.Duration, step.Color); err != nil {
			return err
		}
	}
	log.Debugf("Show %d done...", show)
	return nil
}

// Shows returns a copy of the catalog the engine plays from.
func (e *Engine) Shows() Catalog {
	out := make(Catalog, len(e.shows))
	copy(out, e.shows)
	return out
}
