package lightshow

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Fade blocks the caller until the strip has reached target. Every iteration
// recomputes each pixel from the snapshot taken when Fade was called, so the
// result never drifts, and the loop runs as fast as the strip accepts pushes.
// After the loop the exact target is written and pushed once more. A zero
// duration skips the interpolation and only does that final push.
func (e *Engine) Fade(d time.Duration, target Pixel) error {
	if e.closed {
		return NoLEDStripConnected
	}
	target = e.mask(target)
	fadeMs := durationMillis(d)
	log.Debugf("Fading to %v over %dms", target, fadeMs)

	if fadeMs > 0 {
		copy(e.orig, e.pixels)
		start := e.clock.Millis()

		for now := start; now-start < fadeMs; now = e.clock.Millis() {
			scale := e.easing(float64(now-start) / float64(fadeMs))
			for i, from := range e.orig {
				e.set(i, lerp(from, target, scale))
			}
			if err := e.Update(); err != nil {
				return err
			}
		}
	}

	e.fill(target)
	return e.Update()
}
