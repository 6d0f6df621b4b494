package lightshow

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// MockStrip is a Pusher that records every frame it is given.
type MockStrip struct {
	Frames [][]Pixel
	// Fail makes every Push return an error.
	Fail bool
}

func (m *MockStrip) Push(pixels []Pixel) error {
	if m.Fail {
		return errors.New("mock strip unplugged")
	}
	frame := make([]Pixel, len(pixels))
	copy(frame, pixels)
	m.Frames = append(m.Frames, frame)
	log.Tracef("mock strip: pushed frame %d", len(m.Frames))
	return nil
}

// Pushes is the number of frames pushed so far.
func (m *MockStrip) Pushes() int {
	return len(m.Frames)
}

// Last is the most recent frame, or nil.
func (m *MockStrip) Last() []Pixel {
	if len(m.Frames) == 0 {
		return nil
	}
	return m.Frames[len(m.Frames)-1]
}

// StepClock is a Clock that moves forward by Step milliseconds every time it
// is read, which lets a blocking fade finish in a known number of iterations.
type StepClock struct {
	Now  uint32
	Step uint32
}

func (c *StepClock) Millis() uint32 {
	now := c.Now
	c.Now += c.Step
	return now
}
