package lightshow

import "time"

// Clock is a monotonic millisecond counter. It is allowed to wrap; a fade
// survives a single wrap but not a fade that outlasts the whole counter range.
type Clock interface {
	Millis() uint32
}

type systemClock struct {
	epoch time.Time
}

// SystemClock counts milliseconds since its creation using the monotonic
// reading of the Go runtime.
func SystemClock() Clock {
	return systemClock{epoch: time.Now()}
}

func (c systemClock) Millis() uint32 {
	return uint32(time.Since(c.epoch).Milliseconds())
}

func durationMillis(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms > int64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(ms)
}
