package lightshow

import (
	"io"
	"sync"
	"sync/atomic"
)

// Handle is a shared reference to a Controller. Presets that drive the same
// strip each hold their own Handle; the strip is closed when the last one is
// released. Sharing a handle does not arbitrate writers.
type Handle struct {
	Controller

	refs    *int32
	release sync.Once
}

// NewHandle wraps c in the first handle of a new reference count.
func NewHandle(c Controller) *Handle {
	refs := int32(1)
	return &Handle{Controller: c, refs: &refs}
}

// Clone returns another handle to the same controller. Once the last handle
// has been released the controller is closed and Clone fails with
// NoLEDStripConnected.
func (h *Handle) Clone() (*Handle, error) {
	for {
		n := atomic.LoadInt32(h.refs)
		if n <= 0 {
			return nil, NoLEDStripConnected
		}
		if atomic.CompareAndSwapInt32(h.refs, n, n+1) {
			return &Handle{Controller: h.Controller, refs: h.refs}, nil
		}
	}
}

// Refs is the number of live handles to the controller.
func (h *Handle) Refs() int {
	return int(atomic.LoadInt32(h.refs))
}

// Release drops this handle. Releasing the last handle closes the controller
// if it implements io.Closer. Releasing the same handle twice is a no-op.
func (h *Handle) Release() error {
	var err error
	h.release.Do(func() {
		if atomic.AddInt32(h.refs, -1) != 0 {
			return
		}
		if c, ok := h.Controller.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}
