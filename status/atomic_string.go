package status

import (
	"sync/atomic"
)

// MaxStringLen caps stored strings; a session UUID fits
const MaxStringLen = 40

// AtomicString is a string readable while the session goroutine writes it
// The zero value holds ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
