package status

import "sync/atomic"

// maxStringLen bounds stored strings so overlay lines stay short
const maxStringLen = 20

// AtomicString holds a short string; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to maxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > maxStringLen {
		val = val[:maxStringLen]
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
