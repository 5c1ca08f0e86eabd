package pwm

import "sync"

// FakeChannel records every duty written to it.
type FakeChannel struct {
	mu     sync.Mutex
	duties []uint32

	// SetError, if set, will be returned by Set.
	SetError error
}

// NewFakeChannel creates a FakeChannel for testing.
func NewFakeChannel() *FakeChannel {
	return &FakeChannel{}
}

// Set records the duty, clamped like hardware would.
func (f *FakeChannel) Set(duty uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetError != nil {
		return f.SetError
	}
	f.duties = append(f.duties, clampDuty(duty))
	return nil
}

// Last returns the most recent duty, or 0 if none was written.
func (f *FakeChannel) Last() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.duties) == 0 {
		return 0
	}
	return f.duties[len(f.duties)-1]
}

// Duties returns every duty written so far.
func (f *FakeChannel) Duties() []uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uint32(nil), f.duties...)
}
