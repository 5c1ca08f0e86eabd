package gpio

import (
	"sync"

	"github.com/sweeney/joypanel/internal/logic"
)

// FakeButtons is a test double whose levels are set by Press and Release.
// Press delivers a falling edge to the handler, like the real line would.
type FakeButtons struct {
	mu      sync.Mutex
	held    [2]bool
	handler func(logic.Button)

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeButtons creates FakeButtons with both buttons released.
func NewFakeButtons() *FakeButtons {
	return &FakeButtons{}
}

// Asserted reports whether the button is held.
func (f *FakeButtons) Asserted(b logic.Button) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.held[b]
}

// OnFallingEdge sets the edge handler.
func (f *FakeButtons) OnFallingEdge(fn func(logic.Button)) {
	f.mu.Lock()
	f.handler = fn
	f.mu.Unlock()
}

// Press holds the button and delivers one falling edge plus bounce extra
// edges, as a worn contact would.
func (f *FakeButtons) Press(b logic.Button, bounce int) {
	f.mu.Lock()
	f.held[b] = true
	fn := f.handler
	f.mu.Unlock()

	if fn == nil {
		return
	}
	for i := 0; i <= bounce; i++ {
		fn(b)
	}
}

// Release lets the button go. Rising edges are not armed, so no handler runs.
func (f *FakeButtons) Release(b logic.Button) {
	f.mu.Lock()
	f.held[b] = false
	f.mu.Unlock()
}

// Close marks the buttons as closed.
func (f *FakeButtons) Close() error {
	f.mu.Lock()
	f.Closed = true
	f.mu.Unlock()
	return nil
}

// FakeLED records the values written to it.
type FakeLED struct {
	mu     sync.Mutex
	on     bool
	writes []bool

	// SetError, if set, will be returned by Set.
	SetError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeLED creates a FakeLED at the initial level.
func NewFakeLED(initial bool) *FakeLED {
	return &FakeLED{on: initial}
}

// Set records the write.
func (f *FakeLED) Set(on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetError != nil {
		return f.SetError
	}
	f.on = on
	f.writes = append(f.writes, on)
	return nil
}

// On returns the current level.
func (f *FakeLED) On() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// Writes returns every value written so far.
func (f *FakeLED) Writes() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.writes...)
}

// Close marks the LED as closed.
func (f *FakeLED) Close() error {
	f.mu.Lock()
	f.Closed = true
	f.mu.Unlock()
	return nil
}
