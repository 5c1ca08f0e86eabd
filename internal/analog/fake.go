package analog

import (
	"errors"
	"sync"
)

// FakeConverter returns per-channel values that can be changed at any time.
type FakeConverter struct {
	mu       sync.Mutex
	values   map[int]uint16
	selected int
	selects  []int

	// ReadError, if set, will be returned by Read.
	ReadError error
}

// NewFakeConverter creates a FakeConverter with every channel reading 0.
func NewFakeConverter() *FakeConverter {
	return &FakeConverter{values: make(map[int]uint16), selected: -1}
}

// Set changes the value a channel reads.
func (f *FakeConverter) Set(channel int, v uint16) {
	f.mu.Lock()
	f.values[channel] = v
	f.mu.Unlock()
}

// Select records the selected channel.
func (f *FakeConverter) Select(channel int) error {
	f.mu.Lock()
	f.selected = channel
	f.selects = append(f.selects, channel)
	f.mu.Unlock()
	return nil
}

// Read returns the selected channel's value.
func (f *FakeConverter) Read() (uint16, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReadError != nil {
		return 0, f.ReadError
	}
	if f.selected < 0 {
		return 0, errors.New("no channel selected")
	}
	return f.values[f.selected], nil
}

// Selects returns the channels selected so far, in order.
func (f *FakeConverter) Selects() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.selects...)
}
