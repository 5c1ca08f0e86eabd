package render

import (
	"image/color"
	"sync"
)

// Framebuffer is an in-memory monochrome display. Drawing goes to a back
// buffer; Display publishes it to the front buffer that readers see, so a
// reader never observes a half-drawn frame.
//
// The byte layout matches the SSD1306 GDDRAM: one byte per column per 8-row
// page, least significant bit at the top.
type Framebuffer struct {
	width  int16
	height int16
	back   []byte

	mu      sync.RWMutex
	front   []byte
	flushes int
}

// NewFramebuffer creates a cleared width x height framebuffer. height must be
// a multiple of 8.
func NewFramebuffer(width, height int16) *Framebuffer {
	n := int(width) * int(height) / 8
	return &Framebuffer{
		width:  width,
		height: height,
		back:   make([]byte, n),
		front:  make([]byte, n),
	}
}

// Size returns the framebuffer dimensions in pixels.
func (f *Framebuffer) Size() (x, y int16) {
	return f.width, f.height
}

// SetPixel lights the pixel for any non-black colour. Out of range writes are
// ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := int(x) + int(y/8)*int(f.width)
	bit := byte(1) << uint(y%8)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		f.back[i] |= bit
	} else {
		f.back[i] &^= bit
	}
}

// ClearBuffer clears the back buffer.
func (f *Framebuffer) ClearBuffer() {
	for i := range f.back {
		f.back[i] = 0
	}
}

// Display publishes the back buffer.
func (f *Framebuffer) Display() error {
	f.mu.Lock()
	copy(f.front, f.back)
	f.flushes++
	f.mu.Unlock()
	return nil
}

// Pixel reports whether a pixel is lit in the last published frame.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.front[int(x)+int(y/8)*int(f.width)]&(1<<uint(y%8)) != 0
}

// Frame returns a copy of the last published frame in GDDRAM layout.
func (f *Framebuffer) Frame() []byte {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]byte, len(f.front))
	copy(out, f.front)
	return out
}

// Flushes returns how many times Display has been called.
func (f *Framebuffer) Flushes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.flushes
}
