// Package render draws the panel's frame: a cursor square and a nested border
// in the top-left corner of a monochrome display.
package render

import (
	"fmt"
	"image/color"

	"github.com/sweeney/joypanel/internal/logic"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// Display is a monochrome display with a RAM framebuffer. *ssd1306.Device
// and *Framebuffer both satisfy it.
type Display interface {
	drivers.Displayer
	ClearBuffer()
}

// Frame is everything that varies between two renders.
type Frame struct {
	Cursor logic.Point
	Border bool
}

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// Border outlines. All three share the top-left corner. The outer two follow
// the border flag; the innermost is always lit and drawn last.
const borderX, borderY = 3, 3

var borders = [...]struct {
	w, h    int16
	toggles bool
}{
	{w: 122, h: 58, toggles: true},
	{w: 121, h: 57, toggles: true},
	{w: 120, h: 56, toggles: false},
}

// Renderer runs the clear/draw/flush cycle against a Display.
type Renderer struct {
	display Display
	cursor  int16
}

// New creates a renderer drawing a cursor of g.Cursor pixels.
func New(display Display, g logic.Geometry) *Renderer {
	return &Renderer{display: display, cursor: g.Cursor}
}

// Clear blanks the framebuffer. It must precede every Present; without it the
// previous cursor stays lit.
func (r *Renderer) Clear() {
	r.display.ClearBuffer()
}

// Present draws the frame over the cleared buffer and flushes it to the
// display.
func (r *Renderer) Present(f Frame) error {
	if err := tinydraw.FilledRectangle(r.display, f.Cursor.X, f.Cursor.Y, r.cursor, r.cursor, white); err != nil {
		return fmt.Errorf("draw cursor: %w", err)
	}
	for _, b := range borders {
		c := white
		if b.toggles && !f.Border {
			c = black
		}
		if err := tinydraw.Rectangle(r.display, borderX, borderY, b.w, b.h, c); err != nil {
			return fmt.Errorf("draw border %dx%d: %w", b.w, b.h, err)
		}
	}
	if err := r.display.Display(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Render runs a full cycle: clear, draw, flush.
func (r *Renderer) Render(f Frame) error {
	r.Clear()
	return r.Present(f)
}
