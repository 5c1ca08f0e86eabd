package sim

import (
	"fmt"
	"image"
	"image/color"

	"github.com/sweeney/joypanel/internal/status"

	"tinygo.org/x/tinyfont"
)

// Screen layout in logical pixels: the panel on top, the status strip below.
const (
	ScreenWidth  = 128
	PanelHeight  = 64
	StripHeight  = 30
	ScreenHeight = PanelHeight + StripHeight
)

var (
	panelOn  = color.RGBA{R: 0x9c, G: 0xdc, B: 0xfe, A: 0xff}
	panelOff = color.RGBA{R: 0x08, G: 0x0c, B: 0x18, A: 0xff}
	stripBG  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	textFG   = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
)

// canvas is a drivers.Displayer over an RGBA image, for tinyfont.
type canvas struct {
	img *image.RGBA
}

func (c canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

func (c canvas) Display() error { return nil }

// Paint draws the flushed panel contents and the status strip into dst,
// which must be ScreenWidth x ScreenHeight.
func (s *Sim) Paint(dst *image.RGBA) {
	for y := 0; y < PanelHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			c := panelOff
			if s.Panel.Pixel(int16(x), int16(y)) {
				c = panelOn
			}
			dst.SetRGBA(x, y, c)
		}
	}
	for y := PanelHeight; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			dst.SetRGBA(x, y, stripBG)
		}
	}

	c := canvas{img: dst}
	for i, line := range StatusLines(s.Tracker.Snapshot()) {
		tinyfont.WriteLine(c, &tinyfont.TomThumb, 2, int16(PanelHeight+7+i*7), line, textFG)
	}
}

// StatusLines formats a snapshot for the status strip.
func StatusLines(snap status.Snapshot) []string {
	f := snap.Flags
	return []string{
		fmt.Sprintf("G:%s R:%s B:%s BRD:%s",
			status.OnOff(f.GreenLED), status.OnOff(f.RedPWM), status.OnOff(f.BluePWM), status.OnOff(f.Border)),
		fmt.Sprintf("H:%d V:%d X:%d Y:%d", snap.Sample.H, snap.Sample.V, snap.Cursor.X, snap.Cursor.Y),
		fmt.Sprintf("PWM %d/%d J:%d A:%d", snap.RedDuty, snap.BlueDuty, snap.Presses.Joystick, snap.Presses.Action),
		fmt.Sprintf("IT:%d UP:%ds", snap.Iterations, int(snap.Uptime().Seconds())),
	}
}
