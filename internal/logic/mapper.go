package logic

// Geometry describes the display and the cursor drawn on it.
type Geometry struct {
	Width  int16
	Height int16
	Cursor int16 // side of the square cursor
}

// DefaultGeometry is the 128x64 panel with an 8 pixel cursor.
var DefaultGeometry = Geometry{Width: 128, Height: 64, Cursor: 8}

// Position maps a sample to the cursor's top-left corner. The vertical axis is
// inverted so pushing the stick up moves the cursor towards the top edge.
// Division truncates.
func (g Geometry) Position(s Sample) Point {
	spanX := int32(g.Width - g.Cursor)
	spanY := int32(g.Height - g.Cursor)
	return Point{
		X: int16(int32(s.H) * spanX / FullScale),
		Y: int16(spanY - int32(s.V)*spanY/FullScale),
	}
}

// Duty maps one axis reading to a PWM duty. The result is the distance from
// centre, so both directions brighten the LED equally. Deflection inside the
// dead zone, or a disabled LED, gives 0.
func Duty(raw uint16, enabled bool) uint32 {
	if !enabled {
		return 0
	}
	d := int32(raw) - HalfScale
	if d < 0 {
		d = -d
	}
	if d <= DeadZone {
		return 0
	}
	return uint32(d)
}

// Duties returns the red (horizontal) and blue (vertical) duties for a sample.
func Duties(s Sample, f Flags) (red, blue uint32) {
	return Duty(s.H, f.RedPWM), Duty(s.V, f.BluePWM)
}
