//go:build !tinygo && cgo

package sim

import (
	"context"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sweeney/joypanel/internal/logic"
)

// Keys standing in for the two buttons.
const (
	keyJoystick = ebiten.KeyJ
	keyAction   = ebiten.KeyA
)

// RunWindow opens the simulator window and runs the control loop behind it.
// It blocks until the window closes.
func RunWindow(s *Sim, scale int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	ebiten.SetWindowTitle("joypanel")
	ebiten.SetWindowSize(ScreenWidth*scale, ScreenHeight*scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(&game{sim: s})

	cancel()
	if loopErr := <-done; err == nil {
		err = loopErr
	}
	return err
}

type game struct {
	sim      *Sim
	img      *image.RGBA
	screen   *ebiten.Image
	dragging bool
}

func (g *game) Update() error {
	g.updateButton(keyJoystick, logic.JoystickButton)
	g.updateButton(keyAction, logic.ActionButton)

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && y < PanelHeight {
		g.dragging = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		g.sim.PointJoystick(x, y)
	} else {
		g.sim.CenterJoystick()
	}
	return nil
}

func (g *game) updateButton(key ebiten.Key, b logic.Button) {
	if inpututil.IsKeyJustPressed(key) {
		g.sim.Press(b)
	}
	if inpututil.IsKeyJustReleased(key) {
		g.sim.Release(b)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
		g.screen = ebiten.NewImage(ScreenWidth, ScreenHeight)
	}
	g.sim.Paint(g.img)
	g.screen.WritePixels(g.img.Pix)
	screen.DrawImage(g.screen, nil)

	r, gr, b := g.sim.LEDs()
	cx, cy := float32(ScreenWidth-12), float32(PanelHeight+StripHeight/2)
	vector.StrokeCircle(screen, cx, cy, 8, 1, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, true)
	vector.DrawFilledCircle(screen, cx, cy, 7, color.RGBA{R: r, G: gr, B: b, A: 0xff}, true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
