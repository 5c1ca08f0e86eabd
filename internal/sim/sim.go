// Package sim runs the panel on a desktop: the control loop drives fakes for
// every peripheral and an ebiten window plays the board.
package sim

import (
	"context"
	"time"

	"github.com/sweeney/joypanel/internal/analog"
	"github.com/sweeney/joypanel/internal/gpio"
	"github.com/sweeney/joypanel/internal/logic"
	"github.com/sweeney/joypanel/internal/panel"
	"github.com/sweeney/joypanel/internal/pwm"
	"github.com/sweeney/joypanel/internal/render"
	"github.com/sweeney/joypanel/internal/status"
)

// ADC channels of the simulated joystick, wired like the board.
const (
	channelV = 0
	channelH = 1
)

// Config holds the simulator settings.
type Config struct {
	Delay     time.Duration
	Heartbeat time.Duration
	Bounce    int         // extra edges per key press
	Clock     logic.Clock // ms since start for the edge handler; nil uses the wall clock
}

// Sim is a complete virtual board.
type Sim struct {
	cfg Config

	State   *logic.State
	Buttons *gpio.FakeButtons
	Green   *gpio.FakeLED
	ADC     *analog.FakeConverter
	Red     *pwm.FakeChannel
	Blue    *pwm.FakeChannel
	Panel   *render.Framebuffer
	Tracker *status.Tracker

	geometry logic.Geometry
	ctrl     *panel.Controller
}

// New assembles a board with the joystick centred and the default flags.
func New(cfg Config) *Sim {
	start := time.Now()
	g := logic.DefaultGeometry
	state := logic.NewState()

	s := &Sim{
		cfg:      cfg,
		State:    state,
		Buttons:  gpio.NewFakeButtons(),
		Green:    gpio.NewFakeLED(state.GreenLED()),
		ADC:      analog.NewFakeConverter(),
		Red:      pwm.NewFakeChannel(),
		Blue:     pwm.NewFakeChannel(),
		Panel:    render.NewFramebuffer(g.Width, g.Height),
		geometry: g,
		Tracker: status.NewTracker(start, status.Config{
			DebounceMs:  logic.DebounceWindow.Milliseconds(),
			DelayUs:     cfg.Delay.Microseconds(),
			HeartbeatMs: cfg.Heartbeat.Milliseconds(),
			Target:      "sim",
		}),
	}
	s.CenterJoystick()

	millis := cfg.Clock
	if millis == nil {
		millis = func() uint32 { return uint32(time.Since(start).Milliseconds()) }
	}
	detector := logic.NewEdgeDetector(state, s.Buttons, s.Green, millis)
	s.Buttons.OnFallingEdge(func(b logic.Button) { detector.OnFallingEdge(b) })

	s.ctrl = panel.New(state, analog.NewSampler(s.ADC, channelH, channelV), render.New(s.Panel, g), s.Red, s.Blue,
		panel.Config{
			Geometry:  g,
			Delay:     cfg.Delay,
			Heartbeat: cfg.Heartbeat,
			Tracker:   s.Tracker,
		})
	return s
}

// Run runs the control loop until ctx is cancelled.
func (s *Sim) Run(ctx context.Context) error {
	return s.ctrl.Run(ctx)
}

// Step runs one loop iteration.
func (s *Sim) Step() error {
	return s.ctrl.Step()
}

// SetJoystick sets both axis readings.
func (s *Sim) SetJoystick(h, v uint16) {
	s.ADC.Set(channelH, h)
	s.ADC.Set(channelV, v)
}

// CenterJoystick returns the stick to rest.
func (s *Sim) CenterJoystick() {
	s.SetJoystick(logic.HalfScale, logic.HalfScale)
}

// PointJoystick deflects the stick so the cursor lands as near (x, y) on the
// panel as the mapping allows. Points off the panel pin to the edge.
func (s *Sim) PointJoystick(x, y int) {
	spanX := int(s.geometry.Width - s.geometry.Cursor)
	spanY := int(s.geometry.Height - s.geometry.Cursor)
	s.SetJoystick(axis(x, spanX), axis(spanY-y, spanY))
}

// axis inverts the cursor mapping for one axis, rounding up so truncation
// in the mapper gives back pos.
func axis(pos, span int) uint16 {
	if pos <= 0 {
		return 0
	}
	if pos >= span {
		return logic.FullScale
	}
	return uint16((pos*logic.FullScale + span - 1) / span)
}

// Press holds a button, delivering the configured bounce.
func (s *Sim) Press(b logic.Button) {
	s.Buttons.Press(b, s.cfg.Bounce)
}

// Release lets a button go.
func (s *Sim) Release(b logic.Button) {
	s.Buttons.Release(b)
}

// LEDs returns the RGB LED as 8-bit brightness per colour.
func (s *Sim) LEDs() (r, g, b uint8) {
	if s.Green.On() {
		g = 0xff
	}
	return brightness(s.Red.Last()), g, brightness(s.Blue.Last())
}

func brightness(duty uint32) uint8 {
	return uint8(duty * 0xff / logic.PWMPeriod)
}
