// Package panel runs the main control loop: sample the joystick, redraw the
// display, and set the LED duties from the shared toggles.
package panel

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sweeney/joypanel/internal/logic"
	"github.com/sweeney/joypanel/internal/render"
	"github.com/sweeney/joypanel/internal/status"
)

// Sampler reads one joystick sample.
type Sampler interface {
	Sample() (logic.Sample, error)
}

// Renderer runs the render cycle, split so the buffer is cleared before the
// joystick is sampled.
type Renderer interface {
	Clear()
	Present(f render.Frame) error
}

// DutyWriter is one PWM output.
type DutyWriter interface {
	Set(duty uint32) error
}

// Config holds the loop's tunables.
type Config struct {
	Geometry  logic.Geometry
	Delay     time.Duration // pause at the end of every iteration
	Heartbeat time.Duration // heartbeat log interval, 0 disables
	Tracker   *status.Tracker
}

// Controller owns the main loop. Step and Run must be called from a single
// goroutine; the only state shared with the edge handler is the logic.State.
type Controller struct {
	state    *logic.State
	sampler  Sampler
	renderer Renderer
	red      DutyWriter
	blue     DutyWriter
	cfg      Config

	sleep func(time.Duration)
	now   func() time.Time
	errs  errorLog
}

// New creates a Controller.
func New(state *logic.State, sampler Sampler, renderer Renderer, red, blue DutyWriter, cfg Config) *Controller {
	if cfg.Geometry == (logic.Geometry{}) {
		cfg.Geometry = logic.DefaultGeometry
	}
	return &Controller{
		state:    state,
		sampler:  sampler,
		renderer: renderer,
		red:      red,
		blue:     blue,
		cfg:      cfg,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Step runs one iteration: clear, sample, map, render, compute and write
// duties. Each flag is loaded once, at the point it is used. An error ends
// the iteration early; the next Step starts from scratch.
func (c *Controller) Step() error {
	c.renderer.Clear()

	sample, err := c.sampler.Sample()
	if err != nil {
		return fmt.Errorf("sample joystick: %w", err)
	}
	cursor := c.cfg.Geometry.Position(sample)

	border := c.state.Border()
	if err := c.renderer.Present(render.Frame{Cursor: cursor, Border: border}); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	redOn := c.state.RedPWM()
	blueOn := c.state.BluePWM()
	red, blue := logic.Duties(sample, logic.Flags{RedPWM: redOn, BluePWM: blueOn})
	if err := c.red.Set(red); err != nil {
		return fmt.Errorf("set red duty: %w", err)
	}
	if err := c.blue.Set(blue); err != nil {
		return fmt.Errorf("set blue duty: %w", err)
	}

	if c.cfg.Tracker != nil {
		c.cfg.Tracker.Update(status.Reading{
			Flags: logic.Flags{
				GreenLED: c.state.GreenLED(),
				RedPWM:   redOn,
				BluePWM:  blueOn,
				Border:   border,
			},
			Sample:   sample,
			Cursor:   cursor,
			RedDuty:  red,
			BlueDuty: blue,
			Presses:  c.state.Presses(),
		})
	}
	return nil
}

// Run repeats Step until ctx is cancelled, then turns both PWM outputs off.
// Errors do not stop the loop; each distinct error is logged once until an
// iteration succeeds again.
func (c *Controller) Run(ctx context.Context) error {
	defer c.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := c.Step(); err != nil {
			c.errs.report(err)
		} else {
			c.errs.clear()
		}
		c.checkHeartbeat()
		c.sleep(c.cfg.Delay)
	}
}

func (c *Controller) checkHeartbeat() {
	if c.cfg.Tracker == nil || c.cfg.Heartbeat <= 0 {
		return
	}
	snap, ok := c.cfg.Tracker.CheckHeartbeat(c.now(), c.cfg.Heartbeat)
	if !ok {
		return
	}
	log.Printf("heartbeat: uptime=%v iterations=%d joystick=%d action=%d green=%s red=%s blue=%s border=%s",
		snap.Uptime().Truncate(time.Second), snap.Iterations, snap.Presses.Joystick, snap.Presses.Action,
		status.OnOff(snap.Flags.GreenLED), status.OnOff(snap.Flags.RedPWM),
		status.OnOff(snap.Flags.BluePWM), status.OnOff(snap.Flags.Border))
}

func (c *Controller) stop() {
	if err := c.red.Set(0); err != nil {
		log.Printf("turn off red: %v", err)
	}
	if err := c.blue.Set(0); err != nil {
		log.Printf("turn off blue: %v", err)
	}
}

// errorLog suppresses repeats of the same loop error.
type errorLog struct {
	last string
}

func (e *errorLog) report(err error) {
	msg := err.Error()
	if msg == e.last {
		return
	}
	e.last = msg
	log.Printf("loop error: %v", err)
}

func (e *errorLog) clear() {
	if e.last == "" {
		return
	}
	e.last = ""
	log.Printf("loop recovered")
}
