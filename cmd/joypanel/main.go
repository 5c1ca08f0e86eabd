// Command joypanel runs the joystick panel on a Linux board: buttons and the
// green LED on the GPIO character device, the joystick on an IIO ADC, the red
// and blue LEDs on sysfs PWM and the SSD1306 on an I2C bus.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/joypanel/internal/analog"
	"github.com/sweeney/joypanel/internal/display"
	"github.com/sweeney/joypanel/internal/gpio"
	"github.com/sweeney/joypanel/internal/logic"
	"github.com/sweeney/joypanel/internal/panel"
	"github.com/sweeney/joypanel/internal/pwm"
	"github.com/sweeney/joypanel/internal/render"
	"github.com/sweeney/joypanel/internal/status"
)

type config struct {
	chip        string
	pinJoystick int
	pinAction   int
	pinGreen    int
	i2cBus      int
	i2cAddr     uint
	iio         string
	adcBits     int
	adcH        int
	adcV        int
	pwmChip     string
	pwmRed      int
	pwmBlue     int
	delay       time.Duration
	heartbeat   time.Duration
	printState  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.chip, "chip", "gpiochip0", "GPIO chip name")
	flag.IntVar(&cfg.pinJoystick, "pin-joystick", gpio.DefaultPinJoystick, "GPIO line of the joystick button")
	flag.IntVar(&cfg.pinAction, "pin-action", gpio.DefaultPinAction, "GPIO line of the action button")
	flag.IntVar(&cfg.pinGreen, "pin-green", gpio.DefaultPinGreen, "GPIO line of the green LED")
	flag.IntVar(&cfg.i2cBus, "i2c-bus", 1, "I2C bus number of the display")
	flag.UintVar(&cfg.i2cAddr, "i2c-addr", display.DefaultAddress, "I2C address of the display")
	flag.StringVar(&cfg.iio, "iio", analog.DefaultIIODevice, "IIO device directory of the joystick ADC")
	flag.IntVar(&cfg.adcBits, "adc-bits", 12, "ADC resolution in bits")
	flag.IntVar(&cfg.adcH, "adc-h", 1, "ADC channel of the horizontal axis")
	flag.IntVar(&cfg.adcV, "adc-v", 0, "ADC channel of the vertical axis")
	flag.StringVar(&cfg.pwmChip, "pwm-chip", pwm.DefaultChip, "sysfs PWM chip directory")
	flag.IntVar(&cfg.pwmRed, "pwm-red", 0, "PWM channel of the red LED")
	flag.IntVar(&cfg.pwmBlue, "pwm-blue", 1, "PWM channel of the blue LED")
	flag.DurationVar(&cfg.delay, "delay", 10*time.Microsecond, "Pause at the end of each loop iteration")
	flag.DurationVar(&cfg.heartbeat, "heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	flag.BoolVar(&cfg.printState, "print-state", false, "Print button levels and one joystick reading, then exit")

	flag.Parse()

	if err := cfg.validate(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func (c config) validate() error {
	var errs []error
	if c.pinJoystick == c.pinAction {
		errs = append(errs, fmt.Errorf("joystick and action buttons share line %d", c.pinJoystick))
	}
	if c.pinGreen == c.pinJoystick || c.pinGreen == c.pinAction {
		errs = append(errs, fmt.Errorf("green LED line %d is a button line", c.pinGreen))
	}
	if c.i2cAddr > 0x7f {
		errs = append(errs, fmt.Errorf("i2c address %#x is not a 7-bit address", c.i2cAddr))
	}
	if c.adcH == c.adcV {
		errs = append(errs, fmt.Errorf("both axes on ADC channel %d", c.adcH))
	}
	if c.pwmRed == c.pwmBlue {
		errs = append(errs, fmt.Errorf("red and blue share PWM channel %d", c.pwmRed))
	}
	if c.delay < 0 {
		errs = append(errs, fmt.Errorf("delay %v is negative", c.delay))
	}
	if c.heartbeat < 0 {
		errs = append(errs, fmt.Errorf("heartbeat %v is negative", c.heartbeat))
	}
	return errors.Join(errs...)
}

func run(cfg config) error {
	state := logic.NewState()
	g := logic.DefaultGeometry

	buttons, err := gpio.NewRealButtons(cfg.chip, cfg.pinJoystick, cfg.pinAction)
	if err != nil {
		return fmt.Errorf("init buttons: %w", err)
	}
	defer buttons.Close()

	green, err := gpio.NewRealLED(cfg.chip, cfg.pinGreen, state.GreenLED())
	if err != nil {
		return fmt.Errorf("init green LED: %w", err)
	}
	defer green.Close()

	adc, err := analog.NewIIOConverter(cfg.iio, cfg.adcBits)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	sampler := analog.NewSampler(adc, cfg.adcH, cfg.adcV)

	red, err := pwm.NewSysfsChannel(cfg.pwmChip, cfg.pwmRed, pwm.DefaultPeriod)
	if err != nil {
		return fmt.Errorf("init red pwm: %w", err)
	}
	defer red.Close()

	blue, err := pwm.NewSysfsChannel(cfg.pwmChip, cfg.pwmBlue, pwm.DefaultPeriod)
	if err != nil {
		return fmt.Errorf("init blue pwm: %w", err)
	}
	defer blue.Close()

	bus, err := display.OpenBus(cfg.i2cBus)
	if err != nil {
		return fmt.Errorf("init i2c: %w", err)
	}
	defer bus.Close()
	oled := display.NewSSD1306(bus, uint16(cfg.i2cAddr), g)

	tracker := status.NewTracker(time.Now(), status.Config{
		DebounceMs:  logic.DebounceWindow.Milliseconds(),
		DelayUs:     cfg.delay.Microseconds(),
		HeartbeatMs: cfg.heartbeat.Milliseconds(),
		Target:      "host",
	})
	ctrl := panel.New(state, sampler, render.New(oled, g), red, blue, panel.Config{
		Geometry:  g,
		Delay:     cfg.delay,
		Heartbeat: cfg.heartbeat,
		Tracker:   tracker,
	})

	if cfg.printState {
		return printState(os.Stdout, buttons, ctrl, tracker)
	}

	start := time.Now()
	millis := func() uint32 { return uint32(time.Since(start).Milliseconds()) }
	detector := logic.NewEdgeDetector(state, buttons, green, millis)
	buttons.OnFallingEdge(func(b logic.Button) { detector.OnFallingEdge(b) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case s := <-sigCh:
			log.Printf("received %v, shutting down", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Printf("started: chip=%s buttons=%d,%d green=%d i2c=%d/%#x delay=%v heartbeat=%v",
		cfg.chip, cfg.pinJoystick, cfg.pinAction, cfg.pinGreen, cfg.i2cBus, cfg.i2cAddr, cfg.delay, cfg.heartbeat)

	err = ctrl.Run(ctx)
	log.Printf("stopped after %d iterations", tracker.Snapshot().Iterations)
	return err
}

// printState runs one loop iteration and prints the button levels and the
// resulting status.
func printState(w io.Writer, buttons logic.Levels, ctrl *panel.Controller, tracker *status.Tracker) error {
	if err := ctrl.Step(); err != nil {
		return fmt.Errorf("read state: %w", err)
	}
	fmt.Fprintf(w, "JOYSTICK: %s, ACTION: %s\n",
		pressedString(buttons.Asserted(logic.JoystickButton)),
		pressedString(buttons.Asserted(logic.ActionButton)))
	w.Write(status.FormatJSON(tracker.Snapshot()))
	fmt.Fprintln(w)
	return nil
}

func pressedString(held bool) string {
	if held {
		return "PRESSED"
	}
	return "RELEASED"
}
