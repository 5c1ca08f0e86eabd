package pwm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sweeney/joypanel/internal/logic"
)

// DefaultChip is the first PWM controller in sysfs.
const DefaultChip = "/sys/class/pwm/pwmchip0"

// SysfsChannel drives a PWM channel through the Linux sysfs PWM interface.
// Duties are converted from ticks to nanoseconds of the configured period.
type SysfsChannel struct {
	dir    string
	period time.Duration
}

// NewSysfsChannel exports the channel if needed, sets its period, zeroes the
// duty and enables it.
func NewSysfsChannel(chip string, channel int, period time.Duration) (*SysfsChannel, error) {
	if period <= 0 {
		return nil, fmt.Errorf("pwm period %v must be positive", period)
	}

	dir := filepath.Join(chip, fmt.Sprintf("pwm%d", channel))
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		if err := writeAttr(chip, "export", strconv.Itoa(channel)); err != nil {
			return nil, fmt.Errorf("export pwm%d: %w", channel, err)
		}
	}

	c := &SysfsChannel{dir: dir, period: period}

	// duty_cycle must not exceed period at any point, so clear it first.
	if err := writeAttr(dir, "duty_cycle", "0"); err != nil {
		return nil, fmt.Errorf("pwm%d: %w", channel, err)
	}
	if err := writeAttr(dir, "period", strconv.FormatInt(period.Nanoseconds(), 10)); err != nil {
		return nil, fmt.Errorf("pwm%d: %w", channel, err)
	}
	if err := writeAttr(dir, "enable", "1"); err != nil {
		return nil, fmt.Errorf("pwm%d: %w", channel, err)
	}
	return c, nil
}

// Set writes the duty, in ticks of a PWMPeriod+1 tick cycle.
func (c *SysfsChannel) Set(duty uint32) error {
	ns := int64(clampDuty(duty)) * c.period.Nanoseconds() / (logic.PWMPeriod + 1)
	return writeAttr(c.dir, "duty_cycle", strconv.FormatInt(ns, 10))
}

// Close zeroes the duty and disables the channel.
func (c *SysfsChannel) Close() error {
	var errs []error
	if err := writeAttr(c.dir, "duty_cycle", "0"); err != nil {
		errs = append(errs, err)
	}
	if err := writeAttr(c.dir, "enable", "0"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

func writeAttr(dir, name, value string) error {
	if err := os.WriteFile(filepath.Join(dir, name), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
