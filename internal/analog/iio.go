package analog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sweeney/joypanel/internal/logic"
)

// DefaultIIODevice is the first Industrial I/O device in sysfs.
const DefaultIIODevice = "/sys/bus/iio/devices/iio:device0"

var errNoChannel = errors.New("no channel selected")

// IIOConverter reads an ADC exposed through the Linux Industrial I/O sysfs
// interface (in_voltageN_raw files). Readings are rescaled from the device's
// resolution to 12 bits.
type IIOConverter struct {
	dir      string
	bits     int
	selected string
}

// NewIIOConverter opens the IIO device directory. bits is the resolution of
// the raw values the device reports.
func NewIIOConverter(dir string, bits int) (*IIOConverter, error) {
	if bits < 1 || bits > 16 {
		return nil, fmt.Errorf("adc resolution %d bits out of range 1..16", bits)
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("open iio device: %w", err)
	}
	return &IIOConverter{dir: dir, bits: bits}, nil
}

// Select picks the channel the next Read returns.
func (c *IIOConverter) Select(channel int) error {
	path := filepath.Join(c.dir, fmt.Sprintf("in_voltage%d_raw", channel))
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("channel %d: %w", channel, err)
	}
	c.selected = path
	return nil
}

// Read returns the selected channel's value scaled to 12 bits. Readings past
// full scale are clamped before narrowing.
func (c *IIOConverter) Read() (uint16, error) {
	if c.selected == "" {
		return 0, errNoChannel
	}
	data, err := os.ReadFile(c.selected)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filepath.Base(c.selected), err)
	}
	raw, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", filepath.Base(c.selected), err)
	}
	if raw < 0 {
		raw = 0
	}
	switch {
	case c.bits > 12:
		raw >>= uint(c.bits - 12)
	case c.bits < 12:
		raw <<= uint(12 - c.bits)
	}
	if raw > logic.FullScale {
		raw = logic.FullScale
	}
	return uint16(raw), nil
}
