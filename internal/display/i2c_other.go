//go:build !linux || tinygo

package display

import "errors"

// Bus is not available on non-Linux platforms.
type Bus struct{}

// OpenBus returns an error on non-Linux platforms.
func OpenBus(n int) (*Bus, error) {
	return nil, errors.New("display: i2c bus not supported on this platform (requires Linux)")
}

// Tx is not implemented on non-Linux platforms.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	return errors.New("display: i2c bus not supported")
}

// Close is not implemented on non-Linux platforms.
func (b *Bus) Close() error { return nil }
