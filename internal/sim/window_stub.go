//go:build !tinygo && !cgo

package sim

import "errors"

// RunWindow is not available without cgo.
func RunWindow(_ *Sim, _ int) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
