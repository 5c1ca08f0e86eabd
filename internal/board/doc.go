// Package board adapts the RP2040 peripherals to the interfaces used by the
// control loop. Everything except this file is built only for rp2040 targets.
package board
