// Command joypanel-sim runs the joystick panel in a desktop window. Drag on
// the panel to deflect the stick; it springs back when released. J is the
// joystick button, A the action button.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/sweeney/joypanel/internal/sim"
)

func main() {
	scale := flag.Int("scale", 4, "Window scale factor")
	bounce := flag.Int("bounce", 3, "Extra contact-bounce edges per key press")
	delay := flag.Duration("delay", time.Millisecond, "Pause at the end of each loop iteration")
	heartbeat := flag.Duration("heartbeat", time.Minute, "Heartbeat interval (0 to disable)")

	flag.Parse()

	if *scale < 1 {
		log.Fatalf("fatal: scale %d must be at least 1", *scale)
	}

	s := sim.New(sim.Config{
		Delay:     *delay,
		Heartbeat: *heartbeat,
		Bounce:    *bounce,
	})
	log.Printf("started: scale=%d bounce=%d delay=%v", *scale, *bounce, *delay)
	if err := sim.RunWindow(s, *scale); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
