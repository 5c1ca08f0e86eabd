package status

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/sweeney/joypanel/internal/logic"
)

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{DebounceMs: 200, DelayUs: 10, HeartbeatMs: 60000, Target: "host"}
	tr := NewTracker(start, cfg)

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.DelayUs != 10 {
		t.Errorf("Config.DelayUs: got %d, want 10", snap.Config.DelayUs)
	}
	if snap.Config.Target != "host" {
		t.Errorf("Config.Target: got %q, want %q", snap.Config.Target, "host")
	}
	if snap.Iterations != 0 {
		t.Errorf("Iterations: got %d, want 0", snap.Iterations)
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	tr.Update(Reading{
		Flags:    logic.Flags{GreenLED: true, Border: true},
		Sample:   logic.Sample{H: 4000, V: 100},
		Cursor:   logic.Point{X: 117, Y: 55},
		RedDuty:  1952,
		BlueDuty: 1948,
		Presses:  logic.PressCounts{Joystick: 3, Action: 1},
	})
	tr.Update(Reading{RedDuty: 7})

	snap := tr.Snapshot()
	if snap.Iterations != 2 {
		t.Errorf("Iterations: got %d, want 2", snap.Iterations)
	}
	if snap.RedDuty != 7 {
		t.Errorf("RedDuty: got %d, want 7 (last reading wins)", snap.RedDuty)
	}
	if snap.Presses.Joystick != 0 {
		t.Errorf("Presses.Joystick: got %d, want 0", snap.Presses.Joystick)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	tr.Update(Reading{Cursor: logic.Point{X: 1, Y: 2}})

	snap := tr.Snapshot()
	tr.Update(Reading{Cursor: logic.Point{X: 9, Y: 9}})

	if snap.Cursor != (logic.Point{X: 1, Y: 2}) {
		t.Errorf("snapshot changed after update: %+v", snap.Cursor)
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Now().Add(-5 * time.Minute)
	tr := NewTracker(start, Config{})

	up := tr.Snapshot().Uptime()
	if up < 5*time.Minute || up > 5*time.Minute+time.Second {
		t.Errorf("Uptime: got %v, want ~5m", up)
	}
}

func TestCheckHeartbeat(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(start, Config{})
	tr.Update(Reading{Presses: logic.PressCounts{Action: 4}})

	if _, ok := tr.CheckHeartbeat(start.Add(59*time.Second), time.Minute); ok {
		t.Error("expected no heartbeat before interval")
	}

	snap, ok := tr.CheckHeartbeat(start.Add(time.Minute), time.Minute)
	if !ok {
		t.Fatal("expected heartbeat at interval")
	}
	if snap.Presses.Action != 4 {
		t.Errorf("Presses.Action: got %d, want 4", snap.Presses.Action)
	}
	if snap.Uptime() != time.Minute {
		t.Errorf("Uptime: got %v, want 1m", snap.Uptime())
	}

	// Interval restarts from the last heartbeat.
	if _, ok := tr.CheckHeartbeat(start.Add(90*time.Second), time.Minute); ok {
		t.Error("expected no heartbeat 30s after the previous one")
	}
	if _, ok := tr.CheckHeartbeat(start.Add(2*time.Minute), time.Minute); !ok {
		t.Error("expected second heartbeat")
	}
}

func TestCheckHeartbeatDisabled(t *testing.T) {
	start := time.Now()
	tr := NewTracker(start, Config{})

	for _, interval := range []time.Duration{0, -time.Second} {
		if _, ok := tr.CheckHeartbeat(start.Add(time.Hour), interval); ok {
			t.Errorf("interval %v: expected heartbeat disabled", interval)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Update(Reading{RedDuty: uint32(j)})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tr.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := tr.Snapshot().Iterations; got != 400 {
		t.Errorf("Iterations: got %d, want 400", got)
	}
}

func TestFormatJSON(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Reading: Reading{
			Flags:    logic.Flags{GreenLED: true, RedPWM: false, BluePWM: false, Border: true},
			Sample:   logic.Sample{H: 2048, V: 4095},
			Cursor:   logic.Point{X: 60, Y: 0},
			RedDuty:  0,
			BlueDuty: 0,
			Presses:  logic.PressCounts{Joystick: 1, Action: 1},
		},
		Iterations: 42,
		StartTime:  start,
		Now:        start.Add(90 * time.Second),
		Config:     Config{DebounceMs: 200, DelayUs: 10, Target: "host"},
	}

	var got StatusJSON
	if err := json.Unmarshal(FormatJSON(snap), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	s := got.Status
	if s.Flags.GreenLED != "ON" || s.Flags.RedPWM != "OFF" || s.Flags.Border != "ON" {
		t.Errorf("flags: got %+v", s.Flags)
	}
	if s.Joystick.V != 4095 || s.Joystick.CursorY != 0 {
		t.Errorf("joystick: got %+v", s.Joystick)
	}
	if s.PWM.Period != logic.PWMPeriod {
		t.Errorf("PWM.Period: got %d, want %d", s.PWM.Period, logic.PWMPeriod)
	}
	if s.UptimeSeconds != 90 {
		t.Errorf("UptimeSeconds: got %d, want 90", s.UptimeSeconds)
	}
	if s.Iterations != 42 {
		t.Errorf("Iterations: got %d, want 42", s.Iterations)
	}
	if s.StartTime != "2026-01-01T12:00:00Z" {
		t.Errorf("StartTime: got %q", s.StartTime)
	}
	if s.Config.Target != "host" {
		t.Errorf("Config.Target: got %q", s.Config.Target)
	}
}

func TestOnOff(t *testing.T) {
	if OnOff(true) != "ON" || OnOff(false) != "OFF" {
		t.Errorf("got %q/%q", OnOff(true), OnOff(false))
	}
}
