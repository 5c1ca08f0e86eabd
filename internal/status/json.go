package status

import (
	"encoding/json"
	"time"

	"github.com/sweeney/joypanel/internal/logic"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Flags         FlagsJSON    `json:"flags"`
	Joystick      JoystickJSON `json:"joystick"`
	PWM           PWMJSON      `json:"pwm"`
	Presses       PressesJSON  `json:"presses"`
	Iterations    uint64       `json:"iterations"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	StartTime     string       `json:"start_time"`
	Timestamp     string       `json:"timestamp"`
	Config        ConfigJSON   `json:"config"`
}

// FlagsJSON is the JSON representation of the shared toggles.
type FlagsJSON struct {
	GreenLED string `json:"green_led"`
	RedPWM   string `json:"red_pwm"`
	BluePWM  string `json:"blue_pwm"`
	Border   string `json:"border"`
}

// JoystickJSON reports the last sample and the cursor it mapped to.
type JoystickJSON struct {
	H       uint16 `json:"h"`
	V       uint16 `json:"v"`
	CursorX int16  `json:"cursor_x"`
	CursorY int16  `json:"cursor_y"`
}

// PWMJSON reports the last duties written.
type PWMJSON struct {
	Red    uint32 `json:"red"`
	Blue   uint32 `json:"blue"`
	Period uint32 `json:"period"`
}

// PressesJSON is the JSON representation of accepted press counts.
type PressesJSON struct {
	Joystick uint32 `json:"joystick"`
	Action   uint32 `json:"action"`
}

// ConfigJSON is the JSON representation of loop config.
type ConfigJSON struct {
	DebounceMs  int64  `json:"debounce_ms"`
	DelayUs     int64  `json:"delay_us"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	Target      string `json:"target"`
}

// OnOff renders a flag the way status output prints it.
func OnOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func buildInner(snap Snapshot) StatusInner {
	return StatusInner{
		Flags: FlagsJSON{
			GreenLED: OnOff(snap.Flags.GreenLED),
			RedPWM:   OnOff(snap.Flags.RedPWM),
			BluePWM:  OnOff(snap.Flags.BluePWM),
			Border:   OnOff(snap.Flags.Border),
		},
		Joystick: JoystickJSON{
			H:       snap.Sample.H,
			V:       snap.Sample.V,
			CursorX: snap.Cursor.X,
			CursorY: snap.Cursor.Y,
		},
		PWM: PWMJSON{
			Red:    snap.RedDuty,
			Blue:   snap.BlueDuty,
			Period: logic.PWMPeriod,
		},
		Presses: PressesJSON{
			Joystick: snap.Presses.Joystick,
			Action:   snap.Presses.Action,
		},
		Iterations:    snap.Iterations,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Config: ConfigJSON{
			DebounceMs:  snap.Config.DebounceMs,
			DelayUs:     snap.Config.DelayUs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			Target:      snap.Config.Target,
		},
	}
}

// FormatJSON returns the indented JSON status printed by -print-state.
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}
