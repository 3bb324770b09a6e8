package hotkey

import (
	"fmt"
	"strings"
)

// TriggerType selects which transition of the last key fires a hotkey.
type TriggerType int

const (
	// Pressed fires once when the last key goes down.
	Pressed TriggerType = iota
	// Released fires once when the last key goes up.
	Released
	// PressAndRelease fires on both transitions.
	PressAndRelease
	// Repeat fires on every tick the last key is held.
	Repeat
)

var triggerNames = map[TriggerType]string{
	Pressed:         "pressed",
	Released:        "released",
	PressAndRelease: "press-and-release",
	Repeat:          "repeat",
}

func (t TriggerType) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TriggerType(%d)", int(t))
}

// ParseTriggerType accepts the names printed by String. An empty string is
// Pressed.
func ParseTriggerType(s string) (TriggerType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Pressed, nil
	}
	for t, candidate := range triggerNames {
		if candidate == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("hotkey: unknown trigger %q", s)
}

func (t TriggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TriggerType) UnmarshalText(text []byte) error {
	parsed, err := ParseTriggerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RuntimeTrigger is the transition a hotkey fired on. Actions may take it as
// their input.
type RuntimeTrigger int

const (
	RuntimePressed RuntimeTrigger = iota
	RuntimePressing
	RuntimeReleased
)

func (r RuntimeTrigger) IsPressed() bool { return r == RuntimePressed }
func (r RuntimeTrigger) IsPressing() bool { return r == RuntimePressing }
func (r RuntimeTrigger) IsReleased() bool { return r == RuntimeReleased }

func (r RuntimeTrigger) String() string {
	switch r {
	case RuntimePressed:
		return "pressed"
	case RuntimePressing:
		return "pressing"
	case RuntimeReleased:
		return "released"
	}
	return fmt.Sprintf("RuntimeTrigger(%d)", int(r))
}
