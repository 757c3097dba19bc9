package input

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

type ControlType uint8

const (
	ControlNotSet ControlType = iota
	KeyboardCtrl
)

func (t ControlType) String() string {
	if t == KeyboardCtrl {
		return "key"
	}
	return "not set"
}

// A Code describes the user input event bound to a controller button. Codes
// marshal to a textual form ("key W") so that bindings round-trip through
// the TOML configuration.
type Code struct {
	Scancode sdl.Scancode
	Type     ControlType
}

// Name returns an user-friendly name for the input code.
func (mc Code) Name() string {
	if mc.Type == KeyboardCtrl {
		return sdl.GetScancodeName(mc.Scancode)
	}
	return ""
}

func (mc Code) MarshalText() ([]byte, error) {
	s := ""
	if mc.Type == KeyboardCtrl {
		s = fmt.Sprintf("key %s", mc.Name())
	}
	return []byte(s), nil
}

func (mc *Code) UnmarshalText(text []byte) error {
	s := string(text)

	switch {
	case s == "":
		mc.Type = ControlNotSet

	case strings.HasPrefix(s, "key"):
		str := ""
		if _, err := fmt.Sscanf(s, "key %s", &str); err != nil {
			return fmt.Errorf("malformed key code: %s", s)
		}

		mc.Scancode = sdl.GetScancodeFromName(str)
		if mc.Scancode == sdl.SCANCODE_UNKNOWN {
			return fmt.Errorf("unrecognized scancode %q", s)
		}
		mc.Type = KeyboardCtrl

	default:
		return fmt.Errorf("unrecognized input code: %s", s)
	}

	return nil
}
