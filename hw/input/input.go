// Package input captures user input through SDL and exposes it as NES
// controller state.
package input

import "github.com/veandco/go-sdl2/sdl"

// A PadButton identifies a button of a standard NES controller.
type PadButton byte

const (
	PadA PadButton = iota
	PadB
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight

	PadButtonCount
)

func (pd PadButton) String() string {
	var buttonNames = [PadButtonCount]string{
		"A", "B",
		"Select", "Start",
		"Up", "Down", "Left", "Right",
	}
	return buttonNames[pd]
}

// Source provides the button snapshot of both controller ports, one bit per
// button, PadA in bit 0.
type Source interface {
	LoadState() (uint8, uint8)
}

// PadConfig holds the binding configuration of one controller port.
type PadConfig struct {
	Plugged bool                 `toml:"plugged"`
	Buttons [PadButtonCount]Code `toml:"buttons"`
}

type Config struct {
	Pads [2]PadConfig `toml:"pads"`
}

// Provider polls the SDL keyboard state and serves it as controller
// snapshots according to the configured bindings.
type Provider struct {
	keystate []uint8
	cfg      Config
}

func NewProvider(cfg Config) *Provider {
	var keystate []uint8
	sdl.Do(func() { keystate = sdl.GetKeyboardState() })
	return &Provider{keystate: keystate, cfg: cfg}
}

func (p *Provider) padState(idx int) uint8 {
	padcfg := p.cfg.Pads[idx]
	if !padcfg.Plugged {
		return 0
	}

	state := uint8(0)
	for i, code := range padcfg.Buttons {
		if code.Type == KeyboardCtrl && p.keystate[code.Scancode] != 0 {
			state |= 1 << i
		}
	}
	return state
}

func (p *Provider) LoadState() (uint8, uint8) {
	return p.padState(0), p.padState(1)
}
