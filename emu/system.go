// Package emu wires an emulation session together: the shared address space,
// the CPU bus and the memory-mapped peripherals.
package emu

import (
	"nesbus/emu/log"
	"nesbus/hw"
	"nesbus/hw/hwio"
	"nesbus/hw/input"
)

// System owns the state of one emulation session. Everything runs on a
// single logical thread: the external CPU core calls into Bus, the bus calls
// into devices, nothing else mutates Mem.
type System struct {
	Mem  *hwio.AddrSpace
	Bus  *hwio.Bus
	Pads [2]*hw.Joypad
}

// New builds a session with both joypad ports mapped. src provides the
// controller state; nil means no controller is plugged.
func New(src input.Source) (*System, error) {
	sys := &System{Mem: hwio.NewAddrSpace()}
	sys.Bus = hwio.NewBus("cpu", sys.Mem)
	sys.Pads[0] = hw.NewJoypad(0, src)
	sys.Pads[1] = hw.NewJoypad(1, src)

	if err := sys.Bus.Map(sys.Pads[0], sys.Pads[1]); err != nil {
		return nil, err
	}

	log.ModEmu.DebugZ("session ready").
		String("bus", sys.Bus.Name).
		Int("devices", len(sys.Bus.Mappings())).
		End()
	return sys, nil
}

// LoadImage copies a raw program image into the address space, bypassing
// mirroring and device hooks.
func (sys *System) LoadImage(data []byte, dst uint16) error {
	log.ModEmu.InfoZ("loading image").
		Int("size", len(data)).
		Hex16("dst", dst).
		End()
	return sys.Mem.Load(data, dst)
}
