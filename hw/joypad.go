package hw

import (
	"fmt"

	"nesbus/hw/hwio"
	"nesbus/hw/input"
)

// Joypad bus addresses, one byte per port.
const (
	Joypad1Addr uint16 = 0x4016
	Joypad2Addr uint16 = 0x4017
)

// Joypad emulates a standard controller port. Writing a strobe byte to its
// register latches the state of the connected input device into an internal
// shift register; every read then shifts the next button bit out through the
// mapped byte, LSB first (A, B, Select, Start, Up, Down, Left, Right).
type Joypad struct {
	port int // 0 or 1
	src  input.Source

	view   *hwio.View
	strobe bool
	state  uint8 // shift register
}

func NewJoypad(port int, src input.Source) *Joypad {
	if port != 0 && port != 1 {
		panic(fmt.Sprintf("invalid joypad port %d", port))
	}
	return &Joypad{port: port, src: src}
}

func (jp *Joypad) MemRange() hwio.Range {
	return hwio.Range{Start: Joypad1Addr + uint16(jp.port), Len: 1}
}

func (jp *Joypad) Attach(view *hwio.View) {
	jp.view = view
}

// PostWrite observes the strobe byte the CPU just stored in the register.
// The shift register reloads on the strobe falling edge.
func (jp *Joypad) PostWrite() {
	prev := jp.strobe
	jp.strobe = hwio.GetBit8(jp.view.Read8(0), 0)
	if prev && !jp.strobe {
		jp.reload()
	}
}

// PreRead shifts the next button bit into the mapped byte, so that the fetch
// that follows returns it. While the strobe is held high the state re-latches
// on every read and the CPU keeps reading the first button.
func (jp *Joypad) PreRead() {
	if jp.strobe {
		jp.reload()
	}

	bit := jp.state & 1

	// After 8 bits are read, all subsequent bits report 1 on a standard
	// controller. The upper data lines carry open bus.
	jp.state = jp.state>>1 | 0x80
	jp.view.Write8(0, 0x40|bit)
}

// latch the state of the connected input device into the shift register.
func (jp *Joypad) reload() {
	if jp.src == nil {
		// Nothing plugged on this port.
		jp.state = 0
		return
	}
	s0, s1 := jp.src.LoadState()
	if jp.port == 0 {
		jp.state = s0
	} else {
		jp.state = s1
	}
}
