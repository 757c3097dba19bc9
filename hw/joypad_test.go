package hw

import (
	"testing"

	"nesbus/hw/hwio"
	"nesbus/hw/input"
)

type fakeSource struct {
	pads [2]uint8
}

func (s *fakeSource) LoadState() (uint8, uint8) {
	return s.pads[0], s.pads[1]
}

func newJoypadBus(t *testing.T, src input.Source) *hwio.Bus {
	t.Helper()

	bus := hwio.NewBus("cpu", hwio.NewAddrSpace())
	if err := bus.Map(NewJoypad(0, src), NewJoypad(1, src)); err != nil {
		t.Fatal(err)
	}
	return bus
}

func TestJoypadShift(t *testing.T) {
	src := &fakeSource{}
	src.pads[0] = 0b1010_0101
	bus := newJoypadBus(t, src)

	// strobe high then low latches the state.
	bus.Write8(Joypad1Addr, 1)
	bus.Write8(Joypad1Addr, 0)

	for i := range 8 {
		want := 0x40 | (src.pads[0]>>i)&1
		if got := bus.Read8(Joypad1Addr); got != want {
			t.Fatalf("read %d = %02X, want %02X", i, got, want)
		}
	}

	// after 8 reads a standard controller reports 1.
	for range 3 {
		if got := bus.Read8(Joypad1Addr); got != 0x41 {
			t.Fatalf("read past bit 8 = %02X, want 41", got)
		}
	}
}

func TestJoypadStrobeHeldHigh(t *testing.T) {
	src := &fakeSource{}
	src.pads[0] = 0x01 // A pressed
	bus := newJoypadBus(t, src)

	// while strobe stays high every read re-latches and reports A.
	bus.Write8(Joypad1Addr, 1)
	for range 4 {
		if got := bus.Read8(Joypad1Addr); got != 0x41 {
			t.Fatalf("Read8(4016) = %02X, want 41", got)
		}
	}

	src.pads[0] = 0
	if got := bus.Read8(Joypad1Addr); got != 0x40 {
		t.Fatalf("Read8(4016) = %02X after release, want 40", got)
	}
}

func TestJoypadSecondPort(t *testing.T) {
	src := &fakeSource{}
	src.pads[1] = 0b0000_0011
	bus := newJoypadBus(t, src)

	bus.Write8(Joypad2Addr, 1)
	bus.Write8(Joypad2Addr, 0)

	if got := bus.Read8(Joypad2Addr); got != 0x41 {
		t.Fatalf("Read8(4017) = %02X, want 41", got)
	}
	if got := bus.Read8(Joypad2Addr); got != 0x41 {
		t.Fatalf("Read8(4017) = %02X, want 41", got)
	}
	if got := bus.Read8(Joypad2Addr); got != 0x40 {
		t.Fatalf("Read8(4017) = %02X, want 40", got)
	}
}

func TestJoypadUnplugged(t *testing.T) {
	bus := newJoypadBus(t, nil)

	bus.Write8(Joypad1Addr, 1)
	bus.Write8(Joypad1Addr, 0)

	for i := range 8 {
		if got := bus.Read8(Joypad1Addr); got != 0x40 {
			t.Fatalf("read %d = %02X, want 40", i, got)
		}
	}
	if got := bus.Read8(Joypad1Addr); got != 0x41 {
		t.Fatalf("read past bit 8 = %02X, want 41", got)
	}
}
