package emu

import (
	"testing"

	"nesbus/hw"
)

func TestSystem(t *testing.T) {
	sys, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	if n := len(sys.Bus.Mappings()); n != 2 {
		t.Fatalf("mapped devices = %d, want 2", n)
	}

	if err := sys.LoadImage([]byte{0x12, 0x34, 0x56}, 0x8000); err != nil {
		t.Fatal(err)
	}
	if got := sys.Bus.Read8(0x8001); got != 0x34 {
		t.Errorf("Read8(8001) = %02X, want 34", got)
	}

	// unplugged joypads still answer on their registers.
	sys.Bus.Write8(hw.Joypad1Addr, 1)
	sys.Bus.Write8(hw.Joypad1Addr, 0)
	if got := sys.Bus.Read8(hw.Joypad1Addr); got != 0x40 {
		t.Errorf("Read8(4016) = %02X, want 40", got)
	}
}

func TestSystemLoadImageBounds(t *testing.T) {
	sys, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := sys.LoadImage(make([]byte, 0x200), 0xFF00); err == nil {
		t.Fatal("overflowing LoadImage succeeded, want error")
	}
}
