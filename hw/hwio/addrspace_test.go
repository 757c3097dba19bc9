package hwio_test

import (
	"testing"

	"nesbus/hw/hwio"
)

func TestAddrSpaceLoad(t *testing.T) {
	as := hwio.NewAddrSpace()

	if err := as.Load([]byte{0x12, 0x34}, 0x8000); err != nil {
		t.Fatal(err)
	}
	if got := as.Peek8(0x8000); got != 0x12 {
		t.Errorf("Peek8(8000) = %02X, want 12", got)
	}
	if got := as.Peek8(0x8001); got != 0x34 {
		t.Errorf("Peek8(8001) = %02X, want 34", got)
	}

	// a load filling the space up to the last byte is fine.
	if err := as.Load(make([]byte, 0x100), 0xFF00); err != nil {
		t.Fatal(err)
	}
}

func TestAddrSpaceLoadBounds(t *testing.T) {
	as := hwio.NewAddrSpace()
	as.Fill(0xAB)

	if err := as.Load(make([]byte, 0x101), 0xFF00); err == nil {
		t.Fatal("overflowing Load succeeded, want error")
	}

	// a rejected load must not have touched memory.
	for a := 0; a < hwio.AddrSpaceSize; a++ {
		if got := as.Peek8(uint16(a)); got != 0xAB {
			t.Fatalf("memory at %04X = %02X after rejected load, want AB", a, got)
		}
	}
}

func TestView(t *testing.T) {
	as := hwio.NewAddrSpace()

	view, err := as.View(hwio.Range{Start: 0x4016, Len: 2})
	if err != nil {
		t.Fatal(err)
	}
	if view.Base() != 0x4016 || view.Size() != 2 {
		t.Fatalf("view = [%04X, size %d], want [4016, size 2]", view.Base(), view.Size())
	}

	view.Write8(1, 0x56)
	if got := as.Peek8(0x4017); got != 0x56 {
		t.Errorf("Peek8(4017) = %02X, want 56", got)
	}
	if got := view.Read8(1); got != 0x56 {
		t.Errorf("view.Read8(1) = %02X, want 56", got)
	}
}

func TestViewErrors(t *testing.T) {
	as := hwio.NewAddrSpace()

	if _, err := as.View(hwio.Range{Start: 0x4016, Len: 0}); err == nil {
		t.Error("empty view created, want error")
	}
	if _, err := as.View(hwio.Range{Start: 0xFFFF, Len: 2}); err == nil {
		t.Error("out-of-bounds view created, want error")
	}

	view, err := as.View(hwio.Range{Start: 0x4016, Len: 2})
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("out-of-range view access did not panic")
		}
	}()
	view.Read8(2)
}
