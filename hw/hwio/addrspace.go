package hwio

import "fmt"

// AddrSpaceSize is the number of addressable bytes on a 16-bit bus.
const AddrSpaceSize = 0x10000

// AddrSpace is the flat 64 KB memory image backing a CPU bus. There is a
// single instance per emulation session: the bus and every mapped device
// share the same bytes, the bus directly and devices through the View handed
// to them at registration.
type AddrSpace struct {
	data [AddrSpaceSize]byte
}

func NewAddrSpace() *AddrSpace {
	return &AddrSpace{}
}

// Load bulk-copies data into the address space starting at dst. No mirroring
// is applied and no device hook runs: Load is for initial image setup only.
// Loads overflowing the address space are rejected before any byte is copied.
func (as *AddrSpace) Load(data []byte, dst uint16) error {
	if int(dst)+len(data) > AddrSpaceSize {
		return fmt.Errorf("load of %d bytes at $%04X overflows address space", len(data), dst)
	}
	copy(as.data[dst:], data)
	return nil
}

// Fill sets every byte of the address space to val.
func (as *AddrSpace) Fill(val uint8) {
	for i := range as.data {
		as.data[i] = val
	}
}

// Peek8 returns the byte at addr. No mirroring, no side effects.
func (as *AddrSpace) Peek8(addr uint16) uint8 {
	return as.data[addr]
}

func (as *AddrSpace) write8(addr uint16, val uint8) {
	as.data[addr] = val
}

// View returns a view restricted to exactly the bytes of r.
func (as *AddrSpace) View(r Range) (*View, error) {
	if r.Len <= 0 || r.End() > AddrSpaceSize {
		return nil, fmt.Errorf("invalid range %s", r)
	}
	return &View{mem: as, base: r.Start, size: r.Len}, nil
}

// A View is the only way a device touches the shared address space: a window
// covering exactly the bytes of its mapped range, addressed by offset from
// the range start.
type View struct {
	mem  *AddrSpace
	base uint16
	size int
}

// Base returns the bus address of offset 0.
func (v *View) Base() uint16 { return v.base }

// Size returns the number of bytes the view covers.
func (v *View) Size() int { return v.size }

func (v *View) Read8(off uint16) uint8 {
	v.check(off)
	return v.mem.data[v.base+off]
}

func (v *View) Write8(off uint16, val uint8) {
	v.check(off)
	v.mem.data[v.base+off] = val
}

// A device reaching beyond the range it declared is a programming error, not
// a runtime condition.
func (v *View) check(off uint16) {
	if int(off) >= v.size {
		panic(fmt.Sprintf("view offset %d out of range (size %d)", off, v.size))
	}
}
