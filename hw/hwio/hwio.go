// Package hwio implements the address-space bus of a 6502-style machine:
// a flat 64 KB memory image, address mirroring, and dispatch of reads and
// writes to memory-mapped peripheral devices.
package hwio

// BankIO8 is an 8-bit addressable component.
type BankIO8 interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

func Write16(b BankIO8, addr uint16, val uint16) {
	lo := uint8(val & 0xff)
	hi := uint8(val >> 8)
	b.Write8(addr, lo)
	b.Write8(addr+1, hi)
}

func Read16(b BankIO8, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
