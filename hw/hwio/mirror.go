package hwio

// Mirroring masks. Address lines above the size of the physical resource are
// not decoded, so several bus addresses alias the same byte.
const (
	// 2 KB of internal RAM, repeated 4 times over $0000-$1FFF.
	RAMMirrorMask uint16 = 0x07FF

	// 8 hardware registers repeated every 8 bytes over $2000-$3FFF. Bit 13
	// is kept set to preserve the register block base.
	RegMirrorMask uint16 = 0x2007
)

// MirrorAddr folds a bus address onto the physical byte it aliases. Pure and
// total over the 16-bit input; addresses outside the mirrored windows pass
// through untouched.
func MirrorAddr(addr uint16) uint16 {
	switch {
	case addr <= 0x1FFF:
		return addr & RAMMirrorMask
	case addr <= 0x3FFF:
		return addr & RegMirrorMask
	}
	return addr
}
