package hwio

import (
	"fmt"

	"nesbus/emu/log"
)

// log every access falling outside any device range (useful for debugging
// but verbose, since most of the address space has no device behind it)
const logUnmapped = false

type mapping struct {
	rng Range
	dev Device
}

// Bus routes 16-bit CPU addresses to the shared address space, applying
// address mirroring and invoking device hooks around the raw byte transfer.
//
// The ordering contract is strict: a read runs the device pre-read hook and
// then fetches, so the hook may synthesize the value the CPU is about to
// see; a write commits the byte and then runs the post-write hook, so the
// hook observes what the CPU just stored.
type Bus struct {
	Name string

	mem    *AddrSpace
	maps   []mapping
	mapped bool
	last   uint8 // last value driven on the data lines
}

func NewBus(name string, mem *AddrSpace) *Bus {
	return &Bus{Name: name, mem: mem}
}

// Map registers devices on the bus. For each device it queries the declared
// range, hands the device a view over exactly that range and records the
// (range, device) pair for lookup. Map must be called once, before any
// access; a second call, an out-of-bounds range or two overlapping ranges
// are configuration errors. The bus is left untouched when an error is
// returned.
func (b *Bus) Map(devs ...Device) error {
	if b.mapped {
		return fmt.Errorf("bus %s: already mapped", b.Name)
	}

	var maps []mapping
	for _, dev := range devs {
		rng := dev.MemRange()
		if rng.Len <= 0 || rng.End() > AddrSpaceSize {
			return fmt.Errorf("bus %s: invalid range %s", b.Name, rng)
		}
		for _, m := range maps {
			if m.rng.Overlaps(rng) {
				return fmt.Errorf("bus %s: range %s overlaps %s", b.Name, rng, m.rng)
			}
		}
		maps = append(maps, mapping{rng: rng, dev: dev})
	}

	for _, m := range maps {
		view, err := b.mem.View(m.rng)
		if err != nil {
			return fmt.Errorf("bus %s: %w", b.Name, err)
		}
		m.dev.Attach(view)

		log.ModBus.DebugZ("mapping device").
			String("bus", b.Name).
			Stringer("range", m.rng).
			End()
	}

	b.maps = maps
	b.mapped = true
	return nil
}

// Mappings returns the registered device ranges, in registration order.
func (b *Bus) Mappings() []Range {
	rngs := make([]Range, len(b.maps))
	for i, m := range b.maps {
		rngs[i] = m.rng
	}
	return rngs
}

func (b *Bus) lookup(addr uint16) Device {
	for _, m := range b.maps {
		if m.rng.Contains(addr) {
			return m.dev
		}
	}
	return nil
}

// Read8 performs a CPU read: the address is mirrored, the pre-read hook of
// the device mapped there (if any) runs, then the byte is fetched from the
// address space. With no device behind the address this degenerates to a
// plain memory read.
func (b *Bus) Read8(addr uint16) uint8 {
	addr = MirrorAddr(addr)
	if dev := b.lookup(addr); dev != nil {
		dev.PreRead()
	} else if logUnmapped {
		log.ModBus.DebugZ("read outside device ranges").
			String("bus", b.Name).
			Hex16("addr", addr).
			End()
	}
	val := b.mem.Peek8(addr)
	b.last = val
	return val
}

// Write8 performs a CPU write: the address is mirrored, the byte is
// committed to the address space, then the post-write hook of the device
// mapped there (if any) runs.
func (b *Bus) Write8(addr uint16, val uint8) {
	addr = MirrorAddr(addr)
	b.mem.write8(addr, val)
	b.last = val
	if dev := b.lookup(addr); dev != nil {
		dev.PostWrite()
	} else if logUnmapped {
		log.ModBus.DebugZ("write outside device ranges").
			String("bus", b.Name).
			Hex16("addr", addr).
			Hex8("val", val).
			End()
	}
}

// Peek8 returns the byte addr aliases without running any device hook
// (debugging/tracing).
func (b *Bus) Peek8(addr uint16) uint8 {
	return b.mem.Peek8(MirrorAddr(addr))
}

// OpenBus returns the last value driven on the data lines.
func (b *Bus) OpenBus() uint8 {
	return b.last
}

// Load bulk-copies an image into the backing address space. See
// AddrSpace.Load.
func (b *Bus) Load(data []byte, dst uint16) error {
	return b.mem.Load(data, dst)
}
