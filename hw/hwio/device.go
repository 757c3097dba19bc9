package hwio

import "fmt"

// A Range is a window of consecutive bus addresses: Start included, Start+Len
// excluded.
type Range struct {
	Start uint16
	Len   int
}

// End returns the first address past the range (exclusive bound).
func (r Range) End() int {
	return int(r.Start) + r.Len
}

func (r Range) Contains(addr uint16) bool {
	return addr >= r.Start && int(addr)-int(r.Start) < r.Len
}

func (r Range) Overlaps(o Range) bool {
	return int(r.Start) < o.End() && int(o.Start) < r.End()
}

func (r Range) String() string {
	return fmt.Sprintf("$%04X-$%04X", r.Start, r.End()-1)
}

// Device is the contract implemented by memory-mapped peripherals. A device
// declares a fixed address range, receives a view over exactly that range
// when registered on a bus, and gets its hooks invoked around every CPU
// access falling in range. Hooks receive no address: they operate purely on
// the view.
type Device interface {
	// MemRange returns the bus range the device responds to. It is queried
	// once, at registration, and must not change afterwards.
	MemRange() Range

	// Attach hands the device its window into the shared address space.
	// Called once, during Bus.Map. The device keeps the view for the
	// lifetime of the session.
	Attach(view *View)

	// PreRead runs before a CPU read in range is satisfied. The device may
	// rewrite any byte of its view; the CPU receives the post-hook byte.
	PreRead()

	// PostWrite runs after a CPU write in range has been committed. The
	// freshly written value is observable through the view.
	PostWrite()
}
