//go:build riscv64

package limine

// MPResponseFlags report what the loader enabled.  No flags are
// defined on riscv64.
type MPResponseFlags uint64

// Cpu describes one logical processor.  The loader writes every field
// except GotoAddress and Extra, which belong to the executable.
type Cpu struct {
	// ProcessorID is the ACPI processor ID, from the MADT.
	ProcessorID uint64
	// HartID of the processor, from the MADT or the device tree.
	HartID uint64

	reserved uint64

	// GotoAddress dispatches this processor; see its documentation.
	GotoAddress GotoAddress

	// Extra is a scratch word free for use by the executable.
	Extra uint64
}

// MPResponse lists every logical processor, boot processor included.
type MPResponse struct {
	respHeader
	flags     MPResponseFlags
	bspHartID uint64
	cpuCount  uint64
	cpus      **Cpu
}

// Flags report what the loader enabled.
func (r *MPResponse) Flags() MPResponseFlags {
	return r.flags
}

// BSPHartID returns the hart ID of the boot processor.
func (r *MPResponse) BSPHartID() uint64 {
	return r.bspHartID
}

// CPUs returns one descriptor per logical processor.  Descriptors are
// shared with independently-running processors once dispatched; writing
// Extra or dispatching concurrently from several places requires the
// caller to hold the response exclusively.
func (r *MPResponse) CPUs() []*Cpu {
	return loadSlice(r.cpus, r.cpuCount)
}
