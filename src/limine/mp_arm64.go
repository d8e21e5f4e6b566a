//go:build arm64

package limine

// MPResponseFlags report what the loader enabled.  No flags are
// defined on aarch64.
type MPResponseFlags uint64

// Cpu describes one logical processor.  The loader writes every field
// except GotoAddress and Extra, which belong to the executable.
type Cpu struct {
	// ProcessorID is the ACPI processor ID, from the MADT.
	ProcessorID uint32

	reserved0 uint32

	// MPIDR of the processor, from the MADT or the device tree.
	MPIDR uint64

	reserved uint64

	// GotoAddress dispatches this processor; see its documentation.
	GotoAddress GotoAddress

	// Extra is a scratch word free for use by the executable.
	Extra uint64
}

// MPResponse lists every logical processor, boot processor included.
type MPResponse struct {
	respHeader
	flags    MPResponseFlags
	bspMPIDR uint64
	cpuCount uint64
	cpus     **Cpu
}

// Flags report what the loader enabled.
func (r *MPResponse) Flags() MPResponseFlags {
	return r.flags
}

// BSPMPIDR returns the MPIDR of the boot processor.
func (r *MPResponse) BSPMPIDR() uint64 {
	return r.bspMPIDR
}

// CPUs returns one descriptor per logical processor.  Descriptors are
// shared with independently-running processors once dispatched; writing
// Extra or dispatching concurrently from several places requires the
// caller to hold the response exclusively.
func (r *MPResponse) CPUs() []*Cpu {
	return loadSlice(r.cpus, r.cpuCount)
}
