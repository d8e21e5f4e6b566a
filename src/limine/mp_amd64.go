//go:build amd64

package limine

// MPRequestX2APIC asks the loader to put the local APICs into x2APIC
// mode.
const MPRequestX2APIC MPRequestFlags = 1 << 0

// MPResponseFlags report what the loader enabled.
type MPResponseFlags uint32

// MPResponseX2APIC means the x2APIC was enabled as requested.
const MPResponseX2APIC MPResponseFlags = 1 << 0

// Cpu describes one logical processor.  The loader writes every field
// except GotoAddress and Extra, which belong to the executable.
type Cpu struct {
	// ProcessorID is the ACPI processor ID, from the MADT.
	ProcessorID uint32
	// LAPICID is the local APIC ID, from the MADT.
	LAPICID uint32

	reserved uint64

	// GotoAddress dispatches this processor; see its documentation.
	GotoAddress GotoAddress

	// Extra is a scratch word free for use by the executable.
	Extra uint64
}

// MPResponse lists every logical processor, boot processor included.
type MPResponse struct {
	respHeader
	flags      MPResponseFlags
	bspLAPICID uint32
	cpuCount   uint64
	cpus       **Cpu
}

// Flags report what the loader enabled.
func (r *MPResponse) Flags() MPResponseFlags {
	return r.flags
}

// BSPLAPICID returns the local APIC ID of the boot processor.
func (r *MPResponse) BSPLAPICID() uint32 {
	return r.bspLAPICID
}

// CPUs returns one descriptor per logical processor.  Descriptors are
// shared with independently-running processors once dispatched; writing
// Extra or dispatching concurrently from several places requires the
// caller to hold the response exclusively.
func (r *MPResponse) CPUs() []*Cpu {
	return loadSlice(r.cpus, r.cpuCount)
}
