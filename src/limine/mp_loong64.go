//go:build loong64

package limine

// The current protocol revision defines no wake-up mechanism on
// loongarch64: descriptors are a single reserved word and the response
// carries only the processor list.

// MPResponseFlags report what the loader enabled.  No flags are
// defined on loongarch64.
type MPResponseFlags uint64

// Cpu describes one logical processor.
type Cpu struct {
	reserved uint64
}

// MPResponse lists every logical processor, boot processor included.
type MPResponse struct {
	cpuCount uint64
	cpus     **Cpu
}

// CPUs returns one descriptor per logical processor.
func (r *MPResponse) CPUs() []*Cpu {
	return loadSlice(r.cpus, r.cpuCount)
}
