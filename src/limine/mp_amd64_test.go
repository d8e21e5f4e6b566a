//go:build amd64

package limine

import (
	"sync/atomic"
	"testing"
	"unsafe"
)

func TestCpuLayout(t *testing.T) {
	if got := unsafe.Sizeof(Cpu{}); got != 32 {
		t.Fatalf("Cpu size %d, want 32", got)
	}
	var c Cpu
	if off := unsafe.Offsetof(c.LAPICID); off != 4 {
		t.Errorf("LAPICID at offset %d, want 4", off)
	}
	if off := unsafe.Offsetof(c.GotoAddress); off != 16 {
		t.Errorf("GotoAddress at offset %d, want 16", off)
	}
	if off := unsafe.Offsetof(c.Extra); off != 24 {
		t.Errorf("Extra at offset %d, want 24", off)
	}
}

func TestMPResponseCPUs(t *testing.T) {
	cpus := []*Cpu{
		{ProcessorID: 0, LAPICID: 0},
		{ProcessorID: 1, LAPICID: 2},
		{ProcessorID: 2, LAPICID: 4},
	}
	resp := &MPResponse{
		flags:      MPResponseX2APIC,
		bspLAPICID: 0,
		cpuCount:   uint64(len(cpus)),
		cpus:       &cpus[0],
	}

	got := resp.CPUs()
	if len(got) != 3 {
		t.Fatalf("expected 3 cpus, got %d", len(got))
	}
	if resp.Flags()&MPResponseX2APIC == 0 {
		t.Error("x2APIC flag lost")
	}

	// exactly one descriptor belongs to the boot processor
	bsp := 0
	for _, c := range got {
		if c.LAPICID == resp.BSPLAPICID() {
			bsp++
		}
	}
	if bsp != 1 {
		t.Errorf("found %d descriptors matching the BSP LAPIC ID, want 1", bsp)
	}
}

func TestMPDispatchThroughResponse(t *testing.T) {
	req := NewMPRequest().WithFlags(MPRequestX2APIC)
	cpus := []*Cpu{{ProcessorID: 0, LAPICID: 0}, {ProcessorID: 1, LAPICID: 1}}
	resp := &MPResponse{bspLAPICID: 0, cpuCount: 2, cpus: &cpus[0]}
	atomic.StorePointer(&req.response.p, unsafe.Pointer(resp))

	got, ok := req.Response()
	if !ok {
		t.Fatal("response absent after foreign write")
	}
	ap := got.CPUs()[1]
	if ap.GotoAddress.Target() != nil {
		t.Fatal("secondary processor already dispatched")
	}
	entry := unsafe.Pointer(&struct{}{})
	ap.GotoAddress.Set(entry)
	if ap.GotoAddress.Target() != entry {
		t.Error("dispatch target not visible through the descriptor")
	}
}
