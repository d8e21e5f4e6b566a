//go:build tinygo

package main

import (
	"device/arm"
	"runtime/volatile"
	"unsafe"

	"limine/src/limine"
)

// Everything the loader scans for must be a package variable so it
// lands in .data with its magic words already in place.  The section
// markers give the loader a bounded region instead of a whole-image
// scan; the linker script keeps the section alive.

//go:section .limine_requests_start
var start = limine.NewRequestsStartMarker()

//go:section .limine_requests
var baseRevision = limine.NewBaseRevision()

//go:section .limine_requests
var bootInfo = limine.NewBootloaderInfoRequest()

//go:section .limine_requests
var framebuffer = limine.NewFramebufferRequest()

//go:section .limine_requests
var memoryMap = limine.NewMemoryMapRequest()

//go:section .limine_requests
var hhdm = limine.NewHHDMRequest()

//go:section .limine_requests
var stackSize = limine.NewStackSizeRequest().WithSize(0x10000)

//go:section .limine_requests_end
var end = limine.NewRequestsEndMarker()

//go:noinline
func main() {
	if !baseRevision.IsSupported() {
		halt()
	}

	resp, ok := framebuffer.Response()
	if !ok {
		halt()
	}
	fbs := resp.Framebuffers()
	if len(fbs) == 0 {
		halt()
	}
	fb := fbs[0]
	if fb.MemoryModel() != limine.MemoryModelRGB || fb.BPP() != 32 {
		halt()
	}

	// diagonal white line, the classic sign of life
	n := fb.Width()
	if fb.Height() < n {
		n = fb.Height()
	}
	for i := uint64(0); i < n; i++ {
		px := (*volatile.Register32)(unsafe.Pointer(fb.Addr() + uintptr(i*fb.Pitch()+i*4)))
		px.Set(0xffffffff)
	}

	halt()
}

func halt() {
	for {
		arm.Asm("wfe")
	}
}
