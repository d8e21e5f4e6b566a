package limine

import (
	"sync/atomic"
	"unsafe"
)

// MPRequestFlags configure the MP request.  Architectures other than
// x86_64 define no flags.
type MPRequestFlags uint64

// MPRequest asks the loader to park every secondary processor in a
// stub, ready to be dispatched through its descriptor's jump-target
// slot.  Without this request, secondary processors are left alone.
type MPRequest struct {
	header
	response respPtr[MPResponse]
	flags    MPRequestFlags
}

func NewMPRequest() MPRequest {
	return MPRequestWithRevision(0)
}

func MPRequestWithRevision(revision uint64) MPRequest {
	return MPRequest{header: newHeader(RequestIDTable["mp"], revision)}
}

// WithFlags sets the MP request flags.
func (r MPRequest) WithFlags(flags MPRequestFlags) MPRequest {
	r.flags = flags
	return r
}

// Flags returns the MP request flags.
func (r *MPRequest) Flags() MPRequestFlags {
	return r.flags
}

func (r *MPRequest) Response() (*MPResponse, bool) {
	return r.response.get()
}

// GotoAddress is the jump-target slot of a parked secondary processor.
// Storing a non-null code address is the one and only way to start
// that processor: it leaves the loader's stub and calls the target with
// a pointer to its own Cpu descriptor, on its own stack of the
// negotiated size.  The transition happens at most once; the target
// must never return, and writing the slot again after dispatch is
// undefined.
type GotoAddress struct {
	fn unsafe.Pointer
}

// Set publishes entry to the parked processor.  The store has release
// semantics: everything written before the call is visible to the
// woken processor when it starts executing.  Coordination beyond that
// single edge is the caller's problem.
func (g *GotoAddress) Set(entry unsafe.Pointer) {
	atomic.StorePointer(&g.fn, entry)
}

// Target returns the currently published jump target, null while the
// processor is still parked.
func (g *GotoAddress) Target() unsafe.Pointer {
	return atomic.LoadPointer(&g.fn)
}
