package limine

import (
	"testing"
	"unsafe"
)

func TestGotoAddressStartsNull(t *testing.T) {
	var g GotoAddress
	if g.Target() != nil {
		t.Error("fresh jump target should be null")
	}
}

func TestGotoAddressPublish(t *testing.T) {
	var g GotoAddress
	entry := unsafe.Pointer(&struct{}{})
	g.Set(entry)
	if got := g.Target(); got != entry {
		t.Errorf("Target() = %p, want %p", got, entry)
	}
}

func TestGotoAddressHandoff(t *testing.T) {
	// model the dispatch edge: everything written before Set must be
	// visible to whoever observes the non-null target
	var g GotoAddress
	payload := new(uint64)
	done := make(chan uint64)

	go func() {
		for g.Target() == nil {
		}
		done <- *(*uint64)(g.Target())
	}()

	*payload = 0xc0ffee
	g.Set(unsafe.Pointer(payload))

	if got := <-done; got != 0xc0ffee {
		t.Errorf("woken side read %#x, want 0xc0ffee", got)
	}
}

func TestMPRequestFlags(t *testing.T) {
	r := NewMPRequest()
	if r.Flags() != 0 {
		t.Errorf("default flags %#x, want 0", r.Flags())
	}
	r = r.WithFlags(1 << 0)
	if r.Flags() != 1<<0 {
		t.Errorf("flags %#x after WithFlags, want 1", r.Flags())
	}
	if r.ID() != RequestIDTable["mp"] {
		t.Error("WithFlags disturbed the id")
	}
}
