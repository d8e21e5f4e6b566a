package limine

import (
	"sync/atomic"
	"unsafe"
)

// Ptr wraps a pointer supplied by the bootloader.  The address may
// legitimately be null; Get is the only way to dereference it.  No
// bounds or alignment checking is done beyond the null check: the
// protocol guarantees that every non-null pointer it hands over is
// valid and naturally aligned.
type Ptr[T any] struct {
	raw *T
}

// Get returns the pointed-to value, or (nil, false) if the address is
// null.  The returned pointer stays valid for the life of the program;
// the bootloader never reclaims response memory on its own.
func (p Ptr[T]) Get() (*T, bool) {
	if p.raw == nil {
		return nil, false
	}
	return p.raw, true
}

// respPtr is the response slot embedded in every request.  The
// bootloader writes it between program load and first instruction, so
// the compiler must never cache or elide reads of it; all access goes
// through sync/atomic.
type respPtr[T any] struct {
	p unsafe.Pointer
}

func (r *respPtr[T]) get() (*T, bool) {
	p := atomic.LoadPointer(&r.p)
	if p == nil {
		return nil, false
	}
	return (*T)(p), true
}

// cstr is a NUL-terminated string in bootloader memory.  The protocol
// guarantees the bytes before the terminator are valid UTF-8; this is
// not re-checked.
type cstr struct {
	raw *byte
}

// str scans forward for the terminator and returns the preceding bytes
// as a string aliasing the bootloader's memory.  It never reads past
// the first zero byte.  A null pointer decodes as "".
func (s cstr) str() string {
	if s.raw == nil {
		return ""
	}
	p := unsafe.Pointer(s.raw)
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return unsafe.String(s.raw, n)
}

// loadSlice builds the typed view over a counted run of element
// pointers.  With a zero count the base pointer is never touched, so a
// null-for-empty encoding is accepted as well.
func loadSlice[T any](base **T, count uint64) []*T {
	if base == nil || count == 0 {
		return nil
	}
	return unsafe.Slice(base, count)
}

var emptyCStr = [1]byte{0}

// CStr copies s into a NUL-terminated buffer and returns a pointer to
// its first byte, suitable for the string fields of an InternalModule.
// Under TinyGo the copy is evaluated at compile time when called from a
// package initializer, which places it in the image where the
// bootloader can read it.
func CStr(s string) *byte {
	if s == "" {
		return &emptyCStr[0]
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}
