package limine

import "sync/atomic"

// LatestBaseRevision is the highest base revision this package knows.
const LatestBaseRevision = 3

// The two magic words of the base revision marker.  The second doubles
// as the revision echo slot, so it only survives in images on disk and
// under loaders older than base revision 3.
const (
	BaseRevisionMagic0 = 0xf9562b2d5c95a6c8
	BaseRevisionMagic1 = 0x6a7b384944536bdc
)

// BaseRevision advertises, at a known spot in the executable image, the
// base protocol revision the executable expects.  Place exactly one as
// a package variable.
//
// A bootloader that understands the requested revision zeroes the
// revision cell; one that additionally speaks base revision 3 or newer
// echoes the revision it actually loaded into the second magic word.
// An untouched structure means the loader fell back to base revision 0.
type BaseRevision struct {
	magic0   uint64
	magic1   uint64
	revision uint64
}

// NewBaseRevision creates a marker requesting the latest base revision.
func NewBaseRevision() BaseRevision {
	return BaseRevisionWithRevision(LatestBaseRevision)
}

// BaseRevisionWithRevision creates a marker requesting the given base
// revision.
func BaseRevisionWithRevision(revision uint64) BaseRevision {
	return BaseRevision{
		magic0:   BaseRevisionMagic0,
		magic1:   BaseRevisionMagic1,
		revision: revision,
	}
}

// IsSupported reports whether the bootloader accepted the requested
// base revision.  The cell is foreign-written, so the read is atomic;
// a plain load could legally be cached from before control transfer.
func (b *BaseRevision) IsSupported() bool {
	return atomic.LoadUint64(&b.revision) == 0
}

// LoadedRevision returns the base revision the bootloader actually
// loaded, if it reported one.  Bootloaders predating base revision 3
// never write the echo word, in which case ok is false.
func (b *BaseRevision) LoadedRevision() (revision uint64, ok bool) {
	m := atomic.LoadUint64(&b.magic1)
	if m == BaseRevisionMagic1 {
		return 0, false
	}
	return m, true
}

// Revision returns the current value of the revision cell: the
// requested revision before handoff, zero afterwards if the request was
// honored.
func (b *BaseRevision) Revision() uint64 {
	return atomic.LoadUint64(&b.revision)
}
