package limine

import (
	"sync/atomic"
	"testing"
)

func TestBaseRevisionMagic(t *testing.T) {
	br := NewBaseRevision()
	if br.magic0 != 0xf9562b2d5c95a6c8 || br.magic1 != 0x6a7b384944536bdc {
		t.Errorf("bad magic words: %#x %#x", br.magic0, br.magic1)
	}
	if br.revision != LatestBaseRevision {
		t.Errorf("expected revision %d, got %d", LatestBaseRevision, br.revision)
	}
}

func TestBaseRevisionUntouched(t *testing.T) {
	// a loader that does not understand the marker leaves it alone,
	// which means "fell back to base revision 0"
	for k := uint64(0); k < 4; k++ {
		br := BaseRevisionWithRevision(k)
		if got, want := br.IsSupported(), k == 0; got != want {
			t.Errorf("revision %d untouched: IsSupported() = %v, want %v", k, got, want)
		}
		if _, ok := br.LoadedRevision(); ok {
			t.Errorf("revision %d untouched: LoadedRevision should be absent", k)
		}
	}
}

func TestBaseRevisionHonored(t *testing.T) {
	br := BaseRevisionWithRevision(3)

	// simulate the loader accepting the revision and echoing what it
	// loaded
	atomic.StoreUint64(&br.magic1, 3)
	atomic.StoreUint64(&br.revision, 0)

	if !br.IsSupported() {
		t.Error("zeroed cell should report supported")
	}
	m, ok := br.LoadedRevision()
	if !ok || m != 3 {
		t.Errorf("LoadedRevision() = (%d, %v), want (3, true)", m, ok)
	}
	if br.Revision() != 0 {
		t.Errorf("Revision() = %d after honor, want 0", br.Revision())
	}
}
