package limine

// header is the identification block that starts every request: the two
// common magic words, the two feature words, and the requested
// revision.  The field order is wire contract.
type header struct {
	id       [4]uint64
	revision uint64
}

func newHeader(id [4]uint64, revision uint64) header {
	return header{id: id, revision: revision}
}

// ID returns the request's four identification words.
func (h *header) ID() [4]uint64 {
	return h.id
}

// Revision returns the revision the executable asked for.  A bootloader
// that does not support it silently behaves as if the highest revision
// it does support had been requested; the response's own revision says
// what was actually honored.
func (h *header) Revision() uint64 {
	return h.revision
}

// RequestsStartMarker delimits the beginning of a dedicated requests
// section.  Optional: bootloaders fall back to scanning the whole image
// when no such section exists.
type RequestsStartMarker struct {
	id [4]uint64
}

// NewRequestsStartMarker creates a requests-section start marker.
func NewRequestsStartMarker() RequestsStartMarker {
	return RequestsStartMarker{
		id: [4]uint64{
			0xf6b8f4b39de7d1ae,
			0xfab91a6940fcb9cf,
			0x785c6ed015d3e316,
			0x181e920a7852b9d9,
		},
	}
}

// RequestsEndMarker delimits the end of a dedicated requests section.
type RequestsEndMarker struct {
	id [2]uint64
}

// NewRequestsEndMarker creates a requests-section end marker.
func NewRequestsEndMarker() RequestsEndMarker {
	return RequestsEndMarker{
		id: [2]uint64{0xadc0e0531bb10d03, 0x9572709f31764c62},
	}
}
