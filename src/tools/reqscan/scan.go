// Package reqscan inspects executable images the way a protocol-aware
// bootloader would: it walks the loadable sections looking for the magic
// words of boot requests and reports what it finds.  Useful for checking
// that the compiler actually materialized every request into the data
// section instead of leaving it to runtime initialization.
package reqscan

import (
	"debug/elf"
	"encoding/binary"

	"limine/src/limine"
)

// Request is one boot request found in an image.
type Request struct {
	// Name of the request kind, or empty if the feature words are not
	// known to this tool.
	Name string
	// ID holds the four identification words as found.
	ID [4]uint64
	// Revision the executable asked for.
	Revision uint64
	// Addr is the virtual address of the request structure.
	Addr uint64
	// Section the request lives in.
	Section string
}

// RevisionMarker is one base revision marker found in an image.
type RevisionMarker struct {
	Revision uint64
	Addr     uint64
}

// Report is everything one scan learned about an image.
type Report struct {
	Requests  []Request
	Revisions []RevisionMarker

	// HasSection means the image carries a dedicated requests section,
	// so loaders do not have to scan the whole image.
	HasSection     bool
	HasStartMarker bool
	HasEndMarker   bool
}

// Find returns the first request with the given name, if any.
func (r *Report) Find(name string) (Request, bool) {
	for _, req := range r.Requests {
		if req.Name == name {
			return req, true
		}
	}
	return Request{}, false
}

// featureNames maps the two feature words back to a request kind.
var featureNames = func() map[[2]uint64]string {
	m := make(map[[2]uint64]string, len(limine.RequestIDTable))
	for name, id := range limine.RequestIDTable {
		m[[2]uint64{id[2], id[3]}] = name
	}
	return m
}()

const requestsSection = ".limine_requests"

var (
	startMarker = [4]uint64{0xf6b8f4b39de7d1ae, 0xfab91a6940fcb9cf, 0x785c6ed015d3e316, 0x181e920a7852b9d9}
	endMarker   = [2]uint64{0xadc0e0531bb10d03, 0x9572709f31764c62}
)

// Scan walks every allocated data section of f and reports the requests
// and revision markers found.  The protocol is little endian on every
// target it exists for, and so is the scan.
func Scan(f *elf.File) (*Report, error) {
	rep := &Report{}
	for _, s := range f.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, err
		}
		scanRegion(rep, s.Name, s.Addr, data)
		if s.Name == requestsSection {
			rep.HasSection = true
		}
	}
	return rep, nil
}

// scanRegion looks for magic words at every 8-byte boundary of data,
// which is mapped at virtual address base.
func scanRegion(rep *Report, section string, base uint64, data []byte) {
	word := func(i int) uint64 {
		return binary.LittleEndian.Uint64(data[i*8:])
	}
	n := len(data) / 8
	for i := 0; i < n-1; i++ {
		switch {
		case word(i) == limine.CommonMagic0 && word(i+1) == limine.CommonMagic1:
			// need feature words and the revision behind the magic
			if i+5 > n {
				continue
			}
			id := [4]uint64{word(i), word(i + 1), word(i + 2), word(i + 3)}
			rep.Requests = append(rep.Requests, Request{
				Name:     featureNames[[2]uint64{id[2], id[3]}],
				ID:       id,
				Revision: word(i + 4),
				Addr:     base + uint64(i*8),
				Section:  section,
			})
		case word(i) == limine.BaseRevisionMagic0 && word(i+1) == limine.BaseRevisionMagic1:
			if i+3 > n {
				continue
			}
			rep.Revisions = append(rep.Revisions, RevisionMarker{
				Revision: word(i + 2),
				Addr:     base + uint64(i*8),
			})
		case word(i) == startMarker[0] && i+4 <= n &&
			word(i+1) == startMarker[1] && word(i+2) == startMarker[2] && word(i+3) == startMarker[3]:
			rep.HasStartMarker = true
		case word(i) == endMarker[0] && word(i+1) == endMarker[1]:
			rep.HasEndMarker = true
		}
	}
}
