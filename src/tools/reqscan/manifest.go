package reqscan

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"limine/src/limine"
)

// Manifest declares what an image is supposed to ask its loader for.
//
//	required = ["framebuffer", "memory map"]
//	base_revision = 3
//	section = true
type Manifest struct {
	// Required lists request kinds that must be present.
	Required []string `toml:"required"`
	// BaseRevision is the base revision the image must request, or 0 to
	// accept any marker.
	BaseRevision uint64 `toml:"base_revision"`
	// Section requires the dedicated requests section with both
	// delimiting markers.
	Section bool `toml:"section"`
}

// LoadManifest reads a TOML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, err
	}
	for _, name := range m.Required {
		if _, ok := limine.RequestIDTable[name]; !ok {
			return nil, fmt.Errorf("manifest requires unknown request kind %q", name)
		}
	}
	return &m, nil
}

// Check compares a scan report against the manifest and returns one
// error per violation.
func (m *Manifest) Check(rep *Report) []error {
	var errs []error
	for _, name := range m.Required {
		if _, ok := rep.Find(name); !ok {
			errs = append(errs, fmt.Errorf("required request %q not found in image", name))
		}
	}
	switch len(rep.Revisions) {
	case 0:
		errs = append(errs, fmt.Errorf("no base revision marker in image"))
	case 1:
		if m.BaseRevision != 0 && rep.Revisions[0].Revision != m.BaseRevision {
			errs = append(errs, fmt.Errorf("image requests base revision %d, manifest wants %d",
				rep.Revisions[0].Revision, m.BaseRevision))
		}
	default:
		errs = append(errs, fmt.Errorf("%d base revision markers in image, want exactly one",
			len(rep.Revisions)))
	}
	if m.Section {
		if !rep.HasSection {
			errs = append(errs, fmt.Errorf("image has no %s section", requestsSection))
		}
		if !rep.HasStartMarker || !rep.HasEndMarker {
			errs = append(errs, fmt.Errorf("requests section markers missing (start=%v end=%v)",
				rep.HasStartMarker, rep.HasEndMarker))
		}
	}
	return errs
}
