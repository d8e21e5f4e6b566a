package limine

import "unsafe"

// MemoryModel describes a framebuffer's pixel encoding.  Only RGB is
// currently defined by the protocol.
type MemoryModel uint8

// MemoryModelRGB is a direct-color RGB framebuffer.
const MemoryModelRGB MemoryModel = 1

// rawFramebuffer is the wire layout of one framebuffer.  Revision 0 of
// the framebuffer response ends at the edid field; revision 1 appended
// the video mode list.  The struct itself carries no revision, which is
// why it is only exposed through the Framebuffer view.
type rawFramebuffer struct {
	addr           uintptr
	width          uint64
	height         uint64
	pitch          uint64
	bpp            uint16
	memoryModel    MemoryModel
	redMaskSize    uint8
	redMaskShift   uint8
	greenMaskSize  uint8
	greenMaskShift uint8
	blueMaskSize   uint8
	blueMaskShift  uint8
	unused         [7]uint8
	edidSize       uint64
	edid           *byte

	// response revision 1+
	modeCount uint64
	modes     **VideoMode
}

// VideoMode is one display mode a framebuffer can be switched to.
type VideoMode struct {
	// Pitch is the distance between rows in bytes.  Padding may make
	// this larger than width*bpp/8.
	Pitch uint64
	// Width in pixels.
	Width uint64
	// Height in pixels.
	Height uint64
	// BPP is bits (not bytes) per pixel.
	BPP uint16
	// MemoryModel is the pixel encoding.
	MemoryModel MemoryModel
	// Mask size and left-shift per color channel, in bits.
	RedMaskSize    uint8
	RedMaskShift   uint8
	GreenMaskSize  uint8
	GreenMaskShift uint8
	BlueMaskSize   uint8
	BlueMaskShift  uint8
}

// Framebuffer is a view over one framebuffer, tagged with the revision
// of the response it came from so that revision-gated fields stay
// inaccessible on old responses.
type Framebuffer struct {
	revision uint64
	raw      *rawFramebuffer
}

// Addr returns the framebuffer's base address.  The protocol does not
// synchronize access to the pixels, and they may be uninitialized at
// boot.
func (f Framebuffer) Addr() uintptr {
	return f.raw.addr
}

// Width in pixels of the current mode.
func (f Framebuffer) Width() uint64 {
	return f.raw.width
}

// Height in pixels of the current mode.
func (f Framebuffer) Height() uint64 {
	return f.raw.height
}

// Pitch is the distance between rows in bytes.
func (f Framebuffer) Pitch() uint64 {
	return f.raw.pitch
}

// BPP is bits (not bytes) per pixel.
func (f Framebuffer) BPP() uint16 {
	return f.raw.bpp
}

// MemoryModel is the pixel encoding of the current mode.
func (f Framebuffer) MemoryModel() MemoryModel {
	return f.raw.memoryModel
}

func (f Framebuffer) RedMaskSize() uint8    { return f.raw.redMaskSize }
func (f Framebuffer) RedMaskShift() uint8   { return f.raw.redMaskShift }
func (f Framebuffer) GreenMaskSize() uint8  { return f.raw.greenMaskSize }
func (f Framebuffer) GreenMaskShift() uint8 { return f.raw.greenMaskShift }
func (f Framebuffer) BlueMaskSize() uint8   { return f.raw.blueMaskSize }
func (f Framebuffer) BlueMaskShift() uint8  { return f.raw.blueMaskShift }

// EDID returns the raw EDID blob of the attached display, if the
// loader found one.
func (f Framebuffer) EDID() ([]byte, bool) {
	if f.raw.edid == nil || f.raw.edidSize == 0 {
		return nil, false
	}
	return unsafe.Slice(f.raw.edid, f.raw.edidSize), true
}

// Modes returns the alternate video modes of this framebuffer.
// Only present on response revision 1 and up.
func (f Framebuffer) Modes() ([]*VideoMode, bool) {
	if f.revision < 1 {
		return nil, false
	}
	return loadSlice(f.raw.modes, f.raw.modeCount), true
}
