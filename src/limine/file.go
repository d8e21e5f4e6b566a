package limine

import "unsafe"

// MediaType records where a loaded file came from.
type MediaType uint32

const (
	MediaTypeGeneric MediaType = 0
	MediaTypeOptical MediaType = 1
	MediaTypeTFTP    MediaType = 2
)

func (t MediaType) String() string {
	switch t {
	case MediaTypeGeneric:
		return "generic"
	case MediaTypeOptical:
		return "optical"
	case MediaTypeTFTP:
		return "tftp"
	}
	return "unknown(" + utoa(uint64(t)) + ")"
}

// UUID is a GPT-style identifier.  The zero value means "absent"
// everywhere the protocol uses one.
type UUID struct {
	A uint32
	B uint16
	C uint16
	D [8]byte
}

// IsZero reports whether the UUID is the absent sentinel.
func (u UUID) IsZero() bool {
	return u == UUID{}
}

// File describes one file the bootloader loaded: the executable itself
// or a module.  Optional scalar fields use zero for "absent".
type File struct {
	revision    uint64
	addr        unsafe.Pointer
	size        uint64
	path        cstr
	cmdline     cstr
	mediaType   MediaType
	unused      uint32
	tftpIP      uint32
	tftpPort    uint32
	partition   uint32
	mbrDiskID   uint32
	gptDiskUUID UUID
	gptPartUUID UUID
	partUUID    UUID
}

// Revision returns the revision of the file descriptor.
func (f *File) Revision() uint64 {
	return f.revision
}

// Addr returns the base of the raw file contents.  This is the file as
// loaded from media, not necessarily executable code.
func (f *File) Addr() *byte {
	return (*byte)(f.addr)
}

// Size returns the file's size in bytes.
func (f *File) Size() uint64 {
	return f.size
}

// Contents returns the file's bytes.
func (f *File) Contents() []byte {
	if f.addr == nil || f.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(f.addr), f.size)
}

// Path returns the path the file was loaded from, as given to the
// loader's configuration or the internal module list.
func (f *File) Path() string {
	return f.path.str()
}

// Cmdline returns the command line associated with the file.
func (f *File) Cmdline() string {
	return f.cmdline.str()
}

// Media returns the media type the file came from.
func (f *File) Media() MediaType {
	return f.mediaType
}

// TFTPIP returns the TFTP server address if the file came over TFTP.
func (f *File) TFTPIP() (uint32, bool) {
	return f.tftpIP, f.tftpIP != 0
}

// TFTPPort returns the TFTP server port if the file came over TFTP.
func (f *File) TFTPPort() (uint32, bool) {
	return f.tftpPort, f.tftpPort != 0
}

// Partition returns the 1-based partition index the file was loaded
// from, if any.
func (f *File) Partition() (uint32, bool) {
	return f.partition, f.partition != 0
}

// MBRDiskID returns the MBR disk id, if the file came from an MBR disk.
func (f *File) MBRDiskID() (uint32, bool) {
	return f.mbrDiskID, f.mbrDiskID != 0
}

// GPTDiskUUID returns the GPT disk UUID, if the file came from a GPT
// disk.
func (f *File) GPTDiskUUID() (UUID, bool) {
	return f.gptDiskUUID, !f.gptDiskUUID.IsZero()
}

// GPTPartitionUUID returns the GPT partition UUID, if any.
func (f *File) GPTPartitionUUID() (UUID, bool) {
	return f.gptPartUUID, !f.gptPartUUID.IsZero()
}

// PartitionUUID returns the filesystem partition UUID, if any.
func (f *File) PartitionUUID() (UUID, bool) {
	return f.partUUID, !f.partUUID.IsZero()
}
