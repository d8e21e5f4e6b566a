package limine

// Responses are written by the bootloader before control transfer and
// never change afterwards, except for the fields the protocol hands to
// the executable (the jump target and scratch word of a CPU
// descriptor).  Fields added by a later revision may only be read when
// the response's own revision says so.

// respHeader is the revision word that starts every response.
type respHeader struct {
	revision uint64
}

// Revision returns the revision of the response.  It gates which
// fields are safe to interpret and may be lower than what the request
// asked for.
func (h *respHeader) Revision() uint64 {
	return h.revision
}

// BootloaderInfoResponse carries the loader's name and version.
type BootloaderInfoResponse struct {
	respHeader
	name    cstr
	version cstr
}

// Name returns the name of the loading bootloader.
func (r *BootloaderInfoResponse) Name() string {
	return r.name.str()
}

// Version returns the version of the loading bootloader.
func (r *BootloaderInfoResponse) Version() string {
	return r.version.str()
}

// FirmwareTypeResponse carries the firmware type.
type FirmwareTypeResponse struct {
	respHeader
	firmwareType FirmwareType
}

func (r *FirmwareTypeResponse) FirmwareType() FirmwareType {
	return r.firmwareType
}

// StackSizeResponse has no fields.  Its presence means the loader
// complied with the requested stack size.
type StackSizeResponse struct {
	respHeader
}

// HHDMResponse carries the higher-half direct map offset.
type HHDMResponse struct {
	respHeader
	offset uint64
}

// Offset returns the fixed offset between physical addresses and their
// higher-half virtual aliases.  Adding it converts physical to
// virtual; subtracting converts any higher-half virtual address back.
// Addresses inside the executable's own code need the executable
// address response instead.
func (r *HHDMResponse) Offset() uint64 {
	return r.offset
}

// FramebufferResponse carries the framebuffers set up by the loader.
type FramebufferResponse struct {
	respHeader
	framebufferCount uint64
	framebuffers     **rawFramebuffer
}

// Framebuffers returns one revision-tagged view per framebuffer.  The
// count and base pointer come from the same response snapshot.
func (r *FramebufferResponse) Framebuffers() []Framebuffer {
	raw := loadSlice(r.framebuffers, r.framebufferCount)
	if raw == nil {
		return nil
	}
	fbs := make([]Framebuffer, len(raw))
	for i, fb := range raw {
		fbs[i] = Framebuffer{revision: r.revision, raw: fb}
	}
	return fbs
}

// PagingModeResponse carries the paging mode the loader enabled.
type PagingModeResponse struct {
	respHeader
	mode PagingMode
}

func (r *PagingModeResponse) Mode() PagingMode {
	return r.mode
}

// MemoryMapResponse carries the physical memory map.
type MemoryMapResponse struct {
	respHeader
	entryCount uint64
	entries    **MemmapEntry
}

// Entries returns the memory map, sorted ascending by base address.
func (r *MemoryMapResponse) Entries() []*MemmapEntry {
	return loadSlice(r.entries, r.entryCount)
}

// EntryPointResponse has no fields.  Its presence means the loader
// honored the entry point override.
type EntryPointResponse struct {
	respHeader
}

// ExecutableFileResponse carries the descriptor of the loaded
// executable.
type ExecutableFileResponse struct {
	respHeader
	file Ptr[File]
}

// File returns the executable's file descriptor.
func (r *ExecutableFileResponse) File() (*File, bool) {
	return r.file.Get()
}

// ModuleResponse carries the descriptors of the loaded modules.
type ModuleResponse struct {
	respHeader
	moduleCount uint64
	modules     **File
}

// Modules returns one descriptor per loaded module, configuration
// modules first, then internal modules in request order.
func (r *ModuleResponse) Modules() []*File {
	return loadSlice(r.modules, r.moduleCount)
}

// RSDPResponse carries the address of the ACPI RSDP table.
type RSDPResponse struct {
	respHeader
	address uintptr
}

// Address returns the physical address of the RSDP table.
func (r *RSDPResponse) Address() uintptr {
	return r.address
}

// SMBIOSResponse carries the SMBIOS entry point addresses.
type SMBIOSResponse struct {
	respHeader
	entry32 uintptr
	entry64 uintptr
}

// Entry32 returns the address of the 32-bit entry point, if present.
func (r *SMBIOSResponse) Entry32() (uintptr, bool) {
	return r.entry32, r.entry32 != 0
}

// Entry64 returns the address of the 64-bit entry point, if present.
func (r *SMBIOSResponse) Entry64() (uintptr, bool) {
	return r.entry64, r.entry64 != 0
}

// EFISystemTableResponse carries the address of the EFI system table.
type EFISystemTableResponse struct {
	respHeader
	address uintptr
}

func (r *EFISystemTableResponse) Address() uintptr {
	return r.address
}

// EFIMemoryMapResponse carries the raw EFI memory map.  The descriptor
// layout is firmware-defined; this layer hands it over untyped.
type EFIMemoryMapResponse struct {
	respHeader
	memmap      Ptr[byte]
	memmapSize  uint64
	descSize    uint64
	descVersion uint32
}

// Memmap returns the base of the EFI memory map.
func (r *EFIMemoryMapResponse) Memmap() (*byte, bool) {
	return r.memmap.Get()
}

// MemmapSize returns the total size of the map in bytes.
func (r *EFIMemoryMapResponse) MemmapSize() uint64 {
	return r.memmapSize
}

// DescSize returns the size of one descriptor in bytes.
func (r *EFIMemoryMapResponse) DescSize() uint64 {
	return r.descSize
}

// DescVersion returns the firmware's descriptor version.
func (r *EFIMemoryMapResponse) DescVersion() uint32 {
	return r.descVersion
}

// DateAtBootResponse carries the RTC time at boot.
type DateAtBootResponse struct {
	respHeader
	timestamp int64
}

// Timestamp returns the boot time as a unix timestamp in seconds.
func (r *DateAtBootResponse) Timestamp() int64 {
	return r.timestamp
}

// ExecutableAddressResponse carries the executable's load addresses.
// phys = virt - VirtualBase + PhysicalBase converts an address inside
// the executable.
type ExecutableAddressResponse struct {
	respHeader
	physicalBase uint64
	virtualBase  uint64
}

func (r *ExecutableAddressResponse) PhysicalBase() uint64 {
	return r.physicalBase
}

func (r *ExecutableAddressResponse) VirtualBase() uint64 {
	return r.virtualBase
}

// DeviceTreeBlobResponse carries the device tree blob address.  The
// blob does not reflect boot-time memory reservations; use the memory
// map for that.
type DeviceTreeBlobResponse struct {
	respHeader
	dtb Ptr[byte]
}

// DTB returns the base of the flattened device tree.
func (r *DeviceTreeBlobResponse) DTB() (*byte, bool) {
	return r.dtb.Get()
}

// ExecutableCmdlineResponse carries the executable's command line.
type ExecutableCmdlineResponse struct {
	respHeader
	cmdline cstr
}

// Cmdline returns the command line, which may be empty.
func (r *ExecutableCmdlineResponse) Cmdline() string {
	return r.cmdline.str()
}
