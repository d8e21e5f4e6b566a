package limine

// The request structures in this file follow one shape: identification
// header, response slot, then any feature configuration.  Construct
// them with NewXxxRequest (latest revision this package knows) or
// XxxRequestWithRevision, chain the WithXxx setters before freezing the
// value in a package variable, and read the answer back with Response
// after the bootloader has run.

// BootloaderInfoRequest asks for the loader's name and version.
type BootloaderInfoRequest struct {
	header
	response respPtr[BootloaderInfoResponse]
}

func NewBootloaderInfoRequest() BootloaderInfoRequest {
	return BootloaderInfoRequestWithRevision(0)
}

func BootloaderInfoRequestWithRevision(revision uint64) BootloaderInfoRequest {
	return BootloaderInfoRequest{header: newHeader(RequestIDTable["bootloader info"], revision)}
}

// Response returns the bootloader's answer, if the request was honored.
func (r *BootloaderInfoRequest) Response() (*BootloaderInfoResponse, bool) {
	return r.response.get()
}

// FirmwareTypeRequest asks what kind of firmware the machine booted
// under.
type FirmwareTypeRequest struct {
	header
	response respPtr[FirmwareTypeResponse]
}

func NewFirmwareTypeRequest() FirmwareTypeRequest {
	return FirmwareTypeRequestWithRevision(0)
}

func FirmwareTypeRequestWithRevision(revision uint64) FirmwareTypeRequest {
	return FirmwareTypeRequest{header: newHeader(RequestIDTable["firmware type"], revision)}
}

func (r *FirmwareTypeRequest) Response() (*FirmwareTypeResponse, bool) {
	return r.response.get()
}

// StackSizeRequest asks for a boot stack of at least Size bytes instead
// of the loader's default.
type StackSizeRequest struct {
	header
	response respPtr[StackSizeResponse]
	size     uint64
}

func NewStackSizeRequest() StackSizeRequest {
	return StackSizeRequestWithRevision(0)
}

func StackSizeRequestWithRevision(revision uint64) StackSizeRequest {
	return StackSizeRequest{header: newHeader(RequestIDTable["stack size"], revision)}
}

// WithSize sets the requested stack size in bytes.
func (r StackSizeRequest) WithSize(size uint64) StackSizeRequest {
	r.size = size
	return r
}

// Size returns the requested stack size in bytes.
func (r *StackSizeRequest) Size() uint64 {
	return r.size
}

func (r *StackSizeRequest) Response() (*StackSizeResponse, bool) {
	return r.response.get()
}

// HHDMRequest asks for the offset of the higher-half direct map.
type HHDMRequest struct {
	header
	response respPtr[HHDMResponse]
}

func NewHHDMRequest() HHDMRequest {
	return HHDMRequestWithRevision(0)
}

func HHDMRequestWithRevision(revision uint64) HHDMRequest {
	return HHDMRequest{header: newHeader(RequestIDTable["hhdm"], revision)}
}

func (r *HHDMRequest) Response() (*HHDMResponse, bool) {
	return r.response.get()
}

// FramebufferRequest asks for the available framebuffers.
type FramebufferRequest struct {
	header
	response respPtr[FramebufferResponse]
}

func NewFramebufferRequest() FramebufferRequest {
	return FramebufferRequestWithRevision(0)
}

func FramebufferRequestWithRevision(revision uint64) FramebufferRequest {
	return FramebufferRequest{header: newHeader(RequestIDTable["framebuffer"], revision)}
}

func (r *FramebufferRequest) Response() (*FramebufferResponse, bool) {
	return r.response.get()
}

// PagingModeRequest negotiates the paging mode the executable will run
// under.  Revision 1 added the acceptable range: the loader picks a
// mode between MinMode and MaxMode, as close to Mode as it can.
type PagingModeRequest struct {
	header
	response respPtr[PagingModeResponse]
	mode     PagingMode
	maxMode  PagingMode
	minMode  PagingMode
}

func NewPagingModeRequest() PagingModeRequest {
	return PagingModeRequestWithRevision(1)
}

func PagingModeRequestWithRevision(revision uint64) PagingModeRequest {
	return PagingModeRequest{
		header:  newHeader(RequestIDTable["paging mode"], revision),
		mode:    PagingModeDefault,
		maxMode: PagingModeDefault,
		minMode: PagingModeMin,
	}
}

// WithMode sets the preferred paging mode.
func (r PagingModeRequest) WithMode(mode PagingMode) PagingModeRequest {
	r.mode = mode
	return r
}

// WithMaxMode sets the highest acceptable paging mode.
func (r PagingModeRequest) WithMaxMode(mode PagingMode) PagingModeRequest {
	r.maxMode = mode
	return r
}

// WithMinMode sets the lowest acceptable paging mode.
func (r PagingModeRequest) WithMinMode(mode PagingMode) PagingModeRequest {
	r.minMode = mode
	return r
}

func (r *PagingModeRequest) Mode() PagingMode    { return r.mode }
func (r *PagingModeRequest) MaxMode() PagingMode { return r.maxMode }
func (r *PagingModeRequest) MinMode() PagingMode { return r.minMode }

func (r *PagingModeRequest) Response() (*PagingModeResponse, bool) {
	return r.response.get()
}

// MemoryMapRequest asks for the physical memory map.  Entries come back
// sorted by base address; usable and bootloader-reclaimable entries are
// page aligned and never overlap.
type MemoryMapRequest struct {
	header
	response respPtr[MemoryMapResponse]
}

func NewMemoryMapRequest() MemoryMapRequest {
	return MemoryMapRequestWithRevision(0)
}

func MemoryMapRequestWithRevision(revision uint64) MemoryMapRequest {
	return MemoryMapRequest{header: newHeader(RequestIDTable["memory map"], revision)}
}

func (r *MemoryMapRequest) Response() (*MemoryMapResponse, bool) {
	return r.response.get()
}

// EntryPointRequest overrides the entry point recorded in the
// executable's headers.  Entry is the code address to jump to; the
// function must never return.
type EntryPointRequest struct {
	header
	response respPtr[EntryPointResponse]
	entry    uintptr
}

func NewEntryPointRequest() EntryPointRequest {
	return EntryPointRequestWithRevision(0)
}

func EntryPointRequestWithRevision(revision uint64) EntryPointRequest {
	return EntryPointRequest{header: newHeader(RequestIDTable["entry point"], revision)}
}

// WithEntry sets the entry point address.
func (r EntryPointRequest) WithEntry(entry uintptr) EntryPointRequest {
	r.entry = entry
	return r
}

// Entry returns the requested entry point address.
func (r *EntryPointRequest) Entry() uintptr {
	return r.entry
}

func (r *EntryPointRequest) Response() (*EntryPointResponse, bool) {
	return r.response.get()
}

// ExecutableFileRequest asks for the file descriptor of the loaded
// executable itself.
type ExecutableFileRequest struct {
	header
	response respPtr[ExecutableFileResponse]
}

func NewExecutableFileRequest() ExecutableFileRequest {
	return ExecutableFileRequestWithRevision(0)
}

func ExecutableFileRequestWithRevision(revision uint64) ExecutableFileRequest {
	return ExecutableFileRequest{header: newHeader(RequestIDTable["executable file"], revision)}
}

func (r *ExecutableFileRequest) Response() (*ExecutableFileResponse, bool) {
	return r.response.get()
}

// ModuleRequest asks for the modules named in the loader's
// configuration.  Revision 1 added internal modules: extra files the
// executable itself asks to have loaded, configuration or not.
type ModuleRequest struct {
	header
	response            respPtr[ModuleResponse]
	internalModuleCount uint64
	internalModules     **InternalModule
}

func NewModuleRequest() ModuleRequest {
	return ModuleRequestWithRevision(1)
}

func ModuleRequestWithRevision(revision uint64) ModuleRequest {
	return ModuleRequest{header: newHeader(RequestIDTable["module"], revision)}
}

// WithInternalModules sets the additional modules to load.  Only
// honored on revision 1 and up.  The slice and everything it points to
// must stay alive for the life of the program.
func (r ModuleRequest) WithInternalModules(modules []*InternalModule) ModuleRequest {
	r.internalModuleCount = uint64(len(modules))
	if len(modules) > 0 {
		r.internalModules = &modules[0]
	} else {
		r.internalModules = nil
	}
	return r
}

// InternalModules returns the extra modules the executable asked for.
func (r *ModuleRequest) InternalModules() []*InternalModule {
	return loadSlice(r.internalModules, r.internalModuleCount)
}

func (r *ModuleRequest) Response() (*ModuleResponse, bool) {
	return r.response.get()
}

// RSDPRequest asks for the address of the ACPI RSDP table.
type RSDPRequest struct {
	header
	response respPtr[RSDPResponse]
}

func NewRSDPRequest() RSDPRequest {
	return RSDPRequestWithRevision(0)
}

func RSDPRequestWithRevision(revision uint64) RSDPRequest {
	return RSDPRequest{header: newHeader(RequestIDTable["rsdp"], revision)}
}

func (r *RSDPRequest) Response() (*RSDPResponse, bool) {
	return r.response.get()
}

// SMBIOSRequest asks for the SMBIOS entry points.
type SMBIOSRequest struct {
	header
	response respPtr[SMBIOSResponse]
}

func NewSMBIOSRequest() SMBIOSRequest {
	return SMBIOSRequestWithRevision(0)
}

func SMBIOSRequestWithRevision(revision uint64) SMBIOSRequest {
	return SMBIOSRequest{header: newHeader(RequestIDTable["smbios"], revision)}
}

func (r *SMBIOSRequest) Response() (*SMBIOSResponse, bool) {
	return r.response.get()
}

// EFISystemTableRequest asks for the address of the EFI system table.
type EFISystemTableRequest struct {
	header
	response respPtr[EFISystemTableResponse]
}

func NewEFISystemTableRequest() EFISystemTableRequest {
	return EFISystemTableRequestWithRevision(0)
}

func EFISystemTableRequestWithRevision(revision uint64) EFISystemTableRequest {
	return EFISystemTableRequest{header: newHeader(RequestIDTable["efi system table"], revision)}
}

func (r *EFISystemTableRequest) Response() (*EFISystemTableResponse, bool) {
	return r.response.get()
}

// EFIMemoryMapRequest asks for the raw EFI memory map, as handed over
// by the firmware.
type EFIMemoryMapRequest struct {
	header
	response respPtr[EFIMemoryMapResponse]
}

func NewEFIMemoryMapRequest() EFIMemoryMapRequest {
	return EFIMemoryMapRequestWithRevision(0)
}

func EFIMemoryMapRequestWithRevision(revision uint64) EFIMemoryMapRequest {
	return EFIMemoryMapRequest{header: newHeader(RequestIDTable["efi memory map"], revision)}
}

func (r *EFIMemoryMapRequest) Response() (*EFIMemoryMapResponse, bool) {
	return r.response.get()
}

// DateAtBootRequest asks for the RTC time at boot.
type DateAtBootRequest struct {
	header
	response respPtr[DateAtBootResponse]
}

func NewDateAtBootRequest() DateAtBootRequest {
	return DateAtBootRequestWithRevision(0)
}

func DateAtBootRequestWithRevision(revision uint64) DateAtBootRequest {
	return DateAtBootRequest{header: newHeader(RequestIDTable["date at boot"], revision)}
}

func (r *DateAtBootRequest) Response() (*DateAtBootResponse, bool) {
	return r.response.get()
}

// ExecutableAddressRequest asks where the executable was placed, in
// both physical and virtual space.
type ExecutableAddressRequest struct {
	header
	response respPtr[ExecutableAddressResponse]
}

func NewExecutableAddressRequest() ExecutableAddressRequest {
	return ExecutableAddressRequestWithRevision(0)
}

func ExecutableAddressRequestWithRevision(revision uint64) ExecutableAddressRequest {
	return ExecutableAddressRequest{header: newHeader(RequestIDTable["executable address"], revision)}
}

func (r *ExecutableAddressRequest) Response() (*ExecutableAddressResponse, bool) {
	return r.response.get()
}

// DeviceTreeBlobRequest asks for the device tree blob, if the platform
// has one.
type DeviceTreeBlobRequest struct {
	header
	response respPtr[DeviceTreeBlobResponse]
}

func NewDeviceTreeBlobRequest() DeviceTreeBlobRequest {
	return DeviceTreeBlobRequestWithRevision(0)
}

func DeviceTreeBlobRequestWithRevision(revision uint64) DeviceTreeBlobRequest {
	return DeviceTreeBlobRequest{header: newHeader(RequestIDTable["device tree blob"], revision)}
}

func (r *DeviceTreeBlobRequest) Response() (*DeviceTreeBlobResponse, bool) {
	return r.response.get()
}

// ExecutableCmdlineRequest asks for the command line passed to the
// executable.
type ExecutableCmdlineRequest struct {
	header
	response respPtr[ExecutableCmdlineResponse]
}

func NewExecutableCmdlineRequest() ExecutableCmdlineRequest {
	return ExecutableCmdlineRequestWithRevision(0)
}

func ExecutableCmdlineRequestWithRevision(revision uint64) ExecutableCmdlineRequest {
	return ExecutableCmdlineRequest{header: newHeader(RequestIDTable["executable cmdline"], revision)}
}

func (r *ExecutableCmdlineRequest) Response() (*ExecutableCmdlineResponse, bool) {
	return r.response.get()
}
