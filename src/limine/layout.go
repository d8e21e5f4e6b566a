package limine

import "unsafe"

// The struct layouts in this package are wire contract.  These
// assertions refuse to compile if a field edit (or an unexpected
// padding rule) changes a size; field offsets are pinned by the tests.
var (
	_ [24]byte = [unsafe.Sizeof(BaseRevision{})]byte{}
	_ [32]byte = [unsafe.Sizeof(RequestsStartMarker{})]byte{}
	_ [16]byte = [unsafe.Sizeof(RequestsEndMarker{})]byte{}
	_ [48]byte = [unsafe.Sizeof(BootloaderInfoRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(FirmwareTypeRequest{})]byte{}
	_ [56]byte = [unsafe.Sizeof(StackSizeRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(HHDMRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(FramebufferRequest{})]byte{}
	_ [72]byte = [unsafe.Sizeof(PagingModeRequest{})]byte{}
	_ [56]byte = [unsafe.Sizeof(MPRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(MemoryMapRequest{})]byte{}
	_ [56]byte = [unsafe.Sizeof(EntryPointRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(ExecutableFileRequest{})]byte{}
	_ [64]byte = [unsafe.Sizeof(ModuleRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(RSDPRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(SMBIOSRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(EFISystemTableRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(EFIMemoryMapRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(DateAtBootRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(ExecutableAddressRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(DeviceTreeBlobRequest{})]byte{}
	_ [48]byte = [unsafe.Sizeof(ExecutableCmdlineRequest{})]byte{}
)

var (
	_ [24]byte = [unsafe.Sizeof(BootloaderInfoResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(FirmwareTypeResponse{})]byte{}
	_ [8]byte  = [unsafe.Sizeof(StackSizeResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(HHDMResponse{})]byte{}
	_ [24]byte = [unsafe.Sizeof(FramebufferResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(PagingModeResponse{})]byte{}
	_ [24]byte = [unsafe.Sizeof(MemoryMapResponse{})]byte{}
	_ [8]byte  = [unsafe.Sizeof(EntryPointResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(ExecutableFileResponse{})]byte{}
	_ [24]byte = [unsafe.Sizeof(ModuleResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(RSDPResponse{})]byte{}
	_ [24]byte = [unsafe.Sizeof(SMBIOSResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(EFISystemTableResponse{})]byte{}
	_ [40]byte = [unsafe.Sizeof(EFIMemoryMapResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(DateAtBootResponse{})]byte{}
	_ [24]byte = [unsafe.Sizeof(ExecutableAddressResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(DeviceTreeBlobResponse{})]byte{}
	_ [16]byte = [unsafe.Sizeof(ExecutableCmdlineResponse{})]byte{}
)

var (
	_ [24]byte  = [unsafe.Sizeof(MemmapEntry{})]byte{}
	_ [80]byte  = [unsafe.Sizeof(rawFramebuffer{})]byte{}
	_ [40]byte  = [unsafe.Sizeof(VideoMode{})]byte{}
	_ [112]byte = [unsafe.Sizeof(File{})]byte{}
	_ [24]byte  = [unsafe.Sizeof(InternalModule{})]byte{}
	_ [16]byte  = [unsafe.Sizeof(UUID{})]byte{}
)
