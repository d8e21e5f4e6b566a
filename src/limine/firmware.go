package limine

// FirmwareType identifies the firmware the machine booted under.
type FirmwareType uint64

const (
	FirmwareTypeX86BIOS FirmwareType = 0
	FirmwareTypeUEFI32  FirmwareType = 1
	FirmwareTypeUEFI64  FirmwareType = 2
	FirmwareTypeSBI     FirmwareType = 3
)

func (t FirmwareType) String() string {
	switch t {
	case FirmwareTypeX86BIOS:
		return "x86 BIOS"
	case FirmwareTypeUEFI32:
		return "32-bit UEFI"
	case FirmwareTypeUEFI64:
		return "64-bit UEFI"
	case FirmwareTypeSBI:
		return "SBI"
	}
	return "unknown(" + utoa(uint64(t)) + ")"
}
