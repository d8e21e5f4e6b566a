package limine

// MemmapType tags a memory map entry with its region type.  Future
// protocol revisions may add codes; unknown values pass through
// undisturbed.
type MemmapType uint64

const (
	// MemmapUsable memory is free for the executable to use.
	MemmapUsable MemmapType = 0
	// MemmapReserved memory must not be touched.
	MemmapReserved MemmapType = 1
	// MemmapACPIReclaimable memory holds ACPI tables and may be reused
	// once they are no longer needed.
	MemmapACPIReclaimable MemmapType = 2
	// MemmapACPINVS memory is reserved by ACPI and must be preserved
	// across sleep states.
	MemmapACPINVS MemmapType = 3
	// MemmapBadMemory is physically damaged or otherwise unusable.
	MemmapBadMemory MemmapType = 4
	// MemmapBootloaderReclaimable memory backs the responses and other
	// loader state; reusable once every response has been consumed.
	MemmapBootloaderReclaimable MemmapType = 5
	// MemmapExecutableAndModules memory holds the executable and the
	// loaded modules.
	MemmapExecutableAndModules MemmapType = 6
	// MemmapFramebuffer memory is mapped to the framebuffer.
	MemmapFramebuffer MemmapType = 7
)

func (t MemmapType) String() string {
	switch t {
	case MemmapUsable:
		return "usable"
	case MemmapReserved:
		return "reserved"
	case MemmapACPIReclaimable:
		return "ACPI reclaimable"
	case MemmapACPINVS:
		return "ACPI NVS"
	case MemmapBadMemory:
		return "bad memory"
	case MemmapBootloaderReclaimable:
		return "bootloader reclaimable"
	case MemmapExecutableAndModules:
		return "executable and modules"
	case MemmapFramebuffer:
		return "framebuffer"
	}
	return "unknown(" + utoa(uint64(t)) + ")"
}

// MemmapEntry is one region of the physical memory map.  Usable and
// bootloader-reclaimable entries are 4096-byte aligned in base and
// length and never overlap; other types carry no such guarantee.
// Mutating entries (for example to mark reclaimed regions) requires
// holding the response exclusively.
type MemmapEntry struct {
	// Base is the physical address where the region starts.
	Base uint64
	// Length is the size of the region in bytes.
	Length uint64
	// Type tags the region; see MemmapType.
	Type MemmapType
}

// utoa formats n in decimal without pulling strconv into freestanding
// builds.
func utoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
