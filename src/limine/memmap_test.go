package limine

import "testing"

func TestMemmapTypeString(t *testing.T) {
	cases := []struct {
		typ  MemmapType
		want string
	}{
		{MemmapUsable, "usable"},
		{MemmapReserved, "reserved"},
		{MemmapACPIReclaimable, "ACPI reclaimable"},
		{MemmapACPINVS, "ACPI NVS"},
		{MemmapBadMemory, "bad memory"},
		{MemmapBootloaderReclaimable, "bootloader reclaimable"},
		{MemmapExecutableAndModules, "executable and modules"},
		{MemmapFramebuffer, "framebuffer"},
		{MemmapType(42), "unknown(42)"},
	}
	for _, tc := range cases {
		if got := tc.typ.String(); got != tc.want {
			t.Errorf("MemmapType(%d).String() = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestMemoryMapInvariants(t *testing.T) {
	// a map shaped like what a loader actually hands over: sorted,
	// usable and bootloader reclaimable entries page aligned and
	// non-overlapping
	entries := []*MemmapEntry{
		{Base: 0x0000, Length: 0x1000, Type: MemmapReserved},
		{Base: 0x1000, Length: 0x9e000, Type: MemmapUsable},
		{Base: 0x9f000, Length: 0x61000, Type: MemmapReserved},
		{Base: 0x100000, Length: 0x700000, Type: MemmapExecutableAndModules},
		{Base: 0x800000, Length: 0x100000, Type: MemmapBootloaderReclaimable},
		{Base: 0x900000, Length: 0x3700000, Type: MemmapUsable},
		{Base: 0xfd000000, Length: 0x300000, Type: MemmapFramebuffer},
	}
	resp := &MemoryMapResponse{entryCount: uint64(len(entries)), entries: &entries[0]}

	got := resp.Entries()
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
	for i, e := range got {
		if i > 0 && e.Base < got[i-1].Base+got[i-1].Length {
			t.Errorf("entry %d at %#x overlaps or precedes its predecessor", i, e.Base)
		}
		switch e.Type {
		case MemmapUsable, MemmapBootloaderReclaimable:
			if e.Base%0x1000 != 0 || e.Length%0x1000 != 0 {
				t.Errorf("entry %d (%v) not page aligned: base %#x length %#x",
					i, e.Type, e.Base, e.Length)
			}
		}
	}
}

func TestFirmwareTypeString(t *testing.T) {
	cases := []struct {
		typ  FirmwareType
		want string
	}{
		{FirmwareTypeX86BIOS, "x86 BIOS"},
		{FirmwareTypeUEFI32, "32-bit UEFI"},
		{FirmwareTypeUEFI64, "64-bit UEFI"},
		{FirmwareTypeSBI, "SBI"},
		{FirmwareType(9), "unknown(9)"},
	}
	for _, tc := range cases {
		if got := tc.typ.String(); got != tc.want {
			t.Errorf("FirmwareType(%d).String() = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestUtoa(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{18446744073709551615, "18446744073709551615"},
	}
	for _, tc := range cases {
		if got := utoa(tc.n); got != tc.want {
			t.Errorf("utoa(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
