package limine

import (
	"sync/atomic"
	"testing"
	"unsafe"
)

// the identification words are wire contract and restated literally
// here so a constant edit cannot silently pass
var wireIDs = []struct {
	name string
	id   [4]uint64
	got  [4]uint64
}{
	{"bootloader info", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0xf55038d8e2a1202f, 0x279426fcf5f59740}, idOf(NewBootloaderInfoRequest())},
	{"firmware type", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x8c2f75d90bef28a8, 0x7045a4688eac00c3}, idOf(NewFirmwareTypeRequest())},
	{"stack size", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x224ef0460a8e8926, 0xe1cb0fc25f46ea3d}, idOf(NewStackSizeRequest().WithSize(0x32000))},
	{"hhdm", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x48dcf1cb8ad2b852, 0x63984e959a98244b}, idOf(NewHHDMRequest())},
	{"framebuffer", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x9d5827dcd881dd75, 0xa3148604f6fab11b}, idOf(NewFramebufferRequest())},
	{"paging mode", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x95c1a0edab0944cb, 0xa4e5cb3842f7488a}, idOf(NewPagingModeRequest().WithMode(PagingModeDefault))},
	{"mp", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x95a67b819a1b857e, 0xa0b61b723b6a73e0}, idOf(NewMPRequest())},
	{"memory map", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x67cf3d9d378a806f, 0xe304acdfc50c3c62}, idOf(NewMemoryMapRequest())},
	{"entry point", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x13d86c035a1cd3e1, 0x2b0caa89d8f3026a}, idOf(NewEntryPointRequest().WithEntry(0xffffffff80000000))},
	{"executable file", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0xad97e90e83f1ed67, 0x31eb5d1c5ff23b69}, idOf(NewExecutableFileRequest())},
	{"module", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x3e7e279702be32af, 0xca1c4f3bd1280cee}, idOf(NewModuleRequest())},
	{"rsdp", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0xc5e77b6b397e7b43, 0x27637845accdcf3c}, idOf(NewRSDPRequest())},
	{"smbios", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x9e9046f11e095391, 0xaa4a520fefbde5ee}, idOf(NewSMBIOSRequest())},
	{"efi system table", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x5ceba5163eaaf6d6, 0x0a6981610cf65fcc}, idOf(NewEFISystemTableRequest())},
	{"efi memory map", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x7df62a431d6872d5, 0xa4fcdfb3e57306c8}, idOf(NewEFIMemoryMapRequest())},
	{"date at boot", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x502746e184c088aa, 0xfbc5ec83e6327893}, idOf(NewDateAtBootRequest())},
	{"executable address", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x71ba76863cc55f63, 0xb2644a48c516a487}, idOf(NewExecutableAddressRequest())},
	{"device tree blob", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0xb40ddb48fb54bac7, 0x545081493f81ffb7}, idOf(NewDeviceTreeBlobRequest())},
	{"executable cmdline", [4]uint64{0xc7b1dd30df4c8b88, 0x0a82e883a194f07b, 0x4b161536e598651e, 0xb390ad4a2f1f303a}, idOf(NewExecutableCmdlineRequest())},
}

type identified interface {
	ID() [4]uint64
}

func idOf[R any](req R) [4]uint64 {
	r := &req
	return any(r).(identified).ID()
}

func TestRequestIDs(t *testing.T) {
	for _, tc := range wireIDs {
		if tc.got != tc.id {
			t.Errorf("%s: id %#x, want %#x", tc.name, tc.got, tc.id)
		}
		if got, ok := RequestIDTable[tc.name]; !ok || got != tc.id {
			t.Errorf("%s: RequestIDTable disagrees: %#x", tc.name, got)
		}
	}
}

func TestRequestIDSurvivesSetters(t *testing.T) {
	// configuration must never disturb the identification words
	r := NewPagingModeRequest().
		WithMinMode(PagingModeMin).
		WithMaxMode(PagingModeMax).
		WithMode(PagingModeDefault)
	if got := r.ID(); got != RequestIDTable["paging mode"] {
		t.Errorf("setters disturbed the id: %#x", got)
	}
	if r.Revision() != 1 {
		t.Errorf("expected revision 1, got %d", r.Revision())
	}
}

func TestResponseAbsentBeforeHandoff(t *testing.T) {
	mm := NewMemoryMapRequest()
	if _, ok := mm.Response(); ok {
		t.Error("memory map response present before any foreign write")
	}
	fb := NewFramebufferRequest()
	if _, ok := fb.Response(); ok {
		t.Error("framebuffer response present before any foreign write")
	}
	ss := NewStackSizeRequest().WithSize(64 * 1024)
	if _, ok := ss.Response(); ok {
		t.Error("stack size response present before any foreign write")
	}
}

func TestResponseVisibleAfterForeignWrite(t *testing.T) {
	req := HHDMRequestWithRevision(0)
	want := &HHDMResponse{respHeader: respHeader{revision: 0}, offset: 0xffff800000000000}

	// simulate the loader publishing the response pointer
	atomic.StorePointer(&req.response.p, unsafe.Pointer(want))

	got, ok := req.Response()
	if !ok {
		t.Fatal("response absent after foreign write")
	}
	if got != want {
		t.Fatal("response accessor returned a different object")
	}
	if got.Offset() != 0xffff800000000000 {
		t.Errorf("offset %#x, want %#x", got.Offset(), uint64(0xffff800000000000))
	}
}

func TestStackSizeRoundTrip(t *testing.T) {
	r := NewStackSizeRequest().WithSize(0x32000)
	if r.Size() != 0x32000 {
		t.Errorf("size %#x, want 0x32000", r.Size())
	}
}

func TestPagingModeSetterOrder(t *testing.T) {
	a := NewPagingModeRequest().WithMode(PagingModeDefault).WithMaxMode(PagingModeMax)
	b := NewPagingModeRequest().WithMaxMode(PagingModeMax).WithMode(PagingModeDefault)
	if a != b {
		t.Error("commuting setters produced different layouts")
	}
}

func TestInternalModules(t *testing.T) {
	mods := []*InternalModule{
		ptrTo(NewInternalModule().WithPath("/boot/initrd").WithFlags(ModuleRequired)),
		ptrTo(NewInternalModule().WithPath("/boot/cfg").WithCmdline("quiet").WithFlags(ModuleCompressed)),
	}
	r := NewModuleRequest().WithInternalModules(mods)

	got := r.InternalModules()
	if len(got) != 2 {
		t.Fatalf("expected 2 internal modules, got %d", len(got))
	}
	if got[0].Path() != "/boot/initrd" || got[0].Flags() != ModuleRequired {
		t.Errorf("module 0 mangled: %q %v", got[0].Path(), got[0].Flags())
	}
	if got[1].Cmdline() != "quiet" || got[1].Flags() != ModuleCompressed {
		t.Errorf("module 1 mangled: %q %v", got[1].Cmdline(), got[1].Flags())
	}

	none := NewModuleRequest().WithInternalModules(nil)
	if len(none.InternalModules()) != 0 {
		t.Error("empty module list should stay empty")
	}
}

func ptrTo[T any](v T) *T {
	return &v
}
