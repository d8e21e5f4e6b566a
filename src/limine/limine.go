// Package limine provides bindings for the Limine boot protocol.
//
// The protocol is a one-shot handoff between a bootloader and the
// executable it loads.  The executable places request structures in its
// own image as statically initialized package variables.  The bootloader
// finds them (by scanning for their magic words, or through a dedicated
// section of pointers), honors the ones it recognizes, and writes a
// pointer to a response structure into each honored request before
// transferring control.  After entry the executable reads the responses
// back through the accessors in this package.
//
// There is no second chance and no error channel: a request whose
// response slot is still empty after entry was either not recognized or
// not honored, and will stay empty forever.
//
// All structures in this package have a fixed layout that is part of the
// protocol's wire contract.  The protocol only exists on 64-bit targets,
// so every pointer-sized field is 8 bytes.
//
// Response memory is owned by the bootloader.  It is never freed; the
// regions backing it are marked bootloader-reclaimable in the memory map
// and may be reclaimed by the executable once it is done with every
// response.
//
// Note on toolchains: the gc compiler runs package initializers at
// runtime, which is too late for the bootloader to see the requests.
// TinyGo evaluates them at compile time and emits the results into the
// data section, so executables consuming this protocol must be built
// with TinyGo.  The package itself compiles with both toolchains so it
// can be tested on the host.
package limine

// The two magic words shared by every request of this protocol family.
// The two words that follow them identify the request kind and never
// change across protocol revisions.
const (
	CommonMagic0 = 0xc7b1dd30df4c8b88
	CommonMagic1 = 0x0a82e883a194f07b
)

func requestID(a, b uint64) [4]uint64 {
	return [4]uint64{CommonMagic0, CommonMagic1, a, b}
}

// RequestIDTable maps every request kind known to this package to its
// four identification words. Tools that scan executable images for
// requests (see src/tools/reqscan) use it to name what they find.
var RequestIDTable = map[string][4]uint64{
	"bootloader info":    requestID(0xf55038d8e2a1202f, 0x279426fcf5f59740),
	"firmware type":      requestID(0x8c2f75d90bef28a8, 0x7045a4688eac00c3),
	"stack size":         requestID(0x224ef0460a8e8926, 0xe1cb0fc25f46ea3d),
	"hhdm":               requestID(0x48dcf1cb8ad2b852, 0x63984e959a98244b),
	"framebuffer":        requestID(0x9d5827dcd881dd75, 0xa3148604f6fab11b),
	"paging mode":        requestID(0x95c1a0edab0944cb, 0xa4e5cb3842f7488a),
	"mp":                 requestID(0x95a67b819a1b857e, 0xa0b61b723b6a73e0),
	"memory map":         requestID(0x67cf3d9d378a806f, 0xe304acdfc50c3c62),
	"entry point":        requestID(0x13d86c035a1cd3e1, 0x2b0caa89d8f3026a),
	"executable file":    requestID(0xad97e90e83f1ed67, 0x31eb5d1c5ff23b69),
	"module":             requestID(0x3e7e279702be32af, 0xca1c4f3bd1280cee),
	"rsdp":               requestID(0xc5e77b6b397e7b43, 0x27637845accdcf3c),
	"smbios":             requestID(0x9e9046f11e095391, 0xaa4a520fefbde5ee),
	"efi system table":   requestID(0x5ceba5163eaaf6d6, 0x0a6981610cf65fcc),
	"efi memory map":     requestID(0x7df62a431d6872d5, 0xa4fcdfb3e57306c8),
	"date at boot":       requestID(0x502746e184c088aa, 0xfbc5ec83e6327893),
	"executable address": requestID(0x71ba76863cc55f63, 0xb2644a48c516a487),
	"device tree blob":   requestID(0xb40ddb48fb54bac7, 0x545081493f81ffb7),
	"executable cmdline": requestID(0x4b161536e598651e, 0xb390ad4a2f1f303a),
	"bsp hartid":         requestID(0x1369359f025525f9, 0x2ff2a56178391bb6),
}
