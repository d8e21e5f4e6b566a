//go:build amd64 || arm64

package limine

// x86_64 and aarch64 share the same paging mode codes.
const (
	// PagingModeFourLevel is four-level paging, 48-bit virtual
	// addresses on x86_64.
	PagingModeFourLevel PagingMode = 0
	// PagingModeFiveLevel is five-level paging, 52-bit virtual
	// addresses on x86_64.
	PagingModeFiveLevel PagingMode = 1

	PagingModeDefault = PagingModeFourLevel
	PagingModeMax     = PagingModeFiveLevel
	PagingModeMin     = PagingModeFourLevel
)
