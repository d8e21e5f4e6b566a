//go:build riscv64

package limine

const (
	// PagingModeSV39 uses 39-bit virtual addresses.
	PagingModeSV39 PagingMode = 0
	// PagingModeSV48 uses 48-bit virtual addresses.
	PagingModeSV48 PagingMode = 1
	// PagingModeSV57 uses 57-bit virtual addresses.
	PagingModeSV57 PagingMode = 2

	PagingModeDefault = PagingModeSV48
	PagingModeMax     = PagingModeSV57
	PagingModeMin     = PagingModeSV39
)
