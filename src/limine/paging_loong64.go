//go:build loong64

package limine

const (
	// PagingModeFourLevel is the only mode loongarch64 defines.
	PagingModeFourLevel PagingMode = 0

	PagingModeDefault = PagingModeFourLevel
	PagingModeMax     = PagingModeFourLevel
	PagingModeMin     = PagingModeFourLevel
)
