//go:build riscv64

package limine

// BSPHartIDRequest asks for the boot processor's hart ID without
// waking the other harts.  Same answer as the MP response's BSPHartID,
// without the side effects.
type BSPHartIDRequest struct {
	header
	response respPtr[BSPHartIDResponse]
}

func NewBSPHartIDRequest() BSPHartIDRequest {
	return BSPHartIDRequestWithRevision(0)
}

func BSPHartIDRequestWithRevision(revision uint64) BSPHartIDRequest {
	return BSPHartIDRequest{header: newHeader(RequestIDTable["bsp hartid"], revision)}
}

func (r *BSPHartIDRequest) Response() (*BSPHartIDResponse, bool) {
	return r.response.get()
}

// BSPHartIDResponse carries the boot processor's hart ID.
type BSPHartIDResponse struct {
	respHeader
	bspHartID uint64
}

// BSPHartID returns the hart ID of the boot processor.
func (r *BSPHartIDResponse) BSPHartID() uint64 {
	return r.bspHartID
}
