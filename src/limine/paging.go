package limine

// PagingMode selects a translation scheme.  The codes are
// architecture-specific; see the per-architecture constants.  Unknown
// future codes pass through undisturbed.
type PagingMode uint64
