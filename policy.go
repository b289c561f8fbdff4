package charview

// The three policy axes are orthogonal and resolved when a view is
// constructed (or re-configured with WithPolicy); every operation on the
// view then runs with exactly one behavior per axis.

// EvalMode selects which form of the core primitives a view calls.
type EvalMode uint8

const (
	// EvalIterative runs the loop-based primitives. This is the default
	// and avoids unbounded recursion depth on long content.
	EvalIterative EvalMode = iota

	// EvalRecursive runs the recursive primitives. Both forms produce
	// identical results for every input.
	EvalRecursive
)

// BoundsMode controls whether indexing and emptiness are validated.
type BoundsMode uint8

const (
	// BoundsChecked validates index < Len() and Len() > 0 before
	// single-unit access. This is the default.
	BoundsChecked BoundsMode = iota

	// BoundsOff skips validation for call sites that have already
	// validated bounds externally. Out-of-range access then behaves as
	// plain slice indexing does.
	BoundsOff
)

// ErrorMode controls what a bounds violation produces. It is consulted
// only under BoundsChecked.
type ErrorMode uint8

const (
	// ErrorRaise aborts the operation and reports ErrOutOfRange or
	// ErrEmptyView. This is the default.
	ErrorRaise ErrorMode = iota

	// ErrorSentinel silently yields the policy's Sentinel unit (or an
	// empty sub-view) and no error.
	ErrorSentinel
)

// Policy bundles the three axes plus the sentinel unit returned by
// single-unit accessors under ErrorSentinel. The zero value is the
// default configuration: iterative, checked, raising, zero sentinel.
type Policy[C Unit] struct {
	Eval     EvalMode
	Bounds   BoundsMode
	Errors   ErrorMode
	Sentinel C
}

// DefaultPolicy returns the zero Policy: iterative evaluation, bounds
// checking on, errors raised.
func DefaultPolicy[C Unit]() Policy[C] {
	return Policy[C]{}
}
