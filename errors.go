package charview

import "errors"

// Both errors report the single failure kind defined here: out-of-range
// access. They are raised only under BoundsChecked with ErrorRaise; no
// other operation can fail.
var (
	// ErrOutOfRange reports an index at or beyond Len().
	ErrOutOfRange = errors.New("charview: index out of range")

	// ErrEmptyView reports a single-unit accessor called on an empty view.
	ErrEmptyView = errors.New("charview: empty view")
)
