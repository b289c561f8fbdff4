// Package scan implements the low-level search, compare, and hash
// primitives used by the charview package.
//
// Every primitive operates on a (slice, limit) pair and exists in two
// forms that produce bit-identical results: a recursive form with no
// loops or mutable locals, which terminates by shrinking an explicit
// length bound on each call, and an iterative form named with an Iter
// suffix. The charview package selects between them per its evaluation
// policy; this package has no dependency on the view type.
//
// A limit of LenUnknown marks a zero-terminated sequence: its effective
// length is the number of units before the first zero unit, bounded by
// the slice length. Limits larger than the slice are clamped to it.
package scan

// Unit is the character element type the primitives operate on: bytes,
// UTF-16 code units, runes, or 32-bit units. All operations are
// unit-wise, not text-semantic.
type Unit interface {
	~byte | ~uint16 | ~rune | ~uint32
}

const (
	// NotFound is the offset returned when a search fails. It is
	// distinguishable from every valid offset 0..len inclusive.
	NotFound = -1

	// LenUnknown marks a zero-terminated sequence whose length must be
	// determined by scanning for the terminator.
	LenUnknown = -1

	// hashSeed is the initial value of the DJB hash.
	hashSeed = 5381
)
