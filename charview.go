package charview

import (
	"unsafe"

	"github.com/sbt-go/charview/internal/scan"
)

// Unit is the character element type a view is parameterized over.
type Unit = scan.Unit

// NotFound is the offset returned when a search fails.
const NotFound = scan.NotFound

// Convenience instantiations matching the common unit widths.
type (
	ByteView = View[byte]
	U16View  = View[uint16]
	RuneView = View[rune]
	U32View  = View[uint32]
)

// View is a non-owning, read-only view over a contiguous run of
// character units. It is a trivially copyable value: copying a view
// never copies the viewed units, and sub-views produced by FrontN,
// BackN, and Substr share the backing buffer.
//
// A view never mutates or frees its buffer, and the buffer must outlive
// every view derived from it; that is a caller obligation the type does
// not enforce.
type View[C Unit] struct {
	data []C
	pol  Policy[C]
}

// New returns a view over units with the length taken as given.
func New[C Unit](units []C) View[C] {
	return View[C]{data: units}
}

// NewZ returns a view over a zero-terminated buffer. The length is
// computed by scanning for the terminator; the terminator itself is not
// part of the view. A buffer with no terminator is viewed whole.
func NewZ[C Unit](units []C) View[C] {
	return View[C]{data: units[:scan.LengthIter(units)]}
}

// Of returns a byte view over the contents of s without copying them.
// String immutability makes the shared backing safe to read.
func Of(s string) View[byte] {
	if len(s) == 0 {
		return View[byte]{}
	}
	return View[byte]{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// OfString returns a view over a fresh unit conversion of s: bytes for
// byte units, UTF-16 code units for 16-bit units, code points otherwise.
func OfString[C Unit](s string) View[C] {
	return View[C]{data: unitsOf[C](s)}
}

// WithPolicy returns a copy of v using p. The view itself is unchanged.
func (v View[C]) WithPolicy(p Policy[C]) View[C] {
	return View[C]{data: v.data, pol: p}
}

// Policy returns the active policy.
func (v View[C]) Policy() Policy[C] { return v.pol }

// Len returns the number of units in the view.
func (v View[C]) Len() int { return len(v.data) }

// Empty reports whether the view has no units.
func (v View[C]) Empty() bool { return len(v.data) == 0 }

// Data returns the backing units. The slice is shared, not copied, and
// must not be mutated while any view over it is in use.
func (v View[C]) Data() []C { return v.data }

// fail resolves a detected bounds violation per the error policy.
func (v View[C]) fail(err error) (C, error) {
	if v.pol.Errors == ErrorSentinel {
		return v.pol.Sentinel, nil
	}
	var zero C
	return zero, err
}

// At returns the unit at index i. Under BoundsChecked an out-of-range i
// raises ErrOutOfRange or yields the sentinel unit, per the error
// policy; under BoundsOff the access is unchecked.
func (v View[C]) At(i int) (C, error) {
	if v.pol.Bounds == BoundsChecked && (i < 0 || i >= len(v.data)) {
		return v.fail(ErrOutOfRange)
	}
	return v.data[i], nil
}

// Front returns the first unit. On an empty view it raises ErrEmptyView
// or yields the sentinel unit, per the error policy.
func (v View[C]) Front() (C, error) {
	if v.pol.Bounds == BoundsChecked && len(v.data) == 0 {
		return v.fail(ErrEmptyView)
	}
	return v.data[0], nil
}

// Back returns the last unit, with the same empty-view behavior as Front.
func (v View[C]) Back() (C, error) {
	if v.pol.Bounds == BoundsChecked && len(v.data) == 0 {
		return v.fail(ErrEmptyView)
	}
	return v.data[len(v.data)-1], nil
}

func (v View[C]) sub(i, n int) View[C] {
	return View[C]{data: v.data[i : i+n], pol: v.pol}
}

// FrontN returns a sub-view of the first n units, clamped to Len().
func (v View[C]) FrontN(n int) View[C] {
	if n < 0 {
		n = 0
	}
	if n > len(v.data) {
		n = len(v.data)
	}
	return v.sub(0, n)
}

// BackN returns a sub-view of the last n units, clamped to Len().
func (v View[C]) BackN(n int) View[C] {
	if n < 0 {
		n = 0
	}
	if n > len(v.data) {
		n = len(v.data)
	}
	return v.sub(len(v.data)-n, n)
}

// Substr returns a sub-view starting at i spanning up to n units,
// clamped to the available length; n < 0 means the rest of the view.
// An i beyond Len() triggers the configured error behavior: under
// ErrorRaise an ErrOutOfRange, under ErrorSentinel an empty view.
func (v View[C]) Substr(i, n int) (View[C], error) {
	if i < 0 || i > len(v.data) {
		if v.pol.Bounds == BoundsChecked {
			if v.pol.Errors == ErrorSentinel {
				return View[C]{pol: v.pol}, nil
			}
			return View[C]{pol: v.pol}, ErrOutOfRange
		}
		// Unchecked: clamp rather than fault.
		if i < 0 {
			i = 0
		} else {
			i = len(v.data)
		}
	}
	end := len(v.data)
	if n >= 0 && n < end-i {
		end = i + n
	}
	return View[C]{data: v.data[i:end], pol: v.pol}, nil
}

// TrimSpace returns a sub-view with leading and trailing whitespace
// (space, tab, newline, vertical tab, form feed, carriage return)
// removed. Whitespace-only or empty input yields an empty view.
func (v View[C]) TrimSpace() View[C] {
	ws := []C{' ', '\t', '\n', '\v', '\f', '\r'}
	lo := v.indexNotAny(ws, len(ws))
	if lo == NotFound {
		return View[C]{pol: v.pol}
	}
	hi := v.lastIndexNotAny(ws, len(ws))
	return v.sub(lo, hi-lo+1)
}

// Less reports whether v orders before o, consistent with Compare.
func (v View[C]) Less(o View[C]) bool {
	return v.Compare(o) < 0
}
