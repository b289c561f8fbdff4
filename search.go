package charview

import "github.com/sbt-go/charview/internal/scan"

// Each public operation comes in four argument forms: another view, an
// explicit-length unit slice (Units suffix), a zero-terminated unit
// slice (Z suffix), and an owned string (String suffix). All forms of
// an operation share one private core that dispatches to the recursive
// or iterative primitive per the view's evaluation policy.

func (v View[C]) length(p []C) int {
	if v.pol.Eval == EvalRecursive {
		return scan.Length(p)
	}
	return scan.LengthIter(p)
}

func (v View[C]) startsWith(p []C, plimit int) bool {
	if v.pol.Eval == EvalRecursive {
		return scan.StartsWith(v.data, p, len(v.data), plimit)
	}
	return scan.StartsWithIter(v.data, p, len(v.data), plimit)
}

func (v View[C]) endsWith(p []C, plimit int) bool {
	if v.pol.Eval == EvalRecursive {
		return scan.EndsWith(v.data, p, len(v.data), plimit)
	}
	return scan.EndsWithIter(v.data, p, len(v.data), plimit)
}

func (v View[C]) commonLength(p []C, plimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.CommonLength(v.data, p, len(v.data), plimit)
	}
	return scan.CommonLengthIter(v.data, p, len(v.data), plimit)
}

func (v View[C]) compareTo(p []C, plimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.Compare(v.data, p, len(v.data), plimit)
	}
	return scan.CompareIter(v.data, p, len(v.data), plimit)
}

func (v View[C]) contains(p []C, plimit int) bool {
	if v.pol.Eval == EvalRecursive {
		return scan.Contains(v.data, p, len(v.data), plimit)
	}
	return scan.ContainsIter(v.data, p, len(v.data), plimit)
}

func (v View[C]) index(p []C, plimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.Index(v.data, p, len(v.data), plimit)
	}
	return scan.IndexIter(v.data, p, len(v.data), plimit)
}

func (v View[C]) lastIndex(p []C, plimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.LastIndex(v.data, p, len(v.data), plimit)
	}
	return scan.LastIndexIter(v.data, p, len(v.data), plimit)
}

func (v View[C]) indexAny(set []C, slimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.IndexAny(v.data, set, len(v.data), slimit)
	}
	return scan.IndexAnyIter(v.data, set, len(v.data), slimit)
}

func (v View[C]) indexNotAny(set []C, slimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.IndexNotAny(v.data, set, len(v.data), slimit)
	}
	return scan.IndexNotAnyIter(v.data, set, len(v.data), slimit)
}

func (v View[C]) lastIndexAny(set []C, slimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.LastIndexAny(v.data, set, len(v.data), slimit)
	}
	return scan.LastIndexAnyIter(v.data, set, len(v.data), slimit)
}

func (v View[C]) lastIndexNotAny(set []C, slimit int) int {
	if v.pol.Eval == EvalRecursive {
		return scan.LastIndexNotAny(v.data, set, len(v.data), slimit)
	}
	return scan.LastIndexNotAnyIter(v.data, set, len(v.data), slimit)
}

func (v View[C]) equal(p []C, plimit int) bool {
	n := plimit
	if n < 0 {
		n = v.length(p)
	} else if n > len(p) {
		n = len(p)
	}
	return n == len(v.data) && v.commonLength(p, n) == n
}

// HasPrefix reports whether v begins with prefix. An empty prefix
// matches anything, including an empty view.
func (v View[C]) HasPrefix(prefix View[C]) bool { return v.startsWith(prefix.data, len(prefix.data)) }

// HasPrefixUnits is HasPrefix for an explicit-length unit slice.
func (v View[C]) HasPrefixUnits(prefix []C) bool { return v.startsWith(prefix, len(prefix)) }

// HasPrefixZ is HasPrefix for a zero-terminated unit slice.
func (v View[C]) HasPrefixZ(prefix []C) bool { return v.startsWith(prefix, scan.LenUnknown) }

// HasPrefixString is HasPrefix for an owned string.
func (v View[C]) HasPrefixString(prefix string) bool {
	p := unitsOf[C](prefix)
	return v.startsWith(p, len(p))
}

// HasSuffix reports whether v ends with suffix, comparing units back to
// front. An empty suffix matches anything.
func (v View[C]) HasSuffix(suffix View[C]) bool { return v.endsWith(suffix.data, len(suffix.data)) }

// HasSuffixUnits is HasSuffix for an explicit-length unit slice.
func (v View[C]) HasSuffixUnits(suffix []C) bool { return v.endsWith(suffix, len(suffix)) }

// HasSuffixZ is HasSuffix for a zero-terminated unit slice.
func (v View[C]) HasSuffixZ(suffix []C) bool { return v.endsWith(suffix, scan.LenUnknown) }

// HasSuffixString is HasSuffix for an owned string.
func (v View[C]) HasSuffixString(suffix string) bool {
	p := unitsOf[C](suffix)
	return v.endsWith(p, len(p))
}

// Equal reports whether v and o have the same length and units.
func (v View[C]) Equal(o View[C]) bool { return v.equal(o.data, len(o.data)) }

// EqualUnits is Equal for an explicit-length unit slice.
func (v View[C]) EqualUnits(p []C) bool { return v.equal(p, len(p)) }

// EqualZ is Equal for a zero-terminated unit slice.
func (v View[C]) EqualZ(p []C) bool { return v.equal(p, scan.LenUnknown) }

// EqualString is Equal for an owned string.
func (v View[C]) EqualString(s string) bool {
	p := unitsOf[C](s)
	return v.equal(p, len(p))
}

// Compare three-way compares v against o: 0 if equal, +1 if v orders
// after o, -1 if before. The order is lexicographic by unit value,
// extended by length: a view that is a proper prefix of the other
// orders first.
func (v View[C]) Compare(o View[C]) int { return v.compareTo(o.data, len(o.data)) }

// CompareUnits is Compare for an explicit-length unit slice.
func (v View[C]) CompareUnits(p []C) int { return v.compareTo(p, len(p)) }

// CompareZ is Compare for a zero-terminated unit slice.
func (v View[C]) CompareZ(p []C) int { return v.compareTo(p, scan.LenUnknown) }

// CompareString is Compare for an owned string.
func (v View[C]) CompareString(s string) int {
	p := unitsOf[C](s)
	return v.compareTo(p, len(p))
}

// Contains reports whether pattern occurs as a contiguous run anywhere
// in v. An empty pattern is always contained.
func (v View[C]) Contains(pattern View[C]) bool { return v.contains(pattern.data, len(pattern.data)) }

// ContainsUnits is Contains for an explicit-length unit slice.
func (v View[C]) ContainsUnits(pattern []C) bool { return v.contains(pattern, len(pattern)) }

// ContainsZ is Contains for a zero-terminated unit slice.
func (v View[C]) ContainsZ(pattern []C) bool { return v.contains(pattern, scan.LenUnknown) }

// ContainsString is Contains for an owned string.
func (v View[C]) ContainsString(pattern string) bool {
	p := unitsOf[C](pattern)
	return v.contains(p, len(p))
}

// Index returns the leftmost offset at which pattern occurs in v, or
// NotFound. An empty pattern matches at Len(), the degenerate
// end-of-string convention this package uses for both Index and
// LastIndex; Contains still reports true for an empty pattern, so
// Contains(p) == (Index(p) != NotFound) holds for every pattern.
func (v View[C]) Index(pattern View[C]) int { return v.index(pattern.data, len(pattern.data)) }

// IndexUnits is Index for an explicit-length unit slice.
func (v View[C]) IndexUnits(pattern []C) int { return v.index(pattern, len(pattern)) }

// IndexZ is Index for a zero-terminated unit slice.
func (v View[C]) IndexZ(pattern []C) int { return v.index(pattern, scan.LenUnknown) }

// IndexString is Index for an owned string.
func (v View[C]) IndexString(pattern string) int {
	p := unitsOf[C](pattern)
	return v.index(p, len(p))
}

// LastIndex returns the rightmost offset at which pattern occurs in v,
// or NotFound. An empty pattern matches at Len(), as with Index.
func (v View[C]) LastIndex(pattern View[C]) int { return v.lastIndex(pattern.data, len(pattern.data)) }

// LastIndexUnits is LastIndex for an explicit-length unit slice.
func (v View[C]) LastIndexUnits(pattern []C) int { return v.lastIndex(pattern, len(pattern)) }

// LastIndexZ is LastIndex for a zero-terminated unit slice.
func (v View[C]) LastIndexZ(pattern []C) int { return v.lastIndex(pattern, scan.LenUnknown) }

// LastIndexString is LastIndex for an owned string.
func (v View[C]) LastIndexString(pattern string) int {
	p := unitsOf[C](pattern)
	return v.lastIndex(p, len(p))
}

// IndexAny returns the leftmost offset of a unit that is a member of
// set, or NotFound if none is or the set is empty.
func (v View[C]) IndexAny(set View[C]) int { return v.indexAny(set.data, len(set.data)) }

// IndexAnyUnits is IndexAny for an explicit-length unit slice.
func (v View[C]) IndexAnyUnits(set []C) int { return v.indexAny(set, len(set)) }

// IndexAnyZ is IndexAny for a zero-terminated unit slice.
func (v View[C]) IndexAnyZ(set []C) int { return v.indexAny(set, scan.LenUnknown) }

// IndexAnyString is IndexAny for an owned string.
func (v View[C]) IndexAnyString(set string) int {
	p := unitsOf[C](set)
	return v.indexAny(p, len(p))
}

// IndexNotAny returns the leftmost offset of a unit that is not a
// member of set. Every unit is outside the empty set, so an empty set
// matches at offset 0 (and at Len(), which is zero, on an empty view);
// NotFound when every unit is in the set.
func (v View[C]) IndexNotAny(set View[C]) int { return v.indexNotAny(set.data, len(set.data)) }

// IndexNotAnyUnits is IndexNotAny for an explicit-length unit slice.
func (v View[C]) IndexNotAnyUnits(set []C) int { return v.indexNotAny(set, len(set)) }

// IndexNotAnyZ is IndexNotAny for a zero-terminated unit slice.
func (v View[C]) IndexNotAnyZ(set []C) int { return v.indexNotAny(set, scan.LenUnknown) }

// IndexNotAnyString is IndexNotAny for an owned string.
func (v View[C]) IndexNotAnyString(set string) int {
	p := unitsOf[C](set)
	return v.indexNotAny(p, len(p))
}

// LastIndexAny returns the rightmost offset of a unit that is a member
// of set, or NotFound.
func (v View[C]) LastIndexAny(set View[C]) int { return v.lastIndexAny(set.data, len(set.data)) }

// LastIndexAnyUnits is LastIndexAny for an explicit-length unit slice.
func (v View[C]) LastIndexAnyUnits(set []C) int { return v.lastIndexAny(set, len(set)) }

// LastIndexAnyZ is LastIndexAny for a zero-terminated unit slice.
func (v View[C]) LastIndexAnyZ(set []C) int { return v.lastIndexAny(set, scan.LenUnknown) }

// LastIndexAnyString is LastIndexAny for an owned string.
func (v View[C]) LastIndexAnyString(set string) int {
	p := unitsOf[C](set)
	return v.lastIndexAny(p, len(p))
}

// LastIndexNotAny returns the rightmost offset of a unit that is not a
// member of set, or NotFound. An empty set degenerately matches at
// Len(), mirroring IndexNotAny on an empty view.
func (v View[C]) LastIndexNotAny(set View[C]) int { return v.lastIndexNotAny(set.data, len(set.data)) }

// LastIndexNotAnyUnits is LastIndexNotAny for an explicit-length unit slice.
func (v View[C]) LastIndexNotAnyUnits(set []C) int { return v.lastIndexNotAny(set, len(set)) }

// LastIndexNotAnyZ is LastIndexNotAny for a zero-terminated unit slice.
func (v View[C]) LastIndexNotAnyZ(set []C) int { return v.lastIndexNotAny(set, scan.LenUnknown) }

// LastIndexNotAnyString is LastIndexNotAny for an owned string.
func (v View[C]) LastIndexNotAnyString(set string) int {
	p := unitsOf[C](set)
	return v.lastIndexNotAny(p, len(p))
}
