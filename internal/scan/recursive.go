package scan

// The recursive forms. None of these use a loop or reassign a local;
// every call recurses on a strictly smaller length bound or position.

// norm resolves limit against p: LenUnknown (or any negative) becomes
// the zero-terminated length, anything larger than the slice is clamped
// to it.
func norm[C Unit](p []C, limit int) int {
	if limit < 0 {
		return Length(p)
	}
	if limit > len(p) {
		return len(p)
	}
	return limit
}

// Length returns the number of units in p before a zero terminator, or
// len(p) when no terminator is present.
func Length[C Unit](p []C) int {
	if len(p) == 0 || p[0] == 0 {
		return 0
	}
	return 1 + Length(p[1:])
}

// Hash returns the DJB hash of the first limit units of p, stopping
// early at a zero unit. Units are combined tail to head: for each unit
// h = unit XOR (33*h), seeded with 5381. The hash is stable for equal
// content only; collisions across unequal content are expected.
func Hash[C Unit](p []C, limit int) uint32 {
	return hashTail(p, norm(p, limit))
}

func hashTail[C Unit](p []C, n int) uint32 {
	if n == 0 || p[0] == 0 {
		return hashSeed
	}
	return uint32(p[0]) ^ 33*hashTail(p[1:], n-1)
}

// StartsWith reports whether the first plimit units of pattern are a
// prefix of the first climit units of content. An empty pattern matches
// anything, including empty content.
func StartsWith[C Unit](content, pattern []C, climit, plimit int) bool {
	return startsWith(content, pattern, norm(content, climit), norm(pattern, plimit))
}

func startsWith[C Unit](content, pattern []C, cn, pn int) bool {
	if pn == 0 {
		return true
	}
	if cn == 0 {
		return false
	}
	if content[0] != pattern[0] {
		return false
	}
	return startsWith(content[1:], pattern[1:], cn-1, pn-1)
}

// EndsWith reports whether pattern is a suffix of content, comparing
// units back to front. An empty pattern matches anything.
func EndsWith[C Unit](content, pattern []C, climit, plimit int) bool {
	return endsWith(content, pattern, norm(content, climit)-1, norm(pattern, plimit)-1)
}

func endsWith[C Unit](content, pattern []C, ci, pi int) bool {
	if pi < 0 {
		return true
	}
	if ci < 0 {
		return false
	}
	if content[ci] != pattern[pi] {
		return false
	}
	return endsWith(content, pattern, ci-1, pi-1)
}

// CommonLength returns the number of equal leading units of the two
// sequences, bounded by both limits.
func CommonLength[C Unit](a, b []C, alimit, blimit int) int {
	return commonLength(a, b, norm(a, alimit), norm(b, blimit), 0)
}

func commonLength[C Unit](a, b []C, an, bn, matched int) int {
	if an == 0 || bn == 0 || a[0] != b[0] {
		return matched
	}
	return commonLength(a[1:], b[1:], an-1, bn-1, matched+1)
}

// Compare three-way compares content against pattern: 0 if equal, +1 if
// the first differing unit of content is greater or pattern is a proper
// prefix of content, -1 in the opposite cases. This is conventional
// lexicographic ordering extended by length.
func Compare[C Unit](content, pattern []C, climit, plimit int) int {
	return compare(content, pattern, norm(content, climit), norm(pattern, plimit))
}

func compare[C Unit](content, pattern []C, cn, pn int) int {
	if pn == 0 {
		if cn == 0 {
			return 0
		}
		return 1
	}
	if cn == 0 {
		return -1
	}
	if content[0] > pattern[0] {
		return 1
	}
	if content[0] < pattern[0] {
		return -1
	}
	return compare(content[1:], pattern[1:], cn-1, pn-1)
}

// Contains reports whether pattern occurs as a contiguous run anywhere
// in content. An empty pattern is always contained.
func Contains[C Unit](content, pattern []C, climit, plimit int) bool {
	return contains(content, pattern, norm(content, climit), norm(pattern, plimit))
}

func contains[C Unit](content, pattern []C, cn, pn int) bool {
	if cn < pn {
		return false
	}
	if cn == 0 {
		return pn == 0
	}
	if startsWith(content, pattern, pn, pn) {
		return true
	}
	return contains(content[1:], pattern, cn-1, pn)
}

// Index returns the leftmost offset at which pattern occurs in content,
// or NotFound. An empty pattern matches at an offset equal to the
// content length (the degenerate end-of-string match; LastIndex agrees).
func Index[C Unit](content, pattern []C, climit, plimit int) int {
	return indexAt(content, pattern, norm(content, climit), norm(pattern, plimit), 0)
}

func indexAt[C Unit](content, pattern []C, cn, pn, off int) int {
	if pn == 0 {
		return off + cn
	}
	if cn < pn {
		return NotFound
	}
	if startsWith(content, pattern, pn, pn) {
		return off
	}
	return indexAt(content[1:], pattern, cn-1, pn, off+1)
}

// LastIndex returns the rightmost offset at which pattern occurs in
// content, or NotFound. The scan runs forward, threading the most
// recent match through the recursion. An empty pattern matches at the
// content length, as with Index.
func LastIndex[C Unit](content, pattern []C, climit, plimit int) int {
	return lastIndexAt(content, pattern, norm(content, climit), norm(pattern, plimit), 0, NotFound)
}

func lastIndexAt[C Unit](content, pattern []C, cn, pn, off, found int) int {
	if pn == 0 {
		return off + cn
	}
	if cn < pn {
		return found
	}
	if startsWith(content, pattern, pn, pn) {
		return lastIndexAt(content[1:], pattern, cn-1, pn, off+1, off)
	}
	return lastIndexAt(content[1:], pattern, cn-1, pn, off+1, found)
}

// member reports whether u is one of the first n units of set.
func member[C Unit](set []C, n int, u C) bool {
	if n == 0 {
		return false
	}
	if set[0] == u {
		return true
	}
	return member(set[1:], n-1, u)
}

// IndexAny returns the leftmost offset of a unit that is a member of
// set, or NotFound if there is none or the set is empty.
func IndexAny[C Unit](content, set []C, climit, slimit int) int {
	return indexAnyAt(content, set, norm(content, climit), norm(set, slimit), 0)
}

func indexAnyAt[C Unit](content, set []C, cn, sn, off int) int {
	if cn == 0 || sn == 0 {
		return NotFound
	}
	if member(set, sn, content[0]) {
		return off
	}
	return indexAnyAt(content[1:], set, cn-1, sn, off+1)
}

// IndexNotAny returns the leftmost offset of a unit that is not a
// member of set. Every unit is outside the empty set, so an empty set
// matches at offset 0 of non-empty content and at the content length
// (zero) of empty content; NotFound otherwise when all units are in set.
func IndexNotAny[C Unit](content, set []C, climit, slimit int) int {
	return indexNotAnyAt(content, set, norm(content, climit), norm(set, slimit), 0)
}

func indexNotAnyAt[C Unit](content, set []C, cn, sn, off int) int {
	if cn == 0 {
		if sn == 0 {
			return off
		}
		return NotFound
	}
	if !member(set, sn, content[0]) {
		return off
	}
	return indexNotAnyAt(content[1:], set, cn-1, sn, off+1)
}

// LastIndexAny returns the rightmost offset of a unit that is a member
// of set, or NotFound.
func LastIndexAny[C Unit](content, set []C, climit, slimit int) int {
	return lastIndexAnyAt(content, set, norm(content, climit), norm(set, slimit), 0, NotFound)
}

func lastIndexAnyAt[C Unit](content, set []C, cn, sn, off, found int) int {
	if cn == 0 {
		return found
	}
	if member(set, sn, content[0]) {
		return lastIndexAnyAt(content[1:], set, cn-1, sn, off+1, off)
	}
	return lastIndexAnyAt(content[1:], set, cn-1, sn, off+1, found)
}

// LastIndexNotAny returns the rightmost offset of a unit that is not a
// member of set, or NotFound. An empty set degenerately matches at the
// content length, mirroring IndexNotAny on empty content.
func LastIndexNotAny[C Unit](content, set []C, climit, slimit int) int {
	return lastIndexNotAnyAt(content, set, norm(content, climit), norm(set, slimit), 0, NotFound)
}

func lastIndexNotAnyAt[C Unit](content, set []C, cn, sn, off, found int) int {
	if cn == 0 {
		if sn == 0 {
			return off
		}
		return found
	}
	if !member(set, sn, content[0]) {
		return lastIndexNotAnyAt(content[1:], set, cn-1, sn, off+1, off)
	}
	return lastIndexNotAnyAt(content[1:], set, cn-1, sn, off+1, found)
}
