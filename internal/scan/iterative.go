package scan

// The iterative forms. Each one produces bit-identical results to its
// recursive counterpart in recursive.go; the parity tests hold the two
// families to that contract.

func normIter[C Unit](p []C, limit int) int {
	if limit < 0 {
		return LengthIter(p)
	}
	if limit > len(p) {
		return len(p)
	}
	return limit
}

// LengthIter is the iterative form of Length.
func LengthIter[C Unit](p []C) int {
	i := 0
	for i < len(p) && p[i] != 0 {
		i++
	}
	return i
}

// HashIter is the iterative form of Hash. It locates the end of the
// hashed range first, then folds the units back to front.
func HashIter[C Unit](p []C, limit int) uint32 {
	n := normIter(p, limit)
	end := 0
	for end < n && p[end] != 0 {
		end++
	}
	h := uint32(hashSeed)
	for end > 0 {
		end--
		h = uint32(p[end]) ^ 33*h
	}
	return h
}

// StartsWithIter is the iterative form of StartsWith.
func StartsWithIter[C Unit](content, pattern []C, climit, plimit int) bool {
	cn := normIter(content, climit)
	pn := normIter(pattern, plimit)
	if pn > cn {
		return false
	}
	for i := 0; i < pn; i++ {
		if content[i] != pattern[i] {
			return false
		}
	}
	return true
}

// EndsWithIter is the iterative form of EndsWith.
func EndsWithIter[C Unit](content, pattern []C, climit, plimit int) bool {
	ci := normIter(content, climit) - 1
	pi := normIter(pattern, plimit) - 1
	for ; pi >= 0; ci, pi = ci-1, pi-1 {
		if ci < 0 || content[ci] != pattern[pi] {
			return false
		}
	}
	return true
}

// CommonLengthIter is the iterative form of CommonLength.
func CommonLengthIter[C Unit](a, b []C, alimit, blimit int) int {
	an := normIter(a, alimit)
	bn := normIter(b, blimit)
	n := 0
	for n < an && n < bn && a[n] == b[n] {
		n++
	}
	return n
}

// CompareIter is the iterative form of Compare.
func CompareIter[C Unit](content, pattern []C, climit, plimit int) int {
	cn := normIter(content, climit)
	pn := normIter(pattern, plimit)
	for i := 0; i < cn && i < pn; i++ {
		if content[i] > pattern[i] {
			return 1
		}
		if content[i] < pattern[i] {
			return -1
		}
	}
	switch {
	case cn > pn:
		return 1
	case cn < pn:
		return -1
	}
	return 0
}

// ContainsIter is the iterative form of Contains.
func ContainsIter[C Unit](content, pattern []C, climit, plimit int) bool {
	cn := normIter(content, climit)
	pn := normIter(pattern, plimit)
	if pn == 0 {
		return true
	}
	for i := 0; i+pn <= cn; i++ {
		if prefixAt(content, pattern, i, pn) {
			return true
		}
	}
	return false
}

// prefixAt reports whether the pn pattern units occur in content at
// offset i. Both bounds have been validated by the caller.
func prefixAt[C Unit](content, pattern []C, i, pn int) bool {
	for j := 0; j < pn; j++ {
		if content[i+j] != pattern[j] {
			return false
		}
	}
	return true
}

// IndexIter is the iterative form of Index.
func IndexIter[C Unit](content, pattern []C, climit, plimit int) int {
	cn := normIter(content, climit)
	pn := normIter(pattern, plimit)
	if pn == 0 {
		return cn
	}
	for i := 0; i+pn <= cn; i++ {
		if prefixAt(content, pattern, i, pn) {
			return i
		}
	}
	return NotFound
}

// LastIndexIter is the iterative form of LastIndex: a forward scan that
// keeps the most recent match.
func LastIndexIter[C Unit](content, pattern []C, climit, plimit int) int {
	cn := normIter(content, climit)
	pn := normIter(pattern, plimit)
	if pn == 0 {
		return cn
	}
	found := NotFound
	for i := 0; i+pn <= cn; i++ {
		if prefixAt(content, pattern, i, pn) {
			found = i
		}
	}
	return found
}

func memberIter[C Unit](set []C, n int, u C) bool {
	for i := 0; i < n; i++ {
		if set[i] == u {
			return true
		}
	}
	return false
}

// IndexAnyIter is the iterative form of IndexAny.
func IndexAnyIter[C Unit](content, set []C, climit, slimit int) int {
	cn := normIter(content, climit)
	sn := normIter(set, slimit)
	if sn == 0 {
		return NotFound
	}
	for i := 0; i < cn; i++ {
		if memberIter(set, sn, content[i]) {
			return i
		}
	}
	return NotFound
}

// IndexNotAnyIter is the iterative form of IndexNotAny.
func IndexNotAnyIter[C Unit](content, set []C, climit, slimit int) int {
	cn := normIter(content, climit)
	sn := normIter(set, slimit)
	if sn == 0 {
		return 0
	}
	for i := 0; i < cn; i++ {
		if !memberIter(set, sn, content[i]) {
			return i
		}
	}
	return NotFound
}

// LastIndexAnyIter is the iterative form of LastIndexAny.
func LastIndexAnyIter[C Unit](content, set []C, climit, slimit int) int {
	cn := normIter(content, climit)
	sn := normIter(set, slimit)
	found := NotFound
	for i := 0; i < cn; i++ {
		if memberIter(set, sn, content[i]) {
			found = i
		}
	}
	return found
}

// LastIndexNotAnyIter is the iterative form of LastIndexNotAny.
func LastIndexNotAnyIter[C Unit](content, set []C, climit, slimit int) int {
	cn := normIter(content, climit)
	sn := normIter(set, slimit)
	if sn == 0 {
		return cn
	}
	found := NotFound
	for i := 0; i < cn; i++ {
		if !memberIter(set, sn, content[i]) {
			found = i
		}
	}
	return found
}
