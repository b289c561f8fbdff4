package charview

import (
	"github.com/cespare/xxhash/v2"

	"github.com/sbt-go/charview/internal/scan"
)

// HashCode returns the DJB hash of the viewed content: seed 5381, units
// folded tail to head with h = unit XOR (33*h). Values are not unique
// (collisions across unequal content are an accepted property), but two
// views over equal content always hash equal, consistent with Equal.
func (v View[C]) HashCode() uint32 {
	if v.pol.Eval == EvalRecursive {
		return scan.Hash(v.data, len(v.data))
	}
	return scan.HashIter(v.data, len(v.data))
}

// Sum64 returns a 64-bit xxHash digest of the viewed content, for use
// as a key in hash-based containers. Like HashCode it is consistent
// with Equal: equal content always digests equal.
func (v View[C]) Sum64() uint64 {
	return xxhash.Sum64(rawBytes(v.data))
}

// MapKey materializes the viewed content as a comparable key for native
// Go maps. Two views have the same MapKey iff Equal reports true.
func (v View[C]) MapKey() string {
	return string(rawBytes(v.data))
}
