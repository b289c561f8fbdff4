// Copyright 2024 The charview Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package charview provides a non-owning, read-only view over a
// contiguous run of character units, with search, comparison, hashing,
// and trimming operations.
//
// A [View] is a trivially copyable value: it references a buffer it
// never owns, mutates, or frees, and slicing operations produce
// sub-views sharing the same backing. The caller guarantees the buffer
// outlives every view derived from it.
//
// Every operation is implemented twice, as a pure recursive function
// and as an iterative loop, with identical results; a [Policy]
// selects the form along with bounds-checking and error-signaling
// behavior. All operations are unit-wise over the view's element type,
// not Unicode-aware.
package charview
