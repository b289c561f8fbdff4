package charview

import (
	"io"
	"unicode/utf16"
	"unsafe"
)

// unitWidth returns the size of C in bytes.
func unitWidth[C Unit]() int {
	var c C
	return int(unsafe.Sizeof(c))
}

// unitsOf converts s into units: raw bytes for 1-byte units, UTF-16
// code units for 2-byte units, code points for 4-byte units.
func unitsOf[C Unit](s string) []C {
	out := make([]C, 0, len(s))
	switch unitWidth[C]() {
	case 1:
		for i := 0; i < len(s); i++ {
			out = append(out, C(s[i]))
		}
	case 2:
		for _, u := range utf16.Encode([]rune(s)) {
			out = append(out, C(u))
		}
	default:
		for _, r := range s {
			out = append(out, C(r))
		}
	}
	return out
}

// stringOf is the inverse of unitsOf.
func stringOf[C Unit](data []C) string {
	switch unitWidth[C]() {
	case 1:
		b := make([]byte, len(data))
		for i, u := range data {
			b[i] = byte(u)
		}
		return string(b)
	case 2:
		u := make([]uint16, len(data))
		for i, c := range data {
			u[i] = uint16(c)
		}
		return string(utf16.Decode(u))
	default:
		r := make([]rune, len(data))
		for i, c := range data {
			r[i] = rune(uint32(c))
		}
		return string(r)
	}
}

// rawBytes returns the little-endian byte representation of data. For
// 1-byte units it aliases the backing array without copying; callers
// must treat the result as read-only.
func rawBytes[C Unit](data []C) []byte {
	if len(data) == 0 {
		return nil
	}
	w := unitWidth[C]()
	if w == 1 {
		return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data))
	}
	out := make([]byte, 0, len(data)*w)
	for _, u := range data {
		if w == 2 {
			out = append(out, byte(u), byte(uint16(u)>>8))
		} else {
			out = append(out, byte(u), byte(uint32(u)>>8), byte(uint32(u)>>16), byte(uint32(u)>>24))
		}
	}
	return out
}

// String materializes the viewed content as an owned string, decoding
// units by width as OfString encodes them. The view itself copies
// nothing until this point.
func (v View[C]) String() string {
	return stringOf(v.data)
}

// Units returns a copy of the viewed units. Unlike Data, the result is
// owned by the caller.
func (v View[C]) Units() []C {
	out := make([]C, len(v.data))
	copy(out, v.data)
	return out
}

// WriteTo writes the viewed content to w with no terminator and no
// escaping: byte views write exactly Len() raw bytes, wider views write
// the decoded text.
func (v View[C]) WriteTo(w io.Writer) (int64, error) {
	if len(v.data) == 0 {
		return 0, nil
	}
	var n int
	var err error
	if unitWidth[C]() == 1 {
		n, err = w.Write(rawBytes(v.data))
	} else {
		n, err = io.WriteString(w, stringOf(v.data))
	}
	return int64(n), err
}
