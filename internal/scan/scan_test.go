package scan

import "testing"

func b(s string) []byte { return []byte(s) }

const sheik = "The sixth sick sheik's sixth sheep's sick."

type LengthTest struct {
	p   []byte
	out int
}

var lengthTests = []LengthTest{
	{nil, 0},
	{b(""), 0},
	{[]byte{0}, 0},
	{b("abc"), 3},
	{[]byte{'a', 'b', 0, 'c'}, 2},
	{[]byte{0, 'a'}, 0},
}

func TestLength(t *testing.T) {
	funcs := []struct {
		name string
		fn   func([]byte) int
	}{
		{"Length", Length[byte]},
		{"LengthIter", LengthIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range lengthTests {
			if got := f.fn(test.p); got != test.out {
				t.Errorf("%s(%q) = %d; want: %d", f.name, test.p, got, test.out)
			}
		}
	}
}

type HashTest struct {
	p     []byte
	limit int
}

var hashTests = []HashTest{
	{b(""), 0},
	{b("a"), 1},
	{b("Abcdefg"), 7},
	{b("Abcdefg"), 3},
	{b("The quick brown fox"), LenUnknown},
	{[]byte{'a', 0, 'b'}, 3},
	{b("abc"), 100},
}

func TestHash(t *testing.T) {
	for _, test := range hashTests {
		r := Hash(test.p, test.limit)
		i := HashIter(test.p, test.limit)
		if r != i {
			t.Errorf("Hash(%q, %d) = %d; HashIter = %d", test.p, test.limit, r, i)
		}
	}
	if got := Hash(b(""), 0); got != 5381 {
		t.Errorf("Hash(\"\") = %d; want: 5381", got)
	}
	if Hash(b("Abcdefg"), 7) == Hash(b("aAbcdefg"), 8) {
		t.Error("Hash(\"Abcdefg\") == Hash(\"aAbcdefg\")")
	}
	if Hash(b("Abcdefg"), 7) == Hash(b(""), 0) {
		t.Error("Hash(\"Abcdefg\") == Hash(\"\")")
	}
	// A zero unit terminates the hashed range even under an explicit limit.
	if got, want := Hash([]byte{'a', 0, 'b'}, 3), Hash(b("a"), 1); got != want {
		t.Errorf("Hash({a, 0, b}) = %d; want: %d", got, want)
	}
}

type PrefixTest struct {
	content string
	pattern []byte
	plimit  int
	out     bool
}

var startsWithTests = []PrefixTest{
	{"", b(""), 0, true},
	{"Abcdefg", b(""), 0, true},
	{"Abcdefg", b("Abc"), 3, true},
	{"Abcdefg", b("Abcdefg"), 7, true},
	{"Abcdefg", b("Abcdefgh"), 8, false},
	{"Abcdefg", b("bc"), 2, false},
	{"", b("a"), 1, false},
	// Zero-terminated pattern: effective length stops at the terminator.
	{"Abcdefg", []byte{'A', 'b', 0, 'z'}, LenUnknown, true},
	{"Abcdefg", []byte{0}, LenUnknown, true},
	// Limit clamps to the slice.
	{"Abcdefg", b("Ab"), 100, true},
}

func TestStartsWith(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, pattern []byte, climit, plimit int) bool
	}{
		{"StartsWith", StartsWith[byte]},
		{"StartsWithIter", StartsWithIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range startsWithTests {
			got := f.fn(b(test.content), test.pattern, len(test.content), test.plimit)
			if got != test.out {
				t.Errorf("%s(%q, %q, %d) = %t; want: %t",
					f.name, test.content, test.pattern, test.plimit, got, test.out)
			}
		}
	}
}

var endsWithTests = []PrefixTest{
	{"", b(""), 0, true},
	{"Abcdefg", b(""), 0, true},
	{"Abcdefg", b("efg"), 3, true},
	{"Abcdefg", b("g"), 1, true},
	{"Abcdefg", b("Abcdefg"), 7, true},
	{"Abcdefg", b("xAbcdefg"), 8, false},
	{"Abcdefg", b("ef"), 2, false},
	{"", b("g"), 1, false},
	{"Abcdefg", []byte{'e', 'f', 'g', 0, 'q'}, LenUnknown, true},
}

func TestEndsWith(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, pattern []byte, climit, plimit int) bool
	}{
		{"EndsWith", EndsWith[byte]},
		{"EndsWithIter", EndsWithIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range endsWithTests {
			got := f.fn(b(test.content), test.pattern, len(test.content), test.plimit)
			if got != test.out {
				t.Errorf("%s(%q, %q, %d) = %t; want: %t",
					f.name, test.content, test.pattern, test.plimit, got, test.out)
			}
		}
	}
}

type CommonLengthTest struct {
	a, b string
	out  int
}

var commonLengthTests = []CommonLengthTest{
	{"", "", 0},
	{"abc", "", 0},
	{"", "abc", 0},
	{"abcd", "abx", 2},
	{"abc", "abc", 3},
	{"abc", "abcdef", 3},
	{"xbc", "abc", 0},
}

func TestCommonLength(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(a, b []byte, alimit, blimit int) int
	}{
		{"CommonLength", CommonLength[byte]},
		{"CommonLengthIter", CommonLengthIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range commonLengthTests {
			got := f.fn(b(test.a), b(test.b), len(test.a), len(test.b))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.a, test.b, got, test.out)
			}
		}
	}
}

type CompareTest struct {
	content, pattern string
	out              int
}

var compareTests = []CompareTest{
	{"", "", 0},
	{"a", "", 1},
	{"", "a", -1},
	{"abc", "abc", 0},
	{"abc", "abd", -1},
	{"abd", "abc", 1},
	{"ab", "abc", -1},
	{"abc", "ab", 1},
	{"b", "a", 1},
	{"a", "b", -1},
}

func TestCompare(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, pattern []byte, climit, plimit int) int
	}{
		{"Compare", Compare[byte]},
		{"CompareIter", CompareIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range compareTests {
			got := f.fn(b(test.content), b(test.pattern), len(test.content), len(test.pattern))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.content, test.pattern, got, test.out)
			}
		}
	}
}

type IndexTest struct {
	content, pattern string
	out              int
}

var indexTests = []IndexTest{
	{"", "", 0},
	{"", "a", -1},
	{"", "foo", -1},
	{"fo", "foo", -1},
	{"foo", "foo", 0},
	{"oofofoofooo", "f", 2},
	{"oofofoofooo", "foo", 4},
	{"barfoobarfoo", "foo", 3},
	{"foo", "o", 1},
	{"abc", "a", 0},
	{"abc", "b", 1},
	{"abc", "c", 2},
	{"abc", "x", -1},
	{"xabxc", "abc", -1},
	// Empty pattern matches at the content length, not at 0.
	{"foo", "", 3},
	{"Abcdefg", "", 7},
}

var lastIndexTests = []IndexTest{
	{"", "", 0},
	{"foo", "", 3},
	{"", "a", -1},
	{"foo", "foo", 0},
	{"barfoobarfoo", "foo", 9},
	{"oofofoofooo", "f", 7},
	{"oofofoofooo", "foo", 7},
	{"abc", "z", -1},
	{"aaaaa", "aa", 3},
}

func TestIndex(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, pattern []byte, climit, plimit int) int
	}{
		{"Index", Index[byte]},
		{"IndexIter", IndexIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range indexTests {
			got := f.fn(b(test.content), b(test.pattern), len(test.content), len(test.pattern))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.content, test.pattern, got, test.out)
			}
		}
	}
}

func TestLastIndex(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, pattern []byte, climit, plimit int) int
	}{
		{"LastIndex", LastIndex[byte]},
		{"LastIndexIter", LastIndexIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range lastIndexTests {
			got := f.fn(b(test.content), b(test.pattern), len(test.content), len(test.pattern))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.content, test.pattern, got, test.out)
			}
		}
	}
}

func TestContains(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, pattern []byte, climit, plimit int) bool
	}{
		{"Contains", Contains[byte]},
		{"ContainsIter", ContainsIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range indexTests {
			got := f.fn(b(test.content), b(test.pattern), len(test.content), len(test.pattern))
			want := test.out != NotFound
			if got != want {
				t.Errorf("%s(%q, %q) = %t; want: %t", f.name, test.content, test.pattern, got, want)
			}
		}
	}
}

type IndexAnyTest struct {
	content, set string
	out          int
}

var indexAnyTests = []IndexAnyTest{
	{sheik, ".", len(sheik) - 1},
	{sheik, ",", -1},
	{sheik, "T", 0},
	{sheik, "s", 4},
	{sheik, "esp", 2},
	{sheik, ".se", 2},
	{sheik, "The", 0},
	{sheik, "ehT", 0},
	{sheik, "", -1},
	{"", "", -1},
	{"", "abc", -1},
}

var indexNotAnyTests = []IndexAnyTest{
	{sheik, "a", 0},
	{sheik, "The ", 4},
	{sheik, "The sixth sick sheik's sixth sheep's sick", len(sheik) - 1},
	{sheik, sheik, -1},
	{sheik, "esp", 0},
	{sheik, "The", 3},
	{sheik, "ehT", 3},
	// Degenerate empty set: every unit is outside it.
	{sheik, "", 0},
	{"", "", 0},
	{"", "abc", -1},
}

var lastIndexAnyTests = []IndexAnyTest{
	{"abcabc", "c", 5},
	{"abcabc", "ab", 4},
	{"abcabc", "z", -1},
	{"abcabc", "", -1},
	{"", "abc", -1},
	{"", "", -1},
}

var lastIndexNotAnyTests = []IndexAnyTest{
	{"aabbaa", "a", 3},
	{"aabbaa", "ab", -1},
	{"abcabc", "c", 4},
	{"", "abc", -1},
	// Degenerate empty set matches at the content length.
	{"aabbaa", "", 6},
	{"", "", 0},
}

func TestIndexAny(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, set []byte, climit, slimit int) int
	}{
		{"IndexAny", IndexAny[byte]},
		{"IndexAnyIter", IndexAnyIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range indexAnyTests {
			got := f.fn(b(test.content), b(test.set), len(test.content), len(test.set))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.content, test.set, got, test.out)
			}
		}
	}
}

func TestIndexNotAny(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, set []byte, climit, slimit int) int
	}{
		{"IndexNotAny", IndexNotAny[byte]},
		{"IndexNotAnyIter", IndexNotAnyIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range indexNotAnyTests {
			got := f.fn(b(test.content), b(test.set), len(test.content), len(test.set))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.content, test.set, got, test.out)
			}
		}
	}
}

func TestLastIndexAny(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, set []byte, climit, slimit int) int
	}{
		{"LastIndexAny", LastIndexAny[byte]},
		{"LastIndexAnyIter", LastIndexAnyIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range lastIndexAnyTests {
			got := f.fn(b(test.content), b(test.set), len(test.content), len(test.set))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.content, test.set, got, test.out)
			}
		}
	}
}

func TestLastIndexNotAny(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(content, set []byte, climit, slimit int) int
	}{
		{"LastIndexNotAny", LastIndexNotAny[byte]},
		{"LastIndexNotAnyIter", LastIndexNotAnyIter[byte]},
	}
	for _, f := range funcs {
		for _, test := range lastIndexNotAnyTests {
			got := f.fn(b(test.content), b(test.set), len(test.content), len(test.set))
			if got != test.out {
				t.Errorf("%s(%q, %q) = %d; want: %d", f.name, test.content, test.set, got, test.out)
			}
		}
	}
}

func TestRuneUnits(t *testing.T) {
	content := []rune("zażółć gęślą jaźń")
	pattern := []rune("gęślą")
	want := 7
	if got := Index(content, pattern, len(content), len(pattern)); got != want {
		t.Errorf("Index(%q, %q) = %d; want: %d", string(content), string(pattern), got, want)
	}
	if got := IndexIter(content, pattern, len(content), len(pattern)); got != want {
		t.Errorf("IndexIter(%q, %q) = %d; want: %d", string(content), string(pattern), got, want)
	}
	if !EndsWith(content, []rune("jaźń"), len(content), 4) {
		t.Errorf("EndsWith(%q, %q) = false", string(content), "jaźń")
	}
	if Hash(content, len(content)) != HashIter(content, len(content)) {
		t.Errorf("rune Hash forms disagree for %q", string(content))
	}
}

// Test that every recursive primitive agrees with its iterative form
// across a corpus of content/pattern pairs, including zero-terminated
// limits.
func TestFormParity(t *testing.T) {
	corpus := []string{
		"", "a", "aa", "ab", "abc", "abcabc", "aabbaa",
		"Abcdefg", "Test string 5", sheik,
		"  \t test1  \t ", "oofofoofooo", "barfoobarfoo",
	}
	patterns := []string{
		"", "a", "b", "ab", "ba", "abc", "foo", "o", " ", "\t",
		"Abcdefg", "sixth", ".", "xyz",
	}
	limits := func(p []byte) []int { return []int{len(p), LenUnknown, len(p) / 2} }
	for _, cs := range corpus {
		content := b(cs)
		for _, ps := range patterns {
			pattern := b(ps)
			for _, pl := range limits(pattern) {
				cl := len(content)
				check := func(op string, r, i int) {
					if r != i {
						t.Errorf("%s(%q, %q, %d, %d): recursive = %d; iterative = %d",
							op, cs, ps, cl, pl, r, i)
					}
				}
				checkb := func(op string, r, i bool) {
					if r != i {
						t.Errorf("%s(%q, %q, %d, %d): recursive = %t; iterative = %t",
							op, cs, ps, cl, pl, r, i)
					}
				}
				checkb("StartsWith", StartsWith(content, pattern, cl, pl), StartsWithIter(content, pattern, cl, pl))
				checkb("EndsWith", EndsWith(content, pattern, cl, pl), EndsWithIter(content, pattern, cl, pl))
				checkb("Contains", Contains(content, pattern, cl, pl), ContainsIter(content, pattern, cl, pl))
				check("CommonLength", CommonLength(content, pattern, cl, pl), CommonLengthIter(content, pattern, cl, pl))
				check("Compare", Compare(content, pattern, cl, pl), CompareIter(content, pattern, cl, pl))
				check("Index", Index(content, pattern, cl, pl), IndexIter(content, pattern, cl, pl))
				check("LastIndex", LastIndex(content, pattern, cl, pl), LastIndexIter(content, pattern, cl, pl))
				check("IndexAny", IndexAny(content, pattern, cl, pl), IndexAnyIter(content, pattern, cl, pl))
				check("IndexNotAny", IndexNotAny(content, pattern, cl, pl), IndexNotAnyIter(content, pattern, cl, pl))
				check("LastIndexAny", LastIndexAny(content, pattern, cl, pl), LastIndexAnyIter(content, pattern, cl, pl))
				check("LastIndexNotAny", LastIndexNotAny(content, pattern, cl, pl), LastIndexNotAnyIter(content, pattern, cl, pl))
			}
		}
		if Hash(content, len(content)) != HashIter(content, len(content)) {
			t.Errorf("Hash(%q) forms disagree", cs)
		}
		if Length(content) != LengthIter(content) {
			t.Errorf("Length(%q) forms disagree", cs)
		}
	}
}
