package jsontoken

// END is a sentinel meaning "the length of the view", for use as the end
// bound of Sub.
const END = int(^uint(0) >> 1)

// View is an immutable {pointer, length} window over a byte slice. It never
// copies the underlying bytes; Sub only narrows the window. A View is safe
// to share across goroutines as long as the backing array is not mutated.
type View struct {
	b []byte
}

// NewView wraps b in a View spanning its full length. The caller must not
// mutate b for as long as the View (or any Token derived from it) is in use.
func NewView(b []byte) View {
	return View{b: b}
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.b)
}

// Empty reports whether the view has zero length.
func (v View) Empty() bool {
	return len(v.b) == 0
}

// At returns the byte at index i and true, or 0 and false if i is out of
// bounds.
func (v View) At(i int) (byte, bool) {
	if i < 0 || i >= len(v.b) {
		return 0, false
	}
	return v.b[i], true
}

// Bytes returns the view's bytes directly. The caller must not modify the
// returned slice.
func (v View) Bytes() []byte {
	return v.b
}

// String renders the view's bytes as a string (a copy).
func (v View) String() string {
	return string(v.b)
}

// Sub returns the sub-view [start, end) of v. Negative bounds count from the
// end of v (-1 is the last byte); END or any bound past the view's length is
// clamped to Len(). An empty or inverted range yields an empty View. Sub
// never copies bytes.
func (v View) Sub(start, end int) View {
	n := len(v.b)
	start = clampBound(start, n)
	end = clampBound(end, n)
	if start > end {
		start = end
	}
	return View{b: v.b[start:end]}
}

func clampBound(i, n int) int {
	if i == END || i > n {
		return n
	}
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	return i
}

// Equal reports whether v and o hold identical bytes.
func (v View) Equal(o View) bool {
	if len(v.b) != len(o.b) {
		return false
	}
	for i := range v.b {
		if v.b[i] != o.b[i] {
			return false
		}
	}
	return true
}

// IndexByte returns the index of the first occurrence of c in v, or -1.
func (v View) IndexByte(c byte) int {
	for i, x := range v.b {
		if x == c {
			return i
		}
	}
	return -1
}
