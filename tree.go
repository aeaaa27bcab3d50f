package jsontoken

// Index identifies a token's position within a TokenStore. Navigation
// results are Index values rather than Token values so that "absent" has an
// unambiguous representation distinct from a valid zero-depth token.
type Index int

// NoIndex is the absent-result sentinel every navigation operation in this
// file returns in place of raising an error. Navigation is total: a missing
// relative is NoIndex, and NoIndex in yields NoIndex out.
const NoIndex Index = -1

// Valid reports whether i refers to an actual token in s.
func (i Index) Valid(s *TokenStore) bool {
	return i >= 0 && int(i) < s.Count()
}

// At is shorthand for s.At(int(i)); the caller must check Valid first.
func (i Index) At(s *TokenStore) Token {
	return s.At(int(i))
}

// Prev returns the index immediately before i, or NoIndex if i is the first
// token.
func (s *TokenStore) Prev(i Index) Index {
	if !i.Valid(s) || i.At(s).IsFirst() {
		return NoIndex
	}
	return i - 1
}

// Next returns the index immediately after i, or NoIndex if i is the last
// token.
func (s *TokenStore) Next(i Index) Index {
	if !i.Valid(s) || i.At(s).IsLast() {
		return NoIndex
	}
	return i + 1
}

// Root walks backward from i until the bookend IsFirst token, returning its
// index. The root of a valid index is always 0, but the walk (rather than a
// constant) keeps the operation defined purely in terms of the flag.
func (s *TokenStore) Root(i Index) Index {
	if !i.Valid(s) {
		return NoIndex
	}
	for !i.At(s).IsFirst() {
		i--
	}
	return i
}

// Parent walks backward from i while depth stays >= i's own depth, and
// returns the first strictly-shallower index found, or NoIndex if i is the
// root.
func (s *TokenStore) Parent(i Index) Index {
	if !i.Valid(s) {
		return NoIndex
	}
	depth := i.At(s).Depth
	for j := i - 1; j >= 0; j-- {
		if j.At(s).Depth < depth {
			return j
		}
	}
	return NoIndex
}

// Child returns the next token after i iff its depth is exactly one greater
// than i's own, i.e. i's first child; otherwise NoIndex (i is a leaf or the
// last token overall).
func (s *TokenStore) Child(i Index) Index {
	if !i.Valid(s) {
		return NoIndex
	}
	j := s.Next(i)
	if j == NoIndex {
		return NoIndex
	}
	if j.At(s).Depth != i.At(s).Depth+1 {
		return NoIndex
	}
	return j
}

// PrevSibling walks backward from i, skipping records at greater depth
// (i.e. i's own descendants don't exist backward of it, but a preceding
// sibling's descendants do), and stops at the first equal-depth record
// (the sibling) or returns NoIndex on hitting a lesser depth first.
func (s *TokenStore) PrevSibling(i Index) Index {
	if !i.Valid(s) {
		return NoIndex
	}
	depth := i.At(s).Depth
	for j := i - 1; j >= 0; j-- {
		d := j.At(s).Depth
		if d < depth {
			return NoIndex
		}
		if d == depth {
			return j
		}
	}
	return NoIndex
}

// NextSibling walks forward from i, skipping descendants, and stops at the
// first equal-depth record or returns NoIndex on hitting a lesser depth
// first (i was the last child of its parent, or is the root).
func (s *TokenStore) NextSibling(i Index) Index {
	if !i.Valid(s) {
		return NoIndex
	}
	depth := i.At(s).Depth
	n := Index(s.Count())
	for j := i + 1; j < n; j++ {
		d := j.At(s).Depth
		if d < depth {
			return NoIndex
		}
		if d == depth {
			return j
		}
	}
	return NoIndex
}
