package jsontoken

// parserState is the mutable state the driver threads through one parse:
// the FSM state, the current nesting depth, and a stack of the Kind
// (Array/Object) of each still-open container.
//
// The backward-scan-to-find-parent sealing algorithm (see finish, below)
// says nothing about whether a `]` actually closes an array rather than an
// object it happens to sit inside — two mismatched brackets at the same
// depth are indistinguishable to a pure depth-walk. The stack exists only
// to answer "does this closer match the container it's closing", in O(1),
// to tell comma which state (VA or KE) it resumes into, and to let colon
// confirm it sits inside an object; it plays no part in deciding which
// token gets sealed or where.
type parserState struct {
	input       View
	store       *TokenStore
	state       state
	depth       int
	kindStack   []Kind
	stringIsKey bool
}

// runParser drives store to hold the preorder token sequence for input,
// returning the token count or a negative error code.
func runParser(input View, store *TokenStore) int {
	store.Reset()
	d := &parserState{input: input, store: store, state: GO}
	n := input.Len()

	// The loop runs one extra, synthetic iteration at pos == n, treated as
	// a trailing SPACE byte, so that a scalar ending exactly at EOF (e.g.
	// bare "true") still gets its Ps seal dispatched.
	for pos := 0; pos <= n; pos++ {
		c := classSpace
		if pos < n {
			b, _ := input.At(pos)
			c = classify(b)
			if c == classError {
				return BadFormat
			}
		}
		next := next(d.state, c)
		if next == errCell {
			return BadFormat
		}
		if int(next) < int(numStates) {
			d.state = next
			continue
		}
		if code := d.dispatch(next, pos); code != 0 {
			return code
		}
	}

	if d.depth != 0 {
		return Incomplete
	}
	if d.state != OK {
		return BadFormat
	}

	count := store.Count()
	store.tokens[count-1].Flags |= IsLast
	// Re-seal the root using its original start and the final char_pos.
	// By this point the root is already sealed correctly by whichever
	// action closed it (Fa/Fo/Pq/Ps all ran during the loop above) —
	// sealAt is a no-op on an already-sealed token, so this only matters
	// as a safety net, never as an overwrite.
	store.sealAt(input, 0, n)
	return count
}

// dispatch performs the side effect requested by an action cell and
// reports 0 on success or a negative error code.
func (d *parserState) dispatch(action state, pos int) int {
	switch action {
	case Ba:
		return d.begin(Array, pos, AR)
	case Bo:
		return d.begin(Object, pos, OB)
	case Bs:
		d.stringIsKey = d.state == OB || d.state == KE
		return d.begin(String, pos, ST)
	case Bt:
		return d.begin(True, pos, T1)
	case Bf:
		return d.begin(False, pos, F1)
	case Bn:
		return d.begin(Null, pos, N1)
	case Bm:
		return d.begin(Number, pos, MI)
	case Bz:
		return d.begin(Number, pos, ZE)
	case Bd:
		return d.begin(Number, pos, IN)
	case Fa:
		return d.finish(Array, pos)
	case Fo:
		return d.finish(Object, pos)
	case Pl:
		return d.colon(pos)
	case Pm:
		return d.comma(pos)
	case Ps:
		return d.trailing(pos)
	case Pq:
		return d.closeQuote(pos)
	}
	return BadFormat
}

// begin allocates a new token of kind k at pos, transitions to newState,
// and for containers pushes the kind stack and enters the container.
func (d *parserState) begin(k Kind, pos int, newState state) int {
	if d.store.full() {
		return NoTokens
	}
	d.store.alloc(d.input, k, d.depth, pos)
	if k.isContainer() {
		d.kindStack = append(d.kindStack, k)
		d.depth++
	}
	d.state = newState
	return 0
}

// finish closes a container of kind k at pos (the index of the closing
// bracket), per the backward-parent-seal algorithm. If the top-of-stack
// token is the still-open, empty matching container, the bracket belongs
// to it and it is sealed inclusively on the spot. Otherwise the
// top-of-stack, if unsealed (the last child scalar running right up
// against the bracket), is sealed exclusive of it first, and then the
// container being closed — the most recent record strictly shallower
// than the current inside-depth — is sealed inclusive of the bracket.
func (d *parserState) finish(k Kind, pos int) int {
	if len(d.kindStack) == 0 {
		return BadFormat
	}
	open := d.kindStack[len(d.kindStack)-1]
	if open != k {
		return BadFormat
	}
	d.kindStack = d.kindStack[:len(d.kindStack)-1]

	tos := d.store.Count() - 1
	tosTok := d.store.At(tos)

	if !tosTok.IsSealed() {
		if tosTok.Kind == k {
			d.store.sealAt(d.input, tos, pos+1)
			d.depth--
			d.state = OK
			return 0
		}
		d.store.sealAt(d.input, tos, pos)
	}

	parent := d.findAncestor(tos, d.depth)
	if parent < 0 {
		return BadFormat
	}
	d.store.sealAt(d.input, parent, pos+1)

	d.depth--
	d.state = OK
	return 0
}

// findAncestor walks backward from just before idx for the first record
// whose depth is strictly less than depth, returning its index or -1.
func (d *parserState) findAncestor(idx, depth int) int {
	for i := idx - 1; i >= 0; i-- {
		if d.store.At(i).Depth < depth {
			return i
		}
	}
	return -1
}

// comma seals the top token (exclusive) and resumes VA inside an array
// or KE inside an object, per the innermost open container's kind.
func (d *parserState) comma(pos int) int {
	tos := d.store.Count() - 1
	d.store.sealAt(d.input, tos, pos)
	if len(d.kindStack) == 0 {
		return BadFormat
	}
	switch d.kindStack[len(d.kindStack)-1] {
	case Array:
		d.state = VA
	case Object:
		d.state = KE
	default:
		return BadFormat
	}
	return 0
}

// colon seals the top (key) token exclusive and resumes VA. Reachability
// of Pl is already gated to CO by the table, so the top token can only be
// the key just sealed by Pq; the object-parent check is implicit.
func (d *parserState) colon(pos int) int {
	tos := d.store.Count() - 1
	d.store.sealAt(d.input, tos, pos)
	if len(d.kindStack) == 0 || d.kindStack[len(d.kindStack)-1] != Object {
		return BadFormat
	}
	d.state = VA
	return 0
}

// trailing handles whitespace (or EOF) immediately beside a scalar: if
// the top token is an unsealed non-container, seal it exclusive of pos.
// The post-state is always OK — OK is valid context for top-level,
// in-array, and in-object positions alike, since Fa/Fo/Pm inspect the
// actual open container rather than relying on the state to encode it.
func (d *parserState) trailing(pos int) int {
	tos := d.store.Count() - 1
	tosTok := d.store.At(tos)
	if !tosTok.IsSealed() && !tosTok.Kind.isContainer() {
		d.store.sealAt(d.input, tos, pos)
	}
	d.state = OK
	return 0
}

// closeQuote seals the top STRING token inclusive of the closing quote
// and transitions to CO if it was opened in key position, else OK.
func (d *parserState) closeQuote(pos int) int {
	tos := d.store.Count() - 1
	d.store.sealAt(d.input, tos, pos+1)
	if d.stringIsKey {
		d.state = CO
	} else {
		d.state = OK
	}
	return 0
}
