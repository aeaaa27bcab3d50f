package jsontoken

// state is either a pure grammar state (0..numStates-1) or, for values
// >= numStates, an action code requesting a side effect from the driver
// before the corresponding pure-state transition happens.
type state int8

// Pure grammar states.
const (
	GO state = iota // start: expecting the one root value
	OK               // a value has just completed
	OB               // just opened an object: expect a key or '}'
	KE               // after an object comma: expect a key
	CO               // after a key: expect ':'
	VA               // expecting a value
	AR               // just opened an array: expect a value or ']'
	ST               // inside a string body
	ES               // just saw '\' inside a string
	U1               // first hex digit of \uXXXX
	U2               // second hex digit
	U3               // third hex digit
	U4               // fourth hex digit
	MI               // just saw the leading '-'
	ZE               // leading zero consumed
	IN               // integer digits
	FR               // just saw '.', first fraction digit required
	FS               // fraction digits
	E1               // just saw 'e'/'E'
	E2               // just saw the exponent sign
	E3               // exponent digits
	T1               // "t"
	T2               // "tr"
	T3               // "tru"
	F1               // "f"
	F2               // "fa"
	F3               // "fal"
	F4               // "fals"
	N1               // "n"
	N2               // "nu"
	N3               // "nul"
	numStates
)

// Action codes. Always >= numStates, so a single int comparison in next
// tells a pure-state transition apart from a side-effecting one.
const (
	Ba state = numStates + iota // begin array
	Bo                          // begin object
	Bs                          // begin string
	Bt                          // begin true
	Bf                          // begin false
	Bn                          // begin null
	Bm                          // begin number, leading minus
	Bz                          // begin number, leading zero
	Bd                          // begin number, leading nonzero digit
	Fa                          // finish array
	Fo                          // finish object
	Pl                          // process colon
	Pm                          // process comma
	Ps                          // process trailing space/EOF beside a scalar
	Pq                          // process closing quote
)

// errCell marks a (state, class) pair with no valid transition.
const errCell state = -1

// table is the static (state x class) transition/action grid. Every
// reachable cell for strict RFC 7159 JSON is populated; everything else is
// errCell. Row and column order match the state and charClass constant
// declarations above and in class.go.
//
// Columns: SP WH {  }  [  ]  :  ,  "  \  /  +  -  .  0  1-9 a  b  c  d  e  f  l  n  r  s  t  u  ABCDF E  etc
var table = [numStates][numClasses]state{
	GO: {GO, GO, Bo, errCell, Ba, errCell, errCell, errCell, Bs, errCell, errCell, errCell, Bm, errCell, Bz, Bd, errCell, errCell, errCell, errCell, errCell, Bf, errCell, Bn, errCell, errCell, Bt, errCell, errCell, errCell, errCell},
	OK: {Ps, Ps, errCell, Fo, errCell, Fa, errCell, Pm, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	OB: {OB, OB, errCell, Fo, errCell, errCell, errCell, errCell, Bs, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	KE: {KE, KE, errCell, errCell, errCell, errCell, errCell, errCell, Bs, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	CO: {CO, CO, errCell, errCell, errCell, errCell, Pl, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	VA: {VA, VA, Bo, errCell, Ba, errCell, errCell, errCell, Bs, errCell, errCell, errCell, Bm, errCell, Bz, Bd, errCell, errCell, errCell, errCell, errCell, Bf, errCell, Bn, errCell, errCell, Bt, errCell, errCell, errCell, errCell},
	AR: {AR, AR, Bo, errCell, Ba, Fa, errCell, errCell, Bs, errCell, errCell, errCell, Bm, errCell, Bz, Bd, errCell, errCell, errCell, errCell, errCell, Bf, errCell, Bn, errCell, errCell, Bt, errCell, errCell, errCell, errCell},
	ST: {ST, errCell, ST, ST, ST, ST, ST, ST, Pq, ES, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST, ST},
	ES: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, ST, ST, ST, errCell, errCell, errCell, errCell, errCell, errCell, ST, errCell, errCell, errCell, ST, errCell, ST, ST, errCell, ST, U1, errCell, errCell, errCell},
	U1: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, U2, U2, U2, U2, U2, U2, U2, U2, errCell, errCell, errCell, errCell, errCell, errCell, U2, U2, errCell},
	U2: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, U3, U3, U3, U3, U3, U3, U3, U3, errCell, errCell, errCell, errCell, errCell, errCell, U3, U3, errCell},
	U3: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, U4, U4, U4, U4, U4, U4, U4, U4, errCell, errCell, errCell, errCell, errCell, errCell, U4, U4, errCell},
	U4: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, ST, ST, ST, ST, ST, ST, ST, ST, errCell, errCell, errCell, errCell, errCell, errCell, ST, ST, errCell},
	MI: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, ZE, IN, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	ZE: {Ps, Ps, errCell, Fo, errCell, Fa, errCell, Pm, errCell, errCell, errCell, errCell, errCell, FR, errCell, errCell, errCell, errCell, errCell, errCell, E1, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, E1, errCell},
	IN: {Ps, Ps, errCell, Fo, errCell, Fa, errCell, Pm, errCell, errCell, errCell, errCell, errCell, FR, IN, IN, errCell, errCell, errCell, errCell, E1, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, E1, errCell},
	FR: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, FS, FS, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	FS: {Ps, Ps, errCell, Fo, errCell, Fa, errCell, Pm, errCell, errCell, errCell, errCell, errCell, errCell, FS, FS, errCell, errCell, errCell, errCell, E1, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, E1, errCell},
	E1: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, E2, E2, errCell, E3, E3, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	E2: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, E3, E3, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	E3: {Ps, Ps, errCell, Fo, errCell, Fa, errCell, Pm, errCell, errCell, errCell, errCell, errCell, errCell, E3, E3, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	T1: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, T2, errCell, errCell, errCell, errCell, errCell, errCell},
	T2: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, T3, errCell, errCell, errCell},
	T3: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, OK, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	F1: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, F2, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	F2: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, F3, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	F3: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, F4, errCell, errCell, errCell, errCell, errCell},
	F4: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, OK, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	N1: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, N2, errCell, errCell, errCell},
	N2: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, N3, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
	N3: {errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell, OK, errCell, errCell, errCell, errCell, errCell, errCell, errCell, errCell},
}

// next looks up the table cell for (s, c), the one place the grid is
// indexed — the grammar lives entirely in the table constant above, not in
// branching code.
func next(s state, c charClass) state {
	if c < 0 || int(c) >= int(numClasses) {
		return errCell
	}
	return table[s][c]
}
