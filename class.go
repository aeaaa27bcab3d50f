package jsontoken

// charClass is one of the lexical classes a byte maps to.
type charClass int8

// Character classes. Order matters: it is the column order of the
// transition table in table.go.
const (
	classSpace charClass = iota // 0x20
	classWhite                  // tab, LF, CR
	classLCurb                  // {
	classRCurb                  // }
	classLSqrb                  // [
	classRSqrb                  // ]
	classColon                  // :
	classComma                  // ,
	classQuote                  // "
	classBacks                  // \
	classSlash                  // /
	classPlus                   // +
	classMinus                  // -
	classPoint                  // .
	classZero                   // 0
	classDigit                  // 1-9
	classLowA                   // a
	classLowB                   // b
	classLowC                   // c
	classLowD                   // d
	classLowE                   // e
	classLowF                   // f
	classLowL                   // l
	classLowN                   // n
	classLowR                   // r
	classLowS                   // s
	classLowT                   // t
	classLowU                   // u
	classABCDF                  // A, B, C, D, F
	classE                      // E
	classEtc                    // any other printable byte, string body only
	numClasses

	classError charClass = -1
)

// asciiClass maps ASCII bytes 0x00-0x7F to a charClass, or classError:
// tab/LF/CR map to classWhite, 0x20 maps to classSpace, the other control
// bytes (<0x20) are errors, and every other printable 7-bit byte not given a
// dedicated class maps to classEtc (valid only inside a string body — the
// driver rejects it everywhere else via the transition table, not the
// classifier).
var asciiClass = [128]charClass{
	classError, classError, classError, classError, classError, classError, classError, classError,
	classError, classWhite, classWhite, classError, classError, classWhite, classError, classError,
	classError, classError, classError, classError, classError, classError, classError, classError,
	classError, classError, classError, classError, classError, classError, classError, classError,

	classSpace, classEtc, classQuote, classEtc, classEtc, classEtc, classEtc, classEtc,
	classEtc, classEtc, classEtc, classPlus, classComma, classMinus, classPoint, classSlash,
	classZero, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit,
	classDigit, classDigit, classColon, classEtc, classEtc, classEtc, classEtc, classEtc,

	classEtc, classABCDF, classABCDF, classABCDF, classABCDF, classE, classABCDF, classEtc,
	classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc,
	classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc, classEtc,
	classEtc, classEtc, classEtc, classLSqrb, classBacks, classRSqrb, classEtc, classEtc,

	classEtc, classLowA, classLowB, classLowC, classLowD, classLowE, classLowF, classEtc,
	classEtc, classEtc, classEtc, classEtc, classLowL, classEtc, classLowN, classEtc,
	classEtc, classEtc, classLowR, classLowS, classLowT, classLowU, classEtc, classEtc,
	classEtc, classEtc, classEtc, classLCurb, classEtc, classRCurb, classEtc, classEtc,
}

// classify returns the lexical class of byte b, or classError if b is a
// control byte (<0x20) other than tab/LF/CR. Bytes >= 0x80 are accepted as
// classEtc to allow UTF-8 continuation bytes to pass through string bodies
// unexamined; the driver is responsible for only permitting classEtc where a
// string body allows it.
func classify(b byte) charClass {
	if b < 0x80 {
		return asciiClass[b]
	}
	return classEtc
}
