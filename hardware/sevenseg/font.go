package sevenseg

import "strings"

// Pattern is a set of lit segments, bit 0 = A ... bit 6 = G, bit 7 = decimal point.
//
//	 -A-
//	F   B
//	 -G-
//	E   C
//	 -D-  .DP
type Pattern byte

const (
	SegA Pattern = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

const Blank Pattern = 0

// Segments is number of segment lines including decimal point.
const Segments = 8

func (p Pattern) Lit(seg uint) bool { return p&(1<<seg) != 0 }

// String draws pattern as three text rows.
func (p Pattern) String() string {
	b := strings.Builder{}
	mark := func(seg Pattern, s string) {
		if p&seg != 0 {
			b.WriteString(s)
		} else {
			b.WriteString(strings.Repeat(" ", len(s)))
		}
	}
	b.WriteByte(' ')
	mark(SegA, "_")
	b.WriteString(" \n")
	mark(SegF, "|")
	mark(SegG, "_")
	mark(SegB, "|")
	b.WriteByte('\n')
	mark(SegE, "|")
	mark(SegD, "_")
	mark(SegC, "|")
	mark(SegDP, ".")
	return b.String()
}

// Letters without recognizable glyph map to Blank.
// Case is folded where only one shape exists.
var font = [256]Pattern{
	' ': Blank,
	'-': SegG,
	'_': SegD,
	'=': SegD | SegG,

	'0': SegA | SegB | SegC | SegD | SegE | SegF,
	'1': SegB | SegC,
	'2': SegA | SegB | SegD | SegE | SegG,
	'3': SegA | SegB | SegC | SegD | SegG,
	'4': SegB | SegC | SegF | SegG,
	'5': SegA | SegC | SegD | SegF | SegG,
	'6': SegA | SegC | SegD | SegE | SegF | SegG,
	'7': SegA | SegB | SegC,
	'8': SegA | SegB | SegC | SegD | SegE | SegF | SegG,
	'9': SegA | SegB | SegC | SegD | SegF | SegG,

	'A': SegA | SegB | SegC | SegE | SegF | SegG,
	'a': SegA | SegB | SegC | SegE | SegF | SegG,
	'B': SegC | SegD | SegE | SegF | SegG,
	'b': SegC | SegD | SegE | SegF | SegG,
	'C': SegD | SegE | SegG,
	'c': SegD | SegE | SegG,
	'D': SegB | SegC | SegD | SegE | SegG,
	'd': SegB | SegC | SegD | SegE | SegG,
	'E': SegA | SegD | SegE | SegF | SegG,
	'e': SegA | SegD | SegE | SegF | SegG,
	'F': SegA | SegE | SegF | SegG,
	'f': SegA | SegE | SegF | SegG,
	'G': SegA | SegC | SegD | SegE | SegF,
	'g': SegA | SegC | SegD | SegE | SegF,
	'H': SegB | SegC | SegE | SegF | SegG,
	'h': SegB | SegC | SegE | SegF | SegG,
	'I': SegB | SegC,
	'i': SegB | SegC,
	'L': SegD | SegE | SegF,
	'l': SegD | SegE | SegF,
	'O': SegA | SegB | SegC | SegD | SegE | SegF,
	'o': SegA | SegB | SegC | SegD | SegE | SegF,
	'P': SegA | SegB | SegE | SegF | SegG,
	'p': SegA | SegB | SegE | SegF | SegG,
	'R': SegE | SegG,
	'r': SegE | SegG,
	'S': SegA | SegC | SegD | SegF | SegG,
	's': SegA | SegC | SegD | SegF | SegG,
	'T': SegD | SegE | SegF | SegG,
	't': SegD | SegE | SegF | SegG,
	'U': SegB | SegC | SegD | SegE | SegF,
	'u': SegC | SegD | SegE,
	'Y': SegB | SegC | SegD | SegF | SegG,
	'y': SegB | SegC | SegD | SegF | SegG,
}

// Encode is pure, unsupported bytes give Blank.
func Encode(c byte) Pattern { return font[c] }
