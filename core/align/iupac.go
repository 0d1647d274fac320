// core/align/iupac.go
package align

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c+'a'-'A'] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA input, matched as T
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

/* ------------------------------ BaseMatch ------------------------------- */

// BaseMatch reports whether adapter base p can pair with read base r.
// Both sides are interpreted as IUPAC codes, case-insensitively, and pair
// when their base sets intersect. A byte outside the alphabet never matches.
func BaseMatch(r, p byte) bool {
	return iupacMask[r]&iupacMask[p] != 0
}

// Mask exposes the ambiguity bits for a byte (bit0=A bit1=C bit2=G bit3=T),
// for callers that resolve base compatibility themselves, such as the
// adapter trie.
func Mask(b byte) byte { return iupacMask[b] }
