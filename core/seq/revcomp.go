// core/seq/revcomp.go
package seq

var complement [256]byte

func init() {
	set := func(b, c byte) {
		complement[b] = c
		complement[b+'a'-'A'] = c + 'a' - 'A'
	}
	set('A', 'T')
	set('C', 'G')
	set('G', 'C')
	set('T', 'A')
	set('U', 'A')
	set('R', 'Y')
	set('Y', 'R')
	set('S', 'S')
	set('W', 'W')
	set('K', 'M')
	set('M', 'K')
	set('B', 'V')
	set('V', 'B')
	set('D', 'H')
	set('H', 'D')
	set('N', 'N')
}

// RevCompBytes returns the reverse complement of s. Case is preserved;
// bytes outside the IUPAC alphabet come back as 'N'.
func RevCompBytes(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// RevComp returns the record on the opposite strand: sequence reversed and
// complemented, qualities reversed with values unchanged.
func RevComp(r Record) Record {
	out := Record{Name: r.Name, Sequence: string(RevCompBytes([]byte(r.Sequence)))}
	if r.Qualities != "" {
		q := []byte(r.Qualities)
		for i, j := 0, len(q)-1; i < j; i, j = i+1, j-1 {
			q[i], q[j] = q[j], q[i]
		}
		out.Qualities = string(q)
	}
	return out
}
