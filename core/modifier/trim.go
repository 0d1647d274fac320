// core/modifier/trim.go
package modifier

import (
	"adaptrim-core/seq"
)

// UnconditionalCutter removes a fixed number of characters from the 5' end
// (positive length) or the 3' end (negative length) of every record. It
// clamps to the record length: cutting more than is available yields an
// empty sequence. Exactly one of the cut annotations is set per invocation.
type UnconditionalCutter struct {
	Length int
}

func (c UnconditionalCutter) Apply(r seq.Record, ctx *Context) seq.Record {
	switch {
	case c.Length > 0:
		n := c.Length
		if n > r.Len() {
			n = r.Len()
		}
		ctx.CutPrefix.set(r.Sequence[:n])
		return r.Slice(n, r.Len())
	case c.Length < 0:
		n := -c.Length
		if n > r.Len() {
			n = r.Len()
		}
		ctx.CutSuffix.set(r.Sequence[r.Len()-n:])
		return r.Slice(0, r.Len()-n)
	}
	return r
}

// NEndTrimmer strips no-call characters from both ends of the sequence.
// Interior N runs stay; an all-N record becomes empty.
type NEndTrimmer struct{}

func isN(b byte) bool { return b == 'N' || b == 'n' }

func (NEndTrimmer) Apply(r seq.Record, _ *Context) seq.Record {
	start, stop := 0, r.Len()
	for start < stop && isN(r.Sequence[start]) {
		start++
	}
	for stop > start && isN(r.Sequence[stop-1]) {
		stop--
	}
	return r.Slice(start, stop)
}

// Shortener truncates the sequence to at most Length characters from the
// start; shorter records pass through untouched.
type Shortener struct {
	Length int
}

func (s Shortener) Apply(r seq.Record, _ *Context) seq.Record {
	if r.Len() <= s.Length {
		return r
	}
	return r.Slice(0, s.Length)
}
