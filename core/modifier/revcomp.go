// core/modifier/revcomp.go
package modifier

import (
	"adaptrim-core/seq"
)

// ReverseComplementer wraps an AdapterCutter and tries both read
// orientations. The reverse complement is kept only when its match is
// strictly better than the forward one (or the forward orientation has no
// match at all); the Context flag records which orientation won.
type ReverseComplementer struct {
	cutter *AdapterCutter
}

func NewReverseComplementer(cutter *AdapterCutter) *ReverseComplementer {
	return &ReverseComplementer{cutter: cutter}
}

// Apply implements Modifier. Exactly one orientation's trimmed output is
// returned; with no match in either orientation the record passes through
// unchanged, not flipped.
func (rc *ReverseComplementer) Apply(r seq.Record, ctx *Context) seq.Record {
	fwdAd, fwdM, fwdOK := rc.cutter.bestMatch(r)

	rev := seq.RevComp(r)
	revAd, revM, revOK := rc.cutter.bestMatch(rev)

	useRC := revOK && (!fwdOK || revM.Better(fwdM))
	if useRC {
		ctx.IsRC = true
		return trim(rev, revAd, revM, ctx)
	}
	ctx.IsRC = false
	if !fwdOK {
		return r
	}
	return trim(r, fwdAd, fwdM, ctx)
}
