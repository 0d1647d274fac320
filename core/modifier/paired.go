// core/modifier/paired.go
package modifier

import (
	"fmt"
	"strings"

	"adaptrim-core/adapter"
	"adaptrim-core/align"
	"adaptrim-core/seq"
)

// Action is the post-match disposition the paired cutter applies to the
// region an adapter match marked for removal.
type Action int

const (
	// ActionNone searches and annotates but leaves the read intact.
	ActionNone Action = iota
	// ActionTrim excises the matched region (the usual behavior).
	ActionTrim
	// ActionLowercase keeps the read full-length, case-folding the
	// matched region.
	ActionLowercase
	// ActionMask keeps the read full-length, overwriting the matched
	// region with no-call bases and flooring their qualities.
	ActionMask
)

// ParseAction maps a configuration string onto an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "none":
		return ActionNone, nil
	case "trim":
		return ActionTrim, nil
	case "lowercase":
		return ActionLowercase, nil
	case "mask":
		return ActionMask, nil
	}
	return 0, fmt.Errorf("unknown action %q (want none|trim|lowercase|mask)", s)
}

const (
	noCallBase      = 'N'
	defaultQualBase = 33 // phred encoding offset; '!' is phred 0 here
)

// PairedAdapterCutter runs an independent AdapterCutter per mate and applies
// one disposition action to each mate's removed region. A mate with no
// match is unaffected regardless of the action.
type PairedAdapterCutter struct {
	cutter1 *AdapterCutter
	cutter2 *AdapterCutter
	action  Action
	base    int
}

func NewPairedAdapterCutter(adapters1, adapters2 []adapter.Adapter, action Action) (*PairedAdapterCutter, error) {
	c1, err := NewAdapterCutter(adapters1, true)
	if err != nil {
		return nil, fmt.Errorf("r1: %w", err)
	}
	c2, err := NewAdapterCutter(adapters2, true)
	if err != nil {
		return nil, fmt.Errorf("r2: %w", err)
	}
	return &PairedAdapterCutter{cutter1: c1, cutter2: c2, action: action, base: defaultQualBase}, nil
}

// WithQualityBase sets the phred encoding offset masking floors qualities
// to; the lowest encodable value differs between +33 and +64 data.
func (p *PairedAdapterCutter) WithQualityBase(base int) *PairedAdapterCutter {
	p.base = base
	return p
}

// NewPairedAdapterCutterFrom wires two already-built cutters, for callers
// that configure indexing themselves.
func NewPairedAdapterCutterFrom(c1, c2 *AdapterCutter, action Action) *PairedAdapterCutter {
	return &PairedAdapterCutter{cutter1: c1, cutter2: c2, action: action, base: defaultQualBase}
}

// ApplyPair implements PairedModifier.
func (p *PairedAdapterCutter) ApplyPair(r1, r2 seq.Record, ctx1, ctx2 *Context) (seq.Record, seq.Record) {
	return p.applyOne(p.cutter1, r1, ctx1), p.applyOne(p.cutter2, r2, ctx2)
}

func (p *PairedAdapterCutter) applyOne(c *AdapterCutter, r seq.Record, ctx *Context) seq.Record {
	return applyAction(c, r, ctx, p.action, p.base)
}

// ActionCutter applies a disposition action to single reads, for runs
// where matched regions are masked, lowercased, or only annotated
// instead of excised.
type ActionCutter struct {
	cutter *AdapterCutter
	action Action
	base   int
}

func NewActionCutter(c *AdapterCutter, action Action) *ActionCutter {
	return &ActionCutter{cutter: c, action: action, base: defaultQualBase}
}

// WithQualityBase sets the phred encoding offset masking floors qualities to.
func (a *ActionCutter) WithQualityBase(base int) *ActionCutter {
	a.base = base
	return a
}

// Apply implements Modifier.
func (a *ActionCutter) Apply(r seq.Record, ctx *Context) seq.Record {
	return applyAction(a.cutter, r, ctx, a.action, a.base)
}

func applyAction(c *AdapterCutter, r seq.Record, ctx *Context, action Action, base int) seq.Record {
	ad, m, ok := c.bestMatch(r)
	if !ok {
		return r
	}
	switch action {
	case ActionTrim:
		return trim(r, ad, m, ctx)
	case ActionNone:
		annotate(r, ad, m, ctx)
		return r
	case ActionLowercase:
		annotate(r, ad, m, ctx)
		return rewriteRemoved(r, ad, m, lowercaseSpan)
	case ActionMask:
		annotate(r, ad, m, ctx)
		return maskRemoved(r, ad, m, base)
	}
	return r
}

// annotate records the removed spans without modifying the record, for
// actions that keep the read full-length.
func annotate(r seq.Record, ad adapter.Adapter, m align.Match, ctx *Context) {
	start, stop := ad.Retained(m, r.Len())
	if start > 0 {
		ctx.CutPrefix.set(r.Sequence[:start])
	}
	if stop < r.Len() {
		ctx.CutSuffix.set(r.Sequence[stop:])
	}
	ctx.AdapterName.set(ad.Name())
}

// rewriteRemoved rebuilds the sequence with fn applied to the removed spans.
func rewriteRemoved(r seq.Record, ad adapter.Adapter, m align.Match, fn func([]byte)) seq.Record {
	start, stop := ad.Retained(m, r.Len())
	s := []byte(r.Sequence)
	fn(s[:start])
	fn(s[stop:])
	r.Sequence = string(s)
	return r
}

func lowercaseSpan(s []byte) {
	for i, b := range s {
		if b >= 'A' && b <= 'Z' {
			s[i] = b + 'a' - 'A'
		}
	}
}

// maskRemoved overwrites the removed spans with no-call bases and floors
// their qualities to phred 0 at the given encoding offset; the record
// length is preserved.
func maskRemoved(r seq.Record, ad adapter.Adapter, m align.Match, base int) seq.Record {
	start, stop := ad.Retained(m, r.Len())
	floor := byte(base)
	s := []byte(r.Sequence)
	for i := 0; i < start; i++ {
		s[i] = noCallBase
	}
	for i := stop; i < len(s); i++ {
		s[i] = noCallBase
	}
	r.Sequence = string(s)
	if r.Qualities != "" {
		q := []byte(r.Qualities)
		for i := 0; i < start; i++ {
			q[i] = floor
		}
		for i := stop; i < len(q); i++ {
			q[i] = floor
		}
		r.Qualities = string(q)
	}
	return r
}
