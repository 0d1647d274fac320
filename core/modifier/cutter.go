// core/modifier/cutter.go
package modifier

import (
	"fmt"

	"adaptrim-core/adapter"
	"adaptrim-core/align"
	"adaptrim-core/seq"
)

// AdapterCutter selects the single globally best adapter match for a record
// and applies that adapter's trim. Best-match-wins across the whole
// configured set: every index and every individually matched adapter is
// evaluated, then one trim is applied (or none).
type AdapterCutter struct {
	plan adapter.Plan
}

// NewAdapterCutter classifies the adapters into the matching plan. With
// useIndex true, same-class indel-free adapters are indexed; the rest are
// matched one by one. Configuration problems surface here, before any
// record is processed.
func NewAdapterCutter(ads []adapter.Adapter, useIndex bool) (*AdapterCutter, error) {
	if len(ads) == 0 {
		return nil, fmt.Errorf("adapter cutter: no adapters configured")
	}
	plan, err := adapter.Partition(ads, useIndex)
	if err != nil {
		return nil, err
	}
	return &AdapterCutter{plan: plan}, nil
}

// Sources returns how many match sources the cutter consults per record:
// each index counts once, each unindexed adapter counts once.
func (c *AdapterCutter) Sources() int {
	return len(c.plan.Indexes) + len(c.plan.Single)
}

// bestMatch evaluates all sources and picks the winner by the shared
// ordering: fewer errors, greater covered length, then first-configured
// adapter.
func (c *AdapterCutter) bestMatch(r seq.Record) (adapter.Adapter, align.Match, bool) {
	var (
		bestAd  adapter.Adapter
		bestM   align.Match
		bestOrd int
		found   bool
	)
	offer := func(ad adapter.Adapter, m align.Match, ord int) {
		switch {
		case !found:
		case m.Errors != bestM.Errors:
			if m.Errors > bestM.Errors {
				return
			}
		case m.Length != bestM.Length:
			if m.Length < bestM.Length {
				return
			}
		default:
			if ord >= bestOrd {
				return
			}
		}
		bestAd, bestM, bestOrd, found = ad, m, ord, true
	}
	for _, ix := range c.plan.Indexes {
		if ad, m, ord, ok := ix.Best(r); ok {
			offer(ad, m, ord)
		}
	}
	for _, s := range c.plan.Single {
		if m, ok := s.Ad.Match(r); ok {
			offer(s.Ad, m, s.Ord)
		}
	}
	return bestAd, bestM, found
}

// trim applies the winning match and records what was removed.
func trim(r seq.Record, ad adapter.Adapter, m align.Match, ctx *Context) seq.Record {
	start, stop := ad.Retained(m, r.Len())
	if start > 0 {
		ctx.CutPrefix.set(r.Sequence[:start])
	}
	if stop < r.Len() {
		ctx.CutSuffix.set(r.Sequence[stop:])
	}
	ctx.AdapterName.set(ad.Name())
	return r.Slice(start, stop)
}

// Apply implements Modifier. A record with no acceptable match passes
// through unchanged and gains no annotations.
func (c *AdapterCutter) Apply(r seq.Record, ctx *Context) seq.Record {
	ad, m, ok := c.bestMatch(r)
	if !ok {
		return r
	}
	return trim(r, ad, m, ctx)
}
