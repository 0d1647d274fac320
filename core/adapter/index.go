// core/adapter/index.go
package adapter

import (
	"fmt"

	"adaptrim-core/align"
	"adaptrim-core/seq"
)

/*
Multi-adapter index: a 4-ary trie over the query strings of adapters that
share an anchor class and the no-indel policy. One descent per candidate
offset evaluates every adapter simultaneously instead of rescanning the
read once per adapter. Each adapter keeps its own error-rate and
minimum-overlap settings; the trie only shares the comparison work.

Only unambiguous A/C/G/T queries are indexable. Adapters with ambiguity
codes, indels enabled, or linked composition are matched individually (see
Partition).
*/

type trieNode struct {
	next     [4]int32 // -1 = absent
	terminal []int32  // entries whose full query ends at this node
	sub      []int32  // entries whose query continues below this node
}

type entry struct {
	ord   int // position in the configured adapter list (tie-break order)
	ad    Adapter
	query []byte
	rate  float64
	minOv int
}

// Index matches a set of same-kind, indel-free adapters in one pass.
type Index struct {
	kind     Kind
	nodes    []trieNode
	entries  []entry
	maxErr   int // largest per-adapter budget; DFS prune bound
	minOvAll int // smallest minimum overlap; offset-scan prune bound
}

func baseIdx(b byte) int {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't':
		return 3
	default:
		return -1
	}
}

func indexable(ad Adapter) bool {
	var cfg Config
	switch a := ad.(type) {
	case *Prefix:
		cfg = a.Config()
	case *Back:
		cfg = a.Config()
	default:
		return false
	}
	if cfg.Indels {
		return false
	}
	for i := 0; i < len(cfg.Sequence); i++ {
		if baseIdx(cfg.Sequence[i]) < 0 {
			return false
		}
	}
	return true
}

// newIndex builds the trie for the given (ord, adapter) slots, which must
// all be indexable and of the same kind.
func newIndex(kind Kind, slots []Slot) (*Index, error) {
	ix := &Index{kind: kind, nodes: make([]trieNode, 1), minOvAll: 1 << 30}
	for i := range ix.nodes[0].next {
		ix.nodes[0].next[i] = -1
	}
	for _, s := range slots {
		var cfg Config
		switch a := s.Ad.(type) {
		case *Prefix:
			cfg = a.Config()
		case *Back:
			cfg = a.Config()
		default:
			return nil, fmt.Errorf("adapter %q: not indexable", s.Ad.Name())
		}
		e := int32(len(ix.entries))
		ix.entries = append(ix.entries, entry{
			ord:   s.Ord,
			ad:    s.Ad,
			query: []byte(cfg.Sequence),
			rate:  cfg.MaxErrorRate,
			minOv: cfg.MinOverlap,
		})
		if b := align.Budget(cfg.MaxErrorRate, len(cfg.Sequence)); b > ix.maxErr {
			ix.maxErr = b
		}
		if cfg.MinOverlap < ix.minOvAll {
			ix.minOvAll = cfg.MinOverlap
		}

		cur := int32(0)
		for _, b := range []byte(cfg.Sequence) {
			k := baseIdx(b)
			if k < 0 {
				return nil, fmt.Errorf("adapter %q: ambiguous query not indexable", s.Ad.Name())
			}
			ix.nodes[cur].sub = append(ix.nodes[cur].sub, e)
			if ix.nodes[cur].next[k] == -1 {
				var nn trieNode
				for i := range nn.next {
					nn.next[i] = -1
				}
				ix.nodes[cur].next[k] = int32(len(ix.nodes))
				ix.nodes = append(ix.nodes, nn)
			}
			cur = ix.nodes[cur].next[k]
		}
		ix.nodes[cur].terminal = append(ix.nodes[cur].terminal, e)
	}
	return ix, nil
}

// Len returns the number of adapters behind the index.
func (ix *Index) Len() int { return len(ix.entries) }

// Kind returns the shared anchor class.
func (ix *Index) Kind() Kind { return ix.kind }

// candidate accumulates the running winner of one Best call.
type candidate struct {
	e     int32
	match align.Match
	ok    bool
}

func (c *candidate) offer(e int32, m align.Match, entries []entry) {
	if !c.ok {
		c.e, c.match, c.ok = e, m, true
		return
	}
	b := c.match
	switch {
	case m.Errors != b.Errors:
		if m.Errors < b.Errors {
			c.e, c.match = e, m
		}
	case m.Length != b.Length:
		if m.Length > b.Length {
			c.e, c.match = e, m
		}
	case entries[e].ord < entries[c.e].ord:
		c.e, c.match = e, m
	}
}

// Best returns the best-matching (adapter, match, ord) across every indexed
// adapter, or ok=false. Ordering: fewer errors, then greater covered length,
// then first-listed adapter; remaining ties keep the leftmost offset because
// offsets are scanned in order.
func (ix *Index) Best(r seq.Record) (Adapter, align.Match, int, bool) {
	t := []byte(r.Sequence)
	var best candidate
	if ix.kind == KindPrefix {
		ix.descend(t, 0, &best)
	} else {
		for pos := 0; pos < len(t); pos++ {
			if len(t)-pos < ix.minOvAll {
				break
			}
			ix.descend(t, pos, &best)
		}
	}
	if !best.ok {
		return nil, align.Match{}, 0, false
	}
	e := ix.entries[best.e]
	return e.ad, best.match, e.ord, true
}

// descend walks the trie against t[pos:], accumulating mismatches, and
// offers every acceptable full or target-exhausted partial match.
func (ix *Index) descend(t []byte, pos int, best *candidate) {
	ix.walkAt(t, pos, 0, 0, 0, best)
}

func (ix *Index) walkAt(t []byte, pos int, node int32, depth, errors int, best *candidate) {
	nd := &ix.nodes[node]

	for _, e := range nd.terminal {
		ent := &ix.entries[e]
		overlap := len(ent.query) // == depth
		if overlap >= ent.minOv && errors <= align.Budget(ent.rate, overlap) {
			best.offer(e, align.Match{Start: pos, Stop: pos + overlap, Errors: errors, Length: overlap}, ix.entries)
		}
	}

	if pos+depth >= len(t) {
		// Ran out of read: every adapter continuing below aligns partially
		// with the current error count. For the prefix class this is a read
		// shorter than the adapter; for the back class, a 3' overhang.
		for _, e := range nd.sub {
			ent := &ix.entries[e]
			if len(ent.query) <= depth {
				continue // full-length case handled via terminal above
			}
			divisor := depth
			if ix.kind == KindPrefix {
				divisor = len(ent.query) // anchored divisor
			}
			if depth >= ent.minOv && depth > 0 && errors <= align.Budget(ent.rate, divisor) {
				best.offer(e, align.Match{Start: pos, Stop: pos + depth, Errors: errors, Length: depth}, ix.entries)
			}
		}
		return
	}

	rb := align.Mask(t[pos+depth])
	for k := 0; k < 4; k++ {
		child := nd.next[k]
		if child == -1 {
			continue
		}
		cost := errors
		if rb&(1<<uint(k)) == 0 {
			cost++
		}
		if cost > ix.maxErr {
			continue
		}
		ix.walkAt(t, pos, child, depth+1, cost, best)
	}
}
