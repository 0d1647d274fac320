// core/modifier/qualtrim.go
package modifier

import (
	"adaptrim-core/seq"
)

// QualityTrimmer trims low-quality runs from each end independently, using
// the running-sum minimum algorithm: walking inward from an end, accumulate
// (cutoff - quality) and cut at the position where the cumulative sum
// peaks. A cutoff of 0 disables trimming on that end. Records without
// qualities pass through unchanged.
type QualityTrimmer struct {
	CutoffFront int // 5' cutoff
	CutoffBack  int // 3' cutoff
	Base        int // encoding offset, typically 33
}

func (t QualityTrimmer) Apply(r seq.Record, _ *Context) seq.Record {
	if r.Qualities == "" {
		return r
	}
	start, stop := qualityTrimIndex(r.Qualities, t.CutoffFront, t.CutoffBack, t.Base)
	return r.Slice(start, stop)
}

// qualityTrimIndex returns the half-open retained span of q.
func qualityTrimIndex(q string, cutoffFront, cutoffBack, base int) (int, int) {
	start, stop := 0, len(q)

	s, maxSum := 0, 0
	for i := 0; i < len(q); i++ {
		s += cutoffFront - (int(q[i]) - base)
		if s < 0 {
			break
		}
		if s > maxSum {
			maxSum = s
			start = i + 1
		}
	}

	s, maxSum = 0, 0
	for i := len(q) - 1; i >= 0; i-- {
		s += cutoffBack - (int(q[i]) - base)
		if s < 0 {
			break
		}
		if s > maxSum {
			maxSum = s
			stop = i
		}
	}

	if start >= stop {
		return 0, 0
	}
	return start, stop
}

// ZeroCapper clamps every quality value below the minimum encodable score
// up to that minimum. The sequence is untouched; a record without
// qualities is a no-op.
type ZeroCapper struct {
	Base int
}

func (z ZeroCapper) Apply(r seq.Record, _ *Context) seq.Record {
	if r.Qualities == "" {
		return r
	}
	floor := byte(z.Base)
	q := []byte(r.Qualities)
	changed := false
	for i, b := range q {
		if b < floor {
			q[i] = floor
			changed = true
		}
	}
	if changed {
		r.Qualities = string(q)
	}
	return r
}
