// core/align/align.go
package align

/*
Substitution-only alignment for the no-indel policy: a fixed-length base
comparison at each candidate offset, bounded by an error-rate budget.

Conventions shared by all entry points:
  - rate is errors permitted per query character; the divisor is the full
    query length for anchored (prefix) matches and the actual overlap for
    unanchored (back) matches.
  - minOverlap rejects matches covering fewer query characters, even when
    they are error-rate valid.
*/

// Budget converts an error rate and a divisor length into a whole-number
// error allowance.
func Budget(rate float64, length int) int {
	return int(rate * float64(length))
}

// countMismatches compares query against target[offset:] over `overlap`
// characters, bailing out as soon as the budget is exceeded.
func countMismatches(query, target []byte, offset, overlap, budget int) (int, bool) {
	mm := 0
	for j := 0; j < overlap; j++ {
		if !BaseMatch(target[offset+j], query[j]) {
			mm++
			if mm > budget {
				return mm, false
			}
		}
	}
	return mm, true
}

// AlignPrefix aligns query against the 5' end of target without indels.
// There is a single candidate placement: the first min(len(query),
// len(target)) characters. The error budget divisor is the full query
// length (anchored semantics).
func AlignPrefix(query, target []byte, rate float64, minOverlap int) (Match, bool) {
	overlap := len(query)
	if len(target) < overlap {
		overlap = len(target)
	}
	if overlap < minOverlap || overlap == 0 {
		return Match{}, false
	}
	budget := Budget(rate, len(query))
	mm, ok := countMismatches(query, target, 0, overlap, budget)
	if !ok {
		return Match{}, false
	}
	return Match{Start: 0, Stop: overlap, Errors: mm, Length: overlap}, true
}

// AlignBack finds the best occurrence of query as a 3' adapter without
// indels: a full internal occurrence anywhere in target, or a partial
// occurrence running off the 3' end. The budget divisor is the overlap, so
// short partial overlaps tolerate proportionally fewer errors. Candidates
// are scanned left to right; Better decides among them, so equal-error,
// equal-length ties keep the leftmost (longest-removal) placement.
func AlignBack(query, target []byte, rate float64, minOverlap int) (Match, bool) {
	m := len(query)
	n := len(target)
	if m == 0 || minOverlap < 0 {
		return Match{}, false
	}
	var best Match
	found := false
	for pos := 0; pos < n; pos++ {
		overlap := m
		if n-pos < overlap {
			overlap = n - pos
		}
		if overlap < minOverlap {
			break // overlaps only shrink from here
		}
		budget := Budget(rate, overlap)
		mm, ok := countMismatches(query, target, pos, overlap, budget)
		if !ok {
			continue
		}
		c := Match{Start: pos, Stop: pos + overlap, Errors: mm, Length: overlap}
		if !found || c.Better(best) {
			best, found = c, true
			if mm == 0 && overlap == m {
				break // cannot be beaten
			}
		}
	}
	return best, found
}
