// core/align/edit.go
package align

/*
Indel-enabled alignment: unit-cost edit distance (substitution, insertion,
deletion) restricted to the cells a fixed error budget can reach. The query
is an adapter of a few dozen characters, so each target column costs
O(len(query)) and the whole scan stays near-linear in the target.
*/

// EditPrefix aligns query to the 5' end of target allowing indels. The
// alignment is anchored: target characters consumed before the adapter ends
// are part of the match, and query characters that overhang a short target
// are unmatched. The budget divisor is the full query length.
func EditPrefix(query, target []byte, rate float64, minOverlap int) (Match, bool) {
	m := len(query)
	if m == 0 {
		return Match{}, false
	}
	budget := Budget(rate, m)

	// The adapter cannot stop more than `budget` characters past its own
	// length without exceeding the budget on insertions alone.
	jmax := m + budget
	if jmax > len(target) {
		jmax = len(target)
	}

	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for i := 0; i <= m; i++ {
		prev[i] = i // consuming query with no target costs deletions
	}

	var best Match
	found := false
	consider := func(c Match) {
		if c.Errors > budget || c.Length < minOverlap {
			return
		}
		if !found || c.Better(best) {
			best, found = c, true
		}
	}

	for j := 1; j <= jmax; j++ {
		cur[0] = j // target consumed before any query char is an insertion
		for i := 1; i <= m; i++ {
			cost := prev[i-1]
			if !BaseMatch(target[j-1], query[i-1]) {
				cost++
			}
			if up := prev[i] + 1; up < cost {
				cost = up
			}
			if left := cur[i-1] + 1; left < cost {
				cost = left
			}
			cur[i] = cost
		}
		consider(Match{Start: 0, Stop: j, Errors: cur[m], Length: m})
		if j == len(target) && len(target) < m {
			// Read shorter than the adapter: accept the partial alignment
			// covering however much query fit.
			for i := 1; i < m; i++ {
				consider(Match{Start: 0, Stop: j, Errors: cur[i], Length: i})
			}
		}
		prev, cur = cur, prev
	}
	return best, found
}

// EditBack finds the best 3' occurrence of query in target allowing indels:
// the match may start anywhere, and either covers the full query or runs off
// the target's 3' end. Start positions are tracked through the recurrence so
// the trim boundary is exact. The budget divisor is the covered query length.
func EditBack(query, target []byte, rate float64, minOverlap int) (Match, bool) {
	m := len(query)
	n := len(target)
	if m == 0 {
		return Match{}, false
	}

	prevD := make([]int, m+1)
	prevS := make([]int, m+1)
	curD := make([]int, m+1)
	curS := make([]int, m+1)
	for i := 0; i <= m; i++ {
		prevD[i] = i
		prevS[i] = 0
	}

	var best Match
	found := false
	consider := func(c Match) {
		if c.Errors > Budget(rate, c.Length) || c.Length < minOverlap || c.Length == 0 {
			return
		}
		if !found || c.Better(best) {
			best, found = c, true
		}
	}

	for j := 1; j <= n; j++ {
		curD[0] = 0 // free leading target: the match starts where we stand
		curS[0] = j
		for i := 1; i <= m; i++ {
			// Diagonal first, then query-gap, then target-gap; the fixed
			// order keeps start attribution deterministic.
			d := prevD[i-1]
			if !BaseMatch(target[j-1], query[i-1]) {
				d++
			}
			s := prevS[i-1]
			if up := prevD[i] + 1; up < d {
				d, s = up, prevS[i]
			}
			if left := curD[i-1] + 1; left < d {
				d, s = left, curS[i-1]
			}
			curD[i] = d
			curS[i] = s
		}
		consider(Match{Start: curS[m], Stop: j, Errors: curD[m], Length: m})
		if j == n {
			// Suffix partials: the adapter overhangs the 3' end.
			for i := 1; i < m; i++ {
				consider(Match{Start: curS[i], Stop: n, Errors: curD[i], Length: i})
			}
		}
		prevD, curD = curD, prevD
		prevS, curS = curS, prevS
	}
	return best, found
}
