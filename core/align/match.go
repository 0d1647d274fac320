// core/align/match.go
package align

// Match is one acceptable occurrence of a query inside a target.
// Start/Stop are a half-open span in the target. Length is the number of
// query characters the span covers (the overlap), which for indel-free
// matches equals Stop-Start.
type Match struct {
	Start  int
	Stop   int
	Errors int
	Length int
}

// Better reports whether m beats o: fewer errors wins, then the greater
// covered length. Remaining ties fall to discovery order, so callers keep
// the match found first unless Better returns true.
func (m Match) Better(o Match) bool {
	if m.Errors != o.Errors {
		return m.Errors < o.Errors
	}
	return m.Length > o.Length
}
