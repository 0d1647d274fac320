// core/seq/record.go
package seq

// Record is one sequencing read: the full header text, the base characters,
// and optional per-base qualities. Qualities == "" means the read carries no
// quality values; when present, len(Qualities) == len(Sequence).
//
// Records are values and are never mutated in place. Every transformation
// returns a new Record, so a Record handed to concurrent consumers is safe
// to share.
type Record struct {
	Name      string
	Sequence  string
	Qualities string
}

// New builds a Record. It does not validate the quality length; use Valid
// at the I/O boundary where malformed input can appear.
func New(name, sequence, qualities string) Record {
	return Record{Name: name, Sequence: sequence, Qualities: qualities}
}

// Len returns the number of bases.
func (r Record) Len() int { return len(r.Sequence) }

// HasQualities reports whether the record carries quality values.
func (r Record) HasQualities() bool { return r.Qualities != "" }

// Valid reports whether qualities, if present, match the sequence length.
func (r Record) Valid() bool {
	return r.Qualities == "" || len(r.Qualities) == len(r.Sequence)
}

// Slice returns the subrecord covering sequence[start:stop], carrying the
// matching quality span. Callers pass in-range, ordered offsets.
func (r Record) Slice(start, stop int) Record {
	out := Record{Name: r.Name, Sequence: r.Sequence[start:stop]}
	if r.Qualities != "" {
		out.Qualities = r.Qualities[start:stop]
	}
	return out
}

// WithName returns a copy of r under a new name.
func (r Record) WithName(name string) Record {
	r.Name = name
	return r
}

// WithSequence returns a copy of r with sequence (and optionally qualities)
// replaced. Pass qualities == "" to keep the existing quality string.
func (r Record) WithSequence(sequence, qualities string) Record {
	r.Sequence = sequence
	if qualities != "" {
		r.Qualities = qualities
	}
	return r
}
