// core/adapter/adapter.go
package adapter

import (
	"fmt"

	"adaptrim-core/align"
	"adaptrim-core/seq"
)

// Kind is the anchor class of an adapter. The set is closed: reads are
// contaminated at the 5' end, the 3' end, or both.
type Kind int

const (
	KindPrefix Kind = iota // anchored to the read start
	KindBack               // 3' adapter: internal or running off the read end
	KindLinked             // a Prefix and a Back applied to the same read
)

// Config describes one adapter. DefaultConfig supplies the conventional
// trimming defaults; construction validates the rest.
type Config struct {
	Sequence     string
	Name         string
	MaxErrorRate float64
	MinOverlap   int
	Indels       bool
}

// DefaultConfig returns the standard settings for an adapter sequence:
// 10% error rate, 3-character minimum overlap, indels allowed.
func DefaultConfig(sequence string) Config {
	return Config{Sequence: sequence, Name: sequence, MaxErrorRate: 0.1, MinOverlap: 3, Indels: true}
}

func (c Config) validate() error {
	if len(c.Sequence) == 0 {
		return fmt.Errorf("adapter %q: empty sequence", c.Name)
	}
	if c.MinOverlap < 0 {
		return fmt.Errorf("adapter %q: negative minimum overlap %d", c.Name, c.MinOverlap)
	}
	if c.MaxErrorRate < 0 || c.MaxErrorRate >= 1 {
		return fmt.Errorf("adapter %q: error rate %v outside [0,1)", c.Name, c.MaxErrorRate)
	}
	return nil
}

// Adapter is a typed alignment target. Match finds the best acceptable
// occurrence in a record or reports that there is none; Retained maps a
// match to the half-open span of the read that survives trimming; Trim
// applies it. A failed match leaves the record untouched.
type Adapter interface {
	Name() string
	Kind() Kind
	Match(r seq.Record) (align.Match, bool)
	Retained(m align.Match, n int) (start, stop int)
	Trim(r seq.Record, m align.Match) seq.Record
}

/* -------------------------------- Prefix -------------------------------- */

// Prefix is a 5'-anchored adapter: it aligns at the read start and trimming
// keeps the suffix beyond the match.
type Prefix struct {
	cfg   Config
	query []byte
}

func NewPrefix(cfg Config) (*Prefix, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Prefix{cfg: cfg, query: []byte(cfg.Sequence)}, nil
}

func (a *Prefix) Name() string   { return a.cfg.Name }
func (a *Prefix) Kind() Kind     { return KindPrefix }
func (a *Prefix) Config() Config { return a.cfg }

func (a *Prefix) Match(r seq.Record) (align.Match, bool) {
	t := []byte(r.Sequence)
	if a.cfg.Indels {
		return align.EditPrefix(a.query, t, a.cfg.MaxErrorRate, a.cfg.MinOverlap)
	}
	return align.AlignPrefix(a.query, t, a.cfg.MaxErrorRate, a.cfg.MinOverlap)
}

func (a *Prefix) Retained(m align.Match, n int) (int, int) { return m.Stop, n }

func (a *Prefix) Trim(r seq.Record, m align.Match) seq.Record {
	start, stop := a.Retained(m, r.Len())
	return r.Slice(start, stop)
}

/* --------------------------------- Back --------------------------------- */

// Back is a 3' adapter. A match may sit anywhere in the read (full
// occurrence) or overhang the 3' end (partial); trimming keeps the prefix
// before the match.
type Back struct {
	cfg   Config
	query []byte
}

func NewBack(cfg Config) (*Back, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Back{cfg: cfg, query: []byte(cfg.Sequence)}, nil
}

func (a *Back) Name() string   { return a.cfg.Name }
func (a *Back) Kind() Kind     { return KindBack }
func (a *Back) Config() Config { return a.cfg }

func (a *Back) Match(r seq.Record) (align.Match, bool) {
	t := []byte(r.Sequence)
	if a.cfg.Indels {
		return align.EditBack(a.query, t, a.cfg.MaxErrorRate, a.cfg.MinOverlap)
	}
	return align.AlignBack(a.query, t, a.cfg.MaxErrorRate, a.cfg.MinOverlap)
}

func (a *Back) Retained(m align.Match, n int) (int, int) { return 0, m.Start }

func (a *Back) Trim(r seq.Record, m align.Match) seq.Record {
	start, stop := a.Retained(m, r.Len())
	return r.Slice(start, stop)
}

/* -------------------------------- Linked -------------------------------- */

// Linked combines a Prefix and a Back adapter on the same read. By default
// both sides must match for the read to be trimmed at all; either side can
// be made optional. The composite match spans the retained interior:
// Start/Stop are the kept region, Errors and Length sum both sides.
type Linked struct {
	name          string
	front         *Prefix
	back          *Back
	frontRequired bool
	backRequired  bool
}

func NewLinked(front *Prefix, back *Back, frontRequired, backRequired bool) (*Linked, error) {
	if front == nil || back == nil {
		return nil, fmt.Errorf("linked adapter: both sides must be configured")
	}
	return &Linked{
		name:          front.Name() + "..." + back.Name(),
		front:         front,
		back:          back,
		frontRequired: frontRequired,
		backRequired:  backRequired,
	}, nil
}

func (a *Linked) Name() string { return a.name }
func (a *Linked) Kind() Kind   { return KindLinked }

func (a *Linked) Match(r seq.Record) (align.Match, bool) {
	n := r.Len()
	keepStart, keepStop := 0, n
	errors, length := 0, 0

	fm, fok := a.front.Match(r)
	if !fok && a.frontRequired {
		return align.Match{}, false
	}
	if fok {
		keepStart = fm.Stop
		errors += fm.Errors
		length += fm.Length
	}

	bm, bok := a.back.Match(r.Slice(keepStart, n))
	if !bok && a.backRequired {
		return align.Match{}, false
	}
	if bok {
		keepStop = keepStart + bm.Start
		errors += bm.Errors
		length += bm.Length
	}

	if !fok && !bok {
		return align.Match{}, false
	}
	return align.Match{Start: keepStart, Stop: keepStop, Errors: errors, Length: length}, true
}

func (a *Linked) Retained(m align.Match, _ int) (int, int) { return m.Start, m.Stop }

func (a *Linked) Trim(r seq.Record, m align.Match) seq.Record {
	return r.Slice(m.Start, m.Stop)
}
