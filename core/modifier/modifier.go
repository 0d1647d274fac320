// core/modifier/modifier.go

// Package modifier implements the composable read-modification pipeline:
// adapter cutting (single and paired), orientation flipping, and the
// uniform single-record transformations that surround them.
//
// Every stage is a pure function over its inputs apart from the per-record
// Context; stages and pipelines are immutable after construction and safe
// to share across workers.
package modifier

import (
	"adaptrim-core/seq"
)

// Modifier is one single-record transformation stage.
type Modifier interface {
	Apply(r seq.Record, ctx *Context) seq.Record
}

// PairedModifier transforms two mated records together.
type PairedModifier interface {
	ApplyPair(r1, r2 seq.Record, ctx1, ctx2 *Context) (seq.Record, seq.Record)
}

// Pipeline is an ordered sequence of Modifiers applied to each record with
// a shared Context. Stage N's output and Context writes are visible to
// stage N+1.
type Pipeline struct {
	mods []Modifier
}

// NewPipeline builds a pipeline over the given stages. The slice is copied;
// the pipeline never changes after construction.
func NewPipeline(mods ...Modifier) *Pipeline {
	p := &Pipeline{mods: make([]Modifier, len(mods))}
	copy(p.mods, mods)
	return p
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.mods) }

// Run passes one record through every stage with a fresh Context and
// returns the result together with the accumulated annotations.
func (p *Pipeline) Run(r seq.Record) (seq.Record, *Context) {
	ctx := &Context{}
	return p.RunWith(r, ctx), ctx
}

// RunWith applies all stages against an existing Context, for callers that
// chain a paired stage ahead of the per-mate stages.
func (p *Pipeline) RunWith(r seq.Record, ctx *Context) seq.Record {
	for _, m := range p.mods {
		r = m.Apply(r, ctx)
	}
	return r
}

// PairedPipeline coordinates mated reads: an optional paired stage runs
// first, then each mate continues through its own single-record pipeline
// with the Context the paired stage already populated.
type PairedPipeline struct {
	paired PairedModifier
	p1, p2 *Pipeline
}

// NewPairedPipeline builds a paired pipeline; paired may be nil when the
// mates only need independent stages.
func NewPairedPipeline(paired PairedModifier, p1, p2 *Pipeline) *PairedPipeline {
	return &PairedPipeline{paired: paired, p1: p1, p2: p2}
}

// Run processes one mate pair with fresh Contexts.
func (pp *PairedPipeline) Run(r1, r2 seq.Record) (seq.Record, seq.Record, *Context, *Context) {
	ctx1, ctx2 := &Context{}, &Context{}
	if pp.paired != nil {
		r1, r2 = pp.paired.ApplyPair(r1, r2, ctx1, ctx2)
	}
	r1 = pp.p1.RunWith(r1, ctx1)
	r2 = pp.p2.RunWith(r2, ctx2)
	return r1, r2, ctx1, ctx2
}
