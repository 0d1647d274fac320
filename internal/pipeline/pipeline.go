// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"adaptrim-core/modifier"
	"adaptrim-core/seq"
	"adaptrim/internal/fastq"
)

// Config controls the trimming pipeline.
type Config struct {
	Threads   int // number of worker goroutines; 0 = all CPUs
	BatchSize int // records per work unit; 0 = default
}

const defaultBatchSize = 512

func (c Config) normalized() Config {
	if c.Threads < 1 {
		c.Threads = runtime.NumCPU()
	}
	if c.BatchSize < 1 {
		c.BatchSize = defaultBatchSize
	}
	return c
}

// Stats accumulates counters across workers.
type Stats struct {
	reads       atomic.Int64
	pairs       atomic.Int64
	withAdapter atomic.Int64
	basesIn     atomic.Int64
	basesOut    atomic.Int64
}

// Totals is a point-in-time copy of the counters.
type Totals struct {
	Reads       int64
	Pairs       int64
	WithAdapter int64
	BasesIn     int64
	BasesOut    int64
}

func (s *Stats) Snapshot() Totals {
	return Totals{
		Reads:       s.reads.Load(),
		Pairs:       s.pairs.Load(),
		WithAdapter: s.withAdapter.Load(),
		BasesIn:     s.basesIn.Load(),
		BasesOut:    s.basesOut.Load(),
	}
}

func (s *Stats) count(in, out seq.Record, ctx *modifier.Context) {
	s.reads.Add(1)
	s.basesIn.Add(int64(in.Len()))
	s.basesOut.Add(int64(out.Len()))
	if ctx.AdapterName.Set {
		s.withAdapter.Add(1)
	}
}

type batch struct {
	idx  int
	recs []seq.Record
}

type pairBatch struct {
	idx  int
	r1s  []seq.Record
	r2s  []seq.Record
}

// Run streams single-end records from r through p and writes the results
// to w in input order. Workers process batches concurrently; an orderer
// reassembles them before writing.
func Run(ctx context.Context, cfg Config, r *fastq.Reader, w *fastq.Writer, p *modifier.Pipeline) (Totals, error) {
	cfg = cfg.normalized()
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan batch, cfg.Threads*2)
	results := make(chan batch, cfg.Threads*2)

	g.Go(func() error {
		defer close(jobs)
		for idx := 0; ; idx++ {
			recs, err := r.NextBatch(cfg.BatchSize)
			if len(recs) > 0 {
				select {
				case jobs <- batch{idx: idx, recs: recs}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})

	workers, wctx := errgroup.WithContext(gctx)
	for i := 0; i < cfg.Threads; i++ {
		workers.Go(func() error {
			for b := range jobs {
				for i, rec := range b.recs {
					out, mctx := p.Run(rec)
					stats.count(rec, out, mctx)
					b.recs[i] = out
				}
				select {
				case results <- b:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(results)
		return workers.Wait()
	})

	g.Go(func() error {
		pending := make(map[int][]seq.Record)
		next := 0
		for b := range results {
			pending[b.idx] = b.recs
			for {
				recs, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				for _, rec := range recs {
					if err := w.Write(rec); err != nil {
						return err
					}
				}
			}
		}
		return w.Flush()
	})

	err := g.Wait()
	return stats.Snapshot(), err
}

// RunPaired is Run for mated read files. The two inputs must contain the
// same number of records; a length mismatch is an error.
func RunPaired(ctx context.Context, cfg Config, r1, r2 *fastq.Reader, w1, w2 *fastq.Writer, pp *modifier.PairedPipeline) (Totals, error) {
	cfg = cfg.normalized()
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan pairBatch, cfg.Threads*2)
	results := make(chan pairBatch, cfg.Threads*2)

	g.Go(func() error {
		defer close(jobs)
		for idx := 0; ; idx++ {
			recs1, err1 := r1.NextBatch(cfg.BatchSize)
			recs2, err2 := r2.NextBatch(cfg.BatchSize)
			if err1 != nil && err1 != io.EOF {
				return err1
			}
			if err2 != nil && err2 != io.EOF {
				return err2
			}
			if len(recs1) != len(recs2) {
				return errUnevenPair
			}
			if len(recs1) > 0 {
				select {
				case jobs <- pairBatch{idx: idx, r1s: recs1, r2s: recs2}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			if err1 == io.EOF || err2 == io.EOF {
				return nil
			}
		}
	})

	workers, wctx := errgroup.WithContext(gctx)
	for i := 0; i < cfg.Threads; i++ {
		workers.Go(func() error {
			for b := range jobs {
				for i := range b.r1s {
					in1, in2 := b.r1s[i], b.r2s[i]
					out1, out2, c1, c2 := pp.Run(in1, in2)
					stats.count(in1, out1, c1)
					stats.count(in2, out2, c2)
					stats.pairs.Add(1)
					b.r1s[i], b.r2s[i] = out1, out2
				}
				select {
				case results <- b:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(results)
		return workers.Wait()
	})

	g.Go(func() error {
		pending := make(map[int]pairBatch)
		next := 0
		for b := range results {
			pending[b.idx] = b
			for {
				pb, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				for i := range pb.r1s {
					if err := w1.Write(pb.r1s[i]); err != nil {
						return err
					}
					if err := w2.Write(pb.r2s[i]); err != nil {
						return err
					}
				}
			}
		}
		if err := w1.Flush(); err != nil {
			return err
		}
		return w2.Flush()
	})

	err := g.Wait()
	return stats.Snapshot(), err
}
