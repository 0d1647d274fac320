// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"adaptrim-core/adapter"
	"adaptrim-core/modifier"
	"adaptrim/internal/cli"
	"adaptrim/internal/fastq"
	"adaptrim/internal/pipeline"
	"adaptrim/internal/report"
	"adaptrim/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("adaptrim")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); fastq.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); e != nil && !fastq.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "adaptrim version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !fastq.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	start := time.Now()
	var totals pipeline.Totals
	if len(opts.Inputs) == 2 {
		totals, err = runPaired(parent, opts, stdout)
	} else {
		totals, err = runSingle(parent, opts, stdout)
	}
	if err != nil {
		if fastq.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	switch {
	case opts.Quiet:
	case opts.JSONReport:
		if err := report.PrintJSON(stderr, totals, time.Since(start)); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	default:
		report.Print(stderr, totals, time.Since(start))
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runSingle(ctx context.Context, opts cli.Options, stdout io.Writer) (pipeline.Totals, error) {
	ads, err := buildAdapters(opts.Adapters5, opts.Adapters3, opts)
	if err != nil {
		return pipeline.Totals{}, err
	}
	action, err := modifier.ParseAction(opts.Action)
	if err != nil {
		return pipeline.Totals{}, err
	}

	var cutterStage modifier.Modifier
	if len(ads) > 0 {
		c, err := modifier.NewAdapterCutter(ads, !opts.NoIndex)
		if err != nil {
			return pipeline.Totals{}, err
		}
		switch {
		case opts.RevComp:
			cutterStage = modifier.NewReverseComplementer(c)
		case action == modifier.ActionTrim:
			cutterStage = c
		default:
			cutterStage = modifier.NewActionCutter(c, action).WithQualityBase(opts.QualBase)
		}
	}
	p := modifier.NewPipeline(buildStages(opts, cutterStage)...)

	in, err := openInput(opts.Inputs[0])
	if err != nil {
		return pipeline.Totals{}, err
	}
	defer in.Close()
	out, err := createOutput(opts.Output, stdout)
	if err != nil {
		return pipeline.Totals{}, err
	}

	cfg := pipeline.Config{Threads: opts.Threads}
	totals, err := pipeline.Run(ctx, cfg, fastq.NewReader(in), fastq.NewWriter(out), p)
	if err != nil {
		_ = out.Close()
		return totals, err
	}
	return totals, out.Close()
}

func runPaired(ctx context.Context, opts cli.Options, stdout io.Writer) (pipeline.Totals, error) {
	ads1, err := buildAdapters(opts.Adapters5, opts.Adapters3, opts)
	if err != nil {
		return pipeline.Totals{}, err
	}
	ads2, err := buildAdapters(opts.Adapters5R2, opts.Adapters3R2, opts)
	if err != nil {
		return pipeline.Totals{}, err
	}
	action, err := modifier.ParseAction(opts.Action)
	if err != nil {
		return pipeline.Totals{}, err
	}

	// Cut adapters as a paired stage when both mates have adapters, so a
	// future pair filter sees both mates at once. One-sided adapter sets
	// run inside that mate's own pipeline.
	var (
		paired         modifier.PairedModifier
		stage1, stage2 modifier.Modifier
	)
	switch {
	case len(ads1) > 0 && len(ads2) > 0:
		c1, err := modifier.NewAdapterCutter(ads1, !opts.NoIndex)
		if err != nil {
			return pipeline.Totals{}, err
		}
		c2, err := modifier.NewAdapterCutter(ads2, !opts.NoIndex)
		if err != nil {
			return pipeline.Totals{}, err
		}
		paired = modifier.NewPairedAdapterCutterFrom(c1, c2, action).WithQualityBase(opts.QualBase)
	case len(ads1) > 0:
		stage1, err = singleStage(ads1, action, opts)
		if err != nil {
			return pipeline.Totals{}, err
		}
	case len(ads2) > 0:
		stage2, err = singleStage(ads2, action, opts)
		if err != nil {
			return pipeline.Totals{}, err
		}
	}
	pp := modifier.NewPairedPipeline(paired,
		modifier.NewPipeline(buildStages(opts, stage1)...),
		modifier.NewPipeline(buildStages(opts, stage2)...))

	in1, err := openInput(opts.Inputs[0])
	if err != nil {
		return pipeline.Totals{}, err
	}
	defer in1.Close()
	in2, err := openInput(opts.Inputs[1])
	if err != nil {
		return pipeline.Totals{}, err
	}
	defer in2.Close()
	out1, err := createOutput(opts.Output, stdout)
	if err != nil {
		return pipeline.Totals{}, err
	}
	out2, err := createOutput(opts.PairedOutput, stdout)
	if err != nil {
		_ = out1.Close()
		return pipeline.Totals{}, err
	}

	cfg := pipeline.Config{Threads: opts.Threads}
	totals, err := pipeline.RunPaired(ctx, cfg,
		fastq.NewReader(in1), fastq.NewReader(in2),
		fastq.NewWriter(out1), fastq.NewWriter(out2), pp)
	if err != nil {
		_ = out1.Close()
		_ = out2.Close()
		return totals, err
	}
	if err := out1.Close(); err != nil {
		_ = out2.Close()
		return totals, err
	}
	return totals, out2.Close()
}

func singleStage(ads []adapter.Adapter, action modifier.Action, opts cli.Options) (modifier.Modifier, error) {
	c, err := modifier.NewAdapterCutter(ads, !opts.NoIndex)
	if err != nil {
		return nil, err
	}
	if action == modifier.ActionTrim {
		return c, nil
	}
	return modifier.NewActionCutter(c, action).WithQualityBase(opts.QualBase), nil
}

// buildStages assembles the per-read pipeline in processing order:
// unconditional cuts, quality trimming, adapter removal, then the
// post-trim cleanups.
func buildStages(opts cli.Options, cutter modifier.Modifier) []modifier.Modifier {
	var stages []modifier.Modifier
	for _, n := range opts.Cut {
		stages = append(stages, modifier.UnconditionalCutter{Length: n})
	}
	if opts.QualFront > 0 || opts.QualBack > 0 {
		stages = append(stages, modifier.QualityTrimmer{
			CutoffFront: opts.QualFront,
			CutoffBack:  opts.QualBack,
			Base:        opts.QualBase,
		})
	}
	if cutter != nil {
		stages = append(stages, cutter)
	}
	if opts.TrimN {
		stages = append(stages, modifier.NEndTrimmer{})
	}
	if opts.Length >= 0 {
		stages = append(stages, modifier.Shortener{Length: opts.Length})
	}
	if opts.ZeroCap {
		stages = append(stages, modifier.ZeroCapper{Base: opts.QualBase})
	}
	if opts.Rename != "" {
		stages = append(stages, modifier.NewRenamer(opts.Rename))
	}
	return stages
}

func openInput(path string) (io.ReadCloser, error) {
	return fastq.Open(path)
}

// createOutput resolves '-' to the writer RunContext was handed, so tests
// and pipes both see the records.
func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return fastq.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
