// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestSingleEndOK(t *testing.T) {
	o := mustParse(t, "-a", "AACCGGTT", "reads.fastq")
	if len(o.Adapters3) != 1 || o.Adapters3[0] != "AACCGGTT" {
		t.Errorf("bad adapters %+v", o.Adapters3)
	}
	if len(o.Inputs) != 1 || o.Inputs[0] != "reads.fastq" {
		t.Errorf("bad inputs %+v", o.Inputs)
	}
	if o.ErrorRate != 0.1 || o.MinOverlap != 3 || o.Action != ActionTrim {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestRepeatableAdapters(t *testing.T) {
	o := mustParse(t, "-a", "ACGT", "-a", "TTTT", "-g", "GGGG", "reads.fastq")
	if len(o.Adapters3) != 2 || len(o.Adapters5) != 1 {
		t.Errorf("bad adapter counts %+v", o)
	}
}

func TestPairedOK(t *testing.T) {
	o := mustParse(t,
		"-a", "ACGT", "-A", "TTTT",
		"-o", "out1.fastq", "-p", "out2.fastq",
		"r1.fastq", "r2.fastq",
	)
	if len(o.Inputs) != 2 || o.PairedOutput != "out2.fastq" {
		t.Errorf("bad paired parse %+v", o)
	}
}

func TestQualityCutoffForms(t *testing.T) {
	o := mustParse(t, "-q", "20", "reads.fastq")
	if o.QualFront != 0 || o.QualBack != 20 {
		t.Errorf("single cutoff: got front=%d back=%d", o.QualFront, o.QualBack)
	}
	o = mustParse(t, "-q", "15,10", "reads.fastq")
	if o.QualFront != 15 || o.QualBack != 10 {
		t.Errorf("pair cutoff: got front=%d back=%d", o.QualFront, o.QualBack)
	}
}

func TestRepeatableCut(t *testing.T) {
	o := mustParse(t, "-u", "5", "-u", "-3", "reads.fastq")
	if len(o.Cut) != 2 || o.Cut[0] != 5 || o.Cut[1] != -3 {
		t.Errorf("bad cut %+v", o.Cut)
	}
}

func TestErrorNoInputs(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-a", "ACGT"}); err == nil {
		t.Fatalf("expected error with no inputs")
	}
}

func TestErrorPairedWithoutOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-a", "ACGT", "r1.fastq", "r2.fastq"}); err == nil {
		t.Fatalf("expected error when -p missing for paired input")
	}
}

func TestErrorR2AdaptersSingleEnd(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-A", "ACGT", "reads.fastq"}); err == nil {
		t.Fatalf("expected error for -A without paired input")
	}
}

func TestErrorBadRate(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-a", "ACGT", "-e", "1.5", "reads.fastq"}); err == nil {
		t.Fatalf("expected error for rate out of range")
	}
}

func TestErrorBadAction(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-a", "ACGT", "--action", "discard", "reads.fastq"}); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestErrorBadQualityBase(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-q", "20", "--quality-base", "50", "reads.fastq"}); err == nil {
		t.Fatalf("expected error for unsupported quality base")
	}
}
