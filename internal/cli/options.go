// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"adaptrim/internal/version"
)

// Adapter removal actions
const (
	ActionTrim      = "trim"
	ActionMask      = "mask"
	ActionLowercase = "lowercase"
	ActionNone      = "none"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Adapters (read 1)
	Adapters3 []string // -a: 3' adapters, or linked FRONT...BACK
	Adapters5 []string // -g: 5' adapters

	// Adapters (read 2, paired mode)
	Adapters3R2 []string // -A
	Adapters5R2 []string // -G

	// Matching parameters
	ErrorRate  float64
	MinOverlap int
	NoIndels   bool
	NoIndex    bool
	Action     string
	RevComp    bool

	// Additional trimming
	Cut       []int // -u, repeatable; positive=prefix, negative=suffix
	QualFront int
	QualBack  int
	QualBase  int
	Length    int // -1 = disabled
	TrimN     bool
	ZeroCap   bool
	Rename    string

	// I/O
	Inputs       []string // positional; 1 = single-end, 2 = paired
	Output       string
	PairedOutput string

	// Performance
	Threads int

	Quiet      bool
	JSONReport bool
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: adapter and quality trimming for sequencing reads

Version: %s

Usage: %s [options] INPUT [INPUT2]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Adapters
	var a3, a5, a3r2, a5r2 stringSlice
	fs.Var(&a3, "a", "3' adapter for read 1, or FRONT...BACK linked adapter (repeatable; NAME=SEQ accepted)")
	fs.Var(&a3, "adapter", "same as -a")
	fs.Var(&a5, "g", "5' adapter for read 1 (repeatable; NAME=SEQ accepted)")
	fs.Var(&a5, "front", "same as -g")
	fs.Var(&a3r2, "A", "3' adapter for read 2 (paired mode, repeatable)")
	fs.Var(&a5r2, "G", "5' adapter for read 2 (paired mode, repeatable)")

	// Matching parameters
	fs.Float64Var(&opt.ErrorRate, "e", 0.1, "max allowed error rate per match [0.1]")
	fs.Float64Var(&opt.ErrorRate, "error-rate", 0.1, "same as -e")
	fs.IntVar(&opt.MinOverlap, "O", 3, "minimum adapter/read overlap [3]")
	fs.IntVar(&opt.MinOverlap, "overlap", 3, "same as -O")
	fs.BoolVar(&opt.NoIndels, "no-indels", false, "allow only mismatches, no insertions or deletions [false]")
	fs.BoolVar(&opt.NoIndex, "no-index", false, "disable the multi-adapter index [false]")
	fs.StringVar(&opt.Action, "action", ActionTrim, "what to do with a matched adapter: trim | mask | lowercase | none [trim]")
	fs.BoolVar(&opt.RevComp, "rc", false, "also search the reverse complement of each read [false]")

	// Additional trimming
	var cut intSlice
	fs.Var(&cut, "u", "unconditionally cut N bases from the start (N>0) or end (N<0); repeatable")
	fs.Var(&cut, "cut", "same as -u")
	qual := ""
	fs.StringVar(&qual, "q", "", "quality cutoff: CUTOFF (3' only) or FRONT,BACK")
	fs.StringVar(&qual, "quality-cutoff", "", "same as -q")
	fs.IntVar(&opt.QualBase, "quality-base", 33, "phred quality encoding offset [33]")
	fs.IntVar(&opt.Length, "l", -1, "shorten reads to at most this length after trimming (-1 = off) [-1]")
	fs.IntVar(&opt.Length, "length", -1, "same as -l")
	fs.BoolVar(&opt.TrimN, "trim-n", false, "trim N bases from read ends [false]")
	fs.BoolVar(&opt.ZeroCap, "zero-cap", false, "raise negative quality values to zero [false]")
	fs.StringVar(&opt.Rename, "rename", "", "rename reads by template, e.g. '{id} adapter={adapter_name}'")

	// I/O
	fs.StringVar(&opt.Output, "o", "-", "output file for read 1 ('-' = stdout) [-]")
	fs.StringVar(&opt.Output, "output", "-", "same as -o")
	fs.StringVar(&opt.PairedOutput, "p", "", "output file for read 2 (paired mode)")
	fs.StringVar(&opt.PairedOutput, "paired-output", "", "same as -p")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the trimming report [false]")
	fs.BoolVar(&opt.JSONReport, "json", false, "emit the trimming report as JSON [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Adapters3 = a3
	opt.Adapters5 = a5
	opt.Adapters3R2 = a3r2
	opt.Adapters5R2 = a5r2
	opt.Cut = cut
	opt.Inputs = fs.Args()

	if qual != "" {
		front, back, err := parseQualityCutoff(qual)
		if err != nil {
			return opt, err
		}
		opt.QualFront, opt.QualBack = front, back
	}

	// Validation
	if len(opt.Inputs) == 0 || len(opt.Inputs) > 2 {
		return opt, errors.New("provide one input file (single-end) or two (paired)")
	}
	paired := len(opt.Inputs) == 2
	if paired && opt.PairedOutput == "" {
		return opt, errors.New("paired input requires -p/--paired-output")
	}
	if !paired && opt.PairedOutput != "" {
		return opt, errors.New("-p/--paired-output requires two input files")
	}
	if !paired && (len(opt.Adapters3R2) > 0 || len(opt.Adapters5R2) > 0) {
		return opt, errors.New("-A/-G require two input files")
	}
	if opt.ErrorRate < 0 || opt.ErrorRate >= 1 {
		return opt, errors.New("-e must be in [0,1)")
	}
	if opt.MinOverlap < 1 {
		return opt, errors.New("-O must be ≥ 1")
	}
	if opt.QualFront < 0 || opt.QualBack < 0 {
		return opt, errors.New("-q cutoffs must be ≥ 0")
	}
	if opt.QualBase != 33 && opt.QualBase != 64 {
		return opt, errors.New("--quality-base must be 33 or 64")
	}
	if opt.Length < -1 {
		return opt, errors.New("-l must be ≥ 0, or -1 to disable")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Action {
	case ActionTrim, ActionMask, ActionLowercase, ActionNone:
	default:
		return opt, fmt.Errorf("invalid --action %q", opt.Action)
	}
	if opt.RevComp && opt.Action != ActionTrim {
		return opt, errors.New("--rc only supports --action trim")
	}
	if opt.RevComp && paired {
		return opt, errors.New("--rc is only supported for single-end reads")
	}
	return opt, nil
}

// parseQualityCutoff parses "BACK" or "FRONT,BACK".
func parseQualityCutoff(s string) (front, back int, err error) {
	parts := strings.Split(s, ",")
	switch len(parts) {
	case 1:
		back, err = strconv.Atoi(parts[0])
		return 0, back, err
	case 2:
		if front, err = strconv.Atoi(parts[0]); err != nil {
			return 0, 0, err
		}
		back, err = strconv.Atoi(parts[1])
		return front, back, err
	default:
		return 0, 0, fmt.Errorf("invalid -q value %q", s)
	}
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

// intSlice allows repeatable integer flags.
type intSlice []int

func (s *intSlice) String() string {
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (s *intSlice) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*s = append(*s, n)
	return nil
}
