// core/modifier/modifier_test.go
package modifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptrim-core/adapter"
	"adaptrim-core/seq"
)

func TestUnconditionalCutter(t *testing.T) {
	read := seq.New("r1", "abcdefg", "")

	ctx := &Context{}
	assert.Equal(t, "cdefg", UnconditionalCutter{Length: 2}.Apply(read, ctx).Sequence)
	assert.Equal(t, Annotation{Value: "ab", Set: true}, ctx.CutPrefix)
	assert.False(t, ctx.CutSuffix.Set)

	ctx = &Context{}
	assert.Equal(t, "abcde", UnconditionalCutter{Length: -2}.Apply(read, ctx).Sequence)
	assert.Equal(t, Annotation{Value: "fg", Set: true}, ctx.CutSuffix)
	assert.False(t, ctx.CutPrefix.Set)

	ctx = &Context{}
	assert.Equal(t, "", UnconditionalCutter{Length: 100}.Apply(read, ctx).Sequence)
	assert.Equal(t, "", UnconditionalCutter{Length: -100}.Apply(read, ctx).Sequence)
	assert.Equal(t, "abcdefg", UnconditionalCutter{Length: 0}.Apply(read, ctx).Sequence)
}

func TestNEndTrimmer(t *testing.T) {
	trimmer := NEndTrimmer{}
	tests := []struct{ in, want string }{
		{"NNNNAAACCTTGGNNN", "AAACCTTGG"},
		{"NNNNAAACNNNCTTGGNNN", "AAACNNNCTTGG"},
		{"NNNNNN", ""},
		{"", ""},
		{"ACGT", "ACGT"},
	}
	for _, tc := range tests {
		in := seq.New("read1", tc.in, strings.Repeat("#", len(tc.in)))
		got := trimmer.Apply(in, &Context{})
		assert.Equal(t, tc.want, got.Sequence)
		assert.Equal(t, strings.Repeat("#", len(tc.want)), got.Qualities)
	}
}

func TestQualityTrimmer(t *testing.T) {
	read := seq.New("read1", "ACGTTTACGTA", "##456789###")

	got := QualityTrimmer{CutoffFront: 10, CutoffBack: 10, Base: 33}.Apply(read, &Context{})
	assert.Equal(t, seq.New("read1", "GTTTAC", "456789"), got)

	got = QualityTrimmer{CutoffFront: 0, CutoffBack: 10, Base: 33}.Apply(read, &Context{})
	assert.Equal(t, seq.New("read1", "ACGTTTAC", "##456789"), got)

	got = QualityTrimmer{CutoffFront: 10, CutoffBack: 0, Base: 33}.Apply(read, &Context{})
	assert.Equal(t, seq.New("read1", "GTTTACGTA", "456789###"), got)
}

func TestQualityTrimmerIdempotentWithZeroCutoff(t *testing.T) {
	qt := QualityTrimmer{CutoffFront: 0, CutoffBack: 0, Base: 33}
	read := seq.New("read1", "ACGTTTACGTA", "##456789###")
	once := qt.Apply(read, &Context{})
	twice := qt.Apply(once, &Context{})
	assert.Equal(t, read, once)
	assert.Equal(t, once, twice)
}

func TestShortener(t *testing.T) {
	read := seq.New("read1", "ACGTTTACGTA", "##456789###")

	assert.Equal(t, seq.New("read1", "", ""), Shortener{Length: 0}.Apply(read, &Context{}))
	assert.Equal(t, seq.New("read1", "A", "#"), Shortener{Length: 1}.Apply(read, &Context{}))
	assert.Equal(t, seq.New("read1", "ACGTT", "##456"), Shortener{Length: 5}.Apply(read, &Context{}))
	assert.Equal(t, read, Shortener{Length: 100}.Apply(read, &Context{}))
}

func TestZeroCapper(t *testing.T) {
	read := seq.New("r1", "ACGT", "# !%")
	got := ZeroCapper{Base: 33}.Apply(read, &Context{})
	assert.Equal(t, "ACGT", got.Sequence)
	assert.Equal(t, "#!!%", got.Qualities)
}

func prefixAdapters(t *testing.T, seqs ...string) []adapter.Adapter {
	t.Helper()
	out := make([]adapter.Adapter, 0, len(seqs))
	for _, s := range seqs {
		a, err := adapter.NewPrefix(adapter.DefaultConfig(s))
		require.NoError(t, err)
		out = append(out, a)
	}
	return out
}

func TestAdapterCutterBestMatchWins(t *testing.T) {
	a1, err := adapter.NewBack(adapter.DefaultConfig("GGTTAA"))
	require.NoError(t, err)
	a2, err := adapter.NewBack(adapter.DefaultConfig("ACGTACGT"))
	require.NoError(t, err)
	cutter, err := NewAdapterCutter([]adapter.Adapter{a1, a2}, true)
	require.NoError(t, err)

	// The second adapter matches exactly; the first does not match at all.
	ctx := &Context{}
	got := cutter.Apply(seq.New("r", "TTTTACGTACGTTT", ""), ctx)
	assert.Equal(t, "TTTT", got.Sequence)
	assert.Equal(t, "ACGTACGT", ctx.AdapterName.Value)
	assert.Equal(t, Annotation{Value: "ACGTACGTTT", Set: true}, ctx.CutSuffix)
	assert.False(t, ctx.CutPrefix.Set)
}

func TestAdapterCutterNoMatchPassesThrough(t *testing.T) {
	cutter, err := NewAdapterCutter(prefixAdapters(t, "TTATTTGTCT"), true)
	require.NoError(t, err)
	read := seq.New("r", "CCCCCCCCCC", "")
	ctx := &Context{}
	assert.Equal(t, read, cutter.Apply(read, ctx))
	assert.False(t, ctx.CutPrefix.Set)
	assert.False(t, ctx.CutSuffix.Set)
	assert.False(t, ctx.AdapterName.Set)
}

func TestAdapterCutterIndexing(t *testing.T) {
	var ads []adapter.Adapter
	for _, s := range []string{"ACGAT", "GGAC", "TTTACTTA", "TAACCGGT", "GTTTACGTA", "CGATA"} {
		cfg := adapter.DefaultConfig(s)
		cfg.MaxErrorRate = 0.2
		cfg.Indels = false
		a, err := adapter.NewPrefix(cfg)
		require.NoError(t, err)
		ads = append(ads, a)
	}

	ac, err := NewAdapterCutter(ads, true)
	require.NoError(t, err)
	assert.Equal(t, 1, ac.Sources(), "indexable adapters collapse into one source")

	ac, err = NewAdapterCutter(ads, false)
	require.NoError(t, err)
	assert.Equal(t, len(ads), ac.Sources())
}

func TestReverseComplementer(t *testing.T) {
	cutter, err := NewAdapterCutter(prefixAdapters(t, "TTATTTGTCT", "TCCGCACTGG"), false)
	require.NoError(t, err)
	rc := NewReverseComplementer(cutter)

	ctx := &Context{}
	got := rc.Apply(seq.New("r", "ttatttgtctCCAGCTTAGACATATCGCCT", ""), ctx)
	assert.Equal(t, "CCAGCTTAGACATATCGCCT", got.Sequence)
	assert.False(t, ctx.IsRC)

	ctx = &Context{}
	got = rc.Apply(seq.New("r", "CAACAGGCCACATTAGACATATCGGATGGTagacaaataa", ""), ctx)
	assert.Equal(t, "ACCATCCGATATGTCTAATGTGGCCTGTTG", got.Sequence)
	assert.True(t, ctx.IsRC)
}

func TestPairedAdapterCutterActions(t *testing.T) {
	tests := []struct {
		action       Action
		wantTrimmed1 string
		wantTrimmed2 string
	}{
		{ActionNone, "CCCCGGTTAACCCC", "TTTTAACCGGTTTT"},
		{ActionTrim, "CCCC", "TTTT"},
		{ActionLowercase, "CCCCggttaacccc", "TTTTaaccggtttt"},
		{ActionMask, "CCCCNNNNNNNNNN", "TTTTNNNNNNNNNN"},
	}
	for _, tc := range tests {
		a1, err := adapter.NewBack(adapter.DefaultConfig("GGTTAA"))
		require.NoError(t, err)
		a2, err := adapter.NewBack(adapter.DefaultConfig("AACCGG"))
		require.NoError(t, err)
		pac, err := NewPairedAdapterCutter(
			[]adapter.Adapter{a1}, []adapter.Adapter{a2}, tc.action)
		require.NoError(t, err)

		s1 := seq.New("name", "CCCCGGTTAACCCC", "")
		s2 := seq.New("name", "TTTTAACCGGTTTT", "")
		ctx1, ctx2 := &Context{}, &Context{}
		got1, got2 := pac.ApplyPair(s1, s2, ctx1, ctx2)
		assert.Equal(t, tc.wantTrimmed1, got1.Sequence, "action %v r1", tc.action)
		assert.Equal(t, tc.wantTrimmed2, got2.Sequence, "action %v r2", tc.action)
	}
}

func TestPairedAdapterCutterMaskPreservesLengthAndQualities(t *testing.T) {
	a1, err := adapter.NewBack(adapter.DefaultConfig("GGTTAA"))
	require.NoError(t, err)
	a2, err := adapter.NewBack(adapter.DefaultConfig("AACCGG"))
	require.NoError(t, err)
	pac, err := NewPairedAdapterCutter([]adapter.Adapter{a1}, []adapter.Adapter{a2}, ActionMask)
	require.NoError(t, err)

	s1 := seq.New("n", "CCCCGGTTAACCCC", "FFFFFFFFFFFFFF")
	s2 := seq.New("n", "AAAAAAAAAAAAAA", "FFFFFFFFFFFFFF") // no match
	got1, got2 := pac.ApplyPair(s1, s2, &Context{}, &Context{})

	assert.Len(t, got1.Sequence, s1.Len())
	assert.Equal(t, "FFFF!!!!!!!!!!", got1.Qualities)
	assert.Equal(t, s2, got2, "a mate without a match is unaffected")
}

func TestMaskFloorsQualitiesAtEncodingOffset(t *testing.T) {
	a1, err := adapter.NewBack(adapter.DefaultConfig("GGTTAA"))
	require.NoError(t, err)
	a2, err := adapter.NewBack(adapter.DefaultConfig("AACCGG"))
	require.NoError(t, err)
	pac, err := NewPairedAdapterCutter([]adapter.Adapter{a1}, []adapter.Adapter{a2}, ActionMask)
	require.NoError(t, err)
	pac = pac.WithQualityBase(64)

	// Phred+64 data: 'h' is q40, '@' is q0. The masked span must floor to
	// '@', not drop below the encoding's range.
	s1 := seq.New("n", "CCCCGGTTAACCCC", "hhhhhhhhhhhhhh")
	s2 := seq.New("n", "AAAAAAAAAAAAAA", "hhhhhhhhhhhhhh")
	got1, got2 := pac.ApplyPair(s1, s2, &Context{}, &Context{})

	assert.Equal(t, "CCCCNNNNNNNNNN", got1.Sequence)
	assert.Equal(t, "hhhh@@@@@@@@@@", got1.Qualities)
	assert.Equal(t, s2, got2)
}

func TestActionCutterSingleEnd(t *testing.T) {
	a, err := adapter.NewBack(adapter.DefaultConfig("GGTTAA"))
	require.NoError(t, err)
	c, err := NewAdapterCutter([]adapter.Adapter{a}, true)
	require.NoError(t, err)

	read := seq.New("n", "CCCCGGTTAACCCC", "FFFFFFFFFFFFFF")

	ctx := &Context{}
	got := NewActionCutter(c, ActionMask).Apply(read, ctx)
	assert.Equal(t, "CCCCNNNNNNNNNN", got.Sequence)
	assert.Equal(t, "FFFF!!!!!!!!!!", got.Qualities)
	assert.Equal(t, "GGTTAA", ctx.AdapterName.Value)

	ctx = &Context{}
	got = NewActionCutter(c, ActionNone).Apply(read, ctx)
	assert.Equal(t, read, got)
	assert.True(t, ctx.CutSuffix.Set)

	read64 := seq.New("n", "CCCCGGTTAACCCC", "hhhhhhhhhhhhhh")
	got = NewActionCutter(c, ActionMask).WithQualityBase(64).Apply(read64, &Context{})
	assert.Equal(t, "hhhh@@@@@@@@@@", got.Qualities)
}

func TestParseAction(t *testing.T) {
	for s, want := range map[string]Action{
		"none": ActionNone, "trim": ActionTrim, "lowercase": ActionLowercase, "mask": ActionMask,
	} {
		got, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAction("bogus")
	assert.Error(t, err)
}

func TestRenamer(t *testing.T) {
	read := seq.New("theid thecomment", "ACGT", "")

	assert.Equal(t, "theid thecomment extra",
		NewRenamer("{header} extra").Apply(read, &Context{}).Name)
	assert.Equal(t, "theid extra",
		NewRenamer("{id} extra").Apply(read, &Context{}).Name)
	assert.Equal(t, "theid_extra thecomment",
		NewRenamer("{id}_extra {comment}").Apply(read, &Context{}).Name)

	// Missing comment substitutes as empty, never errors.
	noComment := seq.New("theid", "ACGT", "")
	assert.Equal(t, "theid_extra ",
		NewRenamer("{id}_extra {comment}").Apply(noComment, &Context{}).Name)

	// Context annotations are template keys.
	ctx := &Context{}
	ctx.CutPrefix.set("TTAAGG")
	assert.Equal(t, "theid_TTAAGG thecomment",
		NewRenamer("{id}_{cut_prefix} {comment}").Apply(read, ctx).Name)

	// Unset annotations substitute as empty.
	assert.Equal(t, "theid_",
		NewRenamer("{id}_{cut_suffix}").Apply(read, &Context{}).Name)

	// Unknown keys substitute as empty.
	assert.Equal(t, "x",
		NewRenamer("{nonsense}x").Apply(read, &Context{}).Name)
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	p := NewPipeline(
		UnconditionalCutter{Length: 2},
		NewRenamer("{id}:{cut_prefix}"),
	)
	got, ctx := p.Run(seq.New("r1 c", "abcdefg", ""))
	assert.Equal(t, "cdefg", got.Sequence)
	assert.Equal(t, "r1:ab", got.Name)
	assert.True(t, ctx.CutPrefix.Set)
}

func TestContextAbsentVersusEmpty(t *testing.T) {
	ctx := &Context{}
	v, ok := ctx.Lookup("cut_prefix")
	assert.Equal(t, "", v)
	assert.False(t, ok)

	ctx.CutPrefix.set("")
	v, ok = ctx.Lookup("cut_prefix")
	assert.Equal(t, "", v)
	assert.True(t, ok, "an explicitly empty annotation is still set")
}
