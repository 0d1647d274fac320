// core/seq/record_test.go
package seq

import "testing"

func TestSliceCarriesQualities(t *testing.T) {
	r := New("r1", "ACGTACGT", "!!##$$%%")
	s := r.Slice(2, 6)
	if s.Sequence != "GTAC" || s.Qualities != "##$$" {
		t.Errorf("Slice(2,6) = %q/%q, want GTAC/##$$", s.Sequence, s.Qualities)
	}
	if !s.Valid() {
		t.Error("sliced record invalid")
	}
}

func TestSliceWithoutQualities(t *testing.T) {
	r := New("r1", "ACGT", "")
	s := r.Slice(1, 3)
	if s.Sequence != "CG" || s.Qualities != "" {
		t.Errorf("got %q/%q", s.Sequence, s.Qualities)
	}
}

func TestRevComp(t *testing.T) {
	tests := []struct {
		seq, qual      string
		wantSeq, wantQ string
	}{
		{"ACGT", "", "ACGT", ""},
		{"AACC", "!!#$", "GGTT", "$#!!"},
		{"acgtN", "", "Nacgt", ""},
		{"ATUR", "", "YAAT", ""},
	}
	for _, tc := range tests {
		got := RevComp(New("r", tc.seq, tc.qual))
		if got.Sequence != tc.wantSeq || got.Qualities != tc.wantQ {
			t.Errorf("RevComp(%q/%q) = %q/%q, want %q/%q",
				tc.seq, tc.qual, got.Sequence, got.Qualities, tc.wantSeq, tc.wantQ)
		}
	}
}

func TestRevCompRoundTrip(t *testing.T) {
	r := New("r", "ACGTTGCAN", "!!!!#####")
	if got := RevComp(RevComp(r)); got != r {
		t.Errorf("double revcomp %+v != original %+v", got, r)
	}
}

func TestRevCompBytesUnknown(t *testing.T) {
	got := string(RevCompBytes([]byte("A.C")))
	if got != "GNT" {
		t.Errorf("RevCompBytes(A.C) = %q, want GNT", got)
	}
}
