package chromcompare

import (
	"bytes"
	"strings"
	"testing"

	"github.com/carbocation/chromlgs/chromfile"
)

func mustLoad(t *testing.T, text string) (*chromfile.ChromMap, chromfile.IDSet) {
	t.Helper()
	chroms, all, err := chromfile.Load(chromfile.NewReader(strings.NewReader(text)))
	if err != nil {
		t.Fatal(err)
	}
	return chroms, all
}

func TestBestMatchEmptyMap(t *testing.T) {
	label, overlap, ok := BestMatch(chromfile.NewIDSet("P1"), chromfile.NewChromMap())
	if ok || label != "" || overlap != -1 {
		t.Errorf("expected no match, got %q %d %v", label, overlap, ok)
	}
}

func TestBestMatchMaximizesOverlap(t *testing.T) {
	other, _ := mustLoad(t, "A c1\nB c2\nC c2\nD c3\n")
	ids := chromfile.NewIDSet("A", "B", "C")

	label, overlap, ok := BestMatch(ids, other)
	if !ok || label != "c2" || overlap != 2 {
		t.Fatalf("got %q %d %v", label, overlap, ok)
	}
	if overlap != ids.IntersectionLen(other.IDs(label)) {
		t.Error("overlap does not match the intersection with the returned label")
	}
	for _, candidate := range other.Labels() {
		if n := ids.IntersectionLen(other.IDs(candidate)); n > overlap {
			t.Errorf("%s overlaps %d, more than the chosen %d", candidate, n, overlap)
		}
	}
}

func TestBestMatchTieBreak(t *testing.T) {
	cases := []struct {
		name  string
		other string
		want  string
	}{
		// A later tied candidate wins only if it sorts first.
		{"later smaller label wins", "A zz\nB aa\n", "aa"},
		{"later larger label loses", "A aa\nB zz\n", "aa"},
		{"zero-overlap tie defers to smaller label", "X chrB\nY chrA\n", "chrA"},
		{"strictly greater wins regardless of label", "A aa\nB zz\nC zz\n", "zz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other, _ := mustLoad(t, tc.other)
			ids := chromfile.NewIDSet("A", "B", "C")
			label, _, ok := BestMatch(ids, other)
			if !ok || label != tc.want {
				t.Errorf("got %q, want %q", label, tc.want)
			}
		})
	}
}

func TestMapScenario(t *testing.T) {
	a, _ := mustLoad(t, "P1 chr1\nP2 chr1\nP3 chr2\n")
	b, _ := mustLoad(t, "P1 chrX\nP2 chrX\nP4 chrY\n")

	rows := Map(a, b)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	chr1 := rows[0]
	if chr1.SourceChrom != "chr1" || chr1.TargetChrom != "chrX" || chr1.Overlap != 2 ||
		chr1.FracSource != 1 || chr1.FracTarget != 1 {
		t.Errorf("unexpected chr1 row: %+v", chr1)
	}

	chr2 := rows[1]
	if chr2.SourceChrom != "chr2" || chr2.Matched() || chr2.Overlap != 0 || chr2.SourceCount != 1 {
		t.Errorf("unexpected chr2 row: %+v", chr2)
	}

	var buf bytes.Buffer
	if err := WriteMappings(&buf, rows); err != nil {
		t.Fatal(err)
	}
	want := MappingHeader + "\n" +
		"chr1\tchrX\t2\t2\t2\t1.000000\t1.000000\n" +
		"chr2\t\t0\t1\t0\t0\t0\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestMapAgainstEmptyTarget(t *testing.T) {
	a, _ := mustLoad(t, "P1 chr1\n")
	rows := Map(a, chromfile.NewChromMap())
	if len(rows) != 1 || rows[0].Matched() || rows[0].SourceCount != 1 {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestMapSelfIsIdentity(t *testing.T) {
	a, _ := mustLoad(t, "P1 chr1\nP2 chr1\nP3 chr2\nP4 chr10\nP5 chr10\nP6 chr10\n")

	for _, row := range Map(a, a) {
		if row.TargetChrom != row.SourceChrom {
			t.Errorf("%s matched %s", row.SourceChrom, row.TargetChrom)
		}
		if row.Overlap != row.SourceCount || row.FracSource != 1 || row.FracTarget != 1 {
			t.Errorf("imperfect self match: %+v", row)
		}
	}
}

func TestMapRowsSortedAndFractionsBounded(t *testing.T) {
	a, _ := mustLoad(t, "A c9\nB c1\nC c1\nD c5\n")
	b, _ := mustLoad(t, "A x\nB x\nC y\nQ y\nR y\n")

	rows := Map(a, b)
	for i, row := range rows {
		if i > 0 && rows[i-1].SourceChrom >= row.SourceChrom {
			t.Errorf("rows not sorted at %d", i)
		}
		for _, f := range []float64{row.FracSource, row.FracTarget} {
			if f < 0 || f > 1 {
				t.Errorf("fraction out of range: %+v", row)
			}
		}
	}
}

func TestSummary(t *testing.T) {
	s := Summarize("new.chrom", "old.chrom",
		chromfile.NewIDSet("a", "b", "c", "d"),
		chromfile.NewIDSet("c", "d"))

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}

	want := "new_file\tnew.chrom\n" +
		"old_file\told.chrom\n" +
		"new_proteins\t4\n" +
		"old_proteins\t2\n" +
		"intersection\t2\n" +
		"intersection_frac_new\t0.500000\n" +
		"intersection_frac_old\t1.000000\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestSummaryEmptyFiles(t *testing.T) {
	s := Summarize("a", "b", chromfile.NewIDSet(), chromfile.NewIDSet())
	if s.FracNew() != 0 || s.FracOld() != 0 {
		t.Errorf("expected zero fractions, got %f %f", s.FracNew(), s.FracOld())
	}
}

func TestDescribe(t *testing.T) {
	rows := []Mapping{
		{SourceChrom: "a", TargetChrom: "x", FracSource: 1},
		{SourceChrom: "b", TargetChrom: "y", FracSource: 0.5},
		{SourceChrom: "c"},
	}

	got, err := Describe(rows)
	if err != nil {
		t.Fatal(err)
	}
	if got.Chromosomes != 3 || got.Matched != 2 || got.MedianFracSource != 0.5 || got.MinFracSource != 0 {
		t.Errorf("unexpected stats: %+v", got)
	}
	if got.MeanFracSource != 0.5 {
		t.Errorf("mean: got %f", got.MeanFracSource)
	}

	empty, err := Describe(nil)
	if err != nil || empty.Chromosomes != 0 {
		t.Errorf("empty table: %+v %v", empty, err)
	}
}
