package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestRunScenario(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.chrom", "# new\nP1 chr1\nP2 chr1\nP3 chr2\n")
	b := writeFile(t, dir, "b.chrom", "P1 chrX\nP2 chrX\nP4 chrY\n")
	out := filepath.Join(dir, "nested", "out")

	if err := run(config{NewFile: a, OldFile: b, Tag: "t", OutDir: out}, nil); err != nil {
		t.Fatal(err)
	}

	summary := readLines(t, filepath.Join(out, "t_summary.txt"))
	wantSummary := []string{
		"new_file\t" + a,
		"old_file\t" + b,
		"new_proteins\t3",
		"old_proteins\t3",
		"intersection\t2",
		"intersection_frac_new\t0.666667",
		"intersection_frac_old\t0.666667",
	}
	if strings.Join(summary, "\n") != strings.Join(wantSummary, "\n") {
		t.Errorf("summary:\n%s", strings.Join(summary, "\n"))
	}

	newToOld := readLines(t, filepath.Join(out, "t_new_to_old.tsv"))
	if len(newToOld) != 3 ||
		newToOld[1] != "chr1\tchrX\t2\t2\t2\t1.000000\t1.000000" ||
		newToOld[2] != "chr2\t\t0\t1\t0\t0\t0" {
		t.Errorf("new_to_old:\n%s", strings.Join(newToOld, "\n"))
	}

	oldToNew := readLines(t, filepath.Join(out, "t_old_to_new.tsv"))
	if len(oldToNew) != 3 ||
		oldToNew[1] != "chrX\tchr1\t2\t2\t2\t1.000000\t1.000000" ||
		oldToNew[2] != "chrY\t\t0\t1\t0\t0\t0" {
		t.Errorf("old_to_new:\n%s", strings.Join(oldToNew, "\n"))
	}
}

func TestRunSameFileTwice(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "f.chrom", "A c1\nB c1\nC c2\nD c3\nE c3\nF c3\n")

	if err := run(config{NewFile: f, OldFile: f, Tag: "self", OutDir: dir}, nil); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"self_new_to_old.tsv", "self_old_to_new.tsv"} {
		for _, line := range readLines(t, filepath.Join(dir, name))[1:] {
			cols := strings.Split(line, "\t")
			if cols[0] != cols[1] || cols[2] != cols[3] || cols[5] != "1.000000" || cols[6] != "1.000000" {
				t.Errorf("%s: not a perfect self match: %q", name, line)
			}
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.chrom", "P1 chrX\n")

	err := run(config{NewFile: filepath.Join(dir, "missing.chrom"), OldFile: b, Tag: "t", OutDir: dir}, nil)
	if err == nil {
		t.Fatal("expected an error for a missing input")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "t_summary.txt")); !os.IsNotExist(statErr) {
		t.Error("no output should be written when an input cannot be read")
	}
}
