package glyph

import (
	"errors"
	"testing"
)

func TestCoverageOrderedAndComplete(t *testing.T) {
	cov := Coverage()
	if len(cov) != 56 {
		t.Fatalf("contract size changed: have %d glyphs, want 56", len(cov))
	}
	for i := 1; i < len(cov); i++ {
		if cov[i-1] >= cov[i] {
			t.Fatalf("coverage not strictly ascending at %d: %#U >= %#U",
				i, cov[i-1], cov[i])
		}
	}
	for _, r := range cov {
		if r < 0xE000 || r > 0xF8FF {
			t.Errorf("contract point %#U outside the BMP private use area", r)
		}
	}
}

func TestCoverageIsACopy(t *testing.T) {
	a := Coverage()
	a[0] = 'x'
	b := Coverage()
	if b[0] == 'x' {
		t.Fatal("Coverage must not expose the internal table")
	}
}

func TestNames(t *testing.T) {
	for _, r := range Coverage() {
		if Name(r) == "" {
			t.Errorf("contract point %#U has no name", r)
		}
	}
	if n := Name(0x1000); n != "" {
		t.Errorf("standard letter Ka should have no contract name, got %q", n)
	}
	if n := Name(Marker); n != "" {
		t.Errorf("the fragment marker is not a glyph, got name %q", n)
	}
}

func TestIsPrivate(t *testing.T) {
	if !IsPrivate(Kinzi) || !IsPrivate(StackHa) || !IsPrivate(MedialHaUu) {
		t.Error("contract points must test private")
	}
	if IsPrivate(0x1039) || IsPrivate('A') || IsPrivate(Marker) {
		t.Error("non-contract points must not test private")
	}
}

func TestReportErr(t *testing.T) {
	rep := &Report{FontName: "Test Sans", Checked: len(Coverage())}
	if err := rep.Err(); err != nil {
		t.Fatalf("complete report must not err, got %v", err)
	}
	rep.Missing = []rune{StackKa, KinziAi}
	var cerr *CoverageError
	if !errors.As(rep.Err(), &cerr) {
		t.Fatalf("incomplete report must yield a *CoverageError, got %v", rep.Err())
	}
	if len(cerr.Missing) != 2 || cerr.FontName != "Test Sans" {
		t.Errorf("coverage error lost detail: %+v", cerr)
	}
}
