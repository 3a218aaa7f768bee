package reshape

import "testing"

func TestBufferHoldsOneCellPerCodePoint(t *testing.T) {
	buf := newBuffer("ab\u1000")
	if buf.len() != 3 {
		t.Fatalf("cell count=%d, want 3", buf.len())
	}
	if buf.runeAt(0) != 'a' || buf.runeAt(2) != 0x1000 {
		t.Fatalf("cells hold %#U and %#U, want 'a' and letter Ka",
			buf.runeAt(0), buf.runeAt(2))
	}
}

func TestRuneAtOutsideBufferIsNoMatch(t *testing.T) {
	buf := newBuffer("\u1031")
	for _, i := range []int{-3, -1, 1, 7} {
		if r := buf.runeAt(i); r != 0 {
			t.Fatalf("runeAt(%d)=%#U, want 0", i, r)
		}
	}
}

func TestEmptyAndPairCellsMatchNoCondition(t *testing.T) {
	buf := newBuffer("\u1031\u1031")
	buf.clear(0)
	buf.setPair(1, 0x001D, vowelE)
	if r := buf.runeAt(0); r != 0 {
		t.Fatalf("emptied cell reads %#U, want 0", r)
	}
	if r := buf.runeAt(1); r != 0 {
		t.Fatalf("pair cell reads %#U, want 0", r)
	}
}

func TestSwapMovesCellsWholesale(t *testing.T) {
	buf := newBuffer("ab")
	buf.setPair(0, 0x001D, vowelE)
	buf.swap(0, 1)
	if buf.runeAt(0) != 'b' {
		t.Fatalf("cell 0 reads %#U, want 'b'", buf.runeAt(0))
	}
	if got := buf.String(); got != "b\u001D\u1031" {
		t.Fatalf("serialized %q, want pair intact after swap", got)
	}
}

func TestStringDropsEmptiedCells(t *testing.T) {
	buf := newBuffer("abc")
	buf.clear(1)
	if got := buf.String(); got != "ac" {
		t.Fatalf("serialized %q, want %q", got, "ac")
	}
	buf.clear(0)
	buf.clear(2)
	if got := buf.String(); got != "" {
		t.Fatalf("serialized %q, want empty", got)
	}
}

func TestStringEmitsPairsAsTwoCodePoints(t *testing.T) {
	buf := newBuffer("x")
	buf.setPair(0, 0x001D, vowelE)
	if got := buf.String(); got != "\u001D\u1031" {
		t.Fatalf("serialized %q, want marker followed by E vowel", got)
	}
}
