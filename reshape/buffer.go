package reshape

import "strings"

// cellKind discriminates the states a buffer cell can be in.
type cellKind uint8

const (
	cellEmpty cellKind = iota // deleted content, index kept
	cellRune                  // one code point
	cellPair                  // two code points fused into one slot
)

// cell is one slot of the reshaping buffer. Rules that delete a code point
// empty its cell instead of shifting the followers, and rules that relocate
// an E vowel in front of its cluster fuse marker and vowel into a single
// pair cell so the vowel cannot trigger a reordering rule twice. Either
// way, every other cell keeps its index.
type cell struct {
	kind cellKind
	a, b rune
}

func runeCell(r rune) cell    { return cell{kind: cellRune, a: r} }
func pairCell(p, q rune) cell { return cell{kind: cellPair, a: p, b: q} }

// buffer is the working storage of one reshape call: one cell per input
// code point, length fixed for the lifetime of the transform.
type buffer struct {
	cells []cell
}

func newBuffer(text string) *buffer {
	cells := make([]cell, 0, len(text))
	for _, r := range text {
		cells = append(cells, runeCell(r))
	}
	return &buffer{cells: cells}
}

func (buf *buffer) len() int {
	return len(buf.cells)
}

// runeAt returns the code point stored at index i, or 0 when i is out of
// bounds or the cell is empty or fused. Rule conditions are written against
// this: a neighbor outside the buffer is a non-match, never a wrap-around,
// and emptied or fused cells match no condition.
func (buf *buffer) runeAt(i int) rune {
	if i < 0 || i >= len(buf.cells) {
		return 0
	}
	c := buf.cells[i]
	if c.kind != cellRune {
		return 0
	}
	return c.a
}

// at returns the cell at index i for wholesale relocation. Callers check
// bounds before moving cells around.
func (buf *buffer) at(i int) cell {
	assert(i >= 0 && i < len(buf.cells), "cell read out of bounds")
	return buf.cells[i]
}

func (buf *buffer) put(i int, c cell) {
	assert(i >= 0 && i < len(buf.cells), "cell write out of bounds")
	buf.cells[i] = c
}

func (buf *buffer) setRune(i int, r rune) {
	buf.put(i, runeCell(r))
}

func (buf *buffer) setPair(i int, p, q rune) {
	buf.put(i, pairCell(p, q))
}

func (buf *buffer) clear(i int) {
	buf.put(i, cell{})
}

// swap exchanges two cells wholesale; fused pairs travel intact.
func (buf *buffer) swap(i, j int) {
	assert(i >= 0 && i < len(buf.cells), "cell swap out of bounds")
	assert(j >= 0 && j < len(buf.cells), "cell swap out of bounds")
	buf.cells[i], buf.cells[j] = buf.cells[j], buf.cells[i]
}

// String serializes the surviving cells in index order. Empty cells vanish,
// pair cells contribute both code points.
func (buf *buffer) String() string {
	var sb strings.Builder
	sb.Grow(len(buf.cells))
	for _, c := range buf.cells {
		switch c.kind {
		case cellRune:
			sb.WriteRune(c.a)
		case cellPair:
			sb.WriteRune(c.a)
			sb.WriteRune(c.b)
		}
	}
	return sb.String()
}
