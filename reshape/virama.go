package reshape

import "github.com/myatype/mmshape/glyph"

// substVirama resolves every virama cell. Two shapes hang off it: kinzi
// (Nga+asat+virama collapsing into an above-base mark that relocates
// behind the cell it governs) and consonant stacking (virama+consonant
// collapsing into a subscript glyph).
func (rs *rules) substVirama(buf *buffer) {
	for i := 0; i < buf.len(); i++ {
		if buf.runeAt(i) != signVirama {
			continue
		}
		if buf.runeAt(i-1) == signAsat && buf.runeAt(i-2) == letterNga {
			rs.formKinzi(buf, i)
			continue
		}
		rs.stackConsonant(buf, i)
	}
}

// formKinzi empties the Nga and asat cells, turns the virama cell into the
// kinzi mark, and moves the mark behind the next cell. A reordered medial
// Ra ahead rotates instead: the medial takes its tall form up front, the
// base it wraps moves in behind it, and the mark lands after both. A
// relocation whose target would fall outside the buffer leaves the mark
// where it is.
func (rs *rules) formKinzi(buf *buffer, i int) {
	buf.clear(i - 2)
	buf.clear(i - 1)
	buf.setRune(i, glyph.Kinzi)
	switch buf.runeAt(i + 1) {
	case medialRa:
		if i+2 < buf.len() {
			carried := buf.at(i + 2)
			buf.setRune(i, glyph.MedialRaTall)
			buf.put(i+1, carried)
			buf.setRune(i+2, glyph.Kinzi)
		}
	case glyph.MedialRaWide:
		if i+2 < buf.len() {
			carried := buf.at(i + 2)
			buf.setRune(i, glyph.MedialRaWideTall)
			buf.put(i+1, carried)
			buf.setRune(i+2, glyph.Kinzi)
		}
	default:
		if i+1 < buf.len() {
			buf.swap(i, i+1)
		}
	}
}

// stackConsonant folds virama plus the following consonant into one
// subscript glyph. Two special cases run first: the legacy lineage hoists
// an E vowel over a stacked Ma, and Nna over Dda fuses the consonants on
// both sides of the virama into one glyph. Afterwards, stacked or not, a
// round vowel two cells on is displaced sideways and a letter Na one cell
// back retracts its descender to clear the subscript.
func (rs *rules) stackConsonant(buf *buffer, i int) {
	if rs.maHoist && buf.runeAt(i+1) == letterMa && buf.runeAt(i+2) == vowelE {
		buf.setRune(i, vowelE)
		buf.setRune(i+1, glyph.StackMa)
		buf.clear(i + 2)
	} else if buf.runeAt(i-1) == letterNna && buf.runeAt(i+1) == letterDda {
		buf.setRune(i-1, glyph.StackNnaDda)
		buf.clear(i)
		buf.clear(i + 1)
	} else if stacked, ok := stackMap[buf.runeAt(i+1)]; ok {
		buf.setRune(i, stacked)
		buf.clear(i + 1)
	}
	if buf.runeAt(i+2) == vowelU {
		buf.setRune(i+2, glyph.VowelUSide)
	}
	if buf.runeAt(i+2) == vowelUu {
		buf.setRune(i+2, glyph.VowelUuSide)
	}
	if buf.runeAt(i-1) == letterNa {
		buf.setRune(i-1, glyph.NaShort)
	}
}
