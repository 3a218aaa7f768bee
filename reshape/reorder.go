package reshape

import "github.com/myatype/mmshape/glyph"

// reorderEVowel moves every E vowel in front of the medial signs it was
// typed after. The vowel travels at most three cells, one swap per medial.
// The legacy lineage also lets it cross a full letter Ra on the first step.
func (rs *rules) reorderEVowel(buf *buffer) {
	for i := 0; i < buf.len(); i++ {
		if buf.runeAt(i) != vowelE {
			continue
		}
		if !rs.eLead.has(buf.runeAt(i - 1)) {
			continue
		}
		buf.swap(i-1, i)
		if setMedials.has(buf.runeAt(i - 2)) {
			buf.swap(i-2, i-1)
			if setMedials.has(buf.runeAt(i - 3)) {
				buf.swap(i-3, i-2)
			}
		}
	}
}

// reorderMedialRa moves every medial Ra in front of its base consonant.
// When an already reordered E vowel stands between the two, the vowel
// leapfrogs once more: it fuses with the marker into a pair cell two slots
// back, the medial follows it, and the displaced cell content moves to the
// trigger slot. The fused pair cannot match the E vowel pass again, so a
// second reshape of the same region stays put.
func (rs *rules) reorderMedialRa(buf *buffer) {
	for i := 0; i < buf.len(); i++ {
		if buf.runeAt(i) != medialRa {
			continue
		}
		if buf.runeAt(i-1) == vowelE {
			if i-2 < 0 {
				continue
			}
			displaced := buf.at(i - 2)
			buf.setPair(i-2, glyph.Marker, vowelE)
			buf.put(i-1, buf.at(i))
			buf.put(i, displaced)
		} else if i-1 >= 0 {
			buf.swap(i-1, i)
		}
	}
}
