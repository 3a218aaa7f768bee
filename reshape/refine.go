package reshape

import "github.com/myatype/mmshape/glyph"

// refineKinzi folds an above-base vowel sign into the kinzi mark it sits
// next to. A medial Ya between mark and vowel stays and is looked across.
func (rs *rules) refineKinzi(buf *buffer) {
	for i := 0; i < buf.len(); i++ {
		if buf.runeAt(i) != glyph.Kinzi {
			continue
		}
		if buf.runeAt(i+1) == medialYa {
			if folded, ok := kinziVowelMap[buf.runeAt(i+2)]; ok {
				buf.setRune(i, folded)
				buf.clear(i + 2)
			}
			continue
		}
		if folded, ok := kinziVowelMap[buf.runeAt(i+1)]; ok {
			buf.setRune(i, folded)
			buf.clear(i + 1)
		}
	}
}

// refineMedialRa adjusts a reordered medial Ra to the signs of the base it
// wraps, two and three cells on: an above-base vowel raises it, a medial
// Wa deepens it, and both together raise it again.
func (rs *rules) refineMedialRa(buf *buffer) {
	for i := 0; i < buf.len(); i++ {
		forms, ok := medialRaForms[buf.runeAt(i)]
		if !ok {
			continue
		}
		if setUpperVowels.has(buf.runeAt(i + 2)) {
			buf.setRune(i, forms.tall)
		}
		if buf.runeAt(i+2) == medialWa {
			buf.setRune(i, forms.deep)
			if setUpperVowels.has(buf.runeAt(i + 3)) {
				buf.setRune(i, forms.tall)
			}
		}
	}
}
