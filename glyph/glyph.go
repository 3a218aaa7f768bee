package glyph

import "sort"

// Marker is the zero-width control character the engine fuses with a
// relocated E-vowel into a single buffer cell. It is not a glyph: renderers
// draw nothing for it. It is listed here because it is part of the output
// alphabet a consumer has to accept.
const Marker rune = 0x001D

// Stacked consonant forms. A virama plus one of these consonants collapses
// into a single subscript glyph rendered below the preceding base.
const (
	StackKa   rune = 0xE000
	StackKha  rune = 0xE001
	StackGa   rune = 0xE002
	StackGha  rune = 0xE003
	StackCa   rune = 0xE005
	StackCha  rune = 0xE006
	StackJa   rune = 0xE007
	StackJha  rune = 0xE008
	StackNnya rune = 0xE00A
	StackTta  rune = 0xE00B
	StackTtha rune = 0xE00C
	StackDda  rune = 0xE00D
	StackDdha rune = 0xE00E
	StackNna  rune = 0xE00F
	StackTa   rune = 0xE010
	StackTha  rune = 0xE011
	StackDa   rune = 0xE012
	StackDha  rune = 0xE013
	StackNa   rune = 0xE014
	StackPa   rune = 0xE015
	StackPha  rune = 0xE016
	StackBa   rune = 0xE017
	StackBha  rune = 0xE018
	StackMa   rune = 0xE019
	StackLa   rune = 0xE01C
	StackSa   rune = 0xE01E
	StackHa   rune = 0xE553
	StackA    rune = 0xE021

	// StackNnaDda is the fused Nna+Dda pair, the one stack built from a
	// consonant on both sides of the virama.
	StackNnaDda rune = 0xE105
)

// Kinzi forms. Kinzi is the above-base mark formed from Nga+Asat+Virama and
// relocated behind the consonant it governs. Four variants fold a following
// vowel sign into the mark.
const (
	Kinzi         rune = 0xE390
	KinziI        rune = 0xE391 // with vowel sign I
	KinziII       rune = 0xE392 // with vowel sign II
	KinziAnusvara rune = 0xE393
	KinziAi       rune = 0xE396 // with vowel sign AI
)

// Medial Ra forms. The reordered medial Ra wraps around the following base
// consonant; variants widen the loop for broad bases and open room above
// (tall) or below (deep) for further signs.
const (
	MedialRaWide     rune = 0xE1B2
	MedialRaTall     rune = 0xE1B6
	MedialRaWideTall rune = 0xE1B7
	MedialRaDeep     rune = 0xE1BB
	MedialRaWideDeep rune = 0xE1BC
)

// Contextual one-to-one variants.
const (
	NaShort       rune = 0xE107 // Na with retracted descender
	RaLong        rune = 0xE108 // Ra with lengthened leg
	VowelUSide    rune = 0xE2F1 // vowel U displaced sideways
	VowelUuSide   rune = 0xE2F2 // vowel UU displaced sideways
	DotBelowLow   rune = 0xE037 // dot below, lowered
	DotBelowRight rune = 0xE137 // dot below, shifted right
	MedialHaSlim  rune = 0xE1F3 // medial Ha narrowed under a medial Ra
)

// Two-to-one ligature forms. Adjacent sign pairs drawn as one glyph.
const (
	VowelIAnusvara rune = 0xE2D1 // I + anusvara
	VowelIAi       rune = 0xE12D // I + AI
	TallAaAsat     rune = 0xE02D // tall AA + asat
	TallAaAi       rune = 0xE52C // tall AA + AI
	TallAaAnusvara rune = 0xE52B // tall AA + anusvara
	MedialYaWa     rune = 0xE1A4 // medial Ya + medial Wa
	MedialYaHa     rune = 0xE1A3 // medial Ya + medial Ha
	MedialWaHa     rune = 0xE1D1 // medial Wa + medial Ha
	MedialHaU      rune = 0xE1F2 // medial Ha + vowel U
	MedialHaUu     rune = 0xE430 // medial Ha + vowel UU
)

var glyphNames = map[rune]string{
	StackKa:     "stacked Ka",
	StackKha:    "stacked Kha",
	StackGa:     "stacked Ga",
	StackGha:    "stacked Gha",
	StackCa:     "stacked Ca",
	StackCha:    "stacked Cha",
	StackJa:     "stacked Ja",
	StackJha:    "stacked Jha",
	StackNnya:   "stacked Nnya",
	StackTta:    "stacked Tta",
	StackTtha:   "stacked Ttha",
	StackDda:    "stacked Dda",
	StackDdha:   "stacked Ddha",
	StackNna:    "stacked Nna",
	StackTa:     "stacked Ta",
	StackTha:    "stacked Tha",
	StackDa:     "stacked Da",
	StackDha:    "stacked Dha",
	StackNa:     "stacked Na",
	StackPa:     "stacked Pa",
	StackPha:    "stacked Pha",
	StackBa:     "stacked Ba",
	StackBha:    "stacked Bha",
	StackMa:     "stacked Ma",
	StackLa:     "stacked La",
	StackSa:     "stacked Sa",
	StackHa:     "stacked Ha",
	StackA:      "stacked A",
	StackNnaDda: "stacked Nna+Dda",

	Kinzi:         "kinzi",
	KinziI:        "kinzi with vowel I",
	KinziII:       "kinzi with vowel II",
	KinziAnusvara: "kinzi with anusvara",
	KinziAi:       "kinzi with vowel AI",

	MedialRaWide:     "medial Ra, wide",
	MedialRaTall:     "medial Ra, tall",
	MedialRaWideTall: "medial Ra, wide tall",
	MedialRaDeep:     "medial Ra, deep",
	MedialRaWideDeep: "medial Ra, wide deep",

	NaShort:       "short Na",
	RaLong:        "long Ra",
	VowelUSide:    "vowel U, sideways",
	VowelUuSide:   "vowel UU, sideways",
	DotBelowLow:   "dot below, lowered",
	DotBelowRight: "dot below, shifted",
	MedialHaSlim:  "medial Ha, narrowed",

	VowelIAnusvara: "ligature I+anusvara",
	VowelIAi:       "ligature I+AI",
	TallAaAsat:     "ligature tall AA+asat",
	TallAaAi:       "ligature tall AA+AI",
	TallAaAnusvara: "ligature tall AA+anusvara",
	MedialYaWa:     "ligature Ya+Wa",
	MedialYaHa:     "ligature Ya+Ha",
	MedialWaHa:     "ligature Wa+Ha",
	MedialHaU:      "ligature Ha+U",
	MedialHaUu:     "ligature Ha+UU",
}

var coverage = func() []rune {
	cov := make([]rune, 0, len(glyphNames))
	for r := range glyphNames {
		cov = append(cov, r)
	}
	sort.Slice(cov, func(i, j int) bool { return cov[i] < cov[j] })
	return cov
}()

// Coverage returns every private code point the engine can emit, in
// ascending order. A companion font must define a glyph for each of them.
// The returned slice is a copy.
func Coverage() []rune {
	cov := make([]rune, len(coverage))
	copy(cov, coverage)
	return cov
}

// Name returns a short descriptive name for a contract code point, or the
// empty string for code points outside the contract.
func Name(r rune) string {
	return glyphNames[r]
}

// IsPrivate reports whether r is one of the contract's private code points.
func IsPrivate(r rune) bool {
	_, ok := glyphNames[r]
	return ok
}
