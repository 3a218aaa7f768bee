package reshape

import "github.com/myatype/mmshape/glyph"

// Myanmar block code points the rules read and write. Names follow the
// Unicode character names; the visual-order forms they turn into live in
// package glyph.
const (
	letterKa   rune = 0x1000
	letterKha  rune = 0x1001
	letterGa   rune = 0x1002
	letterGha  rune = 0x1003
	letterNga  rune = 0x1004
	letterCa   rune = 0x1005
	letterCha  rune = 0x1006
	letterJa   rune = 0x1007
	letterJha  rune = 0x1008
	letterNnya rune = 0x100A
	letterTta  rune = 0x100B
	letterTtha rune = 0x100C
	letterDda  rune = 0x100D
	letterDdha rune = 0x100E
	letterNna  rune = 0x100F
	letterTa   rune = 0x1010
	letterTha  rune = 0x1011
	letterDa   rune = 0x1012
	letterDha  rune = 0x1013
	letterNa   rune = 0x1014
	letterPa   rune = 0x1015
	letterPha  rune = 0x1016
	letterBa   rune = 0x1017
	letterBha  rune = 0x1018
	letterMa   rune = 0x1019
	letterYa   rune = 0x101A
	letterRa   rune = 0x101B
	letterLa   rune = 0x101C
	letterSa   rune = 0x101E
	letterHa   rune = 0x101F
	letterA    rune = 0x1021

	vowelTallAa rune = 0x102B
	vowelI      rune = 0x102D
	vowelII     rune = 0x102E
	vowelU      rune = 0x102F
	vowelUu     rune = 0x1030
	vowelE      rune = 0x1031
	vowelAi     rune = 0x1032

	signAnusvara rune = 0x1036
	signDotBelow rune = 0x1037
	signVirama   rune = 0x1039
	signAsat     rune = 0x103A

	medialYa rune = 0x103B
	medialRa rune = 0x103C
	medialWa rune = 0x103D
	medialHa rune = 0x103E
)

// runeSet is a small membership set over code points.
type runeSet map[rune]struct{}

func setOf(runes ...rune) runeSet {
	s := make(runeSet, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

func (s runeSet) has(r rune) bool {
	_, ok := s[r]
	return ok
}

var (
	// setMedials are the four medial signs an E vowel reorders across.
	setMedials = setOf(medialYa, medialRa, medialWa, medialHa)

	// eLeadLegacy extends the reorder set: the legacy lineage also moves
	// an E vowel across a full letter Ra.
	eLeadLegacy = setOf(medialYa, medialRa, medialWa, medialHa, letterRa)

	// setWideBases are the broad consonants a reordered medial Ra must
	// widen its loop for.
	setWideBases = setOf(
		letterKa, letterGha, letterNna, letterCha, letterTa, letterTha,
		letterBha, letterYa, letterLa, letterSa, letterHa, letterA,
	)

	// setUnderSigns are the signs drawn below the base; a letter Na in
	// front of one retracts its descender.
	setUnderSigns = setOf(vowelU, vowelUu, medialWa, medialHa)

	// setRoundVowels are the below-base round vowels U and UU.
	setRoundVowels = setOf(vowelU, vowelUu)

	// setUpperVowels are the above-base vowel signs that force a tall
	// medial Ra variant.
	setUpperVowels = setOf(vowelI, vowelII, vowelAi)

	// setYaYitForms matches a medial Ra whether or not it was already
	// widened.
	setYaYitForms = setOf(medialRa, glyph.MedialRaWide)

	// setSideVowels are the displaced round vowels of an earlier pass.
	setSideVowels = setOf(glyph.VowelUSide, glyph.VowelUuSide)
)

// ctxGuard pins one neighbor cell to one code point. A guard whose offset
// reaches outside the buffer does not match.
type ctxGuard struct {
	off int
	r   rune
}

// ctxRule is one contextual substitution of a trigger cell. The rule
// matches when any of the at offsets holds a member of set and every when
// guard holds as well. Rules of a tree run in order against the live
// buffer; a later match overwrites an earlier one.
//
// A plain rule rewrites the trigger cell to out. A split rule instead
// hoists the E vowel standing at offset +1 in front of the rewritten
// glyph: the trigger cell becomes a fused marker+E pair and out goes to
// offset +1. Every write offset of a rule is covered by one of its
// guards, so a matched rule always writes in bounds.
type ctxRule struct {
	at    []int
	set   runeSet
	when  []ctxGuard
	out   rune
	split bool
}

// dotStandard is the dot-below tree of the standard lineage.
var dotStandard = []ctxRule{
	{at: []int{-1}, set: setRoundVowels, out: glyph.DotBelowLow},
	{at: []int{-1, -2}, set: setOf(letterNa), out: glyph.DotBelowLow},
	{at: []int{-1, -2, -3}, set: setOf(letterRa), out: glyph.DotBelowRight},
	{at: []int{-1}, set: setSideVowels, out: glyph.DotBelowRight},
	{at: []int{-1, -2}, set: setOf(medialWa), out: glyph.DotBelowRight},
	{at: []int{-1, -2}, set: setOf(medialYa), out: glyph.DotBelowRight},
}

// dotLegacy is the dot-below tree of the legacy lineage. The last two
// rules render its trailing if/else: the lowered form is written first and
// overwritten when a letter Ra leads the cluster.
var dotLegacy = []ctxRule{
	{at: []int{-1}, set: setRoundVowels, out: glyph.DotBelowLow},
	{at: []int{-1, -2}, set: setOf(letterNa), out: glyph.DotBelowLow},
	{at: []int{-1}, set: setOf(glyph.VowelUSide, glyph.VowelUuSide, medialWa), out: glyph.DotBelowRight},
	{at: []int{-1, -2}, set: setOf(medialYa), out: glyph.DotBelowRight},
	{at: []int{-1, -2}, set: setOf(medialHa), out: glyph.DotBelowLow},
	{at: []int{-1, -2}, set: setOf(medialHa), when: []ctxGuard{{-3, letterRa}}, out: glyph.DotBelowRight},
}

// wideTree is the stand-alone widening pass: a reordered medial Ra in
// front of a broad consonant takes the wide form.
var wideTree = map[rune][]ctxRule{
	medialRa: {
		{at: []int{1}, set: setWideBases, out: glyph.MedialRaWide},
	},
}

// contextTree assembles the one-to-one substitution trees around the given
// dot-below lineage.
func contextTree(dot []ctxRule) map[rune][]ctxRule {
	return map[rune][]ctxRule{
		letterNa: {
			{at: []int{1}, set: setUnderSigns, out: glyph.NaShort},
			{at: []int{2}, set: setRoundVowels, out: glyph.NaShort},
			{at: []int{2}, set: setUnderSigns, when: []ctxGuard{{1, vowelE}}, out: glyph.NaShort, split: true},
		},
		letterRa: {
			{at: []int{1, 2, 3}, set: setRoundVowels, out: glyph.RaLong},
		},
		vowelU: {
			{at: []int{-1, -2}, set: setOf(medialYa), out: glyph.VowelUSide},
			{at: []int{-2, -3}, set: setYaYitForms, out: glyph.VowelUSide},
		},
		vowelUu: {
			{at: []int{-1, -2}, set: setOf(medialYa), out: glyph.VowelUuSide},
			{at: []int{-2, -3}, set: setYaYitForms, out: glyph.VowelUuSide},
		},
		signDotBelow: dot,
		medialHa: {
			{at: []int{-2}, set: setYaYitForms, out: glyph.MedialHaSlim},
		},
	}
}

// cellPut is one write of a ligature rule, relative to the trigger index.
// Writing gone empties the cell.
type cellPut struct {
	at  int
	put rune
}

const gone rune = 0

// ligRule fuses adjacent sign cells into one glyph. All when guards must
// hold. Rules of a tree run in order against the live buffer, so a fired
// rule hides later ones whose guards read the emptied cells.
type ligRule struct {
	when  []ctxGuard
	write []cellPut
}

// ligTree holds the two-to-one (and one three-cell) sign fusions.
var ligTree = map[rune][]ligRule{
	vowelI: {
		{when: []ctxGuard{{1, signAnusvara}}, write: []cellPut{{0, glyph.VowelIAnusvara}, {1, gone}}},
		{when: []ctxGuard{{1, vowelAi}}, write: []cellPut{{0, glyph.VowelIAi}, {1, gone}}},
	},
	vowelTallAa: {
		{when: []ctxGuard{{1, signAsat}}, write: []cellPut{{0, glyph.TallAaAsat}, {1, gone}}},
		{when: []ctxGuard{{1, vowelAi}}, write: []cellPut{{0, glyph.TallAaAi}, {1, gone}}},
		{when: []ctxGuard{{1, signAnusvara}}, write: []cellPut{{0, glyph.TallAaAnusvara}, {1, gone}}},
	},
	medialYa: {
		{when: []ctxGuard{{1, medialWa}, {2, medialHa}}, write: []cellPut{{0, glyph.MedialWaHa}, {1, medialYa}, {2, gone}}},
		{when: []ctxGuard{{1, medialWa}}, write: []cellPut{{0, glyph.MedialYaWa}, {1, gone}}},
		{when: []ctxGuard{{1, medialHa}}, write: []cellPut{{0, glyph.MedialYaHa}, {1, gone}}},
	},
	medialWa: {
		{when: []ctxGuard{{1, medialHa}}, write: []cellPut{{0, glyph.MedialWaHa}, {1, gone}}},
	},
	vowelU: {
		{when: []ctxGuard{{-1, medialHa}}, write: []cellPut{{-1, glyph.MedialHaU}, {0, gone}}},
		{when: []ctxGuard{{-2, medialHa}}, write: []cellPut{{-2, glyph.MedialHaU}, {0, gone}}},
	},
	vowelUu: {
		{when: []ctxGuard{{-1, medialHa}}, write: []cellPut{{-1, glyph.MedialHaUu}, {0, gone}}},
		{when: []ctxGuard{{-2, medialHa}}, write: []cellPut{{-2, glyph.MedialHaUu}, {0, gone}}},
	},
}

// stackMap folds a virama plus the following consonant into one subscript
// glyph. Letters without an entry (Nga, Nya, Ya, Ra, Wa) do not stack.
var stackMap = map[rune]rune{
	letterKa:   glyph.StackKa,
	letterKha:  glyph.StackKha,
	letterGa:   glyph.StackGa,
	letterGha:  glyph.StackGha,
	letterCa:   glyph.StackCa,
	letterCha:  glyph.StackCha,
	letterJa:   glyph.StackJa,
	letterJha:  glyph.StackJha,
	letterNnya: glyph.StackNnya,
	letterTta:  glyph.StackTta,
	letterTtha: glyph.StackTtha,
	letterDda:  glyph.StackDda,
	letterDdha: glyph.StackDdha,
	letterNna:  glyph.StackNna,
	letterTa:   glyph.StackTa,
	letterTha:  glyph.StackTha,
	letterDa:   glyph.StackDa,
	letterDha:  glyph.StackDha,
	letterNa:   glyph.StackNa,
	letterPa:   glyph.StackPa,
	letterPha:  glyph.StackPha,
	letterBa:   glyph.StackBa,
	letterBha:  glyph.StackBha,
	letterMa:   glyph.StackMa,
	letterLa:   glyph.StackLa,
	letterSa:   glyph.StackSa,
	letterHa:   glyph.StackHa,
	letterA:    glyph.StackA,
}

// kinziVowelMap folds an above-base vowel sign into the kinzi mark.
var kinziVowelMap = map[rune]rune{
	vowelII:      glyph.KinziII,
	vowelI:       glyph.KinziI,
	vowelAi:      glyph.KinziAi,
	signAnusvara: glyph.KinziAnusvara,
}

// medialRaForms maps each reordered medial Ra form to its raised and
// lowered refinement.
var medialRaForms = map[rune]struct{ tall, deep rune }{
	medialRa:           {glyph.MedialRaTall, glyph.MedialRaDeep},
	glyph.MedialRaWide: {glyph.MedialRaWideTall, glyph.MedialRaWideDeep},
}

// rules is one compiled rule lineage. All tables are immutable after
// package initialization and shared between shapers.
type rules struct {
	set     RuleSet
	eLead   runeSet            // pass 1: cells an E vowel moves across first
	context map[rune][]ctxRule // pass 4 trees, keyed by trigger
	maHoist bool               // pass 6: hoist an E vowel over a stacked Ma
}

var (
	standardTable = compile(StandardRules)
	legacyTable   = compile(LegacyRules)
)

func compile(set RuleSet) *rules {
	r := &rules{
		set:     set,
		eLead:   setMedials,
		context: contextTree(dotStandard),
	}
	if set == LegacyRules {
		r.eLead = eLeadLegacy
		r.context = contextTree(dotLegacy)
		r.maHoist = true
	}
	return r
}
