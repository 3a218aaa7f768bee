package reshape

import "github.com/myatype/mmshape/glyph"

// substWide widens a reordered medial Ra in front of a broad consonant.
func (rs *rules) substWide(buf *buffer) {
	applyContext(buf, wideTree)
}

// substContext applies the one-to-one substitution trees: Na and Ra forms
// reacting to below-base signs, displaced round vowels after a medial Ya
// or medial Ra, the dot-below variants of the active lineage, and the
// narrowed medial Ha.
func (rs *rules) substContext(buf *buffer) {
	applyContext(buf, rs.context)
}

// substLigatures fuses adjacent sign cells into single glyphs.
func (rs *rules) substLigatures(buf *buffer) {
	for i := 0; i < buf.len(); i++ {
		ligRules, ok := ligTree[buf.runeAt(i)]
		if !ok {
			continue
		}
		for _, rule := range ligRules {
			if !matchAll(buf, i, rule.when) {
				continue
			}
			for _, w := range rule.write {
				if w.put == gone {
					buf.clear(i + w.at)
					continue
				}
				buf.setRune(i+w.at, w.put)
			}
		}
	}
}

// applyContext runs one left-to-right scan over buf, applying the rule
// tree of each trigger cell it encounters. Triggers and guards read the
// live buffer, so a substitution at an earlier index is visible to the
// rules of a later one.
func applyContext(buf *buffer, tree map[rune][]ctxRule) {
	for i := 0; i < buf.len(); i++ {
		ctxRules, ok := tree[buf.runeAt(i)]
		if !ok {
			continue
		}
		for _, rule := range ctxRules {
			if !rule.match(buf, i) {
				continue
			}
			rule.apply(buf, i)
		}
	}
}

func (rule *ctxRule) match(buf *buffer, i int) bool {
	hit := false
	for _, off := range rule.at {
		if rule.set.has(buf.runeAt(i + off)) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	return matchAll(buf, i, rule.when)
}

func (rule *ctxRule) apply(buf *buffer, i int) {
	if rule.split {
		buf.setPair(i, glyph.Marker, vowelE)
		buf.setRune(i+1, rule.out)
		return
	}
	buf.setRune(i, rule.out)
}

func matchAll(buf *buffer, i int, guards []ctxGuard) bool {
	for _, g := range guards {
		if buf.runeAt(i+g.off) != g.r {
			return false
		}
	}
	return true
}
