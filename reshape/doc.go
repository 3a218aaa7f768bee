/*
Package reshape rewrites Myanmar text from logical to visual order.

Myanmar script places vowel signs and medial consonants around their base
in ways a dumb left-to-right renderer cannot reproduce: signs typed after
a consonant may have to appear before it, and consonant clusters collapse
into stacked or wrapped glyph forms. Proper renderers solve this with an
OpenType shaping engine. This package solves it without one: it reorders
and substitutes the code points themselves, so that drawing the result
one glyph per code point, strictly left to right, looks right. Substituted
forms come from a companion font's Private Use Area; package glyph defines
that contract.

The package API is centered around [Reshape] and [New]:
  - callers pick a rule lineage through [Options] (or pass nil for the
    standard rules),
  - [Shaper.Reshape] transforms one string,
  - [Shaper.All] transforms a batch concurrently.

The transform is a fixed pipeline of passes over a cell buffer with one
cell per input code point. Passes only rewrite, empty, or swap cells, so
every rule sees its neighbors at stable indexes. Text without Myanmar
content passes through untouched.
*/
package reshape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the reshape package namespace.
func tracer() tracing.Trace {
	return tracing.Select("mmshape.reshape")
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
