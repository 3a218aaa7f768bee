/*
Package glyph defines the private glyph contract of the reshaping engine.

The engine rewrites Myanmar text into a mix of standard code points and
code points from the Private Use Area. Each PUA code point stands for one
pre-shaped glyph in a companion font; a naive renderer then draws the text
one code point per glyph, left to right, and the result looks correct.

This package is the single authoritative list of those code points. The
reshaping rule tables reference the constants declared here, so the set of
code points the engine can emit and the set a font must cover are the same
table. [Coverage] enumerates it, [Audit] checks a font file against it.

The contract is versioned: a font asset and an engine only work together
when they agree on [ContractVersion]. Changing any code point or adding a
glyph form means bumping the version.
*/
package glyph

import "github.com/npillmayer/schuko/tracing"

// ContractVersion names the revision of the glyph table below. Companion
// fonts advertise the contract revision they were built for.
const ContractVersion = "1"

// tracer returns a trace sink for the glyph package namespace.
func tracer() tracing.Trace {
	return tracing.Select("mmshape.glyph")
}
