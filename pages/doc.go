/*
Package pages splits one rendered report document into the pieces a PDF
renderer consumes separately.

A report arrives as a single HTML document: repeated page headers and
footers interleaved with one article per record, all inside a <main>
element. The renderer instead wants one file per article plus one merged
header and one merged footer, each a complete document of its own. Split
performs that division: it detaches header, footer and article blocks,
merges the repeated blocks, and wraps every piece into a minimal page
scaffold carrying the source document's head resources.

Reports annotate themselves through data attributes: per-article language
and record identity, and per-report paper overrides on the root element.
Split surfaces those, together with page margins declared in @page style
rules, so the renderer invocation can honor them.
*/
package pages

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the pages package namespace.
func tracer() tracing.Trace {
	return tracing.Select("mmshape.pages")
}
