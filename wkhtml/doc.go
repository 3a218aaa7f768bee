/*
Package wkhtml drives the wkhtmltopdf binary.

wkhtmltopdf converts HTML documents into one PDF. It is also the reason
this module exists: the renderer draws text one code point per glyph with
no shaping, which is what the reshaping engine compensates for. The
package stays close to the binary's own model: every input document is
written to a temp file, the command line carries the paper geometry, and
the output PDF is read back from a temp file.

A [Runner] holds what varies per deployment (binary path, work
directory, the reshaping hook); a [Job] holds what varies per document.
Failures come back as a typed [RunError] distinguishing a crashed
renderer from a failed one, with the renderer's stderr tail attached.
Exit code 1 is deliberately not a failure: wkhtmltopdf uses it for
non-fatal asset errors and still writes a usable document.
*/
package wkhtml

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the renderer package namespace.
func tracer() tracing.Trace {
	return tracing.Select("mmshape.render")
}
