/*
Package mmshape renders Myanmar-script PDF reports.

wkhtmltopdf, the HTML-to-PDF engine behind the reports, draws text one
code point per glyph and performs no complex shaping, which garbles
Myanmar script. This module compensates in front of the renderer: it
rewrites Myanmar text from logical to visual order, substituting
pre-shaped glyph forms from a companion font's Private Use Area, and
then drives the renderer over the rewritten documents.

The subpackages carry the moving parts: reshape implements the text
transform, glyph the code point contract with the companion font, pages
the splitting of a report document into per-page pieces, and wkhtml the
renderer invocation. This package ties them together for the common
path: one report document in, one PDF out.
*/
package mmshape

import (
	"context"
	"io"

	"github.com/myatype/mmshape/glyph"
	"github.com/myatype/mmshape/pages"
	"github.com/myatype/mmshape/reshape"
	"github.com/myatype/mmshape/wkhtml"
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the root package namespace.
func tracer() tracing.Trace {
	return tracing.Select("mmshape")
}

// ReshapeHTML rewrites every Myanmar sequence in an HTML string into
// visual order, using the standard rules. Markup and non-Myanmar text
// pass through untouched.
func ReshapeHTML(html string) string {
	return reshape.Reshape(html)
}

// ReportOptions configure a Report renderer. The zero value is usable.
type ReportOptions struct {
	Rules   reshape.RuleSet // rule lineage for the text transform
	Binary  string          // wkhtmltopdf path, "" means search the PATH
	WorkDir string          // temp file directory, "" means the system default
	Model   string          // record model behind the report's articles
	Lang    string          // preferred report language
	BaseURL string          // base href for relative asset references
}

// Report renders complete report documents: split into pages, reshape
// every piece, hand the results to wkhtmltopdf.
type Report struct {
	shaper *reshape.Shaper
	runner *wkhtml.Runner
	split  pages.SplitOptions
}

// NewReport creates a report renderer. nil opts select the defaults.
func NewReport(opts *ReportOptions) *Report {
	if opts == nil {
		opts = &ReportOptions{}
	}
	return &Report{
		shaper: reshape.New(&reshape.Options{Rules: opts.Rules}),
		runner: &wkhtml.Runner{Bin: opts.Binary, WorkDir: opts.WorkDir},
		split: pages.SplitOptions{
			Model:   opts.Model,
			Lang:    opts.Lang,
			BaseURL: opts.BaseURL,
		},
	}
}

// Render converts one rendered report document into a PDF. The document
// is split into per-article bodies plus merged header and footer, all
// pieces are reshaped concurrently, and the renderer runs over the
// results. Rendering honors ctx between pipeline stages.
func (rep *Report) Render(ctx context.Context, r io.Reader) ([]byte, error) {
	doc, err := pages.Split(r, &rep.split)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(doc.Bodies)+2)
	texts = append(texts, doc.Header, doc.Footer)
	for _, b := range doc.Bodies {
		texts = append(texts, b.HTML)
	}
	shaped, err := rep.shaper.All(ctx, texts)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("reshaped %d report pieces with %s rules",
		len(shaped), rep.shaper.Rules())
	job := &wkhtml.Job{
		Header:    shaped[0],
		Footer:    shaped[1],
		Bodies:    shaped[2:],
		PaperArgs: doc.PaperArgs,
	}
	return rep.runner.Render(ctx, job)
}

// CheckFont audits the companion font at path against the glyph
// contract. A nil return means the font covers every code point the
// reshaping engine can emit; audit once before the first render.
func (rep *Report) CheckFont(path string) error {
	audit, err := glyph.AuditFile(path)
	if err != nil {
		return err
	}
	return audit.Err()
}
