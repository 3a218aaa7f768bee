package pages

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"
)

// ErrNoMain flags a report document without a <main> element. The
// splitter needs one as the place where article bodies live.
var ErrNoMain = errors.New("pages: document has no <main> element")

// Document is one rendered report, divided into the pieces the PDF
// renderer consumes separately.
type Document struct {
	Bodies    []Body            // one complete HTML document per article
	Header    string            // merged page header document, "" when the report has none
	Footer    string            // merged page footer document, "" when the report has none
	PaperArgs map[string]string // per-report paper overrides, nil when the report sets none
}

// Body is one printable unit of a report.
type Body struct {
	HTML     string       // complete HTML document
	Lang     language.Tag // article language, language.Und when untagged
	RecordID int          // record behind the article, 0 when unknown
}

// SplitOptions configure Split. The zero value is usable.
type SplitOptions struct {
	Model   string // record model an article must declare for RecordID extraction
	Lang    string // preferred report language, BCP 47 or a locale code with underscore
	BaseURL string // base href stamped into every emitted document
}

var (
	selHeader  = cascadia.MustCompile("div.header")
	selFooter  = cascadia.MustCompile("div.footer")
	selArticle = cascadia.MustCompile("div.article")
	selHead    = cascadia.MustCompile("head")
)

// Split divides one rendered report document into per-article bodies plus
// one merged header and one merged footer document.
//
// Every div classed "header" or "footer" is detached and merged, in
// document order, into a single block repeated on each page; a report
// with neither yields empty Header and Footer strings. Every div classed
// "article" becomes one Body; a report without articles yields a single
// Body holding the content of <main>. Each emitted piece is a complete
// HTML document wrapping the content into the minimal page scaffold.
//
// Articles carry their own annotations: data-oe-lang tags the body
// language, and data-oe-id names the record when data-oe-model matches
// opts.Model. The root element's data-report-* attributes become
// PaperArgs with the prefix stripped; @page margins found in style
// elements fill margin-top and margin-bottom when the report did not set
// them itself.
func Split(r io.Reader, opts *SplitOptions) (*Document, error) {
	if opts == nil {
		opts = &SplitOptions{}
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("pages: parsing report document: %w", err)
	}
	bodyParent := findMain(root)
	if bodyParent == nil {
		return nil, ErrNoMain
	}
	lay := newLayout(root, opts.BaseURL)
	args := paperArgs(root)
	args = fillPageMargins(args, root)

	headers, bodyParent := detach(selHeader.MatchAll(root), bodyParent)
	footers, bodyParent := detach(selFooter.MatchAll(root), bodyParent)

	doc := &Document{PaperArgs: args}
	for _, art := range selArticle.MatchAll(root) {
		lang := parseLang(attr(art, "data-oe-lang"))
		id := 0
		if opts.Model != "" && attr(art, "data-oe-model") == opts.Model {
			id, _ = strconv.Atoi(attr(art, "data-oe-id"))
		}
		s, err := renderNode(art)
		if err != nil {
			return nil, err
		}
		doc.Bodies = append(doc.Bodies, Body{
			HTML:     lay.wrap(s, false, lang),
			Lang:     lang,
			RecordID: id,
		})
	}
	if len(doc.Bodies) == 0 {
		s, err := renderChildren(bodyParent)
		if err != nil {
			return nil, err
		}
		doc.Bodies = append(doc.Bodies, Body{HTML: lay.wrap(s, false, language.Und)})
	}

	lang := electLang(doc.Bodies, opts.Lang)
	if len(headers) > 0 {
		s, err := renderNode(mergeDiv("report-headers", headers))
		if err != nil {
			return nil, err
		}
		doc.Header = lay.wrap(s, true, lang)
	}
	if len(footers) > 0 {
		s, err := renderNode(mergeDiv("report-footers", footers))
		if err != nil {
			return nil, err
		}
		doc.Footer = lay.wrap(s, true, lang)
	}
	tracer().Debugf("split report into %d bodies, %d headers, %d footers",
		len(doc.Bodies), len(headers), len(footers))
	return doc, nil
}

// detach removes nodes from the document tree. The parent of the last
// removed node becomes the new body parent: headers and footers sit next
// to the articles, so their parent is where loose body content lives.
func detach(nodes []*html.Node, bodyParent *html.Node) ([]*html.Node, *html.Node) {
	for _, n := range nodes {
		if n.Parent == nil {
			continue
		}
		bodyParent = n.Parent
		n.Parent.RemoveChild(n)
	}
	return nodes, bodyParent
}

// mergeDiv collects detached nodes under a fresh div with the given id.
func mergeDiv(id string, nodes []*html.Node) *html.Node {
	div := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	for _, n := range nodes {
		div.AppendChild(n)
	}
	return div
}

// electLang picks the language stamped on the header and footer
// documents: the language of a body matching the preferred code when one
// does, the first tagged body otherwise.
func electLang(bodies []Body, pref string) language.Tag {
	if want := parseLang(pref); want != language.Und {
		for _, b := range bodies {
			if b.Lang == want {
				return want
			}
		}
	}
	for _, b := range bodies {
		if b.Lang != language.Und {
			return b.Lang
		}
	}
	return language.Und
}

// parseLang reads a language tag, accepting locale codes with an
// underscore (my_MM) next to BCP 47 (my-MM).
func parseLang(code string) language.Tag {
	if code == "" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		tracer().Infof("ignoring malformed language code %q: %v", code, err)
		return language.Und
	}
	return tag
}

// paperArgs reads the data-report-* attributes off the document root
// element, keyed with the prefix stripped. Returns nil when there are
// none.
func paperArgs(doc *html.Node) map[string]string {
	elem := documentElement(doc)
	if elem == nil {
		return nil
	}
	var args map[string]string
	for _, a := range elem.Attr {
		if !strings.HasPrefix(a.Key, "data-report-") {
			continue
		}
		if args == nil {
			args = make(map[string]string)
		}
		args[strings.TrimPrefix(a.Key, "data-report-")] = a.Val
	}
	return args
}

// documentElement returns the root <html> element of a parsed document.
func documentElement(doc *html.Node) *html.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// attr returns the value of the named attribute of n, "" when unset.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func renderNode(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", fmt.Errorf("pages: serializing node: %w", err)
	}
	return b.String(), nil
}

func renderChildren(n *html.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("pages: serializing node: %w", err)
		}
	}
	return b.String(), nil
}
