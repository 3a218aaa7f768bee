package pages

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

const reportFixture = `<!DOCTYPE html>
<html data-report-margin-top="30" data-report-header-spacing="25">
<head>
<style>@page { margin: 12mm 0; }</style>
<link rel="stylesheet" href="/report.css"/>
</head>
<body>
<div id="wrapwrap">
<main>
<div class="header"><span class="page"></span></div>
<div class="article" data-oe-model="account.move" data-oe-id="7" data-oe-lang="my_MM"><p>First</p></div>
<div class="header"><span class="page"></span></div>
<div class="article" data-oe-model="account.move" data-oe-id="8"><p>Second</p></div>
<div class="footer"><span class="topage"></span></div>
</main>
</div>
</body>
</html>`

func splitFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := Split(strings.NewReader(reportFixture), &SplitOptions{
		Model:   "account.move",
		BaseURL: "http://localhost:8069",
	})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	return doc
}

func TestSplitDividesArticles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	doc := splitFixture(t)
	var got []string
	for _, b := range doc.Bodies {
		got = append(got, fmt.Sprintf("%d:%s", b.RecordID, b.Lang))
	}
	want := []string{"7:my-MM", "8:und"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bodies mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(doc.Bodies[0].HTML, "<p>First</p>") {
		t.Errorf("first body lost its article content:\n%s", doc.Bodies[0].HTML)
	}
	if !strings.Contains(doc.Bodies[0].HTML, `class="article"`) {
		t.Errorf("article element itself should be part of the body")
	}
}

func TestSplitBodyScaffold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	doc := splitFixture(t)
	body := doc.Bodies[0].HTML
	for _, want := range []string{
		`<base href="http://localhost:8069"/>`,
		`<link rel="stylesheet" href="/report.css"/>`,
		`<div id="wrapwrap"><main>`,
		`lang="my-MM"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body document misses %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "function subst") {
		t.Errorf("body documents must not carry the substitution script")
	}
}

func TestSplitMergesHeaders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	doc := splitFixture(t)
	if n := strings.Count(doc.Header, `<span class="page">`); n != 2 {
		t.Errorf("merged header holds %d page counters, want 2:\n%s", n, doc.Header)
	}
	if !strings.Contains(doc.Header, `id="report-headers"`) {
		t.Errorf("header divs not merged under the report-headers block")
	}
	if !strings.Contains(doc.Header, "function subst") {
		t.Errorf("header document misses the substitution script")
	}
	if !strings.Contains(doc.Header, `class="container"`) {
		t.Errorf("header document misses the container class")
	}
	if !strings.Contains(doc.Header, `lang="my-MM"`) {
		t.Errorf("header should take the language of the first tagged body")
	}
	if !strings.Contains(doc.Footer, `id="report-footers"`) {
		t.Errorf("footer divs not merged under the report-footers block")
	}
	for _, b := range doc.Bodies {
		if strings.Contains(b.HTML, `class="header"`) {
			t.Errorf("header block leaked into a body:\n%s", b.HTML)
		}
	}
}

func TestSplitPaperArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	doc := splitFixture(t)
	want := map[string]string{
		"margin-top":     "30",   // data-report attribute wins over @page
		"header-spacing": "25",
		"margin-bottom":  "12mm", // filled from the @page rule
	}
	if diff := cmp.Diff(want, doc.PaperArgs); diff != "" {
		t.Errorf("paper args mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitWithoutArticles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	src := `<html><body><main><p>loose content</p></main></body></html>`
	doc, err := Split(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if len(doc.Bodies) != 1 {
		t.Fatalf("got %d bodies, want 1", len(doc.Bodies))
	}
	if !strings.Contains(doc.Bodies[0].HTML, "<p>loose content</p>") {
		t.Errorf("fallback body lost the main content:\n%s", doc.Bodies[0].HTML)
	}
	if doc.Bodies[0].RecordID != 0 {
		t.Errorf("fallback body has record id %d, want 0", doc.Bodies[0].RecordID)
	}
	if doc.Header != "" || doc.Footer != "" {
		t.Errorf("report without header/footer divs should yield empty documents")
	}
	if doc.PaperArgs != nil {
		t.Errorf("report without annotations should yield nil paper args, got %v", doc.PaperArgs)
	}
}

func TestSplitWithoutMain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	_, err := Split(strings.NewReader("<p>not a report</p>"), nil)
	if !errors.Is(err, ErrNoMain) {
		t.Fatalf("got %v, want ErrNoMain", err)
	}
}

func TestSplitPrefersRequestedLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	src := `<html><body><main>
<div class="header">H</div>
<div class="article" data-oe-lang="en_US">one</div>
<div class="article" data-oe-lang="my_MM">two</div>
</main></body></html>`
	doc, err := Split(strings.NewReader(src), &SplitOptions{Lang: "my_MM"})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if !strings.Contains(doc.Header, `lang="my-MM"`) {
		t.Errorf("header should follow the requested language, got:\n%s", doc.Header)
	}
}

func TestElectLang(t *testing.T) {
	my := language.MustParse("my-MM")
	en := language.MustParse("en-US")
	cases := []struct {
		about  string
		bodies []Body
		pref   string
		want   language.Tag
	}{
		{"no tagged body", []Body{{}, {}}, "", language.Und},
		{"first tagged body wins", []Body{{}, {Lang: en}, {Lang: my}}, "", en},
		{"preference overrides document order", []Body{{Lang: en}, {Lang: my}}, "my_MM", my},
		{"unmatched preference falls back", []Body{{Lang: en}}, "my_MM", en},
	}
	for _, c := range cases {
		if got := electLang(c.bodies, c.pref); got != c.want {
			t.Errorf("%s: got %v, want %v", c.about, got, c.want)
		}
	}
}
