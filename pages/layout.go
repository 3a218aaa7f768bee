package pages

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

// layout reproduces the minimal page scaffold the renderer expects around
// every emitted document: the source document's head resources under a
// base href, and the content wrapped back into a <main> element. Header
// and footer documents additionally run the section substitution script.
type layout struct {
	head    string // serialized head resources of the source document
	baseURL string
}

func newLayout(doc *html.Node, baseURL string) *layout {
	lay := &layout{baseURL: baseURL}
	if head := selHead.MatchFirst(doc); head != nil {
		s, err := renderChildren(head)
		if err != nil {
			tracer().Errorf("cannot serialize document head: %v", err)
		}
		lay.head = s
	}
	return lay
}

// wrap builds one complete HTML document around content. Header and
// footer documents pass subst true: they get the container class the
// renderer sizes them by and the substitution script.
func (lay *layout) wrap(content string, subst bool, lang language.Tag) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html")
	if lang != language.Und {
		fmt.Fprintf(&b, " lang=%q", lang)
	}
	b.WriteString("><head>")
	if lay.baseURL != "" {
		fmt.Fprintf(&b, "<base href=%q/>", lay.baseURL)
	}
	b.WriteString(`<meta charset="utf-8"/>`)
	b.WriteString(lay.head)
	b.WriteString("</head><body")
	if subst {
		b.WriteString(` class="container"`)
	}
	b.WriteString(`><div id="wrapwrap"><main>`)
	b.WriteString(content)
	b.WriteString("</main></div>")
	if subst {
		b.WriteString(substScript)
	}
	b.WriteString("</body></html>")
	return b.String()
}

// substScript is the substitution hook wkhtmltopdf documents for header
// and footer pages: the renderer passes page counters in the query
// string, and the script copies each one into the elements classed after
// it.
const substScript = `<script type="text/javascript">
function subst() {
    var vars = {};
    var query = document.location.search.substring(1).split('&');
    for (var i in query) {
        var pair = query[i].split('=', 2);
        vars[pair[0]] = decodeURIComponent(pair[1]);
    }
    var sections = ['frompage', 'topage', 'page', 'webpage', 'section', 'subsection', 'subsubsection'];
    for (var i in sections) {
        var targets = document.getElementsByClassName(sections[i]);
        for (var j = 0; j < targets.length; j++) {
            targets[j].textContent = vars[sections[i]];
        }
    }
}
document.addEventListener('DOMContentLoaded', subst, false);
</script>`
