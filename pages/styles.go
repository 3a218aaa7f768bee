package pages

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

var selStyle = cascadia.MustCompile("style")

// fillPageMargins copies @page margins declared in the document's style
// elements into args, for keys the report did not set through
// data-report-* attributes. Later style elements override earlier ones,
// like a cascade would.
func fillPageMargins(args map[string]string, doc *html.Node) map[string]string {
	var top, bottom string
	for _, style := range selStyle.MatchAll(doc) {
		t, b := pageMargins(innerText(style))
		if t != "" {
			top = t
		}
		if b != "" {
			bottom = b
		}
	}
	args = fillArg(args, "margin-top", top)
	args = fillArg(args, "margin-bottom", bottom)
	return args
}

// pageMargins extracts the vertical margins set by @page rules in one
// style sheet. Within a sheet, later declarations win.
func pageMargins(src string) (top, bottom string) {
	sheet, err := parser.Parse(src)
	if err != nil {
		tracer().Infof("ignoring unparsable style element: %v", err)
		return "", ""
	}
	for _, rule := range sheet.Rules {
		if rule.Kind != css.AtRule || rule.Name != "@page" {
			continue
		}
		for _, decl := range rule.Declarations {
			switch decl.Property {
			case "margin-top":
				top = decl.Value
			case "margin-bottom":
				bottom = decl.Value
			case "margin":
				top, bottom = marginShorthand(decl.Value)
			}
		}
	}
	return top, bottom
}

// marginShorthand resolves the margin shorthand to its vertical
// components: one value sets all sides, two set vertical then
// horizontal, three set top, horizontal, bottom, four set the sides
// clockwise from the top.
func marginShorthand(v string) (top, bottom string) {
	f := strings.Fields(v)
	switch len(f) {
	case 1, 2:
		return f[0], f[0]
	case 3, 4:
		return f[0], f[2]
	}
	return "", ""
}

func fillArg(args map[string]string, key, val string) map[string]string {
	if val == "" {
		return args
	}
	if _, ok := args[key]; ok {
		return args
	}
	if args == nil {
		args = make(map[string]string)
	}
	args[key] = val
	return args
}
