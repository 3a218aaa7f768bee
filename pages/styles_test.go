package pages

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPageMargins(t *testing.T) {
	cases := []struct {
		about       string
		src         string
		top, bottom string
	}{
		{"longhand properties",
			`@page { margin-top: 10mm; margin-bottom: 5mm; }`, "10mm", "5mm"},
		{"single-value shorthand",
			`@page { margin: 7mm; }`, "7mm", "7mm"},
		{"two-value shorthand",
			`@page { margin: 12mm 0; }`, "12mm", "12mm"},
		{"four-value shorthand",
			`@page { margin: 1mm 2mm 3mm 4mm; }`, "1mm", "3mm"},
		{"longhand after shorthand wins",
			`@page { margin: 7mm; margin-top: 10mm; }`, "10mm", "7mm"},
		{"later rule wins",
			`@page { margin-top: 1mm; } @page { margin-top: 2mm; }`, "2mm", ""},
		{"qualified rules are ignored",
			`main { margin-top: 10mm; }`, "", ""},
		{"other at-rules are ignored",
			`@media print { main { margin-top: 10mm; } }`, "", ""},
	}
	for _, c := range cases {
		top, bottom := pageMargins(c.src)
		if top != c.top || bottom != c.bottom {
			t.Errorf("%s: got (%q, %q), want (%q, %q)",
				c.about, top, bottom, c.top, c.bottom)
		}
	}
}

func TestPageMarginsBrokenSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.pages")
	defer teardown()
	top, bottom := pageMargins(`this is not a style sheet {{{`)
	if top != "" || bottom != "" {
		t.Errorf("broken sheet yielded margins (%q, %q)", top, bottom)
	}
}

func TestFillArgKeepsExisting(t *testing.T) {
	args := map[string]string{"margin-top": "30"}
	args = fillArg(args, "margin-top", "10mm")
	args = fillArg(args, "margin-bottom", "5mm")
	if args["margin-top"] != "30" {
		t.Errorf("existing margin-top overwritten: %q", args["margin-top"])
	}
	if args["margin-bottom"] != "5mm" {
		t.Errorf("missing margin-bottom not filled: %q", args["margin-bottom"])
	}
	if fillArg(nil, "margin-top", "") != nil {
		t.Errorf("empty value should not allocate a map")
	}
}
