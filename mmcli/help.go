package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "reshape":
		pterm.Info.Println("reshape <text>")
		pterm.Println(`
	Rewrite Myanmar text from logical to visual order and print the result,
	followed by its code points. Substituted forms from the companion font's
	Private Use Area are highlighted.

	Non-Myanmar code points pass through untouched, so markup or mixed
	text is fine as input.
	`)
	case "inspect":
		pterm.Info.Println("inspect <text>")
		pterm.Println(`
	Reshape the text and show input and output side by side, one table row
	per grapheme cluster, with code points and glyph names.

	Input rows cluster along logical Myanmar syllables. Output rows are
	smaller: the transform breaks syllables apart into the glyph sequence
	a renderer draws left to right.
	`)
	case "rules":
		pterm.Info.Println("rules [standard|legacy]")
		pterm.Println(`
	Show or switch the active rule lineage. 'standard' matches the current
	companion fonts; 'legacy' keeps the older tables for documents whose
	font predates them. The lineages differ in the E vowel reorder set,
	the dot-below variants and the handling of an E vowel over a stacked
	Ma.
	`)
	case "glyphs":
		pterm.Info.Println("glyphs [missing <fontfile>]")
		pterm.Println(`
	Without arguments: print the glyph contract, i.e. every private code
	point the engine can emit, with its glyph name. A companion font must
	define a glyph for each of them.

	'glyphs missing <fontfile>' audits a font file against the contract
	and lists the code points it does not cover.
	`)
	case "font":
		pterm.Info.Println("font <name>")
		pterm.Println(`
	Locate an installed font by name and print its file path and name
	table records (family, version, designer and so on).
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	reshape <text>               rewrite text into visual order
	inspect <text>               per-cluster view of input and output
	rules [standard|legacy]      show or switch the active rule lineage
	glyphs [missing <fontfile>]  print the glyph contract, or audit a font
	font <name>                  locate an installed font, show name records
	help [command]               this list, or details on one command
	quit                         leave (also <ctrl>D)
	`)
	}
}
