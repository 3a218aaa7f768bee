package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/myatype/mmshape/glyph"
	"github.com/npillmayer/uax/grapheme"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

func reshapeOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return errors.New("usage: reshape <text>"), false
	}
	out := intp.shaper.Reshape(text)
	pterm.Printf("%s\n", out)
	pterm.Printf("%s\n", formatCodepoints(out))
	return nil, false
}

func inspectOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return errors.New("usage: inspect <text>"), false
	}
	out := intp.shaper.Reshape(text)
	data := [][]string{
		{"", "Cluster", "Code Points", "Glyphs"},
	}
	data = appendClusterRows(data, "in", text)
	data = appendClusterRows(data, "out", out)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// appendClusterRows adds one table row per grapheme cluster of text.
// Input text clusters along logical Myanmar syllables; reshaped output
// falls apart into smaller clusters, one per drawn glyph.
func appendClusterRows(data [][]string, tag string, text string) [][]string {
	gstr := grapheme.StringFromString(text)
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		data = append(data, []string{
			fmt.Sprintf("%s[%d]", tag, i),
			cluster,
			formatCodepoints(cluster),
			describeRunes(cluster),
		})
	}
	return data
}

var puaStyle = pterm.NewStyle(pterm.FgLightMagenta)

// formatCodepoints lists the code points of text, private forms
// highlighted.
func formatCodepoints(text string) string {
	parts := make([]string, 0, len(text))
	for _, r := range text {
		cp := fmt.Sprintf("U+%04X", r)
		if glyph.IsPrivate(r) {
			cp = puaStyle.Sprint(cp)
		}
		parts = append(parts, cp)
	}
	return strings.Join(parts, " ")
}

// describeRunes names every code point of a cluster.
func describeRunes(cluster string) string {
	names := make([]string, 0, 4)
	for _, r := range cluster {
		names = append(names, runeName(r))
	}
	return strings.Join(names, ", ")
}

func runeName(r rune) string {
	if name := glyph.Name(r); name != "" {
		return name
	}
	if r == glyph.Marker {
		return "E vowel marker"
	}
	return runenames.Name(r)
}
