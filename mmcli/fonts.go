package main

import (
	"errors"
	"fmt"

	"github.com/flopp/go-findfont"
	"github.com/myatype/mmshape/glyph"
	"github.com/myatype/mmshape/internal/fontload"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

func glyphsOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		printContract()
		return nil, false
	}
	sub, file := splitArg(arg)
	if sub != "missing" || file == "" {
		return errors.New("usage: glyphs [missing <fontfile>]"), false
	}
	rep, err := glyph.AuditFile(file)
	if err != nil {
		return err, false
	}
	printAudit(rep)
	return nil, false
}

func printContract() {
	cov := glyph.Coverage()
	data := [][]string{
		{"Code Point", "Glyph"},
	}
	for _, r := range cov {
		data = append(data, []string{fmt.Sprintf("U+%04X", r), glyph.Name(r)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d contract code points\n", len(cov))
}

func printAudit(rep *glyph.Report) {
	if rep.Complete() {
		pterm.Info.Printf("font %q covers all %d contract glyphs\n", rep.FontName, rep.Checked)
		return
	}
	pterm.Error.Printf("font %q misses %d of %d contract glyphs\n",
		rep.FontName, len(rep.Missing), rep.Checked)
	data := [][]string{
		{"Code Point", "Glyph"},
	}
	for _, r := range rep.Missing {
		data = append(data, []string{fmt.Sprintf("U+%04X", r), glyph.Name(r)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	name, ok := op.hasArg()
	if !ok {
		return errors.New("usage: font <name>"), false
	}
	path, err := findfont.Find(name)
	if err != nil || path == "" {
		return fmt.Errorf("%w: %s", glyph.ErrUnknownFont, name), false
	}
	f, err := fontload.Load(path)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s\n", f.Path)
	printNameRecords(f.SFNT)
	return nil, false
}

// nameRecords are the sfnt name table entries worth showing.
var nameRecords = []struct {
	id    sfnt.NameID
	label string
}{
	{sfnt.NameIDFamily, "Family"},
	{sfnt.NameIDSubfamily, "Subfamily"},
	{sfnt.NameIDFull, "Full name"},
	{sfnt.NameIDVersion, "Version"},
	{sfnt.NameIDPostScript, "PostScript name"},
	{sfnt.NameIDManufacturer, "Manufacturer"},
	{sfnt.NameIDDesigner, "Designer"},
	{sfnt.NameIDLicense, "License"},
	{sfnt.NameIDSampleText, "Sample text"},
}

func printNameRecords(f *sfnt.Font) {
	var buf sfnt.Buffer
	data := [][]string{
		{"Record", "Value"},
	}
	for _, rec := range nameRecords {
		v, err := f.Name(&buf, rec.id)
		if err != nil || v == "" {
			continue
		}
		data = append(data, []string{rec.label, v})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
