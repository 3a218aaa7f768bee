package glyph

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/flopp/go-findfont"
	"github.com/myatype/mmshape/internal/fontload"
	"golang.org/x/image/font/sfnt"
)

// ErrUnknownFont flags a font name that could not be resolved to an
// installed font file.
var ErrUnknownFont = errors.New("glyph: font not found")

// Report is the outcome of checking one font against the glyph contract.
type Report struct {
	FontName string
	Checked  int    // number of contract code points looked up
	Missing  []rune // contract code points without a glyph, ascending
}

// Complete reports whether the font covers the whole contract.
func (rep *Report) Complete() bool {
	return len(rep.Missing) == 0
}

// Err returns nil for a complete report and a *CoverageError otherwise.
func (rep *Report) Err() error {
	if rep.Complete() {
		return nil
	}
	return &CoverageError{FontName: rep.FontName, Missing: rep.Missing}
}

// CoverageError lists contract code points a font does not cover.
type CoverageError struct {
	FontName string
	Missing  []rune
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("glyph: font %q misses %d of %d contract glyphs",
		e.FontName, len(e.Missing), len(coverage))
}

// Audit checks that a parsed font defines a glyph for every contract code
// point. Text shaped by the engine renders as boxes wherever the companion
// font has gaps, so consumers should audit a font once before using it.
func Audit(f *sfnt.Font) (*Report, error) {
	if f == nil {
		return nil, errors.New("glyph: audit of nil font")
	}
	var buf sfnt.Buffer
	rep := &Report{}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil {
		rep.FontName = name
	}
	missing := treeset.NewWith(utils.Int32Comparator)
	for _, r := range coverage {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph: looking up %#U: %w", r, err)
		}
		rep.Checked++
		if gi == 0 {
			missing.Add(r)
		}
	}
	for _, v := range missing.Values() {
		rep.Missing = append(rep.Missing, v.(rune))
	}
	if !rep.Complete() {
		tracer().Infof("font %q misses %d of %d contract glyphs",
			rep.FontName, len(rep.Missing), rep.Checked)
	}
	return rep, nil
}

// AuditFile parses a font file and audits it against the contract.
func AuditFile(path string) (*Report, error) {
	f, err := fontload.Load(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return Audit(f.SFNT)
}

// AuditSystemFont locates an installed font by name and audits it.
func AuditSystemFont(name string) (*Report, error) {
	path, err := findfont.Find(name)
	if err != nil || path == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, name)
	}
	tracer().Debugf("found %q at %s", name, path)
	return AuditFile(path)
}
