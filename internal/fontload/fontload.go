// Package fontload reads companion font files into their parsed SFNT
// form. Both the glyph audit and the CLI font commands go through it, so
// a font is read and parsed exactly one way.
package fontload

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Font is a loaded companion font: the raw file bytes, the parsed SFNT
// view, and the full name the font reports for itself. Name stays empty
// for fonts without a usable name table.
type Font struct {
	Name   string
	Path   string
	Binary []byte
	SFNT   *sfnt.Font
}

// Load reads an OpenType font (TTF or OTF) from a file.
func Load(path string) (*Font, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse parses an OpenType font from memory.
func Parse(data []byte) (*Font, error) {
	f := &Font{Binary: data}
	var err error
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, err
	}
	// fonts without a full-name record are still usable
	f.Name, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}
