package main

import (
	"testing"

	"github.com/myatype/mmshape/reshape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.cli")
	defer teardown()
	intp := &Intp{}
	cases := []struct {
		line string
		code int
		arg  string
	}{
		{"quit", QUIT, ""},
		{"help", HELP, ""},
		{"help rules", HELP, "rules"},
		{"reshape \u1014\u1031\u102F", RESHAPE, "\u1014\u1031\u102F"},
		{"reshape two words", RESHAPE, "two words"},
		{"INSPECT \u1000", INSPECT, "\u1000"},
		{"rules legacy", RULES, "legacy"},
		{"glyphs missing mm3.ttf", GLYPHS, "missing mm3.ttf"},
		{"font Myanmar Text", FONT, "Myanmar Text"},
	}
	for _, c := range cases {
		op, err := intp.parseCommand(c.line)
		if err != nil {
			t.Fatalf("parsing %q: %v", c.line, err)
		}
		if op.code != c.code || op.arg != c.arg {
			t.Errorf("parsing %q = (%s, %q), want (%s, %q)",
				c.line, opNames[op.code], op.arg, opNames[c.code], c.arg)
		}
	}
}

func TestParseCommandUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.cli")
	defer teardown()
	intp := &Intp{}
	if _, err := intp.parseCommand("frobnicate now"); err == nil {
		t.Error("expected unknown command to be rejected")
	}
}

func TestCommandTableComplete(t *testing.T) {
	for name, code := range opMap {
		if _, ok := commandFn[code]; !ok {
			t.Errorf("command %q has no handler", name)
		}
		if code < 0 || code >= len(opNames) || opNames[code] != name {
			t.Errorf("command %q has no matching name entry", name)
		}
	}
}

func TestSelectRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.cli")
	defer teardown()
	intp := &Intp{}
	if err := intp.selectRules("legacy"); err != nil {
		t.Fatalf("selecting legacy rules: %v", err)
	}
	if got := intp.shaper.Rules(); got != reshape.LegacyRules {
		t.Errorf("active rules = %s, want legacy", got)
	}
	if err := intp.selectRules("Standard"); err != nil {
		t.Fatalf("selecting standard rules: %v", err)
	}
	if got := intp.shaper.Rules(); got != reshape.StandardRules {
		t.Errorf("active rules = %s, want standard", got)
	}
	if err := intp.selectRules("classic"); err == nil {
		t.Error("expected unknown lineage to be rejected")
	}
}
