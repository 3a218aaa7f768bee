package reshape

import (
	"context"
	"runtime"
	"sync"
)

// RuleSet selects one of the maintained rule lineages.
type RuleSet int

const (
	// StandardRules is the current rule lineage.
	StandardRules RuleSet = iota

	// LegacyRules is the older lineage, kept for documents whose
	// companion font predates the standard tables. It differs in the E
	// vowel reorder set, the dot-below variants, and the handling of an
	// E vowel over a stacked Ma.
	LegacyRules
)

func (set RuleSet) String() string {
	switch set {
	case StandardRules:
		return "standard"
	case LegacyRules:
		return "legacy"
	}
	return "unknown"
}

// Options configures a Shaper. A nil Options selects the standard rules.
type Options struct {
	Rules RuleSet
}

// Shaper applies the logical-to-visual transform. A Shaper is cheap to
// create: it references shared immutable rule tables. It is safe for
// concurrent use.
type Shaper struct {
	rules *rules
}

// New creates a Shaper for the rule lineage selected by opts. Unknown
// lineage values fall back to the standard rules.
func New(opts *Options) *Shaper {
	set := StandardRules
	if opts != nil {
		set = opts.Rules
	}
	table := standardTable
	if set == LegacyRules {
		table = legacyTable
	}
	return &Shaper{rules: table}
}

// Rules returns the rule lineage the shaper was created with.
func (sh *Shaper) Rules() RuleSet {
	return sh.rules.set
}

var defaultShaper = &Shaper{rules: standardTable}

// Reshape transforms text with the standard rules. It is the package-level
// shorthand for [Shaper.Reshape] on a default shaper.
func Reshape(text string) string {
	return defaultShaper.Reshape(text)
}

// pipeline is the fixed pass sequence of the transform.
var pipeline = [...]func(*rules, *buffer){
	(*rules).reorderEVowel,
	(*rules).reorderMedialRa,
	(*rules).substWide,
	(*rules).substContext,
	(*rules).substLigatures,
	(*rules).substVirama,
	(*rules).refineKinzi,
	(*rules).refineMedialRa,
}

// Reshape transforms text from logical to visual order. The result mixes
// untouched code points with private forms from package glyph; rendered
// naively left to right with the companion font it reads as the input
// did under a shaping engine. Text without Myanmar content comes back
// unchanged. Reshape never fails: code points no rule matches stay as
// they are.
//
// Reshape is not idempotent. Feeding its output back in may displace
// already shaped clusters.
func (sh *Shaper) Reshape(text string) string {
	if !hasMyanmar(text) {
		return text
	}
	buf := newBuffer(text)
	for _, pass := range pipeline {
		pass(sh.rules, buf)
	}
	tracer().Debugf("reshaped %d cells with %s rules", buf.len(), sh.rules.set)
	return buf.String()
}

// All transforms a batch of texts concurrently and returns the results in
// input order. Cancellation applies between texts: a transform that has
// started finishes, and a canceled call returns the context's error with
// no partial results.
func (sh *Shaper) All(ctx context.Context, texts []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, nil
	}
	out := make([]string, len(texts))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(texts) {
		workers = len(texts)
	}
	work := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				out[i] = sh.Reshape(texts[i])
			}
		}()
	}
	var err error
feed:
	for i := range texts {
		select {
		case work <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(work)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("reshaped %d text parts", len(texts))
	return out, nil
}

// hasMyanmar reports whether text contains any code point the rules could
// act on. Every trigger value lies in the Myanmar block or, for forms of
// earlier passes, in the Private Use Area; text without both is passed
// through verbatim.
func hasMyanmar(text string) bool {
	for _, r := range text {
		if r >= 0x1000 && r <= 0x109F {
			return true
		}
		if r >= 0xE000 && r <= 0xF8FF {
			return true
		}
	}
	return false
}
